package shared

import "github.com/google/uuid"

// NumTeams is the number of teams; seats 0&2 form team 0, seats 1&3 team 1.
const NumTeams = 2

// TeamForSeat maps a seat (0-3) to its team index.
func TeamForSeat(seat int) int {
	return seat % NumTeams
}

// Team represents one of the two partnerships.
type Team struct {
	ID    string `json:"id"`
	Seats [2]int `json:"seats"`
	Score int    `json:"score"`
}

// NewTeam creates a team for the given pair of seats with a fresh UUID.
func NewTeam(seatA, seatB int) *Team {
	return &Team{
		ID:    uuid.NewString(),
		Seats: [2]int{seatA, seatB},
	}
}

// AddScore adds game points to the team's total.
func (t *Team) AddScore(points int) {
	t.Score += points
}
