package game

import "watten-game/internal/shared"

// EventType identifies a discrete notification for the presentation layer.
type EventType string

const (
	EventCutRevealed       EventType = "cut_revealed"
	EventTrumpRankSelected EventType = "trump_rank_selected"
	EventTrumpSuitSelected EventType = "trump_suit_selected"
	EventCardPlayed        EventType = "card_played"
	EventTrickResolved     EventType = "trick_resolved"
	EventHandResolved      EventType = "hand_resolved"
	EventMatchResolved     EventType = "match_resolved"
)

// Event carries one notification and its typed payload.
type Event struct {
	Type    EventType `json:"type"`
	Payload any       `json:"payload,omitempty"`
}

// EventSink receives engine notifications. A nil sink disables them.
// The sink is called synchronously from within the mutating command.
type EventSink func(Event)

// --- Payload structs ---

type CutRevealedPayload struct {
	Seat          int         `json:"seat"`
	Card          shared.Card `json:"card"`
	CriticalLevel int         `json:"critical_level"` // 0 when not critical
	Claimed       bool        `json:"claimed"`
}

type TrumpRankSelectedPayload struct {
	Seat int `json:"seat"`
	Rank int `json:"rank"`
}

type TrumpSuitSelectedPayload struct {
	Seat int         `json:"seat"`
	Suit shared.Suit `json:"suit"`
}

type CardPlayedPayload struct {
	Seat int         `json:"seat"`
	Card shared.Card `json:"card"`
}

type TrickResolvedPayload struct {
	WinnerSeat int                 `json:"winner_seat"`
	WinnerTeam int                 `json:"winner_team"`
	Cards      []shared.PlayedCard `json:"cards"`
	TricksWon  [2]int              `json:"tricks_won"`
}

type HandResolvedPayload struct {
	WinnerTeam int    `json:"winner_team"`
	TricksWon  [2]int `json:"tricks_won"`
}

type MatchResolvedPayload struct {
	WinnerTeam  int    `json:"winner_team"`
	FinalScores [2]int `json:"final_scores"`
}
