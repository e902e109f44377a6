package shared

// PlayedCard stores a card along with the seat of the player who played it.
type PlayedCard struct {
	Card Card `json:"card"`
	Seat int  `json:"seat"`
}

// Trick represents a single trick: up to four cards, one per seat.
type Trick struct {
	Cards      []PlayedCard // cards played so far, in play order
	WinnerSeat int          // seat that won the trick (-1 until resolved)
}

// NewTrick creates a new empty trick.
func NewTrick() *Trick {
	return &Trick{
		Cards:      make([]PlayedCard, 0, 4),
		WinnerSeat: -1,
	}
}

// AddCard appends a card and the seat that played it.
func (t *Trick) AddCard(card Card, seat int) {
	t.Cards = append(t.Cards, PlayedCard{Card: card, Seat: seat})
}

// Len returns the number of cards played so far.
func (t *Trick) Len() int {
	return len(t.Cards)
}

// First returns the card that led the trick, or false if the trick is empty.
func (t *Trick) First() (PlayedCard, bool) {
	if len(t.Cards) == 0 {
		return PlayedCard{}, false
	}
	return t.Cards[0], true
}
