package game

import "errors"

// Command errors. Every failed command leaves state untouched; the caller
// re-issues with valid input. Deck-level errors (shared.ErrEmptyDeck,
// shared.ErrInsufficientCards) indicate bookkeeping bugs and end the hand.
var (
	// ErrInvalidPhase is returned for a command issued in the wrong phase.
	ErrInvalidPhase = errors.New("action not allowed in current phase")
	// ErrIllegalPlay is returned when a card violates the follow/beat rules.
	ErrIllegalPlay = errors.New("card is not a legal play")
	// ErrNotYourTurn is returned when a seat plays out of turn.
	ErrNotYourTurn = errors.New("not this seat's turn")
	// ErrCardNotInHand is returned when the seat does not hold the card.
	ErrCardNotInHand = errors.New("card not in hand")
	// ErrInvalidRank is returned for a trump rank outside 1-13.
	ErrInvalidRank = errors.New("invalid trump rank")
	// ErrInvalidSuit is returned for an unknown trump suit.
	ErrInvalidSuit = errors.New("invalid trump suit")
	// ErrMatchOver is returned for any command after the match has ended.
	ErrMatchOver = errors.New("match is over")
)
