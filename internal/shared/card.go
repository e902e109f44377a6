package shared

import "fmt"

// Suit represents the suit of a card.
type Suit string

const (
	Clubs    Suit = "Clubs"
	Diamonds Suit = "Diamonds"
	Hearts   Suit = "Hearts"
	Spades   Suit = "Spades"
)

// Suits lists the four suits in canonical deck order.
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// Ranks lists the eight Watten ranks in canonical deck order.
// Rank 1 is the Ace; 11-13 are Jack, Queen and King.
var Ranks = []int{7, 8, 9, 10, 11, 12, 13, 1}

// Card represents a single card in the Watten deck.
type Card struct {
	Suit  Suit `json:"suit"`
	Rank  int  `json:"rank"`
	Value int  `json:"value"` // base strength for scoring; the Ace is highest
}

// CardValue returns the base strength of a rank. The Ace (rank 1) sits
// above the King, so it maps to 14; every other rank is its own value.
func CardValue(rank int) int {
	if rank == 1 {
		return 14
	}
	return rank
}

// NewCard builds a card with its base value derived from the rank.
func NewCard(suit Suit, rank int) Card {
	return Card{Suit: suit, Rank: rank, Value: CardValue(rank)}
}

var rankNames = map[int]string{
	1:  "Ace",
	11: "Jack",
	12: "Queen",
	13: "King",
}

// RankName returns the display name for a rank ("7".."10", "Jack", "Queen", "King", "Ace").
func RankName(rank int) string {
	if name, ok := rankNames[rank]; ok {
		return name
	}
	return fmt.Sprintf("%d", rank)
}

// String renders the card for logs and terminal display.
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", RankName(c.Rank), c.Suit)
}

// Same reports whether two cards are the same physical card, ignoring
// the derived value field.
func (c Card) Same(other Card) bool {
	return c.Suit == other.Suit && c.Rank == other.Rank
}
