package shared

import (
	"errors"
	"math/rand/v2"
)

var (
	// ErrEmptyDeck is returned when drawing from a deck with no cards left.
	ErrEmptyDeck = errors.New("deck is empty")
	// ErrInsufficientCards is returned when a deal asks for more cards than remain.
	ErrInsufficientCards = errors.New("not enough cards in deck")
)

// DeckSize is the fixed size of a Watten deck: ranks 7-13 plus Ace over four suits.
const DeckSize = 32

// Deck represents the draw pile. The zero value is unusable; construct with
// NewDeck or NewSeededDeck.
type Deck struct {
	Cards []Card
	rng   *rand.Rand
}

// NewDeck creates a full 32-card Watten deck in canonical order with a
// non-deterministic random source.
func NewDeck() *Deck {
	d := &Deck{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
	d.Reset()
	return d
}

// NewSeededDeck creates a full deck whose shuffles are reproducible from seed.
func NewSeededDeck(seed uint64) *Deck {
	d := &Deck{rng: rand.New(rand.NewPCG(seed, seed))}
	d.Reset()
	return d
}

// Reset regenerates all 32 cards in canonical order.
func (d *Deck) Reset() {
	d.Cards = make([]Card, 0, DeckSize)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			d.Cards = append(d.Cards, NewCard(suit, rank))
		}
	}
}

// Shuffle randomizes the order of the remaining cards (Fisher-Yates).
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// Remaining returns the number of cards left in the deck.
func (d *Deck) Remaining() int {
	return len(d.Cards)
}

// Draw removes and returns the topmost card.
func (d *Deck) Draw() (Card, error) {
	if len(d.Cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	card := d.Cards[0]
	d.Cards = d.Cards[1:]
	return card, nil
}

// ReturnBottom places a card under the deck. Used when a revealed cut card
// is not claimed and goes back before the deal.
func (d *Deck) ReturnBottom(card Card) {
	d.Cards = append(d.Cards, card)
}

// Deal draws numPlayers*perPlayer cards round-robin, one card to each player
// per pass, preserving draw order.
func (d *Deck) Deal(numPlayers, perPlayer int) ([][]Card, error) {
	counts := make([]int, numPlayers)
	for i := range counts {
		counts[i] = perPlayer
	}
	return d.DealCounts(counts)
}

// DealCounts deals round-robin with a per-player card count, skipping players
// whose count is already satisfied. A short count is how the cutter receives
// four cards instead of five after claiming a critical cut card.
func (d *Deck) DealCounts(counts []int) ([][]Card, error) {
	total := 0
	passes := 0
	for _, n := range counts {
		total += n
		if n > passes {
			passes = n
		}
	}
	if total > len(d.Cards) {
		return nil, ErrInsufficientCards
	}

	hands := make([][]Card, len(counts))
	for i, n := range counts {
		hands[i] = make([]Card, 0, n)
	}
	for pass := 0; pass < passes; pass++ {
		for i := range counts {
			if pass >= counts[i] {
				continue
			}
			card, err := d.Draw()
			if err != nil {
				return nil, err
			}
			hands[i] = append(hands[i], card)
		}
	}
	return hands, nil
}
