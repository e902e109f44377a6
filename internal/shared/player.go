package shared

// Player represents one of the four seats at the table.
type Player struct {
	Seat    int    // 0-3, clockwise
	Name    string
	IsHuman bool
	Hand    []Card
}

// NewPlayer creates a player for the given seat.
func NewPlayer(seat int, name string, human bool) *Player {
	return &Player{
		Seat:    seat,
		Name:    name,
		IsHuman: human,
		Hand:    []Card{},
	}
}

// AddCard adds a card to the player's hand.
func (p *Player) AddCard(card Card) {
	p.Hand = append(p.Hand, card)
}

// RemoveCard removes exactly one matching card from the hand.
// Returns false if the card is not held.
func (p *Player) RemoveCard(card Card) bool {
	for i, c := range p.Hand {
		if c.Same(card) {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}

// FindCard looks up a held card by suit and rank.
func (p *Player) FindCard(suit Suit, rank int) (Card, bool) {
	for _, card := range p.Hand {
		if card.Suit == suit && card.Rank == rank {
			return card, true
		}
	}
	return Card{}, false
}

// HasSuit reports whether the player holds any card of the given suit.
func (p *Player) HasSuit(suit Suit) bool {
	for _, card := range p.Hand {
		if card.Suit == suit {
			return true
		}
	}
	return false
}
