// Package ai selects legal moves for non-human seats. The heuristics are
// deliberately greedy: the policy only reasons about the cards already on
// the table, never about opponents' possible future plays.
package ai

import (
	"errors"

	"watten-game/internal/rules"
	"watten-game/internal/shared"

	"go.uber.org/zap"
)

// ErrNoLegalPlay is returned when the seat has no legal card. A correctly
// maintained hand always has one, so this signals broken bookkeeping
// upstream, not a game state a caller should reach.
var ErrNoLegalPlay = errors.New("no legal play available")

// Policy picks cards and trump choices for a seat.
type Policy struct {
	log *zap.Logger
}

// NewPolicy creates a policy. A nil logger disables logging.
func NewPolicy(logger *zap.Logger) *Policy {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Policy{log: logger}
}

// ChooseCard selects a legal card for the seat:
//
//   - leading the trick: the highest-scoring legal card
//   - teammate currently winning: the lowest-scoring legal card
//   - opponent winning: the cheapest legal card that beats the current
//     best score, or the lowest-scoring card when nothing can.
//
// An empty legal set returns ErrNoLegalPlay.
func (p *Policy) ChooseCard(hand []shared.Card, trick []shared.PlayedCard,
	trumpRank int, trumpSuit shared.Suit, criticals, blind bool, seat, cutter, dealer int) (shared.Card, error) {

	legal := rules.LegalPlays(hand, trick, trumpRank, trumpSuit, criticals, blind, seat, cutter, dealer)
	if len(legal) == 0 {
		// Cannot happen with correct deck/hand bookkeeping: an empty
		// trick accepts anything and a non-empty hand always has a
		// legal answer per the play rules.
		p.log.Error("empty legal-move set",
			zap.Int("seat", seat),
			zap.Int("hand_size", len(hand)))
		return shared.Card{}, ErrNoLegalPlay
	}

	lead := rules.NoLeadSuit
	if len(trick) > 0 {
		if rules.CriticalLevel(trick[0].Card, criticals) == 0 {
			lead = trick[0].Card.Suit
		}
	}
	score := func(c shared.Card) int {
		return rules.CardScore(c, trumpRank, trumpSuit, criticals, lead)
	}

	if len(trick) == 0 {
		return pickBest(legal, score, true), nil
	}

	winIdx, winScore := rules.WinningPlay(trick, trumpRank, trumpSuit, criticals)
	winningSeat := trick[winIdx].Seat
	if shared.TeamForSeat(winningSeat) == shared.TeamForSeat(seat) {
		// Partner has the trick; conserve strength.
		return pickBest(legal, score, false), nil
	}

	// Opponent winning: beat as cheaply as possible.
	var beating []shared.Card
	for _, c := range legal {
		if score(c) > winScore {
			beating = append(beating, c)
		}
	}
	if len(beating) > 0 {
		return pickBest(beating, score, false), nil
	}
	return pickBest(legal, score, false), nil
}

// pickBest returns the highest- or lowest-scoring card of a non-empty set.
func pickBest(cards []shared.Card, score func(shared.Card) int, highest bool) shared.Card {
	best := cards[0]
	bestScore := score(best)
	for _, c := range cards[1:] {
		s := score(c)
		if (highest && s > bestScore) || (!highest && s < bestScore) {
			best, bestScore = c, s
		}
	}
	return best
}

// ChooseRank picks the trump rank: the rank held most often, ties broken
// toward the lowest card value.
func (p *Policy) ChooseRank(hand []shared.Card) int {
	counts := make(map[int]int)
	for _, c := range hand {
		counts[c.Rank]++
	}
	bestRank := hand[0].Rank
	for rank, n := range counts {
		best := counts[bestRank]
		if n > best || (n == best && shared.CardValue(rank) < shared.CardValue(bestRank)) {
			bestRank = rank
		}
	}
	return bestRank
}

// ChooseSuit picks the trump suit: the suit with the greatest summed card
// value in hand.
func (p *Policy) ChooseSuit(hand []shared.Card) shared.Suit {
	sums := make(map[shared.Suit]int)
	for _, c := range hand {
		sums[c.Suit] += c.Value
	}
	best := shared.Suits[0]
	for _, s := range shared.Suits[1:] {
		if sums[s] > sums[best] {
			best = s
		}
	}
	return best
}
