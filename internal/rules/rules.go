// Package rules holds the pure evaluation functions of the Watten engine:
// critical-card detection, card strength scoring, legal-play validation and
// trick resolution. Nothing in here carries state; both the hand state
// machine and the AI policy consume the same functions.
package rules

import "watten-game/internal/shared"

// NoLeadSuit marks the absence of a lead-suit context, either because the
// trick is empty or because a critical card (which has no suit for
// follow purposes) led it.
const NoLeadSuit shared.Suit = ""

// Score constants for the layered strength hierarchy. Categories never
// overlap: two distinct cards cannot score equal under a fixed context.
const (
	scoreCriticalTop = 10000 // level 1 critical
	scoreCriticalMid = 9000  // level 2 critical
	scoreCriticalLow = 8000  // level 3 critical
	scoreRechte      = 5000  // trump rank and trump suit together
	scoreTrumpRank   = 3000  // trump rank on any suit
	scoreTrumpSuit   = 1000  // trump suit, plain rank
	scoreLeadSuit    = 500   // follows a declared non-trump lead
)

// criticalCard pairs a fixed card with its priority level (1 is highest).
type criticalCard struct {
	suit  shared.Suit
	rank  int
	level int
}

// The three holy cards. They outrank everything regardless of trump and
// are suitless for follow purposes.
var criticalTable = []criticalCard{
	{suit: shared.Hearts, rank: 13, level: 1}, // King of Hearts
	{suit: shared.Clubs, rank: 7, level: 2},   // Seven of Clubs
	{suit: shared.Spades, rank: 7, level: 3},  // Seven of Spades
}

// CriticalLevel returns the priority level (1-3) of a critical card, or 0
// when the card is not critical or the rule is disabled.
func CriticalLevel(card shared.Card, enabled bool) int {
	if !enabled {
		return 0
	}
	for _, crit := range criticalTable {
		if card.Suit == crit.suit && card.Rank == crit.rank {
			return crit.level
		}
	}
	return 0
}

// CardScore computes the strength of a card under the given trump and
// lead-suit context. The categories, strongest first:
//
//	critical level 1/2/3, Rechte (trump rank + trump suit), trump rank,
//	trump suit, lead suit, then off-suit (0 against a non-trump lead,
//	bare value with no lead context).
func CardScore(card shared.Card, trumpRank int, trumpSuit shared.Suit, criticals bool, leadSuit shared.Suit) int {
	switch CriticalLevel(card, criticals) {
	case 1:
		return scoreCriticalTop
	case 2:
		return scoreCriticalMid
	case 3:
		return scoreCriticalLow
	}
	if card.Rank == trumpRank && card.Suit == trumpSuit {
		return scoreRechte
	}
	if card.Rank == trumpRank {
		return scoreTrumpRank + card.Value
	}
	if card.Suit == trumpSuit {
		return scoreTrumpSuit + card.Value
	}
	if leadSuit != NoLeadSuit && leadSuit != trumpSuit {
		if card.Suit == leadSuit {
			return scoreLeadSuit + card.Value
		}
		return 0 // off-suit against a non-trump lead cannot beat anything
	}
	return card.Value
}

// HasPlainTrump reports whether the hand contains at least one trump-suit
// card that is neither critical nor the trump rank. Players without one are
// exempt from following a trump lead.
func HasPlainTrump(hand []shared.Card, trumpRank int, trumpSuit shared.Suit, criticals bool) bool {
	for _, card := range hand {
		if card.Suit != trumpSuit || card.Rank == trumpRank {
			continue
		}
		if CriticalLevel(card, criticals) > 0 {
			continue
		}
		return true
	}
	return false
}

// leadSuitOf derives the lead-suit context from the first card of a trick.
// A critical lead imposes no suit.
func leadSuitOf(first shared.Card, criticals bool) shared.Suit {
	if CriticalLevel(first, criticals) > 0 {
		return NoLeadSuit
	}
	return first.Suit
}

// IsPlayValid reports whether the player at seat may legally play card given
// the trick so far. The conditions are evaluated in order; the first match
// decides:
//
//  1. an empty trick accepts any card
//  2. a critical card is always playable
//  3. a critical lead imposes no restriction
//  4. an off-trump lead imposes no restriction
//  5. under Blind rules, seats other than cutter and dealer are exempt
//  6. a hand without a plain trump-suit card is exempt
//  7. following with trump suit is legal
//  8. beating the led card is legal
func IsPlayValid(card shared.Card, hand []shared.Card, trick []shared.PlayedCard,
	trumpRank int, trumpSuit shared.Suit, criticals, blind bool, seat, cutter, dealer int) bool {

	if len(trick) == 0 {
		return true
	}
	if CriticalLevel(card, criticals) > 0 {
		return true
	}
	first := trick[0].Card
	if CriticalLevel(first, criticals) > 0 {
		return true
	}
	if first.Suit != trumpSuit {
		return true
	}
	if blind && seat != cutter && seat != dealer {
		return true
	}
	if !HasPlainTrump(hand, trumpRank, trumpSuit, criticals) {
		return true
	}
	if card.Suit == trumpSuit {
		return true
	}
	lead := leadSuitOf(first, criticals)
	return CardScore(card, trumpRank, trumpSuit, criticals, lead) >
		CardScore(first, trumpRank, trumpSuit, criticals, lead)
}

// LegalPlays filters the hand down to the cards the player may play now.
func LegalPlays(hand []shared.Card, trick []shared.PlayedCard,
	trumpRank int, trumpSuit shared.Suit, criticals, blind bool, seat, cutter, dealer int) []shared.Card {

	legal := make([]shared.Card, 0, len(hand))
	for _, card := range hand {
		if IsPlayValid(card, hand, trick, trumpRank, trumpSuit, criticals, blind, seat, cutter, dealer) {
			legal = append(legal, card)
		}
	}
	return legal
}

// WinningPlay returns the index and score of the strongest play so far,
// scored against the first card's lead-suit context. It works on partial
// tricks, which is how the AI judges an in-progress trick.
func WinningPlay(plays []shared.PlayedCard, trumpRank int, trumpSuit shared.Suit, criticals bool) (int, int) {
	if len(plays) == 0 {
		return -1, 0
	}
	lead := leadSuitOf(plays[0].Card, criticals)
	bestIdx := 0
	bestScore := CardScore(plays[0].Card, trumpRank, trumpSuit, criticals, lead)
	for i := 1; i < len(plays); i++ {
		score := CardScore(plays[i].Card, trumpRank, trumpSuit, criticals, lead)
		if score > bestScore {
			bestIdx, bestScore = i, score
		}
	}
	return bestIdx, bestScore
}

// TrickWinner returns the seat that wins a completed trick.
func TrickWinner(plays []shared.PlayedCard, trumpRank int, trumpSuit shared.Suit, criticals bool) int {
	idx, _ := WinningPlay(plays, trumpRank, trumpSuit, criticals)
	if idx < 0 {
		return -1
	}
	return plays[idx].Seat
}
