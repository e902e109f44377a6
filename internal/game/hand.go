package game

import (
	"fmt"

	"watten-game/internal/rules"
	"watten-game/internal/shared"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Phase represents the lifecycle stage of a hand.
type Phase string

const (
	PhaseCutting       Phase = "cutting"
	PhaseSelectingRank Phase = "selecting_rank"
	PhaseSelectingSuit Phase = "selecting_suit"
	PhasePlaying       Phase = "playing"
	PhaseTrickComplete Phase = "trick_complete"
	PhaseHandComplete  Phase = "hand_complete"
)

// Options are the rule variants, fixed at match start.
type Options struct {
	UseCriticals bool `json:"use_criticals"` // critical-card tier
	UseSchleck   bool `json:"use_schleck"`   // pre-deal cut phase
	UseBlind     bool `json:"use_blind"`     // follow-suit exemption for non-knowing teammates
}

const (
	// NumPlayers is the fixed table size.
	NumPlayers = 4
	// CardsPerPlayer is the normal deal size.
	CardsPerPlayer = 5
	// TricksToWinHand ends the hand for the first team reaching it.
	TricksToWinHand = 3
)

// Hand orchestrates one hand: cut, trump selection, tricks, resolution.
// It owns all per-hand mutable state and is discarded once complete.
type Hand struct {
	ID           string
	Players      [NumPlayers]*shared.Player
	Deck         *shared.Deck
	Dealer       int
	TrumpRank    int         // 0 until selected
	TrumpSuit    shared.Suit // "" until selected
	CurrentTrick *shared.Trick
	TricksWon    [shared.NumTeams]int
	Turn         int
	CutCard      *shared.Card // critical cut card claimed by the cutter
	WinnerTeam   int          // -1 until the hand completes

	opts     Options
	phases   []Phase // pre-play phase sequence, computed once from opts
	phaseIdx int
	phase    Phase
	sink     EventSink
	log      *zap.Logger
}

// NewHand shuffles the deck, computes the phase sequence from the options
// and deals immediately unless a cut phase comes first.
func NewHand(players [NumPlayers]*shared.Player, dealer int, deck *shared.Deck,
	opts Options, sink EventSink, logger *zap.Logger) (*Hand, error) {

	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Hand{
		ID:           uuid.NewString(),
		Players:      players,
		Deck:         deck,
		Dealer:       dealer,
		CurrentTrick: shared.NewTrick(),
		Turn:         forehand(dealer),
		WinnerTeam:   -1,
		opts:         opts,
		phases:       phaseSequence(opts),
		sink:         sink,
		log:          logger,
	}
	h.phase = h.phases[0]

	deck.Shuffle()
	if h.phase != PhaseCutting {
		if err := h.deal(); err != nil {
			return nil, err
		}
	}
	h.log.Info("hand started",
		zap.String("hand_id", h.ID),
		zap.Int("dealer", dealer),
		zap.String("phase", string(h.phase)))
	return h, nil
}

// phaseSequence returns the ordered pre-play phases for the given options.
// The cut happens only when both the critical-card and Schleck rules are on.
func phaseSequence(opts Options) []Phase {
	if opts.UseCriticals && opts.UseSchleck {
		return []Phase{PhaseCutting, PhaseSelectingRank, PhaseSelectingSuit, PhasePlaying}
	}
	return []Phase{PhaseSelectingRank, PhaseSelectingSuit, PhasePlaying}
}

// forehand is the seat left of the dealer: it cuts, picks the trump rank
// and leads the first trick.
func forehand(dealer int) int {
	return (dealer + 1) % NumPlayers
}

// Phase returns the current phase.
func (h *Hand) Phase() Phase {
	return h.phase
}

// Cutter returns the seat that performs the cut (left of the dealer).
func (h *Hand) Cutter() int {
	return forehand(h.Dealer)
}

// RankSelector returns the seat that picks the trump rank.
func (h *Hand) RankSelector() int {
	return forehand(h.Dealer)
}

// IsOver reports whether the hand has completed.
func (h *Hand) IsOver() bool {
	return h.phase == PhaseHandComplete
}

func (h *Hand) advance() {
	h.phaseIdx++
	h.phase = h.phases[h.phaseIdx]
}

func (h *Hand) emit(event Event) {
	if h.sink != nil {
		h.sink(event)
	}
}

// PerformCut reveals the top card of the shuffled deck. A critical card is
// claimed by the cutter, who will be dealt one fewer card; anything else
// returns to the bottom of the deck. One-shot per hand.
func (h *Hand) PerformCut() error {
	if h.phase != PhaseCutting {
		return fmt.Errorf("%w: cut during %s", ErrInvalidPhase, h.phase)
	}
	card, err := h.Deck.Draw()
	if err != nil {
		return err
	}
	level := rules.CriticalLevel(card, h.opts.UseCriticals)
	claimed := level > 0
	if claimed {
		cut := card
		h.CutCard = &cut
		h.log.Info("cut revealed critical card",
			zap.String("hand_id", h.ID),
			zap.Stringer("card", card),
			zap.Int("level", level))
	} else {
		h.Deck.ReturnBottom(card)
	}
	h.emit(Event{Type: EventCutRevealed, Payload: CutRevealedPayload{
		Seat:          h.Cutter(),
		Card:          card,
		CriticalLevel: level,
		Claimed:       claimed,
	}})

	h.advance()
	return h.deal()
}

// deal gives five cards to each seat, four to a cutter holding a claimed
// cut card, then hands the cut card over.
func (h *Hand) deal() error {
	counts := make([]int, NumPlayers)
	for i := range counts {
		counts[i] = CardsPerPlayer
	}
	if h.CutCard != nil {
		counts[h.Cutter()] = CardsPerPlayer - 1
	}
	hands, err := h.Deck.DealCounts(counts)
	if err != nil {
		return err
	}
	for seat, cards := range hands {
		h.Players[seat].Hand = cards
	}
	if h.CutCard != nil {
		h.Players[h.Cutter()].AddCard(*h.CutCard)
	}
	return nil
}

// SelectTrumpRank sets the trump rank, chosen by the seat left of the dealer.
func (h *Hand) SelectTrumpRank(rank int) error {
	if h.phase != PhaseSelectingRank {
		return fmt.Errorf("%w: rank selection during %s", ErrInvalidPhase, h.phase)
	}
	if rank < 1 || rank > 13 {
		return fmt.Errorf("%w: %d", ErrInvalidRank, rank)
	}
	h.TrumpRank = rank
	h.log.Info("trump rank selected",
		zap.String("hand_id", h.ID),
		zap.Int("seat", h.RankSelector()),
		zap.String("rank", shared.RankName(rank)))
	h.emit(Event{Type: EventTrumpRankSelected, Payload: TrumpRankSelectedPayload{
		Seat: h.RankSelector(),
		Rank: rank,
	}})
	h.advance()
	return nil
}

// SelectTrumpSuit sets the trump suit, chosen by the dealer. Trump is fully
// defined afterwards and play begins at the seat left of the dealer.
func (h *Hand) SelectTrumpSuit(suit shared.Suit) error {
	if h.phase != PhaseSelectingSuit {
		return fmt.Errorf("%w: suit selection during %s", ErrInvalidPhase, h.phase)
	}
	valid := false
	for _, s := range shared.Suits {
		if s == suit {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("%w: %q", ErrInvalidSuit, suit)
	}
	h.TrumpSuit = suit
	h.log.Info("trump suit selected",
		zap.String("hand_id", h.ID),
		zap.Int("seat", h.Dealer),
		zap.String("suit", string(suit)))
	h.emit(Event{Type: EventTrumpSuitSelected, Payload: TrumpSuitSelectedPayload{
		Seat: h.Dealer,
		Suit: suit,
	}})
	h.advance()
	h.Turn = forehand(h.Dealer)
	return nil
}

// PlayCard validates and applies one play for the given seat. On the fourth
// card the trick resolves in the same call: the winner's team gains a trick,
// the winner leads the next trick, and the hand completes as soon as a team
// holds three tricks.
func (h *Hand) PlayCard(seat int, card shared.Card) error {
	if h.phase != PhasePlaying {
		return fmt.Errorf("%w: play during %s", ErrInvalidPhase, h.phase)
	}
	if seat != h.Turn {
		return fmt.Errorf("%w: seat %d played, seat %d expected", ErrNotYourTurn, seat, h.Turn)
	}
	player := h.Players[seat]
	held, ok := player.FindCard(card.Suit, card.Rank)
	if !ok {
		return fmt.Errorf("%w: %s", ErrCardNotInHand, card)
	}
	if !rules.IsPlayValid(held, player.Hand, h.CurrentTrick.Cards,
		h.TrumpRank, h.TrumpSuit, h.opts.UseCriticals, h.opts.UseBlind,
		seat, h.Cutter(), h.Dealer) {
		return fmt.Errorf("%w: %s", ErrIllegalPlay, held)
	}

	player.RemoveCard(held)
	h.CurrentTrick.AddCard(held, seat)
	h.log.Info("card played",
		zap.String("hand_id", h.ID),
		zap.Int("seat", seat),
		zap.Stringer("card", held))
	h.emit(Event{Type: EventCardPlayed, Payload: CardPlayedPayload{Seat: seat, Card: held}})

	if h.CurrentTrick.Len() == NumPlayers {
		h.resolveTrick()
	} else {
		h.Turn = (h.Turn + 1) % NumPlayers
	}
	return nil
}

// resolveTrick scores the completed trick, awards it and either returns to
// playing with the winner leading or completes the hand.
func (h *Hand) resolveTrick() {
	winner := rules.TrickWinner(h.CurrentTrick.Cards,
		h.TrumpRank, h.TrumpSuit, h.opts.UseCriticals)
	h.CurrentTrick.WinnerSeat = winner
	team := shared.TeamForSeat(winner)
	h.TricksWon[team]++
	h.phase = PhaseTrickComplete

	h.log.Info("trick resolved",
		zap.String("hand_id", h.ID),
		zap.Int("winner_seat", winner),
		zap.Int("winner_team", team))
	h.emit(Event{Type: EventTrickResolved, Payload: TrickResolvedPayload{
		WinnerSeat: winner,
		WinnerTeam: team,
		Cards:      append([]shared.PlayedCard(nil), h.CurrentTrick.Cards...),
		TricksWon:  h.TricksWon,
	}})

	if h.TricksWon[team] >= TricksToWinHand {
		h.WinnerTeam = team
		h.phase = PhaseHandComplete
		h.log.Info("hand resolved",
			zap.String("hand_id", h.ID),
			zap.Int("winner_team", team))
		h.emit(Event{Type: EventHandResolved, Payload: HandResolvedPayload{
			WinnerTeam: team,
			TricksWon:  h.TricksWon,
		}})
		return
	}

	h.CurrentTrick = shared.NewTrick()
	h.Turn = winner
	h.phase = PhasePlaying
}
