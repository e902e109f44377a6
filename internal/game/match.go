package game

import (
	"fmt"

	"watten-game/internal/shared"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// WinningScore ends the match for the first team reaching it.
	WinningScore = 11
	// PointsPerHand is awarded to the team that wins a hand.
	PointsPerHand = 2
)

// Match orchestrates a sequence of hands. It owns the cumulative team
// scores and the dealer seat, creates one Hand at a time and detects
// game over. All mutation goes through the command methods.
type Match struct {
	ID          string
	Players     [NumPlayers]*shared.Player
	Teams       [shared.NumTeams]*shared.Team
	Hand        *Hand
	Dealer      int
	TargetScore int
	Options     Options
	WinningTeam int // -1 while the match is running

	// Seed makes every hand's deck reproducible when nonzero. Set it
	// before Start.
	Seed       uint64
	handsDealt int

	sink EventSink
	log  *zap.Logger
}

// NewMatch creates a match for four seated players with the given rule
// options. A nil logger disables logging; a nil sink disables events.
func NewMatch(players [NumPlayers]*shared.Player, opts Options, sink EventSink, logger *zap.Logger) *Match {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Match{
		ID: uuid.NewString(),
		Teams: [shared.NumTeams]*shared.Team{
			shared.NewTeam(0, 2),
			shared.NewTeam(1, 3),
		},
		Players:     players,
		Dealer:      0,
		TargetScore: WinningScore,
		Options:     opts,
		WinningTeam: -1,
		sink:        sink,
		log:         logger,
	}
}

// Start deals the first hand.
func (m *Match) Start() error {
	m.log.Info("match started",
		zap.String("match_id", m.ID),
		zap.Bool("criticals", m.Options.UseCriticals),
		zap.Bool("schleck", m.Options.UseSchleck),
		zap.Bool("blind", m.Options.UseBlind))
	return m.startHand()
}

func (m *Match) startHand() error {
	deck := m.newDeck()
	hand, err := NewHand(m.Players, m.Dealer, deck, m.Options, m.sink, m.log)
	if err != nil {
		return err
	}
	m.Hand = hand
	m.handsDealt++
	return nil
}

func (m *Match) newDeck() *shared.Deck {
	if m.Seed != 0 {
		return shared.NewSeededDeck(m.Seed + uint64(m.handsDealt))
	}
	return shared.NewDeck()
}

// --- Commands ---

// checkActive rejects commands issued after game over or before Start.
func (m *Match) checkActive() error {
	if m.IsMatchOver() {
		return ErrMatchOver
	}
	if m.Hand == nil {
		return fmt.Errorf("%w: match not started", ErrInvalidPhase)
	}
	return nil
}

// PerformCut forwards the cut command to the active hand.
func (m *Match) PerformCut() error {
	if err := m.checkActive(); err != nil {
		return err
	}
	return m.Hand.PerformCut()
}

// SelectTrumpRank forwards the rank selection to the active hand.
func (m *Match) SelectTrumpRank(rank int) error {
	if err := m.checkActive(); err != nil {
		return err
	}
	return m.Hand.SelectTrumpRank(rank)
}

// SelectTrumpSuit forwards the suit selection to the active hand.
func (m *Match) SelectTrumpSuit(suit shared.Suit) error {
	if err := m.checkActive(); err != nil {
		return err
	}
	return m.Hand.SelectTrumpSuit(suit)
}

// PlayCard forwards a play to the active hand. When the play completes the
// hand, the winning team scores and either the match ends or the dealer
// rotates and a fresh hand is dealt.
func (m *Match) PlayCard(seat int, card shared.Card) error {
	if err := m.checkActive(); err != nil {
		return err
	}
	if err := m.Hand.PlayCard(seat, card); err != nil {
		return err
	}
	if m.Hand.IsOver() {
		return m.onHandComplete(m.Hand.WinnerTeam)
	}
	return nil
}

// onHandComplete awards the hand and decides whether another hand starts.
func (m *Match) onHandComplete(winningTeam int) error {
	m.Teams[winningTeam].AddScore(PointsPerHand)
	m.log.Info("hand scored",
		zap.String("match_id", m.ID),
		zap.Int("team", winningTeam),
		zap.Int("score", m.Teams[winningTeam].Score))

	if m.Teams[winningTeam].Score >= m.TargetScore {
		m.WinningTeam = winningTeam
		m.log.Info("match resolved",
			zap.String("match_id", m.ID),
			zap.Int("winner_team", winningTeam))
		if m.sink != nil {
			m.sink(Event{Type: EventMatchResolved, Payload: MatchResolvedPayload{
				WinnerTeam:  winningTeam,
				FinalScores: m.Scores(),
			}})
		}
		return nil
	}

	m.Dealer = (m.Dealer + 1) % NumPlayers
	return m.startHand()
}

// --- Queries ---

// CurrentPhase returns the phase of the active hand, or hand_complete once
// the match has ended.
func (m *Match) CurrentPhase() Phase {
	if m.IsMatchOver() || m.Hand == nil {
		return PhaseHandComplete
	}
	return m.Hand.Phase()
}

// HandOf returns the cards held by a seat.
func (m *Match) HandOf(seat int) []shared.Card {
	return m.Players[seat].Hand
}

// TrickSoFar returns the cards played in the in-progress trick.
func (m *Match) TrickSoFar() []shared.PlayedCard {
	if m.Hand == nil {
		return nil
	}
	return m.Hand.CurrentTrick.Cards
}

// TrumpRank returns the selected trump rank, 0 if not yet selected.
func (m *Match) TrumpRank() int {
	if m.Hand == nil {
		return 0
	}
	return m.Hand.TrumpRank
}

// TrumpSuit returns the selected trump suit, "" if not yet selected.
func (m *Match) TrumpSuit() shared.Suit {
	if m.Hand == nil {
		return ""
	}
	return m.Hand.TrumpSuit
}

// Scores returns the cumulative team scores.
func (m *Match) Scores() [shared.NumTeams]int {
	return [shared.NumTeams]int{m.Teams[0].Score, m.Teams[1].Score}
}

// TricksWon returns the per-team trick counts of the current hand.
func (m *Match) TricksWon() [shared.NumTeams]int {
	if m.Hand == nil {
		return [shared.NumTeams]int{}
	}
	return m.Hand.TricksWon
}

// DealerSeat returns the current dealer.
func (m *Match) DealerSeat() int {
	return m.Dealer
}

// CutterSeat returns the seat that cuts and selects the trump rank.
func (m *Match) CutterSeat() int {
	return forehand(m.Dealer)
}

// CurrentSeat returns the seat expected to act in the playing phase.
func (m *Match) CurrentSeat() int {
	if m.Hand == nil {
		return -1
	}
	return m.Hand.Turn
}

// IsHandOver reports whether the active hand has completed.
func (m *Match) IsHandOver() bool {
	return m.Hand != nil && m.Hand.IsOver()
}

// IsMatchOver reports whether a team has reached the target score.
func (m *Match) IsMatchOver() bool {
	return m.WinningTeam >= 0
}

// Winner returns the winning team index, or false while the match runs.
func (m *Match) Winner() (int, bool) {
	if m.WinningTeam < 0 {
		return 0, false
	}
	return m.WinningTeam, true
}
