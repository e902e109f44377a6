package game

import (
	"errors"
	"testing"

	"watten-game/internal/shared"

	"go.uber.org/zap"
)

func testPlayers() [NumPlayers]*shared.Player {
	var players [NumPlayers]*shared.Player
	for seat := 0; seat < NumPlayers; seat++ {
		players[seat] = shared.NewPlayer(seat, "", false)
	}
	return players
}

func card(suit shared.Suit, rank int) shared.Card {
	return shared.NewCard(suit, rank)
}

// newRiggedHand builds a hand directly from an explicit deck order,
// bypassing the shuffle, so cut and deal outcomes are scripted.
func newRiggedHand(t *testing.T, dealer int, deckCards []shared.Card, opts Options) *Hand {
	t.Helper()
	h := &Hand{
		ID:           "test-hand",
		Players:      testPlayers(),
		Deck:         &shared.Deck{Cards: append([]shared.Card(nil), deckCards...)},
		Dealer:       dealer,
		CurrentTrick: shared.NewTrick(),
		Turn:         forehand(dealer),
		WinnerTeam:   -1,
		opts:         opts,
		phases:       phaseSequence(opts),
		log:          zap.NewNop(),
	}
	h.phase = h.phases[0]
	if h.phase != PhaseCutting {
		if err := h.deal(); err != nil {
			t.Fatalf("deal: %v", err)
		}
	}
	return h
}

func fullDeckWithTop(top shared.Card) []shared.Card {
	cards := []shared.Card{top}
	for _, suit := range shared.Suits {
		for _, rank := range shared.Ranks {
			c := shared.NewCard(suit, rank)
			if c.Same(top) {
				continue
			}
			cards = append(cards, c)
		}
	}
	return cards
}

// setPlaying shortcuts a hand into the playing phase with scripted hands.
func setPlaying(h *Hand, trumpRank int, trumpSuit shared.Suit, hands [NumPlayers][]shared.Card, turn int) {
	h.TrumpRank = trumpRank
	h.TrumpSuit = trumpSuit
	for seat, cards := range hands {
		h.Players[seat].Hand = append([]shared.Card(nil), cards...)
	}
	h.phase = PhasePlaying
	h.Turn = turn
}

func TestPhaseSequence(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		expected []Phase
	}{
		{
			name:     "criticals and schleck enable the cut",
			opts:     Options{UseCriticals: true, UseSchleck: true},
			expected: []Phase{PhaseCutting, PhaseSelectingRank, PhaseSelectingSuit, PhasePlaying},
		},
		{
			name:     "no schleck skips the cut",
			opts:     Options{UseCriticals: true},
			expected: []Phase{PhaseSelectingRank, PhaseSelectingSuit, PhasePlaying},
		},
		{
			name:     "no criticals skips the cut",
			opts:     Options{UseSchleck: true},
			expected: []Phase{PhaseSelectingRank, PhaseSelectingSuit, PhasePlaying},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := phaseSequence(tt.opts)
			if len(got) != len(tt.expected) {
				t.Fatalf("got %v, want %v", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Fatalf("got %v, want %v", got, tt.expected)
				}
			}
		})
	}
}

func TestNewHandDealsWithoutCutPhase(t *testing.T) {
	deck := shared.NewSeededDeck(1)
	h, err := NewHand(testPlayers(), 0, deck, Options{}, nil, nil)
	if err != nil {
		t.Fatalf("NewHand: %v", err)
	}
	if h.Phase() != PhaseSelectingRank {
		t.Fatalf("phase = %s, want %s", h.Phase(), PhaseSelectingRank)
	}
	for seat, p := range h.Players {
		if len(p.Hand) != CardsPerPlayer {
			t.Errorf("seat %d holds %d cards, want %d", seat, len(p.Hand), CardsPerPlayer)
		}
	}
	if deck.Remaining() != shared.DeckSize-NumPlayers*CardsPerPlayer {
		t.Errorf("deck has %d cards, want %d", deck.Remaining(), shared.DeckSize-NumPlayers*CardsPerPlayer)
	}
}

func TestPerformCutClaimsCriticalCard(t *testing.T) {
	opts := Options{UseCriticals: true, UseSchleck: true}
	deck := fullDeckWithTop(card(shared.Hearts, 13))
	h := newRiggedHand(t, 0, deck, opts)

	if h.Phase() != PhaseCutting {
		t.Fatalf("phase = %s, want %s", h.Phase(), PhaseCutting)
	}
	if err := h.PerformCut(); err != nil {
		t.Fatalf("PerformCut: %v", err)
	}
	if h.CutCard == nil || !h.CutCard.Same(card(shared.Hearts, 13)) {
		t.Fatalf("cut card not claimed: %v", h.CutCard)
	}

	cutter := h.Cutter()
	for seat, p := range h.Players {
		if len(p.Hand) != CardsPerPlayer {
			t.Errorf("seat %d holds %d cards, want %d", seat, len(p.Hand), CardsPerPlayer)
		}
	}
	if _, ok := h.Players[cutter].FindCard(shared.Hearts, 13); !ok {
		t.Errorf("cutter does not hold the claimed cut card")
	}
	if h.Phase() != PhaseSelectingRank {
		t.Errorf("phase = %s, want %s", h.Phase(), PhaseSelectingRank)
	}
	// The cut is one-shot.
	if err := h.PerformCut(); !errors.Is(err, ErrInvalidPhase) {
		t.Errorf("second cut: got %v, want ErrInvalidPhase", err)
	}
}

func TestPerformCutReturnsPlainCard(t *testing.T) {
	opts := Options{UseCriticals: true, UseSchleck: true}
	deck := fullDeckWithTop(card(shared.Diamonds, 8))
	h := newRiggedHand(t, 0, deck, opts)

	if err := h.PerformCut(); err != nil {
		t.Fatalf("PerformCut: %v", err)
	}
	if h.CutCard != nil {
		t.Fatalf("plain cut card was claimed: %v", h.CutCard)
	}
	for seat, p := range h.Players {
		if len(p.Hand) != CardsPerPlayer {
			t.Errorf("seat %d holds %d cards, want %d", seat, len(p.Hand), CardsPerPlayer)
		}
	}
	// Revealed card went back under the deck and was not dealt.
	if h.Deck.Remaining() != shared.DeckSize-NumPlayers*CardsPerPlayer {
		t.Errorf("deck has %d cards, want %d", h.Deck.Remaining(), shared.DeckSize-NumPlayers*CardsPerPlayer)
	}
}

func TestTrumpSelectionFlow(t *testing.T) {
	deck := shared.NewSeededDeck(2)
	h, err := NewHand(testPlayers(), 3, deck, Options{}, nil, nil)
	if err != nil {
		t.Fatalf("NewHand: %v", err)
	}

	if err := h.SelectTrumpSuit(shared.Hearts); !errors.Is(err, ErrInvalidPhase) {
		t.Fatalf("suit before rank: got %v, want ErrInvalidPhase", err)
	}
	if err := h.SelectTrumpRank(42); !errors.Is(err, ErrInvalidRank) {
		t.Fatalf("rank 42: got %v, want ErrInvalidRank", err)
	}
	if err := h.SelectTrumpRank(9); err != nil {
		t.Fatalf("SelectTrumpRank: %v", err)
	}
	if err := h.SelectTrumpSuit("Cups"); !errors.Is(err, ErrInvalidSuit) {
		t.Fatalf("bad suit: got %v, want ErrInvalidSuit", err)
	}
	if err := h.SelectTrumpSuit(shared.Spades); err != nil {
		t.Fatalf("SelectTrumpSuit: %v", err)
	}

	if h.Phase() != PhasePlaying {
		t.Errorf("phase = %s, want %s", h.Phase(), PhasePlaying)
	}
	// Play starts left of the dealer (seat 0 for dealer 3).
	if h.Turn != 0 {
		t.Errorf("first turn = seat %d, want 0", h.Turn)
	}
}

// scriptedHands gives seat 0 all top hearts; no other seat holds hearts,
// so with hearts as trump seat 0 wins every trick it leads.
func scriptedHands() [NumPlayers][]shared.Card {
	return [NumPlayers][]shared.Card{
		{card(shared.Hearts, 1), card(shared.Hearts, 13), card(shared.Hearts, 12), card(shared.Hearts, 11), card(shared.Hearts, 10)},
		{card(shared.Clubs, 7), card(shared.Clubs, 8), card(shared.Clubs, 9), card(shared.Clubs, 10), card(shared.Clubs, 11)},
		{card(shared.Diamonds, 7), card(shared.Diamonds, 8), card(shared.Diamonds, 9), card(shared.Diamonds, 10), card(shared.Diamonds, 11)},
		{card(shared.Spades, 7), card(shared.Spades, 8), card(shared.Spades, 9), card(shared.Spades, 10), card(shared.Spades, 11)},
	}
}

func TestTrickResolutionWinnerLeads(t *testing.T) {
	h := newRiggedHand(t, 3, fullDeckWithTop(card(shared.Clubs, 12)), Options{})
	setPlaying(h, 13, shared.Hearts, scriptedHands(), 0)

	plays := []struct {
		seat int
		card shared.Card
	}{
		{0, card(shared.Hearts, 1)},
		{1, card(shared.Clubs, 7)},
		{2, card(shared.Diamonds, 7)},
		{3, card(shared.Spades, 8)},
	}
	for _, p := range plays {
		if err := h.PlayCard(p.seat, p.card); err != nil {
			t.Fatalf("seat %d playing %s: %v", p.seat, p.card, err)
		}
	}

	if h.TricksWon != [2]int{1, 0} {
		t.Errorf("tricks won = %v, want [1 0]", h.TricksWon)
	}
	if h.Turn != 0 {
		t.Errorf("next leader = seat %d, want trick winner 0", h.Turn)
	}
	if h.CurrentTrick.Len() != 0 {
		t.Errorf("trick not cleared: %d cards", h.CurrentTrick.Len())
	}
	if h.Phase() != PhasePlaying {
		t.Errorf("phase = %s, want %s", h.Phase(), PhasePlaying)
	}
}

func TestHandEndsAtThreeTricks(t *testing.T) {
	h := newRiggedHand(t, 3, fullDeckWithTop(card(shared.Clubs, 12)), Options{})
	setPlaying(h, 13, shared.Hearts, scriptedHands(), 0)

	var events []EventType
	h.sink = func(ev Event) { events = append(events, ev.Type) }

	hearts := []int{1, 13, 12}
	for trick := 0; trick < 3; trick++ {
		if err := h.PlayCard(0, card(shared.Hearts, hearts[trick])); err != nil {
			t.Fatalf("lead %d: %v", trick, err)
		}
		for _, seat := range []int{1, 2, 3} {
			c := h.Players[seat].Hand[0]
			if err := h.PlayCard(seat, c); err != nil {
				t.Fatalf("seat %d trick %d: %v", seat, trick, err)
			}
		}
	}

	if !h.IsOver() {
		t.Fatal("hand not over after three tricks for one team")
	}
	if h.WinnerTeam != 0 {
		t.Errorf("winner team = %d, want 0", h.WinnerTeam)
	}
	if h.TricksWon != [2]int{3, 0} {
		t.Errorf("tricks won = %v, want [3 0]", h.TricksWon)
	}
	// No fourth trick: the remaining cards stay in hand.
	for seat, p := range h.Players {
		if len(p.Hand) != 2 {
			t.Errorf("seat %d holds %d cards, want 2", seat, len(p.Hand))
		}
	}
	if err := h.PlayCard(0, h.Players[0].Hand[0]); !errors.Is(err, ErrInvalidPhase) {
		t.Errorf("play after hand over: got %v, want ErrInvalidPhase", err)
	}
	last := events[len(events)-1]
	if last != EventHandResolved {
		t.Errorf("last event = %s, want %s", last, EventHandResolved)
	}
}

func TestIllegalPlayLeavesStateUntouched(t *testing.T) {
	h := newRiggedHand(t, 3, fullDeckWithTop(card(shared.Clubs, 12)), Options{})
	hands := [NumPlayers][]shared.Card{
		{card(shared.Hearts, 10)},
		{card(shared.Hearts, 7), card(shared.Clubs, 8)},
		{card(shared.Diamonds, 7)},
		{card(shared.Spades, 8)},
	}
	setPlaying(h, 13, shared.Hearts, hands, 0)

	if err := h.PlayCard(0, card(shared.Hearts, 10)); err != nil {
		t.Fatalf("lead: %v", err)
	}
	// Seat 1 holds a plain trump and must not dump the club.
	err := h.PlayCard(1, card(shared.Clubs, 8))
	if !errors.Is(err, ErrIllegalPlay) {
		t.Fatalf("got %v, want ErrIllegalPlay", err)
	}
	if len(h.Players[1].Hand) != 2 {
		t.Errorf("rejected play mutated the hand: %d cards", len(h.Players[1].Hand))
	}
	if h.CurrentTrick.Len() != 1 {
		t.Errorf("rejected play reached the trick: %d cards", h.CurrentTrick.Len())
	}
	if h.Turn != 1 {
		t.Errorf("rejected play advanced the turn to %d", h.Turn)
	}

	// The same seat retries with a legal card.
	if err := h.PlayCard(1, card(shared.Hearts, 7)); err != nil {
		t.Fatalf("legal retry: %v", err)
	}
}

func TestOutOfTurnAndUnheldCard(t *testing.T) {
	h := newRiggedHand(t, 3, fullDeckWithTop(card(shared.Clubs, 12)), Options{})
	setPlaying(h, 13, shared.Hearts, scriptedHands(), 0)

	if err := h.PlayCard(2, card(shared.Diamonds, 7)); !errors.Is(err, ErrNotYourTurn) {
		t.Errorf("out of turn: got %v, want ErrNotYourTurn", err)
	}
	if err := h.PlayCard(0, card(shared.Clubs, 7)); !errors.Is(err, ErrCardNotInHand) {
		t.Errorf("unheld card: got %v, want ErrCardNotInHand", err)
	}
}

// Across cut, deal and play, every card is owned by exactly one place:
// hands, the trick, the deck or the claimed cut card.
func TestCardConservation(t *testing.T) {
	opts := Options{UseCriticals: true, UseSchleck: true}
	h := newRiggedHand(t, 0, fullDeckWithTop(card(shared.Hearts, 13)), opts)

	count := func() int {
		total := h.Deck.Remaining() + h.CurrentTrick.Len()
		for _, p := range h.Players {
			total += len(p.Hand)
		}
		return total
	}

	if err := h.PerformCut(); err != nil {
		t.Fatalf("cut: %v", err)
	}
	if got := count(); got != shared.DeckSize {
		t.Fatalf("after cut+deal: %d cards accounted for, want %d", got, shared.DeckSize)
	}
	if err := h.SelectTrumpRank(10); err != nil {
		t.Fatalf("rank: %v", err)
	}
	if err := h.SelectTrumpSuit(shared.Diamonds); err != nil {
		t.Fatalf("suit: %v", err)
	}
	for i := 0; i < 2; i++ {
		c := h.Players[h.Turn].Hand[0]
		if err := h.PlayCard(h.Turn, c); err != nil {
			t.Fatalf("play %d: %v", i, err)
		}
		if got := count(); got != shared.DeckSize {
			t.Fatalf("after play %d: %d cards accounted for, want %d", i, got, shared.DeckSize)
		}
	}
}
