// Command watten plays an interactive terminal match: one human seat
// against three AI seats, all moves resolved through the rules engine.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"watten-game/internal/ai"
	"watten-game/internal/config"
	"watten-game/internal/game"
	"watten-game/internal/rules"
	"watten-game/internal/shared"

	"go.uber.org/zap"
)

var aiNames = [4]string{"Alois", "Burgl", "Christl", "Durl"}

func main() {
	cfg, err := config.Load("config.json")
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	var players [game.NumPlayers]*shared.Player
	for seat := 0; seat < game.NumPlayers; seat++ {
		if seat == cfg.HumanSeat {
			players[seat] = shared.NewPlayer(seat, "You", true)
		} else {
			players[seat] = shared.NewPlayer(seat, aiNames[seat], false)
		}
	}

	sink := func(ev game.Event) {
		if line := renderEvent(ev); line != "" {
			fmt.Println(line)
		}
	}

	opts := game.Options{
		UseCriticals: cfg.UseCriticals,
		UseSchleck:   cfg.UseSchleck,
		UseBlind:     cfg.UseBlind,
	}
	match := game.NewMatch(players, opts, sink, logger)
	match.Seed = cfg.Seed
	if err := match.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "start: %v\n", err)
		os.Exit(1)
	}

	runner := &runner{
		match:  match,
		policy: ai.NewPolicy(logger),
		input:  bufio.NewScanner(os.Stdin),
		human:  cfg.HumanSeat,
		delay:  time.Duration(cfg.AIDelayMS) * time.Millisecond,
	}
	runner.loop()
}

// runner drives the match loop: it dispatches each phase to either the
// human prompt or the AI policy after the configured delay. The engine
// itself never schedules AI turns.
type runner struct {
	match  *game.Match
	policy *ai.Policy
	input  *bufio.Scanner
	human  int
	delay  time.Duration
}

func (r *runner) loop() {
	for !r.match.IsMatchOver() {
		switch r.match.CurrentPhase() {
		case game.PhaseCutting:
			r.doCut()
		case game.PhaseSelectingRank:
			r.doRank()
		case game.PhaseSelectingSuit:
			r.doSuit()
		case game.PhasePlaying:
			r.doPlay()
		default:
			return
		}
	}
}

func (r *runner) doCut() {
	seat := r.match.CutterSeat()
	if seat == r.human {
		r.prompt("Press enter to cut the deck.")
	} else {
		time.Sleep(r.delay)
	}
	if err := r.match.PerformCut(); err != nil {
		fmt.Println(err)
	}
}

func (r *runner) doRank() {
	seat := r.match.CutterSeat()
	if seat != r.human {
		time.Sleep(r.delay)
		rank := r.policy.ChooseRank(r.match.HandOf(seat))
		if err := r.match.SelectTrumpRank(rank); err != nil {
			fmt.Println(err)
		}
		return
	}
	fmt.Println(renderTable(r.match, r.human, nil))
	for {
		answer := r.prompt("Pick the trump rank (7-13, or 1 for Ace): ")
		rank, err := strconv.Atoi(answer)
		if err != nil {
			fmt.Println("enter a number")
			continue
		}
		if err := r.match.SelectTrumpRank(rank); err != nil {
			fmt.Println(err)
			continue
		}
		return
	}
}

func (r *runner) doSuit() {
	seat := r.match.DealerSeat()
	if seat != r.human {
		time.Sleep(r.delay)
		suit := r.policy.ChooseSuit(r.match.HandOf(seat))
		if err := r.match.SelectTrumpSuit(suit); err != nil {
			fmt.Println(err)
		}
		return
	}
	fmt.Println(renderTable(r.match, r.human, nil))
	for {
		answer := r.prompt("Pick the trump suit (clubs/diamonds/hearts/spades): ")
		suit, ok := parseSuit(answer)
		if !ok {
			fmt.Println("unknown suit")
			continue
		}
		if err := r.match.SelectTrumpSuit(suit); err != nil {
			fmt.Println(err)
			continue
		}
		return
	}
}

func (r *runner) doPlay() {
	seat := r.match.CurrentSeat()
	hand := r.match.HandOf(seat)
	legal := rules.LegalPlays(hand, r.match.TrickSoFar(),
		r.match.TrumpRank(), r.match.TrumpSuit(),
		r.match.Options.UseCriticals, r.match.Options.UseBlind,
		seat, r.match.CutterSeat(), r.match.DealerSeat())

	if seat != r.human {
		time.Sleep(r.delay)
		card, err := r.policy.ChooseCard(hand, r.match.TrickSoFar(),
			r.match.TrumpRank(), r.match.TrumpSuit(),
			r.match.Options.UseCriticals, r.match.Options.UseBlind,
			seat, r.match.CutterSeat(), r.match.DealerSeat())
		if err != nil {
			fmt.Println(err)
			return
		}
		if err := r.match.PlayCard(seat, card); err != nil {
			fmt.Println(err)
		}
		return
	}

	fmt.Println(renderTable(r.match, r.human, legal))
	for {
		answer := r.prompt("Play which card? ")
		idx, err := strconv.Atoi(answer)
		if err != nil || idx < 0 || idx >= len(hand) {
			fmt.Println("enter a card index from your hand")
			continue
		}
		if err := r.match.PlayCard(seat, hand[idx]); err != nil {
			fmt.Println(err)
			continue
		}
		return
	}
}

func (r *runner) prompt(msg string) string {
	fmt.Print(msg)
	if !r.input.Scan() {
		os.Exit(0)
	}
	return strings.TrimSpace(r.input.Text())
}

func parseSuit(s string) (shared.Suit, bool) {
	switch strings.ToLower(s) {
	case "clubs", "c":
		return shared.Clubs, true
	case "diamonds", "d":
		return shared.Diamonds, true
	case "hearts", "h":
		return shared.Hearts, true
	case "spades", "s":
		return shared.Spades, true
	}
	return "", false
}
