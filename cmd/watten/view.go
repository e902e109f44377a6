package main

import (
	"fmt"
	"strings"

	"watten-game/internal/game"
	"watten-game/internal/shared"

	"github.com/charmbracelet/lipgloss"
)

var (
	clrSubtle = lipgloss.Color("#8b949e")
	clrGold   = lipgloss.Color("#e3b341")
	clrGreen  = lipgloss.Color("#3fb950")
	clrRed    = lipgloss.Color("#f85149")
	clrBorder = lipgloss.Color("#30363d")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(clrGold)
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(clrBorder).
			Padding(0, 1)
	subtleStyle = lipgloss.NewStyle().Foreground(clrSubtle)
	trumpStyle  = lipgloss.NewStyle().Bold(true).Foreground(clrGreen)
	redStyle    = lipgloss.NewStyle().Foreground(clrRed)
	legalStyle  = lipgloss.NewStyle().Foreground(clrGreen)
)

var suitGlyphs = map[shared.Suit]string{
	shared.Clubs:    "♣",
	shared.Diamonds: "♦",
	shared.Hearts:   "♥",
	shared.Spades:   "♠",
}

func cardLabel(c shared.Card) string {
	label := fmt.Sprintf("%s%s", shared.RankName(c.Rank), suitGlyphs[c.Suit])
	if c.Suit == shared.Hearts || c.Suit == shared.Diamonds {
		return redStyle.Render(label)
	}
	return label
}

// renderTable draws the score header, trump, current trick and the human hand.
func renderTable(m *game.Match, humanSeat int, legal []shared.Card) string {
	var b strings.Builder

	scores := m.Scores()
	tricks := m.TricksWon()
	header := fmt.Sprintf("Team A (seats 0&2)  %d pts / %d tricks    Team B (seats 1&3)  %d pts / %d tricks",
		scores[0], tricks[0], scores[1], tricks[1])
	b.WriteString(titleStyle.Render("Watten") + "\n")
	b.WriteString(subtleStyle.Render(header) + "\n")

	trump := "trump: not selected"
	if m.TrumpRank() != 0 {
		trump = fmt.Sprintf("trump rank: %s", shared.RankName(m.TrumpRank()))
		if m.TrumpSuit() != "" {
			trump += fmt.Sprintf("   trump suit: %s %s", m.TrumpSuit(), suitGlyphs[m.TrumpSuit()])
		}
	}
	b.WriteString(trumpStyle.Render(trump) + "\n")
	b.WriteString(subtleStyle.Render(fmt.Sprintf("dealer: seat %d", m.DealerSeat())) + "\n")

	if plays := m.TrickSoFar(); len(plays) > 0 {
		parts := make([]string, 0, len(plays))
		for _, p := range plays {
			parts = append(parts, fmt.Sprintf("seat %d: %s", p.Seat, cardLabel(p.Card)))
		}
		b.WriteString(panelStyle.Render("Trick  "+strings.Join(parts, "   ")) + "\n")
	}

	hand := m.HandOf(humanSeat)
	lines := make([]string, 0, len(hand))
	for i, c := range hand {
		line := fmt.Sprintf("[%d] %s", i, cardLabel(c))
		if isLegal(c, legal) {
			line = legalStyle.Render(line)
		} else {
			line = subtleStyle.Render(line)
		}
		lines = append(lines, line)
	}
	b.WriteString(panelStyle.Render("Your hand\n" + strings.Join(lines, "\n")))
	return b.String()
}

func isLegal(c shared.Card, legal []shared.Card) bool {
	for _, l := range legal {
		if c.Same(l) {
			return true
		}
	}
	return false
}

// renderEvent turns an engine notification into one display line.
func renderEvent(ev game.Event) string {
	switch p := ev.Payload.(type) {
	case game.CutRevealedPayload:
		if p.Claimed {
			return fmt.Sprintf("Seat %d cut %s and keeps it (critical level %d).", p.Seat, p.Card, p.CriticalLevel)
		}
		return fmt.Sprintf("Seat %d cut %s; it returns to the deck.", p.Seat, p.Card)
	case game.TrumpRankSelectedPayload:
		return fmt.Sprintf("Seat %d picked trump rank %s.", p.Seat, shared.RankName(p.Rank))
	case game.TrumpSuitSelectedPayload:
		return fmt.Sprintf("Seat %d picked trump suit %s.", p.Seat, p.Suit)
	case game.CardPlayedPayload:
		return fmt.Sprintf("Seat %d played %s.", p.Seat, p.Card)
	case game.TrickResolvedPayload:
		return trumpStyle.Render(fmt.Sprintf("Trick to seat %d (team %s).", p.WinnerSeat, teamName(p.WinnerTeam)))
	case game.HandResolvedPayload:
		return trumpStyle.Render(fmt.Sprintf("Hand won by team %s (%d-%d tricks).", teamName(p.WinnerTeam), p.TricksWon[p.WinnerTeam], p.TricksWon[1-p.WinnerTeam]))
	case game.MatchResolvedPayload:
		return titleStyle.Render(fmt.Sprintf("Match over! Team %s wins %d-%d.", teamName(p.WinnerTeam), p.FinalScores[p.WinnerTeam], p.FinalScores[1-p.WinnerTeam]))
	default:
		return ""
	}
}

func teamName(team int) string {
	if team == 0 {
		return "A"
	}
	return "B"
}
