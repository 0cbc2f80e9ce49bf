package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/podrida/internal/game"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
)

// printStandings writes the ranked scores and, for a finished game, the winner
func printStandings(w io.Writer, g *game.Game) {
	for i, s := range game.RankStandings(g.Standings()) {
		fmt.Fprintf(w, "%d. %-12s %4d\n", i+1, s.Name, s.Score)
	}
	if !g.IsTerminal() {
		return
	}

	winner := g.Winner()
	if leaders := g.Leaders(); len(leaders) > 1 {
		names := make([]string, len(leaders))
		for i, p := range leaders {
			names[i] = p.Name
		}
		fmt.Fprintf(w, "Tie between %s; %s wins on seating order\n", strings.Join(names, ", "), winner.Name)
	}
	fmt.Fprintln(w, successStyle.Render(fmt.Sprintf("%s wins with %d points", winner.Name, winner.Score)))
}
