package main

import (
	"fmt"
	"os"

	"github.com/lox/podrida/internal/game"
)

type ScheduleCmd struct {
	MaxCards int    `short:"m" default:"7" help:"Cards dealt in the peak round"`
	Players  int    `short:"p" default:"4" help:"Number of players"`
	Variant  string `default:"classic" help:"Rule variant (classic|forced-max)"`
}

func (c *ScheduleCmd) Run(globals *Globals) error {
	if _, err := loadConfig(globals); err != nil {
		return err
	}
	variant, err := game.ParseVariant(c.Variant)
	if err != nil {
		return err
	}
	schedule, err := game.GenerateSchedule(c.MaxCards, c.Players, variant)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, titleStyle.Render(fmt.Sprintf("%d players, up to %d cards, %s", c.Players, c.MaxCards, variant)))
	for i, cards := range schedule.Rounds() {
		marker := ""
		if cards == schedule.Peak() {
			marker = " *"
		}
		fmt.Fprintf(os.Stdout, "Round %2d: %2d %s%s\n", i+1, cards, plural(cards, "card"), marker)
	}
	fmt.Fprintf(os.Stdout, "%d rounds, %d tricks\n", schedule.Len(), schedule.TotalTricks())
	return nil
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
