package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the weft ASCII banner.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Teal-to-blue gradient
	lines := []struct {
		text  string
		color string
	}{
		{`                 __ _   `, "#5eead4"},
		{` __      _____ / _| |_ `, "#2dd4bf"},
		{` \ \ /\ / / _ \ |_| __|`, "#22d3ee"},
		{`  \ V  V /  __/  _| |_ `, "#38bdf8"},
		{`   \_/\_/ \___|_|  \__|`, "#60a5fa"},
	}

	fmt.Println()
	for _, l := range lines {
		fmt.Println(termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Println()
}
