// Package tui holds terminal decorations of the CLI.
package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []string{
	"                  _            ",
	" _ __   __ _ _ __| | ___ _   _ ",
	"| '_ \\ / _` | '__| |/ _ \\ | | |",
	"| |_) | (_| | |  | |  __/ |_| |",
	"| .__/ \\__,_|_|  |_|\\___|\\__, |",
	"|_|                      |___/ ",
}

var bannerColors = []string{"#818cf8", "#a78bfa", "#c084fc", "#e879f9", "#f472b6", "#fb7185"}

// PrintBanner writes the ASCII banner to w, with a gradient when color is true.
func PrintBanner(w io.Writer, color bool) {
	profile := termenv.Ascii
	if color {
		profile = termenv.TrueColor
	}
	out := termenv.NewOutput(w, termenv.WithProfile(profile))

	fmt.Fprintln(out)
	for i, line := range bannerLines {
		fmt.Fprintln(out, out.String(line).Foreground(out.Color(bannerColors[i])))
	}
	fmt.Fprintln(out)
}
