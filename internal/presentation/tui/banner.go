package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{" ____  ____   ____ _     ", "#818cf8"},
	{"|  _ \\|  _ \\ / ___| |    ", "#a78bfa"},
	{"| | | | |_) | |   | |    ", "#c084fc"},
	{"| |_| |  __/| |___| |___ ", "#e879f9"},
	{"|____/|_|    \\____|_____|", "#f472b6"},
}

// PrintBanner writes the DPCL ASCII banner, coloured when the terminal supports it.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()

	fmt.Fprintln(w)
	for _, line := range bannerLines {
		fmt.Fprintln(w, termenv.String(line.text).Foreground(p.Color(line.color)))
	}
	fmt.Fprintln(w)
}
