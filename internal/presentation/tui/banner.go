package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the winnow ASCII art banner and version to w.
func PrintBanner(w io.Writer, version string) {
	p := termenv.EnvColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{`            _                           `, "#818cf8"},
		{` __      __(_)_ __  _ __   _____      __ `, "#a78bfa"},
		{` \ \ /\ / /| | '_ \| '_ \ / _ \ \ /\ / / `, "#c084fc"},
		{`  \ V  V / | | | | | | | | (_) \ V  V /  `, "#e879f9"},
		{`   \_/\_/  |_|_| |_|_| |_|\___/ \_/\_/   `, "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, termenv.String("  v"+version).Faint())
	fmt.Fprintln(w)
}

// NoticeStyle returns a styler for system messages such as rejected choices.
func NoticeStyle() func(string) string {
	p := termenv.EnvColorProfile()
	return func(msg string) string {
		return termenv.String(msg).Foreground(p.Color("#fb7185")).Bold().String()
	}
}
