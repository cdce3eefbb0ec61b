package main

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	colorTitle = lipgloss.Color("#2CD7C7")
	colorOK    = lipgloss.Color("#20B9B4")
	colorMiss  = lipgloss.Color("#E74C3C")
	colorMuted = lipgloss.Color("#2C4A54")
)

// styles renders the summary lines; when disabled every method returns its
// input unchanged.
type styles struct {
	enabled bool

	title lipgloss.Style
	ok    lipgloss.Style
	miss  lipgloss.Style
	muted lipgloss.Style
}

func newStyles(enabled bool) styles {
	return styles{
		enabled: enabled,
		title:   lipgloss.NewStyle().Bold(true).Foreground(colorTitle),
		ok:      lipgloss.NewStyle().Foreground(colorOK),
		miss:    lipgloss.NewStyle().Foreground(colorMiss),
		muted:   lipgloss.NewStyle().Foreground(colorMuted),
	}
}

func (s styles) render(st lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}

	return st.Render(text)
}

func (s styles) Title(text string) string { return s.render(s.title, text) }
func (s styles) OK(text string) string    { return s.render(s.ok, text) }
func (s styles) Miss(text string) string  { return s.render(s.miss, text) }
func (s styles) Muted(text string) string { return s.render(s.muted, text) }

// isTerminal reports whether w is a terminal file.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
