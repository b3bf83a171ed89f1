package printer

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"helog/internal/constants"
)

type styles struct {
	notice    lipgloss.Style
	errorHead lipgloss.Style
}

// newStyles binds styles to w. In auto mode the profile is detected from w, so
// pipes and buffers get plain text.
func newStyles(w io.Writer, color string) styles {
	r := lipgloss.NewRenderer(w)
	switch color {
	case constants.ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	case constants.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}

	return styles{
		notice:    r.NewStyle().Foreground(lipgloss.Color("39")),
		errorHead: r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}
