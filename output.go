package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// printer writes human-readable status lines, colored when the writer is a
// terminal.
type printer struct {
	w io.Writer

	enabled  lipgloss.Style
	disabled lipgloss.Style
	same     lipgloss.Style
	path     lipgloss.Style
}

func newPrinter(w io.Writer, color bool) *printer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &printer{
		w:        w,
		enabled:  r.NewStyle().Foreground(lipgloss.Color("2")),
		disabled: r.NewStyle().Foreground(lipgloss.Color("3")),
		same:     r.NewStyle().Foreground(lipgloss.Color("6")),
		path:     r.NewStyle().Foreground(lipgloss.Color("6")),
	}
}

func (p *printer) line(format string, a ...any) {
	fmt.Fprintf(p.w, format+"\n", a...)
}

// changed reports the outcome of on, off or toggle.
func (p *printer) changed(name string, change Change, enabled bool) {
	switch {
	case change == Unchanged && enabled:
		p.line("%s %s plugin is already enabled", p.same.Render("○"), name)
	case change == Unchanged:
		p.line("%s %s plugin is already disabled", p.same.Render("○"), name)
	case enabled:
		p.line("%s enabled %s plugin", p.enabled.Render("✓"), name)
	default:
		p.line("%s disabled %s plugin", p.disabled.Render("✗"), name)
	}
}

func (p *printer) status(path, name string, cfg *Config) {
	p.line("Config file: %s", p.path.Render(path))
	if IsEnabled(cfg, name) {
		p.line("Status: %s %s plugin is enabled", p.enabled.Render("●"), name)
	} else {
		p.line("Status: %s %s plugin is disabled", p.disabled.Render("○"), name)
	}

	quoted := make([]string, len(cfg.Plugins))
	for i, plugin := range cfg.Plugins {
		quoted[i] = fmt.Sprintf("%q", plugin)
	}
	p.line("Plugins: [%s]", strings.Join(quoted, ", "))
}
