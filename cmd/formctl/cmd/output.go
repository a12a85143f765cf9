package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/dmitrymomot/formlab/pkg/sanitizer"
	"github.com/dmitrymomot/formlab/pkg/userform"
)

var (
	colorError   = lipgloss.Color("#EF4444")
	colorSuccess = lipgloss.Color("#10B981")
	colorMuted   = lipgloss.Color("#6B7280")

	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	fieldStyle   = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
)

// printer writes command results. Styling is applied only when the output is
// a terminal.
type printer struct {
	w      io.Writer
	styled bool
}

func newPrinter(w io.Writer) printer {
	return printer{w: w, styled: isTerminal(w)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p printer) render(s lipgloss.Style, text string) string {
	if !p.styled {
		return text
	}
	return s.Render(text)
}

func (p printer) rejected(errs userform.Errors, remote bool) {
	title := "Rejected"
	if remote {
		title = "Rejected by server"
	}
	fmt.Fprintln(p.w, p.render(errorStyle, title))
	for _, f := range errs.Fields() {
		fmt.Fprintf(p.w, "  %s: %s\n", p.render(fieldStyle, f.String()), errs.Get(f))
	}
}

func (p printer) valid() {
	fmt.Fprintln(p.w, p.render(successStyle, "Valid"))
}

func (p printer) accepted(u userform.User) {
	fmt.Fprintln(p.w, p.render(successStyle, "Accepted"))
	rows := [][2]string{
		{"name", u.Name},
		{"email", sanitizer.MaskEmail(u.Email)},
		{"phone", sanitizer.MaskPhone(u.Phone)},
		{"age", strconv.FormatInt(u.Age, 10)},
		{"url", u.URL},
	}
	for _, r := range rows {
		if r[1] == "" {
			continue
		}
		fmt.Fprintf(p.w, "  %s %s\n", p.render(mutedStyle, r[0]+":"), r[1])
	}
}
