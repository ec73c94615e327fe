package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

const (
	markSuccess = "✓"
	markWarn    = "!"
	markFail    = "✗"
)

// printer writes status lines, styling markers only on a terminal.
type printer struct {
	out    io.Writer
	errOut io.Writer
	styled bool
}

func newPrinter(cmd *cobra.Command) *printer {
	out := cmd.OutOrStdout()
	return &printer{
		out:    out,
		errOut: cmd.ErrOrStderr(),
		styled: isTerminal(out),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (p *printer) mark(style lipgloss.Style, m string) string {
	if !p.styled {
		return m
	}
	return style.Render(m)
}

func (p *printer) success(format string, args ...any) {
	fmt.Fprintf(p.out, "%s %s\n", p.mark(successStyle, markSuccess), fmt.Sprintf(format, args...))
}

func (p *printer) warn(format string, args ...any) {
	fmt.Fprintf(p.out, "%s %s\n", p.mark(warnStyle, markWarn), fmt.Sprintf(format, args...))
}

func (p *printer) fail(format string, args ...any) {
	fmt.Fprintf(p.errOut, "%s %s\n", p.mark(failStyle, markFail), fmt.Sprintf(format, args...))
}

func (p *printer) detail(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	if p.styled {
		line = dimStyle.Render(line)
	}
	fmt.Fprintf(p.out, "  %s\n", line)
}

func (p *printer) line(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}
