package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Printer writes the progress markers commands emit: ✓ for success, ℹ for
// notices, ⚠ for warnings. Colors are dropped when the writer is not a TTY
// so scripted invocations capture plain text.
type Printer struct {
	out     io.Writer
	success *color.Color
	notice  *color.Color
	warn    *color.Color
}

// NewPrinter creates a printer for the given writer.
func NewPrinter(out io.Writer) *Printer {
	p := &Printer{
		out:     out,
		success: color.New(color.FgGreen),
		notice:  color.New(color.FgCyan),
		warn:    color.New(color.FgYellow),
	}
	if !writerIsTerminal(out) {
		p.success.DisableColor()
		p.notice.DisableColor()
		p.warn.DisableColor()
	}
	return p
}

func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Success prints a ✓ line.
func (p *Printer) Success(format string, args ...interface{}) {
	p.line(p.success, "✓", format, args...)
}

// Notice prints an ℹ line.
func (p *Printer) Notice(format string, args ...interface{}) {
	p.line(p.notice, "ℹ", format, args...)
}

// Warn prints a ⚠ line.
func (p *Printer) Warn(format string, args ...interface{}) {
	p.line(p.warn, "⚠", format, args...)
}

// Plain prints an unmarked line.
func (p *Printer) Plain(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *Printer) line(c *color.Color, marker, format string, args ...interface{}) {
	fmt.Fprintf(p.out, "%s %s\n", c.Sprint(marker), fmt.Sprintf(format, args...))
}
