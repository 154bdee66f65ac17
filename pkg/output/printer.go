// Package output prints user-facing lines for the sysknife commands.
//
// Diagnostics go through pkg/logging; this package is for the text a user
// asked for: link lines, warnings, converted timestamps.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/sysknife/pkg/output/styles"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Printer writes plain lines to Out and warnings/errors to Err.
type Printer struct {
	Out     io.Writer
	Err     io.Writer
	noColor bool
}

// NewPrinter styles output only when both writers are color-capable terminals.
func NewPrinter(out, errOut io.Writer) *Printer {
	return &Printer{
		Out:     out,
		Err:     errOut,
		noColor: !SupportsColor(out) || !SupportsColor(errOut),
	}
}

// NewPlainPrinter never emits escape sequences.
func NewPlainPrinter(out, errOut io.Writer) *Printer {
	return &Printer{Out: out, Err: errOut, noColor: true}
}

// SupportsColor reports whether w is a terminal that can render colors,
// honoring NO_COLOR.
func SupportsColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}

func (p *Printer) render(style, text string) string {
	if p.noColor {
		return text
	}
	return styles.GetStyle(style).Render(text)
}

// Printf writes an unstyled line to Out.
func (p *Printer) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.Out, format+"\n", args...)
}

// Link reports a created link as "source -> destination".
func (p *Printer) Link(source, destination string) {
	fmt.Fprintf(p.Out, "%s -> %s\n", source, p.render("FilePath", destination))
}

func (p *Printer) Successf(format string, args ...interface{}) {
	fmt.Fprintln(p.Out, p.render("Success", fmt.Sprintf(format, args...)))
}

func (p *Printer) Warnf(format string, args ...interface{}) {
	fmt.Fprintln(p.Err, p.render("Warning", "WARNING: "+fmt.Sprintf(format, args...)))
}

func (p *Printer) Errorf(format string, args ...interface{}) {
	fmt.Fprintln(p.Err, p.render("Error", "ERROR: "+fmt.Sprintf(format, args...)))
}
