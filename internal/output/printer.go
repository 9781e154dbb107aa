// Package output provides terminal formatting for the CLI.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Printer writes formatted messages to the terminal. Status messages
// go to stderr so piped output stays machine readable.
type Printer struct {
	out       io.Writer
	err       io.Writer
	useColors bool
}

// NewPrinter creates a printer. Colors are suppressed when disabled
// explicitly, when NO_COLOR is set, or on dumb terminals.
func NewPrinter(colors bool) *Printer {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		colors = false
	}
	if os.Getenv("TERM") == "dumb" {
		colors = false
	}
	return &Printer{
		out:       os.Stdout,
		err:       os.Stderr,
		useColors: colors,
	}
}

// NewPrinterWithWriters creates a printer over custom writers, used in
// tests.
func NewPrinterWithWriters(out, err io.Writer, colors bool) *Printer {
	return &Printer{out: out, err: err, useColors: colors}
}

// Print writes a plain line to stdout.
func (p *Printer) Print(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Success reports a completed operation.
func (p *Printer) Success(format string, args ...interface{}) {
	if p.useColors {
		color.New(color.FgGreen).Fprintf(p.out, "✓ "+format+"\n", args...)
		return
	}
	fmt.Fprintf(p.out, "[OK] "+format+"\n", args...)
}

// Notice reports a transient, non-fatal problem, such as a failed
// mutation whose views were left untouched.
func (p *Printer) Notice(format string, args ...interface{}) {
	if p.useColors {
		color.New(color.FgYellow).Fprintf(p.err, "⚠ "+format+"\n", args...)
		return
	}
	fmt.Fprintf(p.err, "[WARN] "+format+"\n", args...)
}

// Error reports a failure.
func (p *Printer) Error(format string, args ...interface{}) {
	if p.useColors {
		color.New(color.FgRed).Fprintf(p.err, "✗ "+format+"\n", args...)
		return
	}
	fmt.Fprintf(p.err, "[ERROR] "+format+"\n", args...)
}

// Header prints a section title above a table.
func (p *Printer) Header(title string) {
	if p.useColors {
		color.New(color.Bold).Fprintf(p.out, "%s\n", title)
		return
	}
	fmt.Fprintf(p.out, "%s\n", title)
}

// Dim returns de-emphasized text.
func (p *Printer) Dim(text string) string {
	if p.useColors {
		return color.New(color.Faint).Sprint(text)
	}
	return text
}
