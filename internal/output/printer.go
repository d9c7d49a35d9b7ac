// Package output provides CLI output formatting utilities
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/spektr-org/skilltrend/engine"
)

// Printer handles formatted output to the terminal
type Printer struct {
	out       io.Writer
	err       io.Writer
	useColors bool
}

// ResolveColors decides whether to colorize. --no-color wins, then NO_COLOR
// and dumb terminals, then the output.colors setting.
func ResolveColors(noColorFlag, configColors bool) bool {
	if noColorFlag {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return configColors
}

// NewPrinter creates a printer writing to stdout and stderr
func NewPrinter(useColors bool) *Printer {
	return NewPrinterWithWriters(os.Stdout, os.Stderr, useColors)
}

// NewPrinterWithWriters creates a printer with custom writers
func NewPrinterWithWriters(out, errW io.Writer, useColors bool) *Printer {
	return &Printer{out: out, err: errW, useColors: useColors}
}

// Out returns the standard output writer
func (p *Printer) Out() io.Writer { return p.out }

// Info prints an informational message
func (p *Printer) Info(format string, args ...interface{}) {
	if p.useColors {
		color.New(color.FgCyan).Fprintf(p.out, format+"\n", args...)
	} else {
		fmt.Fprintf(p.out, format+"\n", args...)
	}
}

// Success prints a success message
func (p *Printer) Success(format string, args ...interface{}) {
	if p.useColors {
		color.New(color.FgGreen).Fprintf(p.out, "✓ "+format+"\n", args...)
	} else {
		fmt.Fprintf(p.out, "[OK] "+format+"\n", args...)
	}
}

// Warning prints a warning message
func (p *Printer) Warning(format string, args ...interface{}) {
	if p.useColors {
		color.New(color.FgYellow).Fprintf(p.err, "⚠ "+format+"\n", args...)
	} else {
		fmt.Fprintf(p.err, "[WARN] "+format+"\n", args...)
	}
}

// Print prints a plain message
func (p *Printer) Print(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Header prints a section header
func (p *Printer) Header(title string) {
	width := len([]rune(title))
	if p.useColors {
		color.New(color.FgWhite, color.Bold).Fprintf(p.out, "\n%s\n", title)
		color.New(color.FgWhite).Fprintf(p.out, "%s\n", strings.Repeat("─", width))
	} else {
		fmt.Fprintf(p.out, "\n%s\n%s\n", title, strings.Repeat("-", width))
	}
}

// Cards prints the stat cards as an aligned label/value list
func (p *Printer) Cards(cards []engine.StatCard) {
	width := 0
	for _, c := range cards {
		if n := len([]rune(c.Label)); n > width {
			width = n
		}
	}
	for _, c := range cards {
		pad := strings.Repeat(" ", width-len([]rune(c.Label)))
		fmt.Fprintf(p.out, "  %s%s  %s\n", p.Dim(c.Label), pad, p.Rate(c.Value))
	}
}

// Rate colors signed percentages: rising green, falling red
func (p *Printer) Rate(text string) string {
	if !p.useColors || !strings.HasSuffix(text, "%") {
		return p.Bold(text)
	}
	switch {
	case strings.HasPrefix(text, "+") && text != "+0.0%":
		return color.GreenString(text)
	case strings.HasPrefix(text, "-"):
		return color.RedString(text)
	default:
		return text
	}
}

// Bold returns text in bold
func (p *Printer) Bold(text string) string {
	if p.useColors {
		return color.New(color.Bold).Sprint(text)
	}
	return text
}

// Dim returns dimmed text
func (p *Printer) Dim(text string) string {
	if p.useColors {
		return color.New(color.Faint).Sprint(text)
	}
	return text
}
