package checkmx

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

const (
	emailColumnWidth = 40
	ruleWidth        = 60
)

// Printer writes the results as a two column table
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter creates a Printer writing plain text to w
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// EnableColor colors the status column
func (p *Printer) EnableColor() *Printer {
	p.color = true
	return p
}

// Print writes a header followed by one line per result, in order.
// Addresses longer than the email column are not cut
func (p *Printer) Print(results []Result) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Checking %d address(es)...\n\n", len(results))
	fmt.Fprintf(&b, "%-*s %s\n", emailColumnWidth, "Email", "Status")
	b.WriteString(strings.Repeat("-", ruleWidth) + "\n")
	for _, r := range results {
		fmt.Fprintf(&b, "%-*s %s\n", emailColumnWidth, r.Email, p.status(r.Status))
	}

	_, err := io.WriteString(p.w, b.String())
	return err
}

func (p *Printer) status(s string) string {
	if !p.color {
		return s
	}

	var c *color.Color
	switch {
	case s == StatusValid:
		c = color.New(color.FgGreen)
	case strings.HasPrefix(s, StatusMissingMX):
		c = color.New(color.FgYellow)
	default:
		c = color.New(color.FgRed)
	}
	c.EnableColor()
	return c.Sprint(s)
}
