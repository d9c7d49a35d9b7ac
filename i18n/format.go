package i18n

import (
	"fmt"

	"golang.org/x/text/message"
)

// FormatCount formats an integer with the language's digit grouping
// (tr: 12.345, en: 12,345).
func FormatCount(l Lang, n int) string {
	return message.NewPrinter(l.Tag()).Sprintf("%d", n)
}

// FormatRate formats a growth percentage with an explicit sign and one
// decimal, e.g. +50.0%.
func FormatRate(v float64) string {
	return fmt.Sprintf("%+.1f%%", v)
}
