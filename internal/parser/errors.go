package parser

import (
	"fmt"
	"strings"
)

// SyntaxError reports the first location at which a whkdrc stops matching the grammar.
type SyntaxError struct {
	// Line and Column are 1-based; Column counts runes.
	Line     int
	Column   int
	Expected []string
	Found    string
}

func (e *SyntaxError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "syntax error at line %d, column %d", e.Line, e.Column)
	if len(e.Expected) > 0 {
		b.WriteString(": expected ")
		b.WriteString(joinAlternatives(e.Expected))
	}
	if e.Found != "" {
		b.WriteString(", found ")
		b.WriteString(e.Found)
	}
	return b.String()
}

func joinAlternatives(items []string) string {
	switch len(items) {
	case 1:
		return items[0]
	case 2:
		return items[0] + " or " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
	}
}
