package rows

import (
	"fmt"
	"strings"
)

// WarningType classifies a Warning.
type WarningType int

const (
	// WarningDroppedRow reports a row removed because its cell count did
	// not match the widest row, usually because of a colspan.
	WarningDroppedRow WarningType = iota
)

// String returns the string representation of the warning type.
func (w WarningType) String() string {
	switch w {
	case WarningDroppedRow:
		return "dropped row"
	default:
		return "unknown"
	}
}

// Warning is a non-fatal issue found while importing. The table was built,
// but may not contain everything the source did.
type Warning struct {
	Type    WarningType
	Row     int // 0-based position among the table's rows, header included
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s (row %d): %s", w.Type, w.Row, w.Message)
}

// FormatWarnings joins warnings into a single line.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
