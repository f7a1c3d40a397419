package tokenizer

import "fmt"

// WarningKind classifies a malformed-but-tolerated construct on the line.
type WarningKind int

const (
	// UndefinedVariable is a $NAME reference the lookup did not resolve.
	UndefinedVariable WarningKind = iota
	// LoneDollar is a $ followed directly by whitespace, a quote, or end of line.
	LoneDollar
	// MismatchedQuote is a quoted region closed by the other quote character.
	MismatchedQuote
	// UnterminatedQuote is a quoted region still open at end of line.
	UnterminatedQuote
)

func (k WarningKind) String() string {
	switch k {
	case UndefinedVariable:
		return "undefined variable"
	case LoneDollar:
		return "lone $"
	case MismatchedQuote:
		return "mismatched quote"
	case UnterminatedQuote:
		return "unterminated quote"
	default:
		return fmt.Sprintf("WarningKind(%d)", int(k))
	}
}

// Warning describes one tolerated irregularity. Offset is the byte index in
// the line at which it was detected.
type Warning struct {
	Kind   WarningKind
	Offset int
	Detail string
}

func (w Warning) String() string {
	if w.Detail == "" {
		return fmt.Sprintf("%s at offset %d", w.Kind, w.Offset)
	}
	return fmt.Sprintf("%s at offset %d: %s", w.Kind, w.Offset, w.Detail)
}
