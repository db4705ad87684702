package speclex

import "fmt"

// --- Tokens ----------------------------------------------------------------

// TokType is a category type for a Token. Token types are stable, upper-case
// names like "WORD" or "TIMESTAMP". We do not define any constants apart
// from EOF here, as it is up to token specifications to define them.
type TokType string

// EOF is the token type scanners return at the end of input (or after an
// error, for scanners which report errors through a handler).
const EOF TokType = "EOF"

// Token represents a classified, positioned unit of input text.
//
// An example would be a token for a floating point numer:
//
//    Type   = "NUMBER"    // identifier for this kind of tokens
//    Value  = 2000.0      // is a float64 value
//    Lexeme = "2,000.0"   // lexeme how it appreared in the input
//    Line   = 3           // three newlines preceded the token
//    Column = 12          // 12 characters after the last newline
//    Span   = 67…74       // occured from character position 67 in the input
//
// Line and Column are zero-based and count characters (runes), not bytes.
type Token struct {
	Type   TokType
	Value  interface{}
	Lexeme string
	Line   int
	Column int
	Span   Span
}

// IsEOF is true for end-of-input tokens.
func (t Token) IsEOF() bool {
	return t.Type == EOF
}

// String renders a token as TYPE(value)@line:column.
func (t Token) String() string {
	return fmt.Sprintf("%s(%v)@%d:%d", t.Type, t.Value, t.Line, t.Column)
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input token run. A span
// denotes a start position and the position just behind the end, counted
// in runes.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull is true for the zero span (0…0).
func (s Span) IsNull() bool {
	return s == Span{}
}

// Overlaps is true if s and other share at least one position.
func (s Span) Overlaps(other Span) bool {
	return s[0] < other[1] && other[0] < s[1]
}

// String renders a span as (x…y).
func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// --- Positions --------------------------------------------------------

// Advance moves a zero-based line/column position across text s. A newline
// starts a new line at column 0, every other rune moves one column.
func Advance(line, column int, s string) (int, int) {
	for _, r := range s {
		if r == '\n' {
			line++
			column = 0
		} else {
			column++
		}
	}
	return line, column
}
