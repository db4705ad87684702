package speclex

import (
	"fmt"
	"time"

	"github.com/dlclark/regexp2"
)

// Converter converts the raw text of a match into a token value. Converters
// may reject input which has been accepted by the pattern, e.g. a date with
// day 32.
type Converter func(raw string) (interface{}, error)

// SubtypeClassifier may narrow a token type, given the raw text of a match.
// Classifiers are expected to return typ unchanged if they do not know the
// raw text.
type SubtypeClassifier func(raw string, typ TokType) TokType

// TokenSpec is the definition of a token type: a type name, a pattern, and
// optionally a converter and a subtype classifier.
//
// Patterns are regexp2 expressions and may use lookahead and lookbehind.
// A TokenSpec is immutable after construction and may be shared between
// concurrently running scanners.
type TokenSpec struct {
	typ        TokType
	source     string
	pattern    *regexp2.Regexp
	converter  Converter
	classifier SubtypeClassifier
	discard    bool
	reOptions  regexp2.RegexOptions
	timeout    time.Duration
}

// SpecOption configures a TokenSpec during construction.
type SpecOption func(*TokenSpec)

// WithConverter sets a converter for the raw text of matches.
func WithConverter(c Converter) SpecOption {
	return func(ts *TokenSpec) {
		ts.converter = c
	}
}

// WithClassifier sets a subtype classifier.
func WithClassifier(c SubtypeClassifier) SpecOption {
	return func(ts *TokenSpec) {
		ts.classifier = c
	}
}

// Discarded makes a spec consume its matches without emitting tokens.
func Discarded() SpecOption {
	return func(ts *TokenSpec) {
		ts.discard = true
	}
}

// WithRegexOptions passes options to the regexp2 compiler, e.g.
// regexp2.IgnoreCase.
func WithRegexOptions(opts regexp2.RegexOptions) SpecOption {
	return func(ts *TokenSpec) {
		ts.reOptions = opts
	}
}

// WithMatchTimeout limits the time a single match attempt may take.
// Pathological patterns will then fail with an error instead of stalling
// the scanner.
func WithMatchTimeout(d time.Duration) SpecOption {
	return func(ts *TokenSpec) {
		ts.timeout = d
	}
}

// NewSpec creates a token specification for type typ. The pattern will
// be anchored at the position it is tried at, i.e. it has to match right
// there; lookbehind assertions are able to see the text before this position.
//
// NewSpec will return a *SpecError if typ is empty or the pattern does
// not compile.
func NewSpec(typ TokType, pattern string, opts ...SpecOption) (*TokenSpec, error) {
	ts := &TokenSpec{
		typ:    typ,
		source: pattern,
	}
	for _, opt := range opts {
		opt(ts)
	}
	if typ == "" {
		return nil, &SpecError{Type: typ, Pattern: pattern, Err: errEmptyType}
	}
	re, err := regexp2.Compile(`\G(?:`+pattern+`)`, ts.reOptions)
	if err != nil {
		return nil, &SpecError{Type: typ, Pattern: pattern, Err: err}
	}
	if ts.timeout > 0 {
		re.MatchTimeout = ts.timeout
	}
	ts.pattern = re
	return ts, nil
}

// MustSpec is like NewSpec, but panics on errors. It is intended for
// static patterns.
func MustSpec(typ TokType, pattern string, opts ...SpecOption) *TokenSpec {
	ts, err := NewSpec(typ, pattern, opts...)
	if err != nil {
		panic(err)
	}
	return ts
}

// Type returns the token type of a spec.
func (ts *TokenSpec) Type() TokType {
	return ts.typ
}

// Pattern returns the pattern source as given to NewSpec.
func (ts *TokenSpec) Pattern() string {
	return ts.source
}

// IsDiscarded is true if matches of ts are consumed without emitting tokens.
func (ts *TokenSpec) IsDiscarded() bool {
	return ts.discard
}

// Discarding returns a copy of ts which consumes its matches silently.
func (ts *TokenSpec) Discarding() *TokenSpec {
	c := *ts
	c.discard = true
	return &c
}

// MatchAt tries to match ts at rune position pos of text. It returns the
// length of the match in runes, or 0 if the pattern did not match at pos.
// An error is returned only if the regex engine failed, e.g. on timeout.
func (ts *TokenSpec) MatchAt(text []rune, pos int) (int, error) {
	m, err := ts.pattern.FindRunesMatchStartingAt(text, pos)
	if err != nil {
		return 0, fmt.Errorf("matching %s at %d: %w", ts.typ, pos, err)
	}
	if m == nil || m.Index != pos {
		return 0, nil
	}
	return m.Length, nil
}

// Convert runs the conversion pipeline for the raw text of a match of ts.
func (ts *TokenSpec) Convert(raw string) (TokType, interface{}, error) {
	return Convert(raw, ts.typ, ts.converter, ts.classifier)
}

func (ts *TokenSpec) String() string {
	return fmt.Sprintf("%s /%s/", ts.typ, ts.source)
}

// Convert is the conversion pipeline. It computes the value of a token
// from its raw text using converter conv (raw text is the value if conv is
// nil), then the final token type using classifier cls (typ is kept if cls
// is nil). The classifier always sees the raw text, not the value.
func Convert(raw string, typ TokType, conv Converter, cls SubtypeClassifier) (TokType, interface{}, error) {
	var value interface{} = raw
	if conv != nil {
		v, err := conv(raw)
		if err != nil {
			return typ, nil, err
		}
		value = v
	}
	if cls != nil {
		typ = cls(raw, typ)
	}
	return typ, value, nil
}
