package catalog

import (
	"fmt"

	"github.com/dlclark/regexp2"
	"github.com/npillmayer/speclex"
)

const termPattern = `(?<term_key>[\w\-]+)(?<term_op>[:=><]+)(?<term_value>[\w\-\.]+\b)(?![:])`

var termParts = regexp2.MustCompile(`^`+termPattern+`$`, regexp2.None)

// AlphaNum creates a spec for type ALPHANUM: runs of letters, digits and
// dashes. Subtypes are optional.
func AlphaNum(subtypes ...Subtype) *speclex.TokenSpec {
	return speclex.MustSpec(ALPHANUM, `\b[\w\d\-]+\b`,
		speclex.WithClassifier(SubtypeAssignment(subtypes)))
}

// Newline creates a spec for type NEWLINE.
func Newline() *speclex.TokenSpec {
	return speclex.MustSpec(NEWLINE, `\r?\n`)
}

// Punctuation creates a spec for type PUNCTUATION: runs of characters which
// are neither word characters nor whitespace.
func Punctuation() *speclex.TokenSpec {
	return speclex.MustSpec(PUNCTUATION, `[^\w\s]+`)
}

// Quote creates a spec for type QUOTE: text in double quotes, which may span
// lines. The value includes the quotes.
func Quote() *speclex.TokenSpec {
	return speclex.MustSpec(QUOTE, `"[^"]*"`)
}

// Term is the value of TERM tokens.
type Term struct {
	Key   string
	Op    string
	Value string
}

func (t Term) String() string {
	return t.Key + t.Op + t.Value
}

// SearchTerm creates a spec for type TERM: search terms of the form
// key<op>value, as in "status:open" or "size>=10". Values are of type Term.
func SearchTerm() *speclex.TokenSpec {
	return speclex.MustSpec(TERM, termPattern, speclex.WithConverter(convertTerm))
}

func convertTerm(raw string) (interface{}, error) {
	m, err := termParts.FindStringMatch(raw)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("malformed term %q", raw)
	}
	return Term{
		Key:   m.GroupByName("term_key").String(),
		Op:    m.GroupByName("term_op").String(),
		Value: m.GroupByName("term_value").String(),
	}, nil
}

// UUIDString creates a spec for type UUID, for UUIDs in their canonical textual form.
func UUIDString() *speclex.TokenSpec {
	return speclex.MustSpec(UUID,
		`[\da-fA-F]{8}-[\da-fA-F]{4}-[\da-fA-F]{4}-[\da-fA-F]{4}-[\da-fA-F]{12}`)
}

// Word creates a spec for type WORD: letters, with an optional contraction
// like "we'll". Subtypes are optional.
func Word(subtypes ...Subtype) *speclex.TokenSpec {
	return speclex.MustSpec(WORD, `[A-Za-z]+(?:'[A-Za-z]+)?`,
		speclex.WithClassifier(SubtypeAssignment(subtypes)))
}
