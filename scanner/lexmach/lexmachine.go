package lexmach

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/speclex"
	"github.com/npillmayer/speclex/scanner"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// tracer traces with key 'speclex.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("speclex.scanner")
}

// Rule is a lexmachine rule for a token type. Rules with Discard set consume
// their matches without producing tokens; they do not need a type.
type Rule struct {
	Type       speclex.TokType
	Pattern    string
	Converter  speclex.Converter
	Classifier speclex.SubtypeClassifier
	Discard    bool
}

// Literal creates a rule matching a literal string (like "<=") verbatim.
func Literal(lit string, typ speclex.TokType) Rule {
	return Rule{
		Type:    typ,
		Pattern: "\\" + strings.Join(strings.Split(lit, ""), "\\"),
	}
}

// Keyword creates a rule for a keyword. Keywords are matched in lower case.
func Keyword(name string, typ speclex.TokType) Rule {
	return Rule{
		Type:    typ,
		Pattern: strings.ToLower(name),
	}
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
	rules []Rule
}

// NewLMAdapter creates a new lexmachine adapter for a list of rules.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(rules []Rule) (*LMAdapter, error) {
	adapter := &LMAdapter{
		Lexer: lexmachine.NewLexer(),
		rules: rules,
	}
	for i, rule := range rules {
		if rule.Discard {
			adapter.Lexer.Add([]byte(rule.Pattern), Skip)
		} else {
			adapter.Lexer.Add([]byte(rule.Pattern), MakeToken(i))
		}
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	text := []byte(input)
	s, err := lm.Lexer.Scanner(text)
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{
		scanner: s,
		rules:   lm.rules,
		input:   text,
		Error:   logError,
	}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner      *lexmachine.Scanner
	rules        []Rule
	input        []byte
	Error        func(error)
	offset       int // byte offset up to which positions have been computed
	runes        int // rune offset corresponding to offset
	line, column int
	err          error
	reported     bool
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// Next returns the next token, or io.EOF at the end of input. Conversion
// errors terminate the scanner, as with package scanner.
func (lms *LMScanner) Next() (speclex.Token, error) {
	if lms.err != nil {
		return speclex.Token{}, lms.err
	}
	for {
		tok, err, eof := lms.scanner.Next()
		if eof {
			lms.moveTo(len(lms.input))
			return speclex.Token{}, io.EOF
		}
		if err != nil {
			ui, is := err.(*machines.UnconsumedInput)
			if !is {
				return lms.fail(err)
			}
			// skip a single character and try again
			_, size := utf8.DecodeRune(lms.input[ui.StartTC:])
			lms.scanner.TC = ui.StartTC + size
			tracer().Debugf("skip unmatched input at byte %d", ui.StartTC)
			continue
		}
		tracer().Debugf("tok is %T | %v", tok, tok)
		return lms.convert(tok.(*lexmachine.Token))
	}
}

func (lms *LMScanner) convert(token *lexmachine.Token) (speclex.Token, error) {
	rule := lms.rules[token.Type]
	raw := string(token.Lexeme)
	lms.moveTo(token.TC)
	t := speclex.Token{
		Type:   rule.Type,
		Lexeme: raw,
		Line:   lms.line,
		Column: lms.column,
		Span:   speclex.Span{uint64(lms.runes), 0},
	}
	lms.moveTo(token.TC + len(token.Lexeme))
	t.Span = speclex.Span{t.Span.From(), uint64(lms.runes)}
	typ, value, err := speclex.Convert(raw, rule.Type, rule.Converter, rule.Classifier)
	if err != nil {
		// stay at the start of the rejected lexeme
		lms.offset, lms.runes = token.TC, int(t.Span.From())
		lms.line, lms.column = t.Line, t.Column
		return lms.fail(&speclex.ConversionError{
			Raw:    raw,
			Type:   rule.Type,
			Line:   t.Line,
			Column: t.Column,
			Err:    err,
		})
	}
	t.Type, t.Value = typ, value
	return t, nil
}

// moveTo advances line and column up to byte offset tc.
func (lms *LMScanner) moveTo(tc int) {
	skipped := string(lms.input[lms.offset:tc])
	lms.line, lms.column = speclex.Advance(lms.line, lms.column, skipped)
	lms.runes += utf8.RuneCountInString(skipped)
	lms.offset = tc
}

func (lms *LMScanner) fail(err error) (speclex.Token, error) {
	lms.err = err
	return speclex.Token{}, err
}

// NextToken is part of the Tokenizer interface.
func (lms *LMScanner) NextToken() speclex.Token {
	token, err := lms.Next()
	if err == nil {
		return token
	}
	if err != io.EOF && !lms.reported {
		lms.reported = true
		lms.Error(err)
	}
	return speclex.Token{
		Type:   speclex.EOF,
		Line:   lms.line,
		Column: lms.column,
		Span:   speclex.Span{uint64(lms.runes), uint64(lms.runes)},
	}
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token
// for rule number id.
func MakeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
