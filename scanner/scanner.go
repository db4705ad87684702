/*
Package scanner implements the scanning engine of speclex.

A Scanner walks an input text and, at every position, tries a list of token
specifications in order. The first specification whose pattern matches right
at the current position wins and its match is consumed as a whole, even if
a later specification would have matched a longer stretch of input.
Characters no specification matches are skipped silently.

Scanners are pull-based: tokens are produced one at a time, on demand.

	sc, err := scanner.Tokenize(text, catalog.Default().DateTimeSpecs()...)
	if err != nil {
		// do error handling
	}
	for {
		token, err := sc.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			// conversion error; the scanner will not continue
		}
		…
	}

Scanners also implement the Tokenizer interface, for clients which prefer to
receive an EOF token instead of io.EOF.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"errors"
	"io"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/speclex"
	"github.com/npillmayer/speclex/catalog"
)

// tracer traces with key 'speclex.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("speclex.scanner")
}

// ErrNoSpecs is returned when a scanner is created without token specs.
var ErrNoSpecs = errors.New("scanner needs at least one token spec")

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() speclex.Token
	SetErrorHandler(func(error))
}

// Scanner is the spec-driven scanning engine. Create one with New or
// Tokenize. A Scanner must not be used by more than one goroutine, but
// any number of scanners may share the same token specs.
type Scanner struct {
	text          []rune
	specs         []*speclex.TokenSpec
	cursor        int         // rune offset into text
	line, column  int         // zero-based position of cursor
	err           error       // sticky terminal error
	reported      bool        // err has been passed to Error
	Error         func(error) // error handler for NextToken
	emitDiscarded bool        // emit tokens for discarding specs as well
}

var _ Tokenizer = (*Scanner)(nil)

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// New creates a scanner for text, using specs in the given order.
// The spec list is not copied and must not be modified while the scanner
// is in use.
func New(text string, specs []*speclex.TokenSpec, opts ...Option) (*Scanner, error) {
	if len(specs) == 0 {
		return nil, ErrNoSpecs
	}
	for _, ts := range specs {
		if ts == nil {
			return nil, ErrNoSpecs
		}
	}
	s := &Scanner{
		text:  []rune(text),
		specs: specs,
		Error: logError,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Tokenize creates a scanner for text. If no specs are given, the default
// ordering of the catalog is used (see catalog.Registry.DefaultSpecs).
//
// Calling Tokenize again with the same arguments produces an identical,
// independent token stream.
func Tokenize(text string, specs ...*speclex.TokenSpec) (*Scanner, error) {
	if len(specs) == 0 {
		specs = catalog.Default().DefaultSpecs()
	}
	return New(text, specs)
}

// Pos returns the current zero-based line and column of the scanner. After a
// conversion error, this is the start of the rejected lexeme.
func (s *Scanner) Pos() (line, column int) {
	return s.line, s.column
}

// Err returns the error which terminated the scanner, if any.
func (s *Scanner) Err() error {
	return s.err
}

// Next returns the next token. At the end of input, Next returns io.EOF.
// If a converter rejects a match, Next returns a *speclex.ConversionError
// and every subsequent call will return the same error.
func (s *Scanner) Next() (speclex.Token, error) {
	if s.err != nil {
		return speclex.Token{}, s.err
	}
	for s.cursor < len(s.text) {
		spec, length, err := s.match()
		if err != nil {
			return s.fail(err)
		}
		if spec == nil { // no spec matches => skip a single character
			s.skip()
			continue
		}
		token, emit, err := s.emit(spec, length)
		if err != nil {
			return s.fail(err)
		}
		if emit {
			return token, nil
		}
	}
	tracer().Debugf("scanner reached end of input")
	return speclex.Token{}, io.EOF
}

// match finds the first spec matching at the cursor.
func (s *Scanner) match() (*speclex.TokenSpec, int, error) {
	for _, spec := range s.specs {
		length, err := spec.MatchAt(s.text, s.cursor)
		if err != nil {
			return nil, 0, err
		}
		if length > 0 { // empty matches would not advance the cursor
			return spec, length, nil
		}
	}
	return nil, 0, nil
}

func (s *Scanner) skip() {
	if s.text[s.cursor] == '\n' {
		s.line++
		s.column = 0
	} else {
		s.column++
	}
	s.cursor++
}

// emit consumes a match of length runes for spec and creates a token for it.
// Matches of discarding specs are consumed without a token.
func (s *Scanner) emit(spec *speclex.TokenSpec, length int) (speclex.Token, bool, error) {
	raw := string(s.text[s.cursor : s.cursor+length])
	token := speclex.Token{
		Type:   spec.Type(),
		Lexeme: raw,
		Line:   s.line,
		Column: s.column,
		Span:   speclex.Span{uint64(s.cursor), uint64(s.cursor + length)},
	}
	s.cursor += length
	s.line, s.column = speclex.Advance(s.line, s.column, raw)
	if spec.IsDiscarded() && !s.emitDiscarded {
		tracer().Debugf("discard %s %q at %d:%d", spec.Type(), raw, token.Line, token.Column)
		return token, false, nil
	}
	typ, value, err := spec.Convert(raw)
	if err != nil {
		cerr := &speclex.ConversionError{
			Raw:    raw,
			Type:   spec.Type(),
			Line:   token.Line,
			Column: token.Column,
			Err:    err,
		}
		if gconf.GetBool("panic-on-conversion-error") {
			panic(cerr)
		}
		// stay at the start of the rejected lexeme
		s.cursor, s.line, s.column = int(token.Span.From()), token.Line, token.Column
		return token, false, cerr
	}
	token.Type, token.Value = typ, value
	tracer().Debugf("token %s", token)
	return token, true, nil
}

func (s *Scanner) fail(err error) (speclex.Token, error) {
	s.err = err
	tracer().Debugf("scanner stopped: %v", err)
	return speclex.Token{}, err
}

// --- Tokenizer interface ---------------------------------------------------

// SetErrorHandler sets an error handler for the scanner.
func (s *Scanner) SetErrorHandler(h func(error)) {
	if h == nil {
		s.Error = logError
		return
	}
	s.Error = h
}

// NextToken is part of the Tokenizer interface. At the end of input, and
// after an error has been passed to the error handler, NextToken returns
// tokens of type speclex.EOF.
func (s *Scanner) NextToken() speclex.Token {
	token, err := s.Next()
	if err == nil {
		return token
	}
	pos := uint64(s.cursor)
	if err != io.EOF && !s.reported {
		s.reported = true
		s.Error(err)
	}
	return speclex.Token{
		Type:   speclex.EOF,
		Line:   s.line,
		Column: s.column,
		Span:   speclex.Span{pos, pos},
	}
}

// Collect drains a scanner and returns all its tokens. If the scanner
// stops with an error, Collect returns the tokens up to the error,
// together with the error.
func Collect(s *Scanner) ([]speclex.Token, error) {
	var tokens []speclex.Token
	for {
		token, err := s.Next()
		if err == io.EOF {
			return tokens, nil
		} else if err != nil {
			return tokens, err
		}
		tokens = append(tokens, token)
	}
}

// --- Scanner options -------------------------------------------------------

// Option configures a scanner.
type Option func(s *Scanner)

// WithErrorHandler sets the error handler used by NextToken.
func WithErrorHandler(h func(error)) Option {
	return func(s *Scanner) {
		s.SetErrorHandler(h)
	}
}

// EmitDiscarded sets or clears option EmitDiscarded: produce tokens for
// discarding specs (e.g., NEWLINE in the default catalog ordering) as well.
func EmitDiscarded(b bool) Option {
	return func(s *Scanner) {
		s.emitDiscarded = b
	}
}
