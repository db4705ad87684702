package speclex

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/dlclark/regexp2"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSpecConstruction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "speclex.scanner")
	defer teardown()
	//
	if _, err := NewSpec("WORD", `[a-z]+`); err != nil {
		t.Errorf("expected valid spec, got error %v", err)
	}
	_, err := NewSpec("BROKEN", `[a-z`)
	var serr *SpecError
	if !errors.As(err, &serr) {
		t.Fatalf("expected SpecError for invalid pattern, got %v", err)
	}
	if serr.Type != "BROKEN" || serr.Pattern != `[a-z` {
		t.Errorf("SpecError does not identify spec: %v", serr)
	}
	if _, err = NewSpec("", `x`); err == nil {
		t.Errorf("expected error for empty token type")
	}
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected MustSpec to panic on invalid pattern")
		}
	}()
	MustSpec("BROKEN", `(`)
}

func TestMatchIsAnchored(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "speclex.scanner")
	defer teardown()
	//
	spec := MustSpec("NUM", `\d+`)
	text := []rune("ab 123 x")
	for i, test := range []struct {
		pos    int
		length int
	}{
		{0, 0}, // digits ahead, but not at pos
		{2, 0},
		{3, 3},
		{4, 2},
		{7, 0},
	} {
		l, err := spec.MatchAt(text, test.pos)
		if err != nil {
			t.Fatal(err)
		}
		if l != test.length {
			t.Errorf("test %d: expected match length %d at %d, have %d", i, test.length, test.pos, l)
		}
	}
}

func TestMatchSeesTextBehindPosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "speclex.scanner")
	defer teardown()
	//
	spec := MustSpec("INT", `(?<![\w.])\d+\b`)
	text := []rune("x12 .5 7")
	if l, _ := spec.MatchAt(text, 1); l != 0 {
		t.Errorf("lookbehind should reject digits inside a word, matched %d", l)
	}
	if l, _ := spec.MatchAt(text, 5); l != 0 {
		t.Errorf("lookbehind should reject digits after a dot, matched %d", l)
	}
	if l, _ := spec.MatchAt(text, 7); l != 1 {
		t.Errorf("expected digit to match at 7, matched %d", l)
	}
}

func TestMatchOptions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "speclex.scanner")
	defer teardown()
	//
	spec := MustSpec("KW", `select`, WithRegexOptions(regexp2.IgnoreCase))
	if l, _ := spec.MatchAt([]rune("SELECT *"), 0); l != 6 {
		t.Errorf("expected case-insensitive match of length 6, have %d", l)
	}
	if spec.Pattern() != "select" || spec.Type() != "KW" {
		t.Errorf("spec does not report its definition: %s", spec)
	}
	d := spec.Discarding()
	if !d.IsDiscarded() || spec.IsDiscarded() {
		t.Errorf("Discarding must return a discarding copy and leave the original alone")
	}
}

func TestConversionPipeline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "speclex.scanner")
	defer teardown()
	//
	atoi := func(raw string) (interface{}, error) {
		return strconv.Atoi(raw)
	}
	var seen string
	classify := func(raw string, typ TokType) TokType {
		seen = raw
		if raw == "42" {
			return "ANSWER"
		}
		return typ
	}
	typ, v, err := Convert("42", "INT", atoi, classify)
	if err != nil || typ != "ANSWER" || v != 42 {
		t.Errorf("expected ANSWER(42), have %s(%v), err=%v", typ, v, err)
	}
	if seen != "42" {
		t.Errorf("classifier should see the raw text, saw %q", seen)
	}
	typ, v, err = Convert("7", "INT", nil, nil)
	if err != nil || typ != "INT" || v != "7" {
		t.Errorf("expected raw value without converter, have %s(%v)", typ, v)
	}
	_, _, err = Convert("x", "INT", atoi, classify)
	if err == nil {
		t.Errorf("expected converter error to propagate")
	}
	spec := MustSpec("UPPER", `[a-z]+`, WithConverter(func(raw string) (interface{}, error) {
		return strings.ToUpper(raw), nil
	}))
	if _, v, _ := spec.Convert("abc"); v != "ABC" {
		t.Errorf("expected spec converter to be used, have %v", v)
	}
}

func TestAdvance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "speclex.scanner")
	defer teardown()
	//
	for i, test := range []struct {
		line, col int
		s         string
		l, c      int
	}{
		{0, 0, "abc", 0, 3},
		{2, 5, "ab\ncd", 3, 2},
		{0, 4, "\n\n", 2, 0},
		{1, 1, "äöü", 1, 4},
	} {
		l, c := Advance(test.line, test.col, test.s)
		if l != test.l || c != test.c {
			t.Errorf("test %d: expected %d:%d, have %d:%d", i, test.l, test.c, l, c)
		}
	}
}

func TestSpanOverlap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "speclex.scanner")
	defer teardown()
	//
	a, b, c := Span{0, 3}, Span{3, 5}, Span{2, 4}
	if a.Overlaps(b) || !a.Overlaps(c) || !c.Overlaps(b) {
		t.Errorf("span overlap computed incorrectly")
	}
	if b.Len() != 2 || !(Span{}).IsNull() {
		t.Errorf("span length/null computed incorrectly")
	}
}
