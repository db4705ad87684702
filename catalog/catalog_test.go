package catalog

import (
	"testing"
	"time"

	"github.com/maxatome/go-testdeep/td"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/speclex"
)

// match returns the anchored match of spec at the start of input, or "".
func match(t *testing.T, spec *speclex.TokenSpec, input string, pos int) string {
	text := []rune(input)
	l, err := spec.MatchAt(text, pos)
	if err != nil {
		t.Fatal(err)
	}
	return string(text[pos : pos+l])
}

func TestPatterns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "speclex.catalog")
	defer teardown()
	//
	for i, test := range []struct {
		spec  *speclex.TokenSpec
		input string
		pos   int
		match string
	}{
		{Timestamp(), "2008-07-25 02:45 rest", 0, "2008-07-25 02:45"},
		{Timestamp(), "08/07/25T9:00 PM", 0, "08/07/25T9:00 PM"},
		{Date(), "1955.11.05.", 0, "1955.11.05"},
		{Time(), "16:20-06:00", 0, "16:20-06:00"},
		{Time(), "4:20", 0, "4:20"},
		{Time(), "12:00 at noon", 0, "12:00"},
		{Time(), "7:00 pizza", 0, "7:00"},
		{Time(), "9:00pm, then", 0, "9:00pm"},
		{Timestamp(), "2008-07-25 02:45 pending", 0, "2008-07-25 02:45"},
		{RelDate(), "next weekend", 5, "weekend"},
		{RelDate(), "Q3 results", 0, "Q3"},
		{RelDate(), "birthday", 5, ""},
		{Month(), "in Sept", 3, ""},
		{Month(), "Sep 1", 0, "Sep"},
		{Day(), "Sunday", 0, "Sunday"},
		{Day(), "Sundays", 0, ""},
		{Number(), "1e-3,", 0, "1e-3"},
		{Number(), "42", 0, ""},
		{Integer(), "x42", 1, ""},
		{Integer(), "3.14", 0, ""},
		{Integer(), "1e-3", 3, ""},
		{Integer(), "1,005.", 0, "1,005"},
		{AlphaNum(), "abc-12 x", 0, "abc-12"},
		{Newline(), "\r\nx", 0, "\r\n"},
		{Punctuation(), "?!x", 0, "?!"},
		{Quote(), `"a b" c`, 0, `"a b"`},
		{Quote(), `"unterminated`, 0, ""},
		{SearchTerm(), "size>=10 x", 0, "size>=10"},
		{SearchTerm(), "02:45:00", 0, ""},
		{UUIDString(), "123e4567-e89b-12d3-a456-426614174000", 0, "123e4567-e89b-12d3-a456-426614174000"},
		{Word(), "we'll go", 0, "we'll"},
		{Word(), "'em", 0, ""},
	} {
		if m := match(t, test.spec, test.input, test.pos); m != test.match {
			t.Errorf("test %d: expected %s to match %q in %q, matched %q",
				i, test.spec.Type(), test.match, test.input, m)
		}
	}
}

func TestDateConversion(tt *testing.T) {
	teardown := gotestingadapter.QuickConfig(tt, "speclex.catalog")
	defer teardown()
	//
	t := td.Assert(tt)
	v, err := convertDate("2015/10/21")
	t.CmpNoError(err)
	t.Cmp(v, time.Date(2015, 10, 21, 0, 0, 0, 0, time.UTC))
	v, err = convertDate("85-10-26")
	t.CmpNoError(err)
	t.Cmp(v.(time.Time).Year(), 1985)
	v, err = convertDate("15.10.21")
	t.CmpNoError(err)
	t.Cmp(v.(time.Time).Year(), 2015)
	for _, invalid := range []string{"2021-02-29", "2021-13-01", "2021-00-10", "2021-04-31", "2021-01-00"} {
		_, err = convertDate(invalid)
		t.CmpError(err, invalid+" should be rejected")
	}
	_, err = convertDate("٢٠٢١-٠٢-١٠")
	t.CmpError(err)
	t.Contains(err.Error(), "invalid year")
	_, err = convertDate("2020-02-29") // leap year
	t.CmpNoError(err)
}

func TestClockConversion(tt *testing.T) {
	teardown := gotestingadapter.QuickConfig(tt, "speclex.catalog")
	defer teardown()
	//
	t := td.Assert(tt)
	for _, test := range []struct {
		raw   string
		clock string
	}{
		{"21:00", "21:00:00"},
		{"9:00 PM", "21:00:00"},
		{"9:00pm", "21:00:00"},
		{"12:15 AM", "00:15:00"},
		{"12:15 PM", "12:15:00"},
		{"04:20Z", "04:20:00+00:00"},
		{"16:20-06:00", "16:20:00-06:00"},
		{"02:45:00.5", "02:45:00.500000000"},
		{"02:45:00.000000+01:30", "02:45:00+01:30"},
	} {
		c, err := parseClock(test.raw)
		if t.CmpNoError(err, test.raw) {
			t.Cmp(c.String(), test.clock, test.raw)
		}
	}
	for _, invalid := range []string{"24:00", "13:00 PM", "0:30 AM", "10:60", "10:30:61", "10:00+24:00",
		"12:00 a", "7:00 p", "١٢:٣٠", "10:30:٤٥", "10:30:00.٥", "10:00+٠١:00"} {
		_, err := parseClock(invalid)
		t.CmpError(err, invalid+" should be rejected")
	}
}

func TestTimestampConversion(tt *testing.T) {
	teardown := gotestingadapter.QuickConfig(tt, "speclex.catalog")
	defer teardown()
	//
	t := td.Assert(tt)
	v, err := convertTimestamp("2008-07-25T02:45:00.000000-05:00")
	t.CmpNoError(err)
	want := time.Date(2008, 7, 25, 7, 45, 0, 0, time.UTC)
	t.True(v.(time.Time).Equal(want), "expected %v, have %v", want, v)
	v, err = convertTimestamp("2008-07-25 9:00 PM")
	t.CmpNoError(err)
	t.True(v.(time.Time).Equal(time.Date(2008, 7, 25, 21, 0, 0, 0, time.UTC)))
	_, err = convertTimestamp("2008-02-30T10:00")
	t.CmpError(err)
}

func TestNumericConverters(tt *testing.T) {
	teardown := gotestingadapter.QuickConfig(tt, "speclex.catalog")
	defer teardown()
	//
	t := td.Assert(tt)
	v, err := convertFloat("2,000.0")
	t.CmpNoError(err)
	t.Cmp(v, 2000.0)
	v, err = convertFloat("2_000.0")
	t.CmpNoError(err)
	t.Cmp(v, 2000.0)
	v, err = convertInt("1,005")
	t.CmpNoError(err)
	t.Cmp(v, 1005)
	v, err = convertInt("-4")
	t.CmpNoError(err)
	t.Cmp(v, -4)
	_, err = convertInt("99999999999999999999999")
	t.CmpError(err)
}

func TestTermConversion(tt *testing.T) {
	teardown := gotestingadapter.QuickConfig(tt, "speclex.catalog")
	defer teardown()
	//
	t := td.Assert(tt)
	v, err := convertTerm("size>=10")
	t.CmpNoError(err)
	t.Cmp(v, Term{Key: "size", Op: ">=", Value: "10"})
	t.Cmp(v.(Term).String(), "size>=10")
	v, err = convertTerm("due-date:2021-01.v2")
	t.CmpNoError(err)
	t.Cmp(v, Term{Key: "due-date", Op: ":", Value: "2021-01.v2"})
}

func TestSubtypeAssignment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "speclex.catalog")
	defer teardown()
	//
	assign := SubtypeAssignment([]Subtype{
		{"greeting", []string{"hello", "Hi", "HOWDY"}},
		{"farewell", []string{"bye"}},
	})
	for i, test := range []struct {
		raw string
		typ speclex.TokType
	}{
		{"hello", "GREETING"},
		{"HELLO", "GREETING"},
		{"hi", "GREETING"},
		{"Howdy", "GREETING"},
		{"bye", "FAREWELL"},
		{"later", "WORD"},
	} {
		if typ := assign(test.raw, "WORD"); typ != test.typ {
			t.Errorf("test %d: expected %q to be %s, is %s", i, test.raw, test.typ, typ)
		}
	}
	if SubtypeAssignment(nil) != nil {
		t.Errorf("expected nil classifier for empty subtype table")
	}
	day := Day(Weekdays...)
	if typ, v, _ := day.Convert("Mon"); typ != "DAY_MONDAY" || v != "Mon" {
		t.Errorf("expected DAY_MONDAY(Mon), have %s(%v)", typ, v)
	}
	month := Month(Months...)
	if typ, _, _ := month.Convert("May"); typ != "MONTH_MAY" {
		t.Errorf("expected MONTH_MAY, have %s", typ)
	}
}

func TestRegistry(tt *testing.T) {
	teardown := gotestingadapter.QuickConfig(tt, "speclex.catalog")
	defer teardown()
	//
	t := td.Assert(tt)
	r := NewRegistry()
	t.Cmp(r.Names(), []speclex.TokType{
		ALPHANUM, DATE, DAY, INTEGER, MONTH, NEWLINE, NUMBER, PUNCTUATION,
		QUOTE, RELDATE, TERM, TIME, TIMESTAMP, UUID, WORD,
	})
	spec, ok := r.Lookup(WORD)
	t.True(ok)
	t.Cmp(spec.Type(), WORD)
	_, ok = r.Lookup("NOPE")
	t.False(ok)
	specs, err := r.Specs(DATE, TIME)
	t.CmpNoError(err)
	t.Cmp(len(specs), 2)
	t.Cmp(specs[0].Type(), DATE)
	_, err = r.Specs(DATE, "NOPE")
	t.CmpError(err)
	//
	var types []speclex.TokType
	for _, s := range r.DefaultSpecs() {
		types = append(types, s.Type())
	}
	t.Cmp(types, []speclex.TokType{QUOTE, TERM, NEWLINE, WORD, PUNCTUATION})
	t.True(r.DefaultSpecs()[2].IsDiscarded())
	nl, _ := r.Lookup(NEWLINE)
	t.False(nl.IsDiscarded())
	t.Cmp(len(r.FullSpecs()), 14)
	//
	t.Cmp(Default(), td.Shallow(Default()))
}

func TestRegistryMemoizesParameterizedSpecs(tt *testing.T) {
	teardown := gotestingadapter.QuickConfig(tt, "speclex.catalog")
	defer teardown()
	//
	t := td.Assert(tt)
	r := NewRegistry()
	w1 := r.Word([]Subtype{{"STOP", []string{"the", "a"}}}...)
	w2 := r.Word([]Subtype{{"STOP", []string{"the", "a"}}}...)
	w3 := r.Word([]Subtype{{"STOP", []string{"the"}}}...)
	t.True(w1 == w2, "equal subtype tables should yield the same spec")
	t.True(w1 != w3, "different subtype tables should yield different specs")
	t.True(r.Day(Weekdays...) == r.Day(Weekdays...))
	t.True(r.Day(Weekdays...) != r.Month(Months...))
	t.True(r.AlphaNum() == r.AlphaNum())
	typ, _, _ := w1.Convert("The")
	t.Cmp(typ, speclex.TokType("STOP"))
}
