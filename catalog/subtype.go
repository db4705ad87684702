package catalog

import (
	"strings"

	"github.com/npillmayer/speclex"
)

// Subtype maps a number of spellings to a canonical subtype name.
type Subtype struct {
	Name      string
	Spellings []string
}

// SubtypeAssignment creates a subtype classifier from a table of subtypes.
// Lookup is case-insensitive, subtype names are upper-cased. Raw text without
// an entry keeps the type it has been given. An empty table results in a nil
// classifier.
func SubtypeAssignment(subtypes []Subtype) speclex.SubtypeClassifier {
	if len(subtypes) == 0 {
		return nil
	}
	lookup := make(map[string]speclex.TokType)
	for _, st := range subtypes {
		for _, sp := range st.Spellings {
			lookup[strings.ToLower(sp)] = speclex.TokType(strings.ToUpper(st.Name))
		}
	}
	return func(raw string, typ speclex.TokType) speclex.TokType {
		if sub, ok := lookup[strings.ToLower(raw)]; ok {
			return sub
		}
		return typ
	}
}

// Weekdays is a subtype table for spec DAY.
var Weekdays = []Subtype{
	{"DAY_MONDAY", []string{"monday", "mon"}},
	{"DAY_TUESDAY", []string{"tuesday", "tue"}},
	{"DAY_WEDNESDAY", []string{"wednesday", "wed"}},
	{"DAY_THURSDAY", []string{"thursday", "thu"}},
	{"DAY_FRIDAY", []string{"friday", "fri"}},
	{"DAY_SATURDAY", []string{"saturday", "sat"}},
	{"DAY_SUNDAY", []string{"sunday", "sun"}},
}

// Months is a subtype table for spec MONTH.
var Months = []Subtype{
	{"MONTH_JANUARY", []string{"january", "jan"}},
	{"MONTH_FEBRUARY", []string{"february", "feb"}},
	{"MONTH_MARCH", []string{"march", "mar"}},
	{"MONTH_APRIL", []string{"april", "apr"}},
	{"MONTH_MAY", []string{"may"}},
	{"MONTH_JUNE", []string{"june", "jun"}},
	{"MONTH_JULY", []string{"july", "jul"}},
	{"MONTH_AUGUST", []string{"august", "aug"}},
	{"MONTH_SEPTEMBER", []string{"september", "sep"}},
	{"MONTH_OCTOBER", []string{"october", "oct"}},
	{"MONTH_NOVEMBER", []string{"november", "nov"}},
	{"MONTH_DECEMBER", []string{"december", "dec"}},
}

// names returns all spellings of a subtype table, capitalized, for use
// in a pattern. The table order is kept, so longer spellings come first.
func names(subtypes []Subtype) []string {
	var n []string
	for _, st := range subtypes {
		for _, sp := range st.Spellings {
			n = append(n, strings.ToUpper(sp[:1])+sp[1:])
		}
	}
	return n
}
