package catalog

import (
	"strconv"
	"strings"

	"github.com/npillmayer/speclex"
)

// digit group separators are dropped before conversion
var separators = strings.NewReplacer(",", "", "_", "")

// Number creates a spec for type NUMBER: floating point numbers with a
// decimal point or an exponent. Values are of type float64.
func Number() *speclex.TokenSpec {
	return speclex.MustSpec(NUMBER, `-?\d[\d_]*[e\.]-?\d+`, speclex.WithConverter(convertFloat))
}

// Integer creates a spec for type INTEGER. Integers must not be part of a
// word, a floating point number or an exponent. A single ',' or '_' may
// separate digit groups, as in "1,005". Values are of type int.
func Integer() *speclex.TokenSpec {
	return speclex.MustSpec(INTEGER,
		`(?<![\.\d\w])(?<!e-)\-?\d(?:[\,_]\d)?\d*(?!\.\d)(?![\d_e])\b`,
		speclex.WithConverter(convertInt))
}

func convertFloat(raw string) (interface{}, error) {
	return strconv.ParseFloat(separators.Replace(raw), 64)
}

func convertInt(raw string) (interface{}, error) {
	return strconv.Atoi(separators.Replace(raw))
}
