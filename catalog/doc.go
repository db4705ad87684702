/*
Package catalog provides ready-made token specifications.

Factories create specs for timestamps, dates, clock times, relative dates,
calendar names, numbers, words, quotes, search terms and the like. Every
call to a factory compiles a fresh spec; clients which need specs more than
once should use a Registry, which builds its specs once and hands them out
read-only.

Spec order is significant for scanners: the first spec matching at an input
position wins. Some specs overlap: a timestamp is also a date followed by a
clock time, and a clock time "02:45" is also a search term with key "02".
More specific specs have to come first. The Registry provides
documented orderings:

	DefaultSpecs()   QUOTE, TERM, NEWLINE (discarded), WORD, PUNCTUATION
	DateTimeSpecs()  TIMESTAMP, DATE, TIME
	NumericSpecs()   INTEGER, NUMBER
	FullSpecs()      QUOTE, NEWLINE (discarded), UUID, TIMESTAMP, DATE, TIME,
	                 TERM, NUMBER, INTEGER, RELDATE, MONTH, DAY, WORD,
	                 PUNCTUATION

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package catalog

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/speclex"
)

// tracer traces with key 'speclex.catalog'.
func tracer() tracing.Trace {
	return tracing.Select("speclex.catalog")
}

// Token types of the catalog.
const (
	TIMESTAMP   speclex.TokType = "TIMESTAMP"
	DATE        speclex.TokType = "DATE"
	TIME        speclex.TokType = "TIME"
	RELDATE     speclex.TokType = "RELDATE"
	MONTH       speclex.TokType = "MONTH"
	DAY         speclex.TokType = "DAY"
	NUMBER      speclex.TokType = "NUMBER"
	INTEGER     speclex.TokType = "INTEGER"
	ALPHANUM    speclex.TokType = "ALPHANUM"
	NEWLINE     speclex.TokType = "NEWLINE"
	PUNCTUATION speclex.TokType = "PUNCTUATION"
	QUOTE       speclex.TokType = "QUOTE"
	TERM        speclex.TokType = "TERM"
	UUID        speclex.TokType = "UUID"
	WORD        speclex.TokType = "WORD"
)
