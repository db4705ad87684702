/*
Package tokrepl/main provides an interactive command line tool (TOK.REPL)
for experimenting with token spec orderings. Every line entered is run
through a scanner and the resulting tokens are displayed together with
their positions and converted values.

Lines starting with a colon are commands:

	:catalog <name>   switch the spec ordering (default, datetime, numeric, full)
	:specs            list the specs of the current ordering, in priority order
	:names            list all token types of the catalog
	:help             show the commands
	:quit             leave TOK.REPL

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'speclex.cli'
func tracer() tracing.Trace {
	return tracing.Select("speclex.cli")
}
