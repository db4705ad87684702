/*
Package lexmach provides a DFA-based scanner, built with the lexmachine scanner
generator, producing speclex tokens.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

The spec-driven scanner of package scanner tries token specs one after the
other at every input position. For larger rule sets without lookaround this
gets slow, and a DFA is the better choice. Lexmachine's policy differs from
package scanner, though: the longest match wins, and only for matches of equal
length the rule added first wins. Lexmachine patterns do not support
lookahead or lookbehind.

Rules are given as a list, each with a token type, a lexmachine pattern and
optionally a converter and a subtype classifier, exactly like token specs.

	rules := []lexmach.Rule{
		lexmach.Keyword("if", "IF"),
		lexmach.Literal("+", "PLUS"),
		{Type: "ID", Pattern: `[a-zA-Z][a-zA-Z0-9]*`},
		{Type: "NUM", Pattern: `[0-9]+`, Converter: atoi},
		{Pattern: `( |\t|\n|\r)+`, Discard: true},
	}

Having that, clients use `NewLMAdapter` to compile the DFA.
NewLMAdapter will return an error if compiling the DFA failed.

	LM, err := lexmach.NewLMAdapter(rules)
	if err != nil {
		// do error handling
	}

A scanner is instantiated for each concrete input sequence.
The scanner implements the scanner.Tokenizer interface.

	scan, err := LM.Scanner("input string to tokenize")
	if err != nil {
		// do error handling
	}

Input no rule matches is skipped one character at a time, and tokens carry
zero-based line and column positions, counted in characters, just as with
package scanner.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
