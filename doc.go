/*
Package speclex is a lightweight, spec-driven lexical scanner.

Speclex converts raw text into a stream of typed, positioned tokens. Token
types are described by an ordered list of token specifications, each
consisting of a type name, a regular expression, and optionally a value
converter and a subtype classifier. Package structure is as follows:

■ speclex: The base package contains the data types used throughout all the
other packages: tokens, token specifications and the conversion pipeline.

■ scanner: Package scanner implements the scanning engine, which walks the
input and hands out tokens one at a time.

■ catalog: Package catalog provides ready-made token specifications for
dates, times, numbers, words, quotes, search terms and the like, together
with documented default orderings.

■ scanner/lexmach: Package lexmach is an alternative DFA-based scanner for
simple rule sets, backed by lexmachine.

Specifications are tried in the order given, anchored at the current input
position, and the first one that matches wins. There is no longest-match
disambiguation: clients have to put more specific specifications first.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package speclex
