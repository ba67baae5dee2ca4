package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var SSALexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments
		{"Comment", `//[^\n]*`, nil},

		// Keywords and Identifiers (order matters)
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},

		// Integer literals, range checked by the parser
		{"Integer", `[0-9]+`, nil},

		// Operators
		{"Operator", `[-+*/=]`, nil},

		// Punctuation
		{"Punctuation", `[:;()]`, nil},

		// Whitespace
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
