package rpt

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// ReportLexer defines the token structure of pcbnew placement reports.
// The format is a flat stream of keywords and numbers; block structure is
// carried by $MODULE/$PAD marker words, not by nesting syntax, so the lexer
// only has to split words from numeric values.
var ReportLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments run to end of line
	{Name: "Comment", Pattern: `#[^\n]*`},

	// Whitespace
	{Name: "Whitespace", Pattern: `\s+`},

	// Numeric values (reports use plain and signed decimals)
	{Name: "Number", Pattern: `[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`},

	// Everything else: section markers, field keywords, reference names
	{Name: "Word", Pattern: `\S+`},
})
