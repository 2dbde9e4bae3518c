package cpuinfo

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// CPUInfoLexer splits "key : value" text into lines. Values may contain
// further colons, so Colon is kept as its own token.
var CPUInfoLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Newline", Pattern: `\n`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Text", Pattern: `[^:\n]+`},
})
