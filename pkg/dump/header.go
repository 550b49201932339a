package dump

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

var (
	// headerLexer tokenizes the generator comment that starts every object, e.g.
	//
	//	/****** Object:  StoredProcedure [addr].[GetAddressTypes]    Script Date: 1/2/2020 10:00:00 AM ******/
	headerLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Open", Pattern: `/\*+`},
		{Name: "Close", Pattern: `\*+/`},
		{Name: "ScriptDate", Pattern: `Script Date:[^*]*`},
		{Name: "BracketIdent", Pattern: `\[[^\]]*\]`},
		{Name: "Ident", Pattern: `[a-zA-Z_@#][a-zA-Z0-9_@#$]*`},
		{Name: "Punct", Pattern: `[.:]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	headerParser = participle.MustBuild[Header](
		participle.Lexer(headerLexer),
		participle.Elide("Whitespace"),
	)
)

// Header is the parsed generator comment in front of an object definition.
type Header struct {
	// ObjectType is the generator's type label, e.g. StoredProcedure,
	// UserDefinedFunction or Table
	ObjectType string `parser:"Open 'Object' ':' @Ident"`

	// Name is the qualified object name, e.g. [addr].[GetAddressTypes]
	Name string `parser:"@(BracketIdent | Ident) ( @'.' @(BracketIdent | Ident) )*"`

	// RawDate holds the "Script Date: ..." token when present
	RawDate string `parser:"@ScriptDate? Close"`
}

// ParseHeader parses a single generator comment line.
//
// Example:
//
//	h, err := dump.ParseHeader("/****** Object:  Table [addr].[ADDRESS_TYPES]    Script Date: 1/2/2020 ******/")
//	// h.ObjectType == "Table", h.Name == "[addr].[ADDRESS_TYPES]", h.ScriptDate() == "1/2/2020"
func ParseHeader(line string) (*Header, error) {
	h, err := headerParser.ParseString("", strings.TrimSpace(line))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse object header")
	}

	return h, nil
}

// ScriptDate returns the timestamp text without its label, or "" when the
// header has none.
func (h *Header) ScriptDate() string {
	return strings.TrimSpace(strings.TrimPrefix(h.RawDate, "Script Date:"))
}
