package dump

import (
	"path"
	"regexp"
	"strings"

	"github.com/pseudomuto/mssqlsplit/pkg/consts"
	"github.com/pseudomuto/mssqlsplit/pkg/utils"
)

var (
	// signaturePattern finds the CREATE line of an object. The name is the
	// longest run of characters that are not whitespace, '^' or '('. RE2's \s
	// is ASCII only, so vertical tab, the information separators, NEL and the
	// Unicode separators (e.g. U+00A0) are listed explicitly.
	signaturePattern = regexp.MustCompile(`(?i)CREATE (FUNCTION|PROCEDURE|TABLE) ([^\s\v\x1c-\x1f\x{85}\p{Z}^(]+)`)

	// scriptDatePattern matches the generator timestamp, which always runs up to
	// the closing "*/" of the header comment.
	scriptDatePattern = regexp.MustCompile(`Script Date: [^*]+`)
)

// Object is a single function, stored procedure or table definition taken from
// a dump. Objects are created by Classify and never change afterwards.
type Object struct {
	text   string
	kind   Kind
	name   string
	header *Header
}

// Classify builds an Object from a chunk produced by Segment.
//
// The chunk is searched for the first occurrence of
//
//	CREATE FUNCTION|PROCEDURE|TABLE <name>
//
// where the keywords are matched case-insensitively and <name> is taken verbatim,
// e.g. "[addr].[GetAddressTypes]". Capture of the name stops at whitespace or an
// opening parenthesis, so "CREATE TABLE [addr].[ADDRESS_TYPES](" yields
// "[addr].[ADDRESS_TYPES]".
//
// A chunk without a signature returns a *ParseError carrying the chunk.
//
// Example:
//
//	obj, err := dump.Classify("/****** Object: ... ******/\nCREATE PROCEDURE [addr].[GetAddressTypes]\nAS ...")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Println(obj.TypeCode(), obj.FileSafeName()) // SP addr_GetAddressTypes_SP
func Classify(chunk string) (*Object, error) {
	match := signaturePattern.FindStringSubmatch(chunk)
	if match == nil {
		return nil, &ParseError{Chunk: chunk}
	}

	// The alternation only admits the three keywords, so this cannot fail.
	kind, _ := ParseKind(match[1])

	obj := &Object{
		text: chunk,
		kind: kind,
		name: match[2],
	}

	firstLine, _, _ := strings.Cut(chunk, "\n")
	if header, err := ParseHeader(firstLine); err == nil {
		obj.header = header
	}

	return obj, nil
}

// Text returns the chunk exactly as it appeared in the dump.
func (o *Object) Text() string { return o.text }

// Kind returns the object kind.
func (o *Object) Kind() Kind { return o.kind }

// Name returns the qualified name as written in the signature, brackets included.
func (o *Object) Name() string { return o.name }

// Header returns the parsed generator comment, or nil when it could not be parsed.
func (o *Object) Header() *Header { return o.header }

// TypeCode returns FN, SP or TB.
func (o *Object) TypeCode() string { return o.kind.TypeCode() }

// Schema returns the schema part of the qualified name, or "" for an
// unqualified name.
func (o *Object) Schema() string {
	parts := utils.SplitQualifiedName(o.name)
	if len(parts) < 2 {
		return ""
	}

	return parts[len(parts)-2]
}

// FileSafeName derives the output file name (without extension) from the
// qualified name: dots become underscores, brackets are dropped and the type
// code is appended.
//
// Examples:
//   - PROCEDURE [addr].[GetAddressTypes] -> addr_GetAddressTypes_SP
//   - FUNCTION [addr].[InstitutionCountryCode] -> addr_InstitutionCountryCode_FN
//
// Distinct names such as [a].[b_c] and [a_b].[c] map to the same file name.
func (o *Object) FileSafeName() string {
	name := strings.ReplaceAll(o.name, ".", "_")
	return utils.StripBrackets(name) + "_" + o.TypeCode()
}

// Path returns the slash separated output path relative to the output root,
// e.g. "SP/addr_GetAddressTypes_SP.sql".
func (o *Object) Path() string {
	return path.Join(o.TypeCode(), o.FileSafeName()+consts.SQLExt)
}

// UndatedText returns the text with every "Script Date: ..." timestamp removed,
// so dumps of unchanged objects taken at different times produce identical files.
func (o *Object) UndatedText() string {
	return RemoveScriptDates(o.text)
}

// RemoveScriptDates strips generator timestamps from s. Applying it more than
// once has no further effect.
func RemoveScriptDates(s string) string {
	return scriptDatePattern.ReplaceAllString(s, "")
}
