package utils

import "strings"

// StripBrackets removes every square bracket from an identifier.
//
// Examples:
//   - "[table]" -> "table"
//   - "table" -> "table"
//   - "[dbo].[table]" -> "dbo.table"
//   - "" -> ""
func StripBrackets(s string) string {
	return strings.NewReplacer("[", "", "]", "").Replace(s)
}

// SplitQualifiedName splits a schema-qualified name into its unbracketed parts.
// Dots inside brackets belong to the identifier and do not split it.
//
// Examples:
//   - "[addr].[GetAddressTypes]" -> ["addr", "GetAddressTypes"]
//   - "dbo.Orders" -> ["dbo", "Orders"]
//   - "[my.schema].[t]" -> ["my.schema", "t"]
//   - "Orders" -> ["Orders"]
//   - "" -> nil
func SplitQualifiedName(name string) []string {
	if name == "" {
		return nil
	}

	var (
		parts   []string
		current strings.Builder
		inside  bool
	)

	for _, r := range name {
		switch {
		case r == '[' && !inside:
			inside = true
		case r == ']' && inside:
			inside = false
		case r == '.' && !inside:
			parts = append(parts, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}

	return append(parts, current.String())
}
