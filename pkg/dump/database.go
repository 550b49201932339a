package dump

import (
	"regexp"
	"strings"
)

var usePattern = regexp.MustCompile(`(?i)USE \[(\w+)\]`)

// ExtractDatabaseName returns the database selected by a "USE [name]" statement
// on the first line of the dump. Later lines are never inspected.
//
// Example:
//
//	name, ok := dump.ExtractDatabaseName("USE [MyDatabase]\nGO\n...")
//	// name == "MyDatabase", ok == true
func ExtractDatabaseName(text string) (string, bool) {
	firstLine, _, _ := strings.Cut(text, "\n")

	match := usePattern.FindStringSubmatch(firstLine)
	if match == nil {
		return "", false
	}

	return match[1], true
}
