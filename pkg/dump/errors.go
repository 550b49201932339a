package dump

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrNoObjects is returned when a dump contains no object delimiter at all.
// Segment itself never returns it; callers decide whether an empty dump is a failure.
var ErrNoObjects = errors.New("no database objects found in dump")

// ParseError reports a chunk whose text has no CREATE FUNCTION, CREATE PROCEDURE
// or CREATE TABLE signature.
type ParseError struct {
	// Chunk is the complete offending chunk, delimiter included
	Chunk string
}

func (e *ParseError) Error() string {
	line, _, _ := strings.Cut(e.Chunk, "\n")
	line = strings.TrimSpace(line)
	if r := []rune(line); len(r) > 80 {
		line = string(r[:80]) + "..."
	}

	return fmt.Sprintf("no object signature found in chunk %q", line)
}
