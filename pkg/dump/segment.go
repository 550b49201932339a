package dump

import (
	"strings"

	"github.com/pseudomuto/mssqlsplit/pkg/consts"
)

// Segment splits a dump into object chunks on consts.Delimiter.
//
// Text before the first delimiter (the USE [db] / GO preamble) is dropped, and
// every returned chunk starts with the delimiter again. Chunks are returned in
// the order they appear. A dump without any delimiter yields no chunks.
func Segment(text string) []string {
	return SegmentWith(text, consts.Delimiter)
}

// SegmentWith is Segment with a custom delimiter. An empty delimiter falls back
// to consts.Delimiter.
func SegmentWith(text, delimiter string) []string {
	if delimiter == "" {
		delimiter = consts.Delimiter
	}

	pieces := strings.Split(text, delimiter)
	if len(pieces) < 2 {
		return nil
	}

	chunks := make([]string, 0, len(pieces)-1)
	for _, piece := range pieces[1:] {
		chunks = append(chunks, delimiter+piece)
	}

	return chunks
}
