package dump

import (
	"fmt"
	"strings"
)

// Kind identifies the type of a scripted database object.
type Kind int

const (
	KindFunction Kind = iota + 1
	KindProcedure
	KindTable
)

// Kinds returns every supported kind in type code order.
func Kinds() []Kind {
	return []Kind{KindFunction, KindProcedure, KindTable}
}

// ParseKind maps a signature keyword (FUNCTION, PROCEDURE or TABLE, in any case)
// to its Kind.
func ParseKind(keyword string) (Kind, bool) {
	switch strings.ToUpper(keyword) {
	case "FUNCTION":
		return KindFunction, true
	case "PROCEDURE":
		return KindProcedure, true
	case "TABLE":
		return KindTable, true
	default:
		return 0, false
	}
}

// String returns the SQL keyword for the kind.
func (k Kind) String() string {
	switch k {
	case KindFunction:
		return "FUNCTION"
	case KindProcedure:
		return "PROCEDURE"
	case KindTable:
		return "TABLE"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// TypeCode returns the two letter code used to bucket output files:
//   - KindFunction -> FN
//   - KindProcedure -> SP
//   - KindTable -> TB
//
// Kinds are only produced by ParseKind and Classify, so any other value is a
// programming error and panics.
func (k Kind) TypeCode() string {
	switch k {
	case KindFunction:
		return "FN"
	case KindProcedure:
		return "SP"
	case KindTable:
		return "TB"
	default:
		panic(fmt.Sprintf("dump: no type code for %s", k))
	}
}
