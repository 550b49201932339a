package dump

import (
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// FailurePolicy controls what ParseAll does with chunks that fail to classify.
type FailurePolicy int

const (
	// FailFast stops at the first chunk without a signature.
	FailFast FailurePolicy = iota

	// Collect classifies every chunk and reports all failures together.
	Collect
)

// ParseFailurePolicy converts a configuration value ("fail" or "collect") to a FailurePolicy.
// An empty value selects FailFast.
func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fail":
		return FailFast, nil
	case "collect":
		return Collect, nil
	default:
		return FailFast, errors.Errorf("unknown failure policy: %s (expected fail or collect)", s)
	}
}

func (p FailurePolicy) String() string {
	if p == Collect {
		return "collect"
	}

	return "fail"
}

// ParseAll classifies chunks in order.
//
// With FailFast the first failure is returned along with no objects. With
// Collect every classifiable chunk is returned, in order, together with an
// error combining one *ParseError per bad chunk (see multierr.Errors).
//
// Example:
//
//	objects, err := dump.ParseAll(dump.Segment(text), dump.Collect)
//	for _, e := range multierr.Errors(err) {
//		log.Println(e)
//	}
func ParseAll(chunks []string, policy FailurePolicy) ([]*Object, error) {
	var (
		objects = make([]*Object, 0, len(chunks))
		errs    error
	)

	for i, chunk := range chunks {
		obj, err := Classify(chunk)
		if err != nil {
			err = errors.Wrapf(err, "object %d", i+1)
			if policy == FailFast {
				return nil, err
			}

			errs = multierr.Append(errs, err)
			continue
		}

		objects = append(objects, obj)
	}

	return objects, errs
}
