package dump

import (
	"github.com/gobwas/glob"
	"github.com/pkg/errors"
)

// compiledPattern holds both the pattern string and compiled glob
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// Filter selects objects by glob patterns matched against Object.FileSafeName.
type Filter struct {
	include []compiledPattern
	exclude []compiledPattern
}

// NewFilter compiles include and exclude patterns such as "addr_*" or "*_SP".
// An object is kept when it matches any include pattern (or no include patterns
// were given) and matches no exclude pattern.
func NewFilter(include, exclude []string) (*Filter, error) {
	f := &Filter{}

	for _, pattern := range include {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid include pattern: %s", pattern)
		}
		f.include = append(f.include, compiledPattern{pattern: pattern, glob: g})
	}

	for _, pattern := range exclude {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid exclude pattern: %s", pattern)
		}
		f.exclude = append(f.exclude, compiledPattern{pattern: pattern, glob: g})
	}

	return f, nil
}

// Match reports whether obj passes the filter. A nil Filter matches everything.
func (f *Filter) Match(obj *Object) bool {
	if f == nil {
		return true
	}

	name := obj.FileSafeName()
	for _, p := range f.exclude {
		if p.glob.Match(name) {
			return false
		}
	}

	if len(f.include) == 0 {
		return true
	}

	for _, p := range f.include {
		if p.glob.Match(name) {
			return true
		}
	}

	return false
}

// Apply returns the objects that pass the filter, preserving order.
func (f *Filter) Apply(objects []*Object) []*Object {
	kept := make([]*Object, 0, len(objects))
	for _, obj := range objects {
		if f.Match(obj) {
			kept = append(kept, obj)
		}
	}

	return kept
}
