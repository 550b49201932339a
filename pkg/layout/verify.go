package layout

import (
	"bytes"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/mssqlsplit/pkg/consts"
	"github.com/pseudomuto/mssqlsplit/pkg/dump"
	"go.uber.org/multierr"
)

// ErrManifestMismatch is returned by Verify when the files below an output
// root differ from what objects.sum records.
var ErrManifestMismatch = errors.New("output does not match manifest")

// Verify loads objects.sum from root and checks every object file against it.
// The manifest is returned so callers can report what was checked.
//
// Example:
//
//	sum, err := layout.Verify("AddressBook")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Printf("%d files match\n", sum.Files())
func Verify(root string) (*SumFile, error) {
	manifest := filepath.Join(root, consts.ManifestFile)

	f, err := os.Open(manifest)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open manifest: %s", manifest)
	}
	defer func() { _ = f.Close() }()

	sum, err := LoadSumFile(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load manifest: %s", manifest)
	}

	return sum, sum.Verify(os.DirFS(root))
}

// Verify compares the files in fsys with the recorded hashes. Each file is
// hashed against the recorded hash of its predecessor, so one modified file
// does not flag every file after it. Object files in the type code directories
// that the manifest does not list are reported as well. Every problem found is
// returned, combined, each wrapping ErrManifestMismatch.
func (s *SumFile) Verify(fsys fs.FS) error {
	var (
		errs   error
		prev   []byte
		listed = make(map[string]bool, len(s.files))
	)

	for _, entry := range s.files {
		listed[entry.Name] = true

		data, err := fs.ReadFile(fsys, entry.Name)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			errs = multierr.Append(errs, errors.Wrapf(ErrManifestMismatch, "%s is missing", entry.Name))
		case err != nil:
			return errors.Wrapf(err, "failed to read file: %s", entry.Name)
		case !bytes.Equal(chainHash(data, prev), entry.Hash):
			errs = multierr.Append(errs, errors.Wrapf(ErrManifestMismatch, "%s has changed", entry.Name))
		}

		prev = entry.Hash
	}

	for _, kind := range dump.Kinds() {
		entries, err := fs.ReadDir(fsys, kind.TypeCode())
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return errors.Wrapf(err, "failed to read directory: %s", kind.TypeCode())
		}

		for _, e := range entries {
			name := path.Join(kind.TypeCode(), e.Name())
			if !e.IsDir() && strings.HasSuffix(e.Name(), consts.SQLExt) && !listed[name] {
				errs = multierr.Append(errs, errors.Wrapf(ErrManifestMismatch, "%s is not listed", name))
			}
		}
	}

	if errs != nil {
		return errs
	}

	recorded := s.TotalHash
	s.computeTotalHash()
	if recorded != s.TotalHash {
		s.TotalHash = recorded
		return errors.Wrap(ErrManifestMismatch, "total hash does not match the listed files")
	}

	return nil
}
