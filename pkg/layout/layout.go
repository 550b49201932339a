package layout

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/pseudomuto/mssqlsplit/pkg/consts"
	"github.com/pseudomuto/mssqlsplit/pkg/dump"
)

type (
	// Options control how objects are laid out. The zero value reproduces the
	// classic behavior: timestamps stripped, collisions overwrite, no manifest.
	Options struct {
		// Collisions selects what happens when two objects share a file name
		Collisions CollisionPolicy

		// KeepDates writes the original text instead of the undated text
		KeepDates bool

		// Manifest adds an objects.sum file listing a hash for every object file
		Manifest bool
	}

	// Layout writes objects below an output root.
	Layout struct {
		root string
		opts Options
	}

	// Result describes a completed write.
	Result struct {
		// Root is the output directory
		Root string

		// Files holds the full path of every file written, in write order
		Files []string
	}
)

// New creates a Layout rooted at root. Nothing is touched on disk until
// Prepare or Write is called.
func New(root string, opts Options) *Layout {
	return &Layout{root: root, opts: opts}
}

// Root returns the output directory.
func (l *Layout) Root() string {
	return l.root
}

// Prepare creates the output root and one directory per type code. It is
// idempotent and always creates all three directories, whether or not any
// object of that type will be written.
func (l *Layout) Prepare() error {
	for _, kind := range dump.Kinds() {
		dir := filepath.Join(l.root, kind.TypeCode())
		if err := os.MkdirAll(dir, consts.ModeDir); err != nil {
			return errors.Wrapf(err, "failed to create directory %s", dir)
		}
	}

	return nil
}

// Write prepares the layout and writes every object (and the manifest, when
// enabled) to disk. Existing files are overwritten.
//
// Example:
//
//	l := layout.New("AddressBook", layout.Options{Manifest: true})
//	res, err := l.Write(objects)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Printf("Wrote %d files\n", len(res.Files))
func (l *Layout) Write(objects []*dump.Object) (*Result, error) {
	img, err := GenerateImage(objects, l.opts)
	if err != nil {
		return nil, err
	}

	if err := l.Prepare(); err != nil {
		return nil, err
	}

	files, err := overlayImage(l.root, img)
	if err != nil {
		return nil, err
	}

	return &Result{Root: l.root, Files: files}, nil
}

// overlayImage materializes the files of img below targetDir in img.Files
// order, replacing files that already exist.
func overlayImage(targetDir string, img *Image) ([]string, error) {
	written := make([]string, 0, len(img.Files))

	for _, path := range img.Files {
		targetPath := filepath.Join(targetDir, filepath.FromSlash(path))

		if err := os.MkdirAll(filepath.Dir(targetPath), consts.ModeDir); err != nil {
			return written, errors.Wrapf(err, "failed to create directory for %s", targetPath)
		}

		if err := os.WriteFile(targetPath, img.FS[path].Data, consts.ModeFile); err != nil {
			return written, errors.Wrapf(err, "failed to write file %s", targetPath)
		}

		slog.Info("Wrote file", "path", targetPath)
		written = append(written, targetPath)
	}

	return written, nil
}
