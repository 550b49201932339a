package layout

import (
	"bytes"
	"io/fs"
	"log/slog"
	"strings"
	"testing/fstest"

	"github.com/pkg/errors"
	"github.com/pseudomuto/mssqlsplit/pkg/consts"
	"github.com/pseudomuto/mssqlsplit/pkg/dump"
)

// ErrCollision is returned under CollisionError when two objects map to the same file.
var ErrCollision = errors.New("output file name collision")

// CollisionPolicy decides what happens when two objects map to the same output file.
type CollisionPolicy int

const (
	// CollisionOverwrite lets the later object replace the earlier one.
	CollisionOverwrite CollisionPolicy = iota

	// CollisionError rejects the image with ErrCollision.
	CollisionError
)

// ParseCollisionPolicy converts a configuration value ("overwrite" or "error")
// to a CollisionPolicy. An empty value selects CollisionOverwrite.
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "overwrite":
		return CollisionOverwrite, nil
	case "error":
		return CollisionError, nil
	default:
		return CollisionOverwrite, errors.Errorf("unknown collision policy: %s (expected overwrite or error)", s)
	}
}

func (p CollisionPolicy) String() string {
	if p == CollisionError {
		return "error"
	}

	return "overwrite"
}

// Image is the in-memory form of an output directory.
type Image struct {
	// FS holds the type code directories and every file keyed by its slash
	// separated path relative to the output root.
	FS fstest.MapFS

	// Files lists the file paths in dump order. When enabled, the manifest comes last.
	Files []string
}

// GenerateImage lays out objects the way they are stored on disk:
//   - FN/, SP/ and TB/ directories, present even when empty
//   - <type code>/<file safe name>.sql for each object
//   - objects.sum at the root when opts.Manifest is set
//
// File content is the object's undated text unless opts.KeepDates is set.
//
// Example:
//
//	objects, _ := dump.ParseAll(dump.Segment(text), dump.FailFast)
//	img, err := layout.GenerateImage(objects, layout.Options{})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	data, _ := fs.ReadFile(img.FS, "SP/addr_GetAddressTypes_SP.sql")
func GenerateImage(objects []*dump.Object, opts Options) (*Image, error) {
	img := &Image{FS: make(fstest.MapFS)}

	for _, kind := range dump.Kinds() {
		img.FS[kind.TypeCode()] = &fstest.MapFile{Mode: fs.ModeDir | consts.ModeDir}
	}

	owners := make(map[string]*dump.Object, len(objects))
	for _, obj := range objects {
		path := obj.Path()

		if prev, ok := owners[path]; ok {
			if opts.Collisions == CollisionError {
				return nil, errors.Wrapf(ErrCollision, "%s and %s both map to %s", prev.Name(), obj.Name(), path)
			}

			slog.Warn("Object replaces an earlier object with the same file name",
				"path", path,
				"previous", prev.Name(),
				"object", obj.Name(),
			)
		} else {
			img.Files = append(img.Files, path)
		}

		owners[path] = obj
		img.FS[path] = &fstest.MapFile{Data: []byte(content(obj, opts)), Mode: consts.ModeFile}
	}

	if opts.Manifest {
		sum := NewSumFile()
		for _, path := range img.Files {
			sum.AddFile(path, img.FS[path].Data)
		}

		var buf bytes.Buffer
		if _, err := sum.WriteTo(&buf); err != nil {
			return nil, errors.Wrap(err, "failed to generate manifest")
		}

		img.FS[consts.ManifestFile] = &fstest.MapFile{Data: buf.Bytes(), Mode: consts.ModeFile}
		img.Files = append(img.Files, consts.ManifestFile)
	}

	return img, nil
}

func content(obj *dump.Object, opts Options) string {
	if opts.KeepDates {
		return obj.Text()
	}

	return obj.UndatedText()
}
