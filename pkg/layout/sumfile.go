package layout

import (
	"bufio"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

type (
	// SumFile lists every object file written by a run with its hash, plus a
	// total hash computed as SHA256 of all file hashes. Individual file hashes
	// are chained: each incorporates the previous file's hash, so reordering
	// objects in a dump changes the manifest.
	SumFile struct {
		files     []fileEntry
		TotalHash string // Total hash (H1 format) = SHA256(all file hashes)
	}

	fileEntry struct {
		Name string
		Hash []byte // Raw SHA256 hash bytes
	}
)

// NewSumFile creates a new empty SumFile ready to accept files.
//
// Example:
//
//	sumFile := NewSumFile()
//	sumFile.AddFile("SP/addr_GetAddressTypes_SP.sql", content1)
//	sumFile.AddFile("TB/addr_ADDRESS_TYPES_TB.sql", content2)
//	_, _ = sumFile.WriteTo(os.Stdout)
func NewSumFile() *SumFile {
	return &SumFile{
		files: make([]fileEntry, 0),
	}
}

// LoadSumFile reads a SumFile in the format produced by WriteTo:
//   - First line: total hash (h1:base64-encoded-hash)
//   - Following lines: <path> <h1:base64-encoded-hash>
func LoadSumFile(r io.Reader) (*SumFile, error) {
	scanner := bufio.NewScanner(r)
	sumFile := NewSumFile()

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, errors.Wrap(err, "failed to read total hash line")
		}
		return sumFile, nil
	}

	totalHashLine := strings.TrimSpace(scanner.Text())
	if totalHashLine == "" {
		return sumFile, nil
	}

	if !strings.HasPrefix(totalHashLine, "h1:") {
		return nil, errors.Errorf("invalid total hash format: %s", totalHashLine)
	}
	sumFile.TotalHash = totalHashLine

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		name, h1Hash, ok := strings.Cut(line, " ")
		if !ok {
			return nil, errors.Errorf("invalid file entry format: %s", line)
		}

		if !strings.HasPrefix(h1Hash, "h1:") {
			return nil, errors.Errorf("invalid hash format for file %s: %s", name, h1Hash)
		}

		hash, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(h1Hash, "h1:"))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode hash for file %s", name)
		}

		sumFile.files = append(sumFile.files, fileEntry{Name: name, Hash: hash})
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "error reading sum file")
	}

	return sumFile, nil
}

// AddFile adds a file, hashing its content together with the previous file's hash:
//   - First file: hash = SHA256(content)
//   - Subsequent files: hash = SHA256(content + previousHash)
func (s *SumFile) AddFile(name string, content []byte) {
	var prev []byte
	if len(s.files) > 0 {
		prev = s.files[len(s.files)-1].Hash
	}

	s.files = append(s.files, fileEntry{Name: name, Hash: chainHash(content, prev)})
}

func chainHash(content, prev []byte) []byte {
	hasher := sha256.New()
	hasher.Write(content)
	hasher.Write(prev)
	return hasher.Sum(nil)
}

// Files returns the count of files in the sum file
func (s *SumFile) Files() int {
	return len(s.files)
}

// Names returns the file names in the order they were added.
func (s *SumFile) Names() []string {
	names := make([]string, 0, len(s.files))
	for _, f := range s.files {
		names = append(names, f.Name)
	}

	return names
}

// WriteTo writes the sum file to w. The total hash is computed at this point.
//
// Example output:
//
//	h1:dG90YWxoYXNoZXhhbXBsZQ==
//	FN/addr_InstitutionCountryCode_FN.sql h1:dGVzdGRhdGE=
//	SP/addr_GetAddressTypes_SP.sql h1:bW9yZXRlc3Q=
func (s *SumFile) WriteTo(w io.Writer) (int64, error) {
	var total int64

	s.computeTotalHash()

	n, err := fmt.Fprintf(w, "%s\n", s.TotalHash)
	if err != nil {
		return total, err
	}
	total += int64(n)

	for _, file := range s.files {
		n, err := fmt.Fprintf(w, "%s h1:%s\n", file.Name, base64.StdEncoding.EncodeToString(file.Hash))
		if err != nil {
			return total, err
		}
		total += int64(n)
	}

	return total, nil
}

func (s *SumFile) computeTotalHash() {
	if len(s.files) == 0 {
		s.TotalHash = ""
		return
	}

	hasher := sha256.New()
	for _, file := range s.files {
		hasher.Write(file.Hash)
	}

	s.TotalHash = "h1:" + base64.StdEncoding.EncodeToString(hasher.Sum(nil))
}
