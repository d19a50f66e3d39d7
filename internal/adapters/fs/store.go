// Package fs reads and writes line-oriented text files.
package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/repin/internal/core/domain"
	"go.trai.ch/repin/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.FileStore on the local filesystem.
type Store struct{}

var _ ports.FileStore = (*Store)(nil)

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Exists reports whether path names an existing regular file.
func (s *Store) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ReadLines returns the lines of the file at path and its raw bytes.
// A trailing newline does not produce an empty last line, and a \r before
// each \n is dropped.
func (s *Store) ReadLines(path string) (lines []string, raw []byte, err error) {
	//nolint:gosec // path is provided by the user on the command line
	raw, err = os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return SplitLines(string(raw)), raw, nil
}

// SplitLines splits text into lines using the same rules as ReadLines.
func SplitLines(text string) []string {
	if text == "" {
		return []string{}
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// JoinLines terminates every line with \n.
func JoinLines(lines []string) []byte {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// WriteLines replaces the file at path with lines. When the encoded content
// hashes the same as current nothing is written and false is returned.
// The write goes through a temporary file in the same directory that is
// renamed over path, so readers never observe a partial file.
func (s *Store) WriteLines(path string, lines []string, current []byte) (bool, error) {
	data := JoinLines(lines)
	if current != nil && len(data) == len(current) && xxhash.Sum64(data) == xxhash.Sum64(current) {
		return false, nil
	}

	if err := writeAtomic(path, data); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrDeclarationWriteFailed.Error()), "path", path)
	}
	return true, nil
}

func writeAtomic(path string, data []byte) (err error) {
	perm := fs.FileMode(domain.FilePerm)
	if info, statErr := os.Stat(path); statErr == nil {
		perm = info.Mode().Perm()
	} else if !errors.Is(statErr, fs.ErrNotExist) {
		return statErr
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".repin-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Chmod(perm); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
