// Package cas stores backups of declaration files, addressed by content.
package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/repin/internal/core/domain"
	"go.trai.ch/repin/internal/core/ports"
	"go.trai.ch/zerr"
)

const pathKeyLen = 16

// Store implements ports.BackupStore under <root>/.repin/backups.
// Each source file gets its own directory keyed by its absolute path, and
// each distinct content is stored once, named by its xxhash digest.
type Store struct {
	root string
}

var _ ports.BackupStore = (*Store)(nil)

// NewStore creates a Store rooted at root.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// Save stores content as a backup of path and returns the backup file path.
func (s *Store) Save(path string, content []byte) (string, error) {
	dir, err := s.dirFor(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrBackupCreateFailed.Error()), "path", path)
	}
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrBackupCreateFailed.Error()), "path", path)
	}

	target := filepath.Join(dir, contentKey(content)+".txt")
	if _, err := os.Stat(target); err == nil {
		return target, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", zerr.With(zerr.Wrap(err, domain.ErrBackupWriteFailed.Error()), "path", path)
	}

	//nolint:gosec // target is built from the store root and hashed names
	if err := os.WriteFile(target, content, domain.PrivateFilePerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrBackupWriteFailed.Error()), "path", path)
	}
	return target, nil
}

func (s *Store) dirFor(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256([]byte(abs))
	key := hex.EncodeToString(sum[:])[:pathKeyLen]
	return filepath.Join(s.root, domain.DefaultBackupPath(), key), nil
}

func contentKey(content []byte) string {
	return strconv.FormatUint(xxhash.Sum64(content), 16)
}
