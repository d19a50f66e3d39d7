// Package domain holds the core types shared by the parser, classifier and rewriter.
package domain

import (
	"slices"
	"strings"
)

// NormalizeName returns the join key for a package name.
// Callers strip the extras annotation before normalizing.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Snapshot maps normalized package names to their installed versions.
// It is filled once by the snapshot parser and read-only afterwards.
type Snapshot struct {
	versions map[string]string
}

// NewSnapshot creates an empty Snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		versions: make(map[string]string),
	}
}

// Set records the version for a package. The name is normalized.
// A later call for the same name overwrites the earlier version.
func (s *Snapshot) Set(name, version string) {
	s.versions[NormalizeName(name)] = version
}

// Lookup returns the installed version for a package name.
func (s *Snapshot) Lookup(name string) (string, bool) {
	if s == nil {
		return "", false
	}
	v, ok := s.versions[NormalizeName(name)]
	return v, ok
}

// Len returns the number of packages in the snapshot.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.versions)
}

// Names returns the normalized package names in sorted order.
func (s *Snapshot) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.versions))
	for name := range s.versions {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
