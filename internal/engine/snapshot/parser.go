// Package snapshot parses an installed package listing into a domain.Snapshot.
package snapshot

import (
	"strings"

	"go.trai.ch/repin/internal/core/domain"
)

// Parse builds a Snapshot from the lines of a pip-freeze style listing.
// Lines that are not of the form name[extras]==version are skipped.
func Parse(lines []string) *domain.Snapshot {
	snap := domain.NewSnapshot()
	for _, line := range lines {
		name, version, ok := ParseLine(line)
		if !ok {
			continue
		}
		snap.Set(name, version)
	}
	return snap
}

// ParseLine extracts the base package name and version from a single listing line.
// The returned name still has its original casing.
func ParseLine(line string) (name, version string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, domain.CommentPrefix) {
		return "", "", false
	}
	if strings.HasPrefix(line, domain.LocalFilePrefix) {
		return "", "", false
	}

	left, right, found := strings.Cut(line, domain.PinOperator)
	right = strings.TrimSpace(right)
	if !found || left == "" || right == "" {
		return "", "", false
	}
	// The name part never contains '=', so "a=b==1" is not a pin.
	if strings.Contains(left, "=") {
		return "", "", false
	}

	base := left
	if idx := strings.IndexByte(base, '['); idx >= 0 {
		base = base[:idx]
	}
	if strings.TrimSpace(base) == "" {
		return "", "", false
	}

	return base, right, true
}
