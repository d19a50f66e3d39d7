// Package rewrite substitutes installed versions into declaration file lines.
package rewrite

import (
	"strings"
	"unicode"

	"go.trai.ch/repin/internal/core/domain"
	"go.trai.ch/repin/internal/engine/classify"
)

// Rewriter rewrites declaration lines against a snapshot.
// Packages in the exempt set are never reported as not found.
type Rewriter struct {
	exempt map[string]struct{}
}

// NewRewriter creates a Rewriter with the given exempt package names.
func NewRewriter(exempt ...string) *Rewriter {
	set := make(map[string]struct{}, len(exempt))
	for _, name := range exempt {
		set[domain.NormalizeName(name)] = struct{}{}
	}
	return &Rewriter{exempt: set}
}

// IsExempt reports whether a missing snapshot entry for name is expected.
func (r *Rewriter) IsExempt(name string) bool {
	_, ok := r.exempt[domain.NormalizeName(name)]
	return ok
}

// Rewrite produces the rewritten lines of one declaration file.
// The output has exactly one line per input line; lines that are not
// rewritten are returned unchanged.
func (r *Rewriter) Rewrite(lines []string, snap *domain.Snapshot) domain.RewriteResult {
	result := domain.RewriteResult{
		Lines: make([]string, 0, len(lines)),
	}
	seen := make(map[string]struct{})

	for _, line := range lines {
		out, updated, missing := r.rewriteLine(line, snap)
		result.Lines = append(result.Lines, out)
		if updated {
			result.Updated++
		}
		if missing == "" {
			continue
		}
		if _, dup := seen[missing]; !dup {
			seen[missing] = struct{}{}
			result.NotFound = append(result.NotFound, missing)
		}
	}

	return result
}

// rewriteLine returns the new line, whether its version changed, and the
// package name if it had to be reported as not found.
func (r *Rewriter) rewriteLine(line string, snap *domain.Snapshot) (string, bool, string) {
	decl := classify.Classify(line)
	if !decl.IsPackage() {
		return line, false, ""
	}

	version, ok := snap.Lookup(decl.Name)
	if !ok {
		if r.IsExempt(decl.Name) {
			return line, false, ""
		}
		return line, false, decl.Name
	}

	if decl.HasVersion() {
		out, _ := Substitute(line, version)
		return out, decl.Version != version, ""
	}

	return AddPin(line, decl, version), true, ""
}

// Substitute replaces the version after the first pin operator in line.
// Whitespace between the operator and the version is kept, and an inline
// comment after the version is left untouched. It reports false when line
// has no pin operator.
func Substitute(line, version string) (string, bool) {
	idx := strings.Index(line, domain.PinOperator)
	if idx < 0 {
		return line, false
	}
	offset := idx + len(domain.PinOperator)
	_, start, end := classify.VersionToken(line[offset:])
	return line[:offset+start] + version + line[offset+end:], true
}

// AddPin pins an unversioned declaration line to version. The pin goes
// right after the name and extras; trailing whitespace is dropped and any
// marker or inline comment that followed is kept after the pin. Text that
// followed the extras directly is separated from the pin by a space, so the
// version token ends where the pin ends.
func AddPin(line string, decl domain.Declaration, version string) string {
	body := strings.TrimLeftFunc(line, unicode.IsSpace)
	indent := line[:len(line)-len(body)]
	body = strings.TrimRightFunc(body, unicode.IsSpace)

	at := min(decl.InsertAt, len(body))
	rest := body[at:]
	if rest != "" && !unicode.IsSpace(rune(rest[0])) {
		rest = " " + rest
	}
	return indent + body[:at] + domain.PinOperator + version + rest
}
