// Package classify decides what a single line of a declaration file declares.
package classify

import (
	"strings"

	"go.trai.ch/repin/internal/core/domain"
)

// optionPrefix starts pip options such as -r, -c, -e and --index-url.
const optionPrefix = "-"

// Classify parses one declaration line.
// Blank lines, comments, VCS references and pip options are KindNonPackage.
// The classifier never consults a snapshot.
func Classify(line string) domain.Declaration {
	trimmed := strings.TrimSpace(line)
	if isPassThrough(trimmed) {
		return domain.Declaration{Kind: domain.KindNonPackage}
	}

	req, comment := splitComment(trimmed)

	// 1. name[extras] with an optional pin after the closing bracket.
	if open := strings.IndexByte(req, '['); open > 0 {
		if rel := strings.IndexByte(req[open+1:], ']'); rel > 0 {
			end := open + 1 + rel + 1
			decl := domain.Declaration{
				Name:     domain.NormalizeName(req[:open]),
				Extras:   req[open:end],
				Comment:  comment,
				InsertAt: end,
			}
			rest := strings.TrimLeft(req[end:], " \t")
			if after, ok := strings.CutPrefix(rest, domain.PinOperator); ok {
				decl.Kind = domain.KindVersioned
				decl.Version = versionToken(after)
			} else {
				decl.Kind = domain.KindUnversioned
			}
			return named(decl)
		}
	}

	// 2. name==version.
	if name, after, ok := strings.Cut(req, domain.PinOperator); ok {
		return named(domain.Declaration{
			Kind:    domain.KindVersioned,
			Name:    domain.NormalizeName(name),
			Version: versionToken(after),
			Comment: comment,
		})
	}

	// 3. bare name.
	return named(domain.Declaration{
		Kind:     domain.KindUnversioned,
		Name:     domain.NormalizeName(req),
		Comment:  comment,
		InsertAt: len(req),
	})
}

func isPassThrough(trimmed string) bool {
	return trimmed == "" ||
		strings.HasPrefix(trimmed, domain.CommentPrefix) ||
		strings.HasPrefix(trimmed, domain.VCSPrefix) ||
		strings.HasPrefix(trimmed, optionPrefix)
}

// named demotes a declaration without a usable name to a pass-through line.
func named(decl domain.Declaration) domain.Declaration {
	if decl.Name == "" {
		return domain.Declaration{Kind: domain.KindNonPackage}
	}
	return decl
}

// splitComment separates an inline comment from the specifier.
// A comment starts at a '#' preceded by whitespace; the returned comment keeps that whitespace.
func splitComment(s string) (req, comment string) {
	for i := 1; i < len(s); i++ {
		if s[i] != '#' || !isSpace(s[i-1]) {
			continue
		}
		j := i
		for j > 0 && isSpace(s[j-1]) {
			j--
		}
		return s[:j], s[j:]
	}
	return s, ""
}

// VersionToken returns the version that follows a pin operator: leading
// whitespace is skipped and the token ends at whitespace or '#'.
func VersionToken(afterOperator string) (token string, start, end int) {
	start = len(afterOperator) - len(strings.TrimLeft(afterOperator, " \t"))
	end = start
	for end < len(afterOperator) && !isSpace(afterOperator[end]) && afterOperator[end] != '#' {
		end++
	}
	return afterOperator[start:end], start, end
}

func versionToken(afterOperator string) string {
	token, _, _ := VersionToken(afterOperator)
	return token
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}
