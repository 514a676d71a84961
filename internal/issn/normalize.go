// Package issn canonicalizes ISSN and E-ISSN values into fixed-width lookup keys.
package issn

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	// Absent marks a record that carries no identifier of a given kind.
	Absent = "-"

	// Width is the length of a canonical identifier key.
	Width = 8
)

// Normalize left-pads an identifier with zeros up to Width characters.
// Absent and values that are already Width or longer are returned unchanged,
// so Normalize(Normalize(x)) == Normalize(x).
func Normalize(raw string) string {
	if raw == Absent || len(raw) >= Width {
		return raw
	}
	return strings.Repeat("0", Width-len(raw)) + raw
}

// Clean folds compatibility characters (full-width digits and the like) to
// their ASCII form and trims surrounding whitespace.
func Clean(raw string) string {
	return strings.TrimSpace(norm.NFKC.String(raw))
}

// StripHyphens removes hyphen separators, e.g. "1234-5678" becomes "12345678".
// The absent marker strips to the empty string.
func StripHyphens(raw string) string {
	return strings.ReplaceAll(raw, "-", "")
}

// Key converts a hyphenated reference identifier into an index key.
// An empty result means the record has no usable identifier.
func Key(raw string) string {
	return StripHyphens(Clean(raw))
}

// Split returns the individual identifiers of a space separated field.
// The absent marker yields an empty list.
func Split(field string) []string {
	if field == Absent {
		return nil
	}
	return strings.Fields(field)
}

// NormalizeField canonicalizes a possibly multi-valued identifier field token
// by token. Blank fields and fields with no usable token become Absent.
// When stripHyphens is set each token loses its hyphens before padding.
func NormalizeField(field string, stripHyphens bool) string {
	field = Clean(field)
	if field == "" || field == Absent {
		return Absent
	}

	tokens := strings.Fields(field)
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if stripHyphens {
			token = StripHyphens(token)
		}
		if token == "" || token == Absent {
			continue
		}
		out = append(out, Normalize(token))
	}

	if len(out) == 0 {
		return Absent
	}
	return strings.Join(out, " ")
}
