// Package mapping resolves an arbitrary skeleton onto the VRM humanoid bone
// set: it normalizes bone names, carries the mapping tables of well known
// rig conventions, and picks the first convention consistent with the
// skeleton's hierarchy.
package mapping

import (
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// Token-level synonyms for side markers. Rewritten in place so that
// "UpperArmL" and "upper_arm_left" canonicalize identically.
var sideTokens = map[string]string{
	"l":     "left",
	"r":     "right",
	"left":  "left",
	"right": "right",
}

func isSeparator(r rune) bool {
	return r == '_' || r == '.' || r == ' ' || r == '-' || r == ':'
}

// Canonicalize normalizes a raw bone name for comparison: full-width digits
// and letters are folded to ASCII, CamelCase transitions become word breaks,
// separator runs collapse, side markers become the words "left"/"right", and
// the result is lowercase words joined by ".". Total for any input; an
// unrecognized character passes through lowercased.
func Canonicalize(name string) string {
	folded := width.Fold.String(name)

	var tokens []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	var prev rune
	for _, r := range folded {
		if isSeparator(r) {
			flush()
			prev = r
			continue
		}
		if unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)) {
			flush()
		}
		cur.WriteRune(unicode.ToLower(r))
		prev = r
	}
	flush()

	for i, token := range tokens {
		if side, ok := sideTokens[token]; ok {
			tokens[i] = side
		}
	}
	return strings.Join(tokens, ".")
}
