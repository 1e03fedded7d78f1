package parser

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeName canonicalizes a player name: NFC composition, trimmed,
// inner whitespace collapsed. Case is kept; names are identifiers.
func NormalizeName(s string) string {
	if s == "" {
		return ""
	}
	s = norm.NFC.String(s)
	return strings.Join(strings.Fields(s), " ")
}
