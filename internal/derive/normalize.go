package derive

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var accentStripper = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Normalize collapses the casing, accent and whitespace variance found in
// category names entered inconsistently server-side, so that " RPG", "rpg"
// and "Ação"/"Acao" each land on a single canonical filter bucket.
// Normalize is idempotent.
func Normalize(s string) string {
	out, _, err := transform.String(accentStripper, s)
	if err != nil {
		// Transform only fails on invalid UTF-8; fall back to the raw input.
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
