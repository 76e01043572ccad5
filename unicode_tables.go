package linebreak

import "unicode"

// Aliases onto the standard library's General_Category range tables, kept
// in one file so table.go reads as "which categories does the fallback
// classifier consult" rather than a wall of unicode.* references.
var (
	unicodeLu = unicode.Lu
	unicodeLl = unicode.Ll
	unicodeLt = unicode.Lt
	unicodeLm = unicode.Lm
	unicodeLo = unicode.Lo
	unicodeMn = unicode.Mn
	unicodeMc = unicode.Mc
	unicodeMe = unicode.Me
	unicodeNd = unicode.Nd
	unicodeZs = unicode.Zs
)

func unicodeIs(table *unicode.RangeTable, r rune) bool {
	return unicode.Is(table, r)
}
