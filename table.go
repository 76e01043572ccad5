package linebreak

import (
	"golang.org/x/text/unicode/rangetable"
)

// lbRange is one row of the property table: a contiguous scalar range
// mapped to a single (Class, GeneralCategory) pair. Rows are sorted and
// non-overlapping, searched with binary search, and carry a
// GeneralCategory alongside the Line_Break class because LB1's SA
// resolution needs both.
type lbRange struct {
	lo, hi int
	class  Class
	gc     GeneralCategory
}

// letterTable and markTable are built once from the standard library's
// General_Category range tables via
// golang.org/x/text/unicode/rangetable.Merge and, together with
// unicode.Nd and unicode.Zs, used as the fallback classifier for any
// scalar the curated lbRanges table (tables_data.go) doesn't list
// explicitly, keeping the curated table small: most of the Unicode
// codespace is ordinary letters, marks, numbers or spaces that UAX #14
// classifies the same way General_Category would suggest. Punctuation
// has no fallback and resolves to (XX, gcCn) unless curated.
var (
	letterTable = rangetable.Merge(unicodeLu, unicodeLl, unicodeLt, unicodeLm, unicodeLo)
	markTable   = rangetable.Merge(unicodeMn, unicodeMc, unicodeMe)
)

// ClassOf returns the Line_Break class and a General_Category for r. It is
// total over [0, 0x10FFFF]: any scalar not found in the curated table or
// the standard-library fallback resolves to (XX, gcCn). The
// General_Category is the one recorded on r's curated row or, in the
// fallback, a representative value (gcMn for every mark, gcLo for every
// letter), so it is not always r's exact category.
func ClassOf(r rune) (Class, GeneralCategory) {
	// Fast-track ASCII before consulting the range table.
	switch {
	case r >= 'a' && r <= 'z':
		return AL, gcLl
	case r >= 'A' && r <= 'Z':
		return AL, gcLu
	case r >= '0' && r <= '9':
		return NU, gcNd
	case r == ' ':
		return SP, gcZs
	case r == '\t':
		return BA, gcCc
	case r == '\n':
		return LF, gcCc
	case r == '\r':
		return CR, gcCc
	}

	// Hangul syllable block: LV vs. LVT is formulaic, not a sub-range.
	if r >= hangulSBase && r < hangulSBase+hangulSCount {
		if (int(r)-hangulSBase)%hangulTCount == 0 {
			return H2, gcLo
		}
		return H3, gcLo
	}

	if entry, ok := searchRanges(lbRanges, r); ok {
		return entry.class, entry.gc
	}

	switch {
	case unicodeIs(markTable, r):
		return CM, gcMn
	case unicodeIs(unicodeNd, r):
		return NU, gcNd
	case unicodeIs(unicodeZs, r):
		return SP, gcZs
	case unicodeIs(letterTable, r):
		return AL, gcLo
	}
	return XX, gcCn
}

// searchRanges performs a binary search over a sorted, non-overlapping
// lbRange table.
func searchRanges(table []lbRange, r rune) (lbRange, bool) {
	from, to := 0, len(table)
	for from < to {
		mid := (from + to) / 2
		switch {
		case int(r) < table[mid].lo:
			to = mid
		case int(r) > table[mid].hi:
			from = mid + 1
		default:
			return table[mid], true
		}
	}
	return lbRange{}, false
}

// Hangul syllable block constants (Unicode §3.12).
const (
	hangulSBase  = 0xAC00
	hangulLCount = 19
	hangulVCount = 21
	hangulTCount = 28
	hangulNCount = hangulVCount * hangulTCount
	hangulSCount = hangulLCount * hangulNCount
)
