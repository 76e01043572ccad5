package linebreak

import "testing"

func TestClassOfASCII(t *testing.T) {
	tests := []struct {
		r    rune
		want Class
	}{
		{'a', AL}, {'Z', AL}, {'5', NU}, {' ', SP}, {'\t', BA}, {'\n', LF}, {'\r', CR},
		{'!', EX}, {'(', OP}, {')', CP}, {',', IS}, {'-', HY}, {'.', IS}, {'/', SY},
	}
	for _, tt := range tests {
		if got, _ := ClassOf(tt.r); got != tt.want {
			t.Errorf("ClassOf(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestClassOfCombiningDiacritic(t *testing.T) {
	// U+0308 COMBINING DIAERESIS.
	got, gc := ClassOf('̈')
	if got != CM {
		t.Errorf("ClassOf(U+0308) class = %v, want CM", got)
	}
	if gc != gcMn {
		t.Errorf("ClassOf(U+0308) gc = %v, want gcMn", gc)
	}
}

func TestClassOfHangul(t *testing.T) {
	// U+AC00 is the first Hangul syllable, an LV block (H2).
	if got, _ := ClassOf(0xAC00); got != H2 {
		t.Errorf("ClassOf(U+AC00) = %v, want H2", got)
	}
	// U+AC01 has a non-zero trailing jamo, so it is an LVT block (H3).
	if got, _ := ClassOf(0xAC01); got != H3 {
		t.Errorf("ClassOf(U+AC01) = %v, want H3", got)
	}
}

func TestClassOfWatchEmoji(t *testing.T) {
	// U+231A WATCH is ID; a ZWJ immediately before it anchors the pair.
	if got, _ := ClassOf('⌚'); got != ID {
		t.Errorf("ClassOf(U+231A) = %v, want ID", got)
	}
}

func TestClassOfTotalityDefault(t *testing.T) {
	// A private-use scalar (plane 16) with no curated entry and no
	// General_Category fallback match resolves to the default (XX, gcCn).
	got, gc := ClassOf(0x10FFFD)
	if got != XX {
		t.Errorf("ClassOf(U+10FFFD) = %v, want XX", got)
	}
	if gc != gcCn {
		t.Errorf("ClassOf(U+10FFFD) gc = %v, want gcCn", gc)
	}
}

func TestClassOfFallbackLetter(t *testing.T) {
	// A Latin Extended-A letter outside the curated table should still
	// resolve to AL via the General_Category letter fallback.
	got, _ := ClassOf('Ā') // LATIN CAPITAL LETTER A WITH MACRON
	if got != AL {
		t.Errorf("ClassOf(U+0100) = %v, want AL", got)
	}
}
