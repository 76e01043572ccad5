package linebreak

import (
	"strconv"
	"strings"
)

// parseConformanceLine parses one line of UAX #14's LineBreakTest.txt ×/÷
// notation, e.g. "× 0041 ÷ 000A ÷ 0062 × 0063 ÷ # comment": hex code
// points alternate with boundary markers, × for a prohibited boundary and
// ÷ for an allowed or required one. Every such line opens with "× "
// (nothing ever breaks before the first code point) and closes with " ÷"
// (LB3 always breaks at the end of text); both are stripped before the
// remaining tokens are read, so neither trivial boundary appears in the
// returned indices, matching this package's driver, which likewise never
// reports an event for the implicit end-of-text break. ok is false for a
// blank or comment-only line, or one that fails to parse.
func parseConformanceLine(line string) (text []rune, want []int, ok bool) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil, false
	}
	line = strings.TrimPrefix(line, "× ")
	line = strings.TrimSuffix(line, " ÷")

	tokens := strings.Fields(line)
	if len(tokens) == 0 || len(tokens)%2 == 0 {
		return nil, nil, false
	}
	for i, tok := range tokens {
		if i%2 == 0 {
			cp, err := strconv.ParseInt(tok, 16, 32)
			if err != nil {
				return nil, nil, false
			}
			text = append(text, rune(cp))
			continue
		}
		if tok == "÷" {
			want = append(want, (i+1)/2)
		}
	}
	return text, want, true
}
