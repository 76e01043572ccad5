package linebreak

import "unicode/utf8"

// BreakKind distinguishes a boundary a line must break at from one it may
// break at. Prohibited boundaries never appear in a [LinebreakLocations]
// result.
type BreakKind int

const (
	BreakRequired BreakKind = iota
	BreakAllowed
)

func (k BreakKind) String() string {
	if k == BreakRequired {
		return "required"
	}
	return "allowed"
}

// BreakEvent is one emitted boundary. Index is the 1-based code-point
// count to the left of the boundary, matching UAX #14's own conformance
// test data format.
type BreakEvent struct {
	Kind  BreakKind
	Index int
}

// LineOffsets is one entry of an [IdentifyLinebreakPositions] result: a
// hard line together with the code-point offsets, relative to the line's
// start, at which a soft break is allowed.
type LineOffsets struct {
	Line    string
	Offsets []int
}

// Options configures the three driver operations with a custom
// classifier and/or a tailored rule set. The zero value
// selects [DefaultResolver] and [DefaultRuleSet]; a nil *Options does
// the same.
type Options struct {
	Resolver Resolver
	Rules    RuleSet
}

func (o *Options) resolver() Resolver {
	if o == nil || o.Resolver == nil {
		return DefaultResolver
	}
	return o.Resolver
}

func (o *Options) rules() RuleSet {
	if o == nil || o.Rules.required == nil {
		return DefaultRuleSet()
	}
	return o.Rules
}

// decodeRunes converts text to a rune slice, failing with
// [InvalidEncodingError] at the byte offset of the first malformed
// sequence rather than substituting the replacement character.
func decodeRunes(text string) ([]rune, error) {
	runes := make([]rune, 0, len(text))
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size <= 1 {
			return nil, &InvalidEncodingError{Offset: i}
		}
		runes = append(runes, r)
		i += size
	}
	return runes, nil
}

// classifyRunes applies ClassOf then the resolver (LB1) to every rune.
func classifyRunes(runes []rune, resolver Resolver) []Class {
	classes := make([]Class, len(runes))
	for i, r := range runes {
		raw, gc := ClassOf(r)
		classes[i] = resolve(resolver, r, raw, gc)
	}
	return classes
}

// boundaries runs the state machine over every adjacent pair of classes
// and collects the non-prohibited verdicts as break events.
func boundaries(classes []Class, rules RuleSet) []BreakEvent {
	if len(classes) < 2 {
		return nil
	}
	var events []BreakEvent
	var st carryState
	for i := 0; i < len(classes)-1; i++ {
		switch st.step(rules, classes[i], classes[i+1]) {
		case Required:
			events = append(events, BreakEvent{Kind: BreakRequired, Index: i + 1})
		case Allowed:
			events = append(events, BreakEvent{Kind: BreakAllowed, Index: i + 1})
		}
	}
	return events
}

// mandatoryControlStart returns the rune index at which the mandatory
// break control ending at left (the class that triggered a required
// break) begins: left itself, or left-1 when left is the LF half of a
// CR LF pair, since the pair is one atomic unit (LB5).
func mandatoryControlStart(classes []Class, left int) int {
	if left > 0 && classes[left] == LF && classes[left-1] == CR {
		return left - 1
	}
	return left
}

// stripTrailingControl returns the end of the real content in
// classes[lo:hi], excluding a trailing mandatory-break control (single
// code point, or a CR LF pair) if present. Used to strip the text's
// final control run even though no break event is emitted for it (there
// is no following pair to emit a boundary on).
func stripTrailingControl(classes []Class, lo, hi int) int {
	if hi <= lo {
		return hi
	}
	switch classes[hi-1] {
	case BK, LF, NL, CR:
		return mandatoryControlStart(classes, hi-1)
	}
	return hi
}

// LinebreakLocations returns every non-prohibited boundary of text, in
// increasing index order.
func LinebreakLocations(text string, opts *Options) ([]BreakEvent, error) {
	runes, err := decodeRunes(text)
	if err != nil {
		return nil, err
	}
	classes := classifyRunes(runes, opts.resolver())
	return boundaries(classes, opts.rules()), nil
}

// ApplyRequiredLinebreaks splits text at required boundaries only,
// discarding the break control(s) themselves from the preceding line. A
// trailing mandatory-break control at the very end of text is stripped
// without producing an empty final segment.
func ApplyRequiredLinebreaks(text string, opts *Options) ([]string, error) {
	runes, err := decodeRunes(text)
	if err != nil {
		return nil, err
	}
	classes := classifyRunes(runes, opts.resolver())
	events := boundaries(classes, opts.rules())

	var lines []string
	start := 0
	for _, ev := range events {
		if ev.Kind != BreakRequired {
			continue
		}
		if end := mandatoryControlStart(classes, ev.Index-1); end > start {
			lines = append(lines, string(runes[start:end]))
		}
		start = ev.Index
	}
	if end := stripTrailingControl(classes, start, len(runes)); end > start {
		lines = append(lines, string(runes[start:end]))
	}
	return lines, nil
}

// IdentifyLinebreakPositions splits text into hard lines like
// [ApplyRequiredLinebreaks], and additionally reports, for each line,
// the offsets relative to that line's start at which a soft break is
// allowed.
func IdentifyLinebreakPositions(text string, opts *Options) ([]LineOffsets, error) {
	runes, err := decodeRunes(text)
	if err != nil {
		return nil, err
	}
	classes := classifyRunes(runes, opts.resolver())
	events := boundaries(classes, opts.rules())

	var result []LineOffsets
	start := 0
	emit := func(end int) {
		if end <= start {
			return
		}
		var offsets []int
		for _, ev := range events {
			if ev.Kind != BreakAllowed {
				continue
			}
			left := ev.Index - 1
			if left < start || left >= end {
				continue
			}
			offsets = append(offsets, ev.Index-start)
		}
		result = append(result, LineOffsets{Line: string(runes[start:end]), Offsets: offsets})
	}

	for _, ev := range events {
		if ev.Kind != BreakRequired {
			continue
		}
		emit(mandatoryControlStart(classes, ev.Index-1))
		start = ev.Index
	}
	emit(stripTrailingControl(classes, start, len(runes)))

	return result, nil
}
