package linebreak

// defaultTailorableRules is the default tailorable rule list, in UAX #14
// §6 order: LB12a through LB30b. Each entry is
// individually addressable by its position here for [RuleSet.Replace]
// and [RuleSet.Remove] — regenerate this slice (rather than editing a
// RuleSet's copy in place) if the ordering ever needs to change, since
// callers capture indices returned by [DefaultRuleSet].
var defaultTailorableRules = []Rule{
	ruleLB12a,
	ruleLB13,
	ruleLB14,
	ruleLB15,
	ruleLB16,
	ruleLB17,
	ruleLB18,
	ruleLB19,
	ruleLB20,
	ruleLB21,
	ruleLB21b,
	ruleLB22,
	ruleLB23,
	ruleLB24,
	ruleLB25,
	ruleLB26,
	ruleLB27,
	ruleLB28,
	ruleLB29,
	ruleLB30,
	ruleLB30a,
	ruleLB30b,
}

// Indices of the two rules the numeric-aware conformance profile
// tailors. LoadProfile and NumericTailoring use these rather
// than magic numbers so the index and the rule it names can't drift
// apart.
const (
	idxLB13 = 1
	idxLB25 = 14
)

// ruleLB12a: do not break before GL, except after a space, break-after,
// or hyphen (those already get their own break opportunity).
func ruleLB12a(left, right Class) Verdict {
	if right == GL && left != SP && left != BA && left != HY {
		return Prohibited
	}
	return NoOpinion
}

// ruleLB13 is the default (non-numeric-aware) LB13: never break before
// CL, CP, EX, IS, or SY, even across an intervening space run.
func ruleLB13(left, right Class) Verdict {
	if right == CL || right == CP || right == EX || right == IS || right == SY {
		return Prohibited
	}
	return NoOpinion
}

// ruleLB14: never break after OP, even across an intervening space run.
func ruleLB14(left, right Class) Verdict {
	if left == OP {
		return Prohibited
	}
	return NoOpinion
}

// ruleLB15: never break within QU OP, even across an intervening space
// run.
func ruleLB15(left, right Class) Verdict {
	if left == QU && right == OP {
		return Prohibited
	}
	return NoOpinion
}

// ruleLB16: never break between closing punctuation and a nonstarter,
// even across an intervening space run.
func ruleLB16(left, right Class) Verdict {
	if (left == CL || left == CP) && right == NS {
		return Prohibited
	}
	return NoOpinion
}

// ruleLB17: never break within a run of B2, even across an intervening
// space run.
func ruleLB17(left, right Class) Verdict {
	if left == B2 && right == B2 {
		return Prohibited
	}
	return NoOpinion
}

// ruleLB18: break after a space.
func ruleLB18(left, right Class) Verdict {
	if left == SP {
		return Allowed
	}
	return NoOpinion
}

// ruleLB19: never break before or after a quotation mark.
func ruleLB19(left, right Class) Verdict {
	if left == QU || right == QU {
		return Prohibited
	}
	return NoOpinion
}

// ruleLB20: always allow a break before or after a contingent break
// opportunity.
func ruleLB20(left, right Class) Verdict {
	if left == CB || right == CB {
		return Allowed
	}
	return NoOpinion
}

// ruleLB21: never break before a hyphen, break-after, or nonstarter, or
// after a break-before.
func ruleLB21(left, right Class) Verdict {
	if right == BA || right == HY || right == NS || left == BB {
		return Prohibited
	}
	return NoOpinion
}

// ruleLB21b: never break between a solidus and a following Hebrew
// letter.
func ruleLB21b(left, right Class) Verdict {
	if left == SY && right == HL {
		return Prohibited
	}
	return NoOpinion
}

// ruleLB22: never break before an inseparable character (e.g. an
// ellipsis).
func ruleLB22(left, right Class) Verdict {
	if right == IN {
		return Prohibited
	}
	return NoOpinion
}

// ruleLB23: never break between a letter and a digit, in either order.
func ruleLB23(left, right Class) Verdict {
	if (left == AL || left == HL) && right == NU {
		return Prohibited
	}
	if left == NU && (right == AL || right == HL) {
		return Prohibited
	}
	return NoOpinion
}

// ruleLB24: never break between a numeric prefix/postfix and a letter,
// in either order.
func ruleLB24(left, right Class) Verdict {
	if (left == PR || left == PO) && (right == AL || right == HL) {
		return Prohibited
	}
	if (left == AL || left == HL) && (right == PR || right == PO) {
		return Prohibited
	}
	return NoOpinion
}

// ruleLB25 is the default (non-numeric-aware) LB25: keep the common
// numeric-punctuation pairs together. NumericLB25 replaces this with the
// §8.2 atomic-number-run variant the conformance suite requires.
func ruleLB25(left, right Class) Verdict {
	switch {
	case (left == CL || left == CP) && (right == PO || right == PR):
		return Prohibited
	case left == NU && (right == PO || right == PR):
		return Prohibited
	case (left == PO || left == PR) && (right == OP || right == NU):
		return Prohibited
	case (left == HY || left == IS) && right == NU:
		return Prohibited
	case left == NU && right == NU:
		return Prohibited
	case left == SY && right == NU:
		return Prohibited
	}
	return NoOpinion
}

// ruleLB26: never break within a Hangul syllable's jamo sequence.
func ruleLB26(left, right Class) Verdict {
	switch {
	case left == JL && (right == JL || right == JV || right == H2 || right == H3):
		return Prohibited
	case (left == JV || left == H2) && (right == JV || right == JT):
		return Prohibited
	case (left == JT || left == H3) && right == JT:
		return Prohibited
	}
	return NoOpinion
}

// ruleLB27: treat a Hangul syllable block like an ideograph for prefix
// and postfix purposes.
func ruleLB27(left, right Class) Verdict {
	isJamo := func(c Class) bool { return c == JL || c == JV || c == JT || c == H2 || c == H3 }
	if isJamo(left) && right == PO {
		return Prohibited
	}
	if left == PR && isJamo(right) {
		return Prohibited
	}
	return NoOpinion
}

// ruleLB28: never break between two alphabetic characters.
func ruleLB28(left, right Class) Verdict {
	if (left == AL || left == HL) && (right == AL || right == HL) {
		return Prohibited
	}
	return NoOpinion
}

// ruleLB29: never break between a numeric punctuation mark and a
// following letter.
func ruleLB29(left, right Class) Verdict {
	if left == IS && (right == AL || right == HL) {
		return Prohibited
	}
	return NoOpinion
}

// ruleLB30: never break between a letter/number and open punctuation, or
// between a close parenthesis and a letter/number. The standard gates this
// on East_Asian_Width (only for narrow/narrow-equivalent punctuation);
// EAW is out of this package's scope, so this rule applies
// unconditionally, i.e. as if every code point were narrow.
func ruleLB30(left, right Class) Verdict {
	isAlnum := func(c Class) bool { return c == AL || c == HL || c == NU }
	if isAlnum(left) && right == OP {
		return Prohibited
	}
	if left == CP && isAlnum(right) {
		return Prohibited
	}
	return NoOpinion
}

// ruleLB30a is a placeholder: Regional Indicator pairing needs an
// even/odd run counter, which is carry state rather than a pure pair
// predicate. The actual behavior lives in the state machine's RI parity
// tracking in carryState.step; this placeholder exists so LB30a still
// occupies its standard position in the tailorable index space, in case
// a caller wants to displace it with [RuleSet.Replace].
func ruleLB30a(left, right Class) Verdict {
	return NoOpinion
}

// ruleLB30b: never break between an emoji base and an emoji modifier.
func ruleLB30b(left, right Class) Verdict {
	if left == EB && right == EM {
		return Prohibited
	}
	return NoOpinion
}
