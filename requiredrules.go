package linebreak

// requiredRules implements the fixed, non-tailorable prefix of every
// RuleSet. They encode LB2-LB8b, the LB9/LB10 "prohibit
// break before CM/ZWJ" shape of the standard, and the WJ (LB11) and GL
// (LB12) rules. Order matters: the CR×LF
// rule must run before the general "after a mandatory-break class" rule,
// or CR immediately followed by LF would be mis-split.
var requiredRules = []Rule{
	ruleCRLF,
	ruleMandatoryAfter,
	ruleMandatoryBefore,
	ruleSpaceOrZW,
	ruleAfterZW,
	ruleZWJAnchor,
	ruleCombiningTail,
	ruleWordJoiner,
	ruleGlueLeft,
}

// ruleCRLF keeps CR LF together as a single mandatory-break unit (part of
// LB5); without this, ruleMandatoryAfter would fire a required break
// after CR even when it is immediately followed by LF.
func ruleCRLF(left, right Class) Verdict {
	if left == CR && right == LF {
		return Prohibited
	}
	return NoOpinion
}

// ruleMandatoryAfter: a line breaks after BK, CR (not followed by LF), LF,
// or NL (LB4, LB5).
func ruleMandatoryAfter(left, right Class) Verdict {
	if left == BK || left == LF || left == NL || left == CR {
		return Required
	}
	return NoOpinion
}

// ruleMandatoryBefore: a line never breaks before BK, CR, LF, or NL —
// those classes always cause the break themselves, on their trailing
// edge (LB6).
func ruleMandatoryBefore(left, right Class) Verdict {
	if right == BK || right == CR || right == LF || right == NL {
		return Prohibited
	}
	return NoOpinion
}

// ruleSpaceOrZW: never break before SP or ZW (LB7).
func ruleSpaceOrZW(left, right Class) Verdict {
	if right == SP || right == ZW {
		return Prohibited
	}
	return NoOpinion
}

// ruleAfterZW: a break is allowed after ZW, subject to the LB7 space-run
// carry overriding it when the ZW is itself followed by spaces (LB8).
func ruleAfterZW(left, right Class) Verdict {
	if left == ZW {
		return Allowed
	}
	return NoOpinion
}

// ruleZWJAnchor: never break between ZWJ and a following emoji/ideograph
// it's joining (LB8a).
func ruleZWJAnchor(left, right Class) Verdict {
	if left == ZWJ && (right == ID || right == EB || right == EM) {
		return Prohibited
	}
	return NoOpinion
}

// ruleCombiningTail is the pure-rule expression of LB9: a trailing CM or
// ZWJ never starts a break, unless it follows SP, BK, CR, LF, NL or ZW
// (the state machine
// intercepts these pairs earlier to implement the "carry the chain's
// base class forward" behavior; this rule is the fallback for any CM/ZWJ
// pair that reaches the cascade directly).
func ruleCombiningTail(left, right Class) Verdict {
	if right != CM && right != ZWJ {
		return NoOpinion
	}
	switch left {
	case SP, BK, CR, LF, NL, ZW:
		return NoOpinion
	default:
		return Prohibited
	}
}

// ruleWordJoiner: WJ never breaks, on either side (LB11).
func ruleWordJoiner(left, right Class) Verdict {
	if left == WJ || right == WJ {
		return Prohibited
	}
	return NoOpinion
}

// ruleGlueLeft: never break after GL (LB12).
func ruleGlueLeft(left, right Class) Verdict {
	if left == GL {
		return Prohibited
	}
	return NoOpinion
}
