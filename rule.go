package linebreak

import "golang.org/x/exp/slices"

// Rule is a pure pairwise predicate over two resolved classes. It holds
// no state — the carry that rules LB7-LB10 need lives in the state
// machine (statemachine.go), not here — and returns [NoOpinion] when it
// has nothing to say about the pair, which means "consult the next rule".
type Rule func(left, right Class) Verdict

// RuleSet is an ordered rule cascade: a fixed, non-tailorable prefix
// (the required rules in requiredrules.go) followed by a tailorable
// slice that callers may edit with [RuleSet.Replace] and
// [RuleSet.Remove]. The first rule in the whole cascade to return a
// verdict other than [NoOpinion] wins; if none does, the cascade's
// result is [Allowed] (LB31).
type RuleSet struct {
	required   []Rule
	tailorable []Rule
}

// DefaultRuleSet returns the standard rule set: the fixed required rules
// followed by the default tailorable rules in UAX #14 §6 order (LB12a
// through LB30b).
func DefaultRuleSet() RuleSet {
	return RuleSet{
		required:   requiredRules,
		tailorable: append([]Rule(nil), defaultTailorableRules...),
	}
}

// Len returns the number of tailorable rules, i.e. the valid index range
// for [RuleSet.Replace] and [RuleSet.Remove] is [0, Len()).
func (rs RuleSet) Len() int {
	return len(rs.tailorable)
}

// Replace returns a copy of rs with the tailorable rule at index idx
// replaced by r. The required rules are never affected. idx is
// positional: the index the caller located via [DefaultRuleSet] or a
// prior tailoring call, not any language-level identity of a [Rule]
// value.
func (rs RuleSet) Replace(idx int, r Rule) (RuleSet, error) {
	if idx < 0 || idx >= len(rs.tailorable) {
		return RuleSet{}, &InvalidTailoringError{Op: "replace", Index: idx, Len: len(rs.tailorable)}
	}
	tailorable := slices.Clone(rs.tailorable)
	tailorable[idx] = r
	return RuleSet{required: rs.required, tailorable: tailorable}, nil
}

// Remove returns a copy of rs with the tailorable rule at index idx
// deleted; every following rule shifts down one index.
func (rs RuleSet) Remove(idx int) (RuleSet, error) {
	if idx < 0 || idx >= len(rs.tailorable) {
		return RuleSet{}, &InvalidTailoringError{Op: "remove", Index: idx, Len: len(rs.tailorable)}
	}
	tailorable := slices.Clone(rs.tailorable)
	tailorable = slices.Delete(tailorable, idx, idx+1)
	return RuleSet{required: rs.required, tailorable: tailorable}, nil
}

// Insert returns a copy of rs with r inserted at index idx, before the
// rule currently at that index (or appended, if idx == rs.Len()).
// Insert goes beyond the minimal replace/remove tailoring contract, but
// lets a profile layer a brand new rule onto a base set without
// displacing an existing one.
func (rs RuleSet) Insert(idx int, r Rule) (RuleSet, error) {
	if idx < 0 || idx > len(rs.tailorable) {
		return RuleSet{}, &InvalidTailoringError{Op: "insert", Index: idx, Len: len(rs.tailorable)}
	}
	tailorable := slices.Clone(rs.tailorable)
	tailorable = slices.Insert(tailorable, idx, r)
	return RuleSet{required: rs.required, tailorable: tailorable}, nil
}

// classify runs the required rules, then the tailorable rules in order,
// and returns the first non-NoOpinion verdict. If none fires, it returns
// Allowed (LB31).
func (rs RuleSet) classify(left, right Class) Verdict {
	for _, r := range rs.required {
		if v := r(left, right); v != NoOpinion {
			return v
		}
	}
	for _, r := range rs.tailorable {
		if v := r(left, right); v != NoOpinion {
			return v
		}
	}
	return Allowed
}
