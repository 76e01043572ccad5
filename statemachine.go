package linebreak

// carryState is the driver-local memory that rules LB7-LB10 and the
// Regional Indicator pairing of LB30a need beyond the pairwise rule
// cascade. It is reset at the start of every call to one of the driver
// functions (driver.go) — never hoisted to process-wide state.
type carryState struct {
	carry    Class
	hasCarry bool
	riRun    int // length of the Regional Indicator run ending at "left"
}

// isSpaceRunAnchor reports whether c is one of the classes LB7 lets a
// space run carry forward: OP, QU, CL, CP, B2, ZW.
func isSpaceRunAnchor(c Class) bool {
	switch c {
	case OP, QU, CL, CP, B2, ZW:
		return true
	}
	return false
}

// isCombiningChainExcluded reports whether c is excluded from starting a
// CM/ZWJ chain (transition 3): SP, BK, CR, LF, NL, ZW, CM, ZWJ.
func isCombiningChainExcluded(c Class) bool {
	switch c {
	case SP, BK, CR, LF, NL, ZW, CM, ZWJ:
		return true
	}
	return false
}

// step computes the verdict for the boundary between left and right,
// given and updating the carry. It implements the numbered carry
// transitions below in order (first match wins), plus the LB30a
// Regional Indicator parity extension documented in ruleLB30a's doc
// comment.
func (st *carryState) step(rs RuleSet, left, right Class) Verdict {
	// riRun is only ever left at 0 while left == RI on the very first call
	// (text starting mid- or at the beginning of a Regional Indicator
	// run); every later call already maintains it via the update below.
	if left == RI && st.riRun == 0 {
		st.riRun = 1
	}

	verdict := st.transition(rs, left, right)

	if left == RI && right == RI {
		if st.riRun%2 == 1 {
			verdict = Prohibited
		} else {
			verdict = Allowed
		}
	}
	switch {
	case right == RI && left == RI:
		st.riRun++
	case right == RI:
		st.riRun = 1
	default:
		st.riRun = 0
	}

	return verdict
}

func (st *carryState) transition(rs RuleSet, left, right Class) Verdict {
	// 1. (x, SP) where x is a space-run anchor: prohibited; carry <- x.
	if right == SP && isSpaceRunAnchor(left) {
		st.carry, st.hasCarry = left, true
		return Prohibited
	}

	// 2. (x, SP) where x in {CM, ZWJ} and carry is an anchor: prohibited;
	// keep carry.
	if right == SP && (left == CM || left == ZWJ) && st.hasCarry && isSpaceRunAnchor(st.carry) {
		return Prohibited
	}

	// 3. (x, CM) or (x, ZWJ) where x is not excluded: emit classify(x,
	// CM); carry <- x.
	if (right == CM || right == ZWJ) && !isCombiningChainExcluded(left) {
		st.carry, st.hasCarry = left, true
		return rs.classify(left, CM)
	}

	// 4. (SP, SP): prohibited; keep carry.
	if left == SP && right == SP {
		return Prohibited
	}

	// 5. (x, CM) or (x, ZWJ) where x in {CM, ZWJ}: prohibited; keep carry.
	if (right == CM || right == ZWJ) && (left == CM || left == ZWJ) {
		return Prohibited
	}

	// 6. (ZWJ, R) where R in {ID, EB, EM} and carry is null: emit
	// classify(ZWJ, R); carry stays null.
	if left == ZWJ && (right == ID || right == EB || right == EM) && !st.hasCarry {
		return rs.classify(ZWJ, right)
	}

	// 7. (ZWJ, R) where R in {CM, ZWJ} and carry is null: emit
	// classify(AL, R); carry <- AL.
	if left == ZWJ && (right == CM || right == ZWJ) && !st.hasCarry {
		st.carry, st.hasCarry = AL, true
		return rs.classify(AL, right)
	}

	// 8. (L, R) where L in {CM, ZWJ} and carry is null: emit
	// classify(AL, R); clear carry. (LB10: orphan CM/ZWJ treated as AL.)
	if (left == CM || left == ZWJ) && !st.hasCarry {
		return rs.classify(AL, right)
	}

	// 9. (L, R) where L in {CM, ZWJ} and carry non-null: emit
	// classify(carry, R); clear carry.
	if (left == CM || left == ZWJ) && st.hasCarry {
		v := rs.classify(st.carry, right)
		st.hasCarry = false
		return v
	}

	// 10. (SP, R) with carry = ZW: emit classify(ZW, R); clear carry.
	if left == SP && st.hasCarry && st.carry == ZW {
		v := rs.classify(ZW, right)
		st.hasCarry = false
		return v
	}

	// 11. (SP, _) with carry = OP: prohibited; clear carry.
	if left == SP && st.hasCarry && st.carry == OP {
		st.hasCarry = false
		return Prohibited
	}

	// 12. (SP, OP) with carry = QU: prohibited; clear carry.
	if left == SP && right == OP && st.hasCarry && st.carry == QU {
		st.hasCarry = false
		return Prohibited
	}

	// 13. (SP, NS) with carry = CL: prohibited; clear carry.
	if left == SP && right == NS && st.hasCarry && st.carry == CL {
		st.hasCarry = false
		return Prohibited
	}

	// 14. (SP, NS) with carry = CP: prohibited; clear carry.
	if left == SP && right == NS && st.hasCarry && st.carry == CP {
		st.hasCarry = false
		return Prohibited
	}

	// 15. (SP, B2) with carry = B2: prohibited; clear carry.
	if left == SP && right == B2 && st.hasCarry && st.carry == B2 {
		st.hasCarry = false
		return Prohibited
	}

	// 16. Default: emit classify(L, R); carry unchanged.
	return rs.classify(left, right)
}
