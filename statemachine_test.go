package linebreak

import "testing"

func TestCarryStateSpaceRun(t *testing.T) {
	rs := DefaultRuleSet()
	var st carryState

	// OP SP SP CL: the carry anchors OP across the space run, so the
	// eventual (carry=OP, CL) pair is still governed by the OP-anchored
	// transition rather than falling through to a bare (SP, CL) pair.
	if v := st.step(rs, OP, SP); v != Prohibited {
		t.Fatalf("step(OP, SP) = %v, want Prohibited", v)
	}
	if v := st.step(rs, SP, SP); v != Prohibited {
		t.Fatalf("step(SP, SP) = %v, want Prohibited", v)
	}
	if v := st.step(rs, SP, CL); v != Prohibited {
		t.Fatalf("step(SP, CL) with carry=OP = %v, want Prohibited", v)
	}
}

func TestCarryStateCombiningChain(t *testing.T) {
	rs := DefaultRuleSet()
	var st carryState

	// AL CM CM AL: the chain's base class (AL) carries through both
	// combining marks, then drives the final pair.
	if v := st.step(rs, AL, CM); v != Prohibited {
		t.Fatalf("step(AL, CM) = %v, want Prohibited", v)
	}
	if v := st.step(rs, CM, CM); v != Prohibited {
		t.Fatalf("step(CM, CM) = %v, want Prohibited", v)
	}
	if v := st.step(rs, CM, AL); v != Prohibited {
		t.Fatalf("step(CM, AL) with carry=AL = %v, want Prohibited (LB28 AL-AL)", v)
	}
}

func TestCarryStateOrphanCombiningMark(t *testing.T) {
	rs := DefaultRuleSet()
	var st carryState

	// SP CM AL: LB9 does not apply after SP, so (SP, CM) falls through to
	// LB18's break after a space. The CM then has no preceding base and no
	// carry, so it is treated as AL (LB10) and the next pair is classified
	// as (AL, AL).
	if v := st.step(rs, SP, CM); v != Allowed {
		t.Fatalf("step(SP, CM) = %v, want Allowed (LB18; LB9 excludes SP)", v)
	}
	if v := st.step(rs, CM, AL); v != Prohibited {
		t.Fatalf("step(CM, AL) with null carry = %v, want Prohibited (treated as AL-AL)", v)
	}
}

func TestCarryStateRegionalIndicatorParity(t *testing.T) {
	rs := DefaultRuleSet()
	var st carryState

	want := []Verdict{Prohibited, Allowed, Prohibited}
	for i, w := range want {
		if got := st.step(rs, RI, RI); got != w {
			t.Errorf("RI pair #%d = %v, want %v", i, got, w)
		}
	}
}

func TestCarryStateZWJAnchorWithoutCarry(t *testing.T) {
	rs := DefaultRuleSet()
	var st carryState

	if v := st.step(rs, ZWJ, ID); v != Prohibited {
		t.Errorf("step(ZWJ, ID) = %v, want Prohibited (LB8a)", v)
	}
}
