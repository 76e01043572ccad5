package linebreak

import "testing"

func TestCompileRuleBasic(t *testing.T) {
	rule, err := CompileRule(`left == "AL" && right == "AL" ? "required" : ""`)
	if err != nil {
		t.Fatalf("CompileRule: %v", err)
	}
	if got := rule(AL, AL); got != Required {
		t.Errorf("rule(AL, AL) = %v, want Required", got)
	}
	if got := rule(AL, NU); got != NoOpinion {
		t.Errorf("rule(AL, NU) = %v, want NoOpinion", got)
	}
}

func TestCompileRuleInRuleSet(t *testing.T) {
	rule, err := CompileRule(`left == "SY" && right == "HL" ? "prohibited" : ""`)
	if err != nil {
		t.Fatalf("CompileRule: %v", err)
	}
	rs, err := DefaultRuleSet().Replace(0, rule)
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if got := rs.classify(SY, HL); got != Prohibited {
		t.Errorf("classify(SY, HL) = %v, want Prohibited", got)
	}
}

func TestCompileRuleSyntaxError(t *testing.T) {
	if _, err := CompileRule("left ==="); err == nil {
		t.Fatal("expected a compile error")
	}
}

func TestCompileRuleNonStringResultIsNoOpinion(t *testing.T) {
	rule, err := CompileRule(`1 + 1`)
	if err != nil {
		t.Fatalf("CompileRule: %v", err)
	}
	if got := rule(AL, AL); got != NoOpinion {
		t.Errorf("rule(AL, AL) = %v, want NoOpinion", got)
	}
}
