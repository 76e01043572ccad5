package linebreak

import (
	"fmt"

	"github.com/google/cel-go/cel"
)

// CompileRule compiles expr, a CEL expression over two declared string
// variables left and right (the resolved class names, e.g. "AL" or
// "SP"), into a [Rule]. expr is expected to evaluate to one of
// "required", "prohibited", "allowed", or "" (no opinion); any other
// result, or an evaluation error, is treated as no opinion rather than
// failing the whole cascade.
//
// This is grounded on SCKelemen/layout's wpt_cel.go, which evaluates
// small CEL expressions against named fields to decide pass/fail — the
// same "declare variables, compile once, evaluate many times" shape,
// repurposed from test assertions to tailoring predicates so a caller
// can add a rule from config without recompiling the program.
func CompileRule(expr string) (Rule, error) {
	env, err := cel.NewEnv(
		cel.Variable("left", cel.StringType),
		cel.Variable("right", cel.StringType),
	)
	if err != nil {
		return nil, fmt.Errorf("linebreak: cel: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("linebreak: cel: compile %q: %w", expr, issues.Err())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("linebreak: cel: program %q: %w", expr, err)
	}

	return func(left, right Class) Verdict {
		out, _, err := prg.Eval(map[string]interface{}{
			"left":  left.String(),
			"right": right.String(),
		})
		if err != nil {
			return NoOpinion
		}
		s, ok := out.Value().(string)
		if !ok {
			return NoOpinion
		}
		switch s {
		case "required":
			return Required
		case "prohibited":
			return Prohibited
		case "allowed":
			return Allowed
		default:
			return NoOpinion
		}
	}, nil
}
