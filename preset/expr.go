package preset

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/zoobzio/stencil"
)

// charEnv is the evaluation environment for rule expressions. The candidate
// character is exposed as a one-rune string so expressions can use ordinary
// string comparison and the built-in string functions.
func charEnv(c string) map[string]any {
	return map[string]any{"char": c}
}

// compileRule compiles a RuleSpec into a stencil.Rule. The match expression
// must produce a bool; the transform expression, when present, must produce
// a string whose first rune replaces the input.
func compileRule(spec RuleSpec) (stencil.Rule, error) {
	if spec.Match == "" {
		return stencil.Rule{}, fmt.Errorf("%w: match expression required", ErrInvalidRule)
	}

	matchProg, err := expr.Compile(spec.Match, expr.Env(charEnv("")), expr.AsBool())
	if err != nil {
		return stencil.Rule{}, fmt.Errorf("%w: failed to compile match %q: %v", ErrInvalidRule, spec.Match, err)
	}

	rule := stencil.Rule{
		Match: func(r rune) bool {
			out, err := vm.Run(matchProg, charEnv(string(r)))
			if err != nil {
				return false
			}
			b, ok := out.(bool)
			return ok && b
		},
	}

	if spec.Transform != "" {
		transformProg, err := expr.Compile(spec.Transform, expr.Env(charEnv("")))
		if err != nil {
			return stencil.Rule{}, fmt.Errorf("%w: failed to compile transform %q: %v", ErrInvalidRule, spec.Transform, err)
		}
		rule.Transform = func(r rune) rune {
			out, err := vm.Run(transformProg, charEnv(string(r)))
			if err != nil {
				return r
			}
			s, ok := out.(string)
			if !ok || s == "" {
				return r
			}
			return []rune(s)[0]
		}
	}

	return rule, nil
}
