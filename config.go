package linebreak

import (
	"errors"
	"fmt"
	"io"
	"strings"

	strcase "github.com/stoewer/go-strcase"
	"gopkg.in/yaml.v3"
)

// Profile is the YAML document shape [LoadProfile] reads: a named base
// rule set, followed by an ordered list of tailoring operations applied
// to it, exposed by rule name instead of by raw index.
type Profile struct {
	Base       string             `yaml:"base"`
	Operations []ProfileOperation `yaml:"operations"`
}

// ProfileOperation is one step of a Profile: exactly one of Replace or
// Remove should be set, naming the tailorable rule it targets.
type ProfileOperation struct {
	Replace string `yaml:"replace,omitempty"`
	Remove  string `yaml:"remove,omitempty"`
}

type namedRule struct {
	index int
	rule  Rule
}

// namedRules maps a normalized rule name to its slot in
// [DefaultRuleSet]'s tailorable list and the rule that occupies it by
// default (or, for the numeric-aware variants, the rule that replaces
// it under conformance tailoring).
var namedRules = map[string]namedRule{
	"lb12a":       {0, ruleLB12a},
	"lb13":        {idxLB13, ruleLB13},
	"numericlb13": {idxLB13, NumericLB13},
	"lb14":        {2, ruleLB14},
	"lb15":        {3, ruleLB15},
	"lb16":        {4, ruleLB16},
	"lb17":        {5, ruleLB17},
	"lb18":        {6, ruleLB18},
	"lb19":        {7, ruleLB19},
	"lb20":        {8, ruleLB20},
	"lb21":        {9, ruleLB21},
	"lb21b":       {10, ruleLB21b},
	"lb22":        {11, ruleLB22},
	"lb23":        {12, ruleLB23},
	"lb24":        {13, ruleLB24},
	"lb25":        {idxLB25, ruleLB25},
	"numericlb25": {idxLB25, NumericLB25},
	"lb26":        {15, ruleLB26},
	"lb27":        {16, ruleLB27},
	"lb28":        {17, ruleLB28},
	"lb29":        {18, ruleLB29},
	"lb30":        {19, ruleLB30},
	"lb30a":       {20, ruleLB30a},
	"lb30b":       {21, ruleLB30b},
}

// normalizeRuleName folds a profile author's spelling of a rule name —
// "numeric_lb13", "numeric-lb13", "NumericLB13" — down to the lookup key
// above, using go-strcase's acronym-aware snake-casing the way
// SCKelemen/layout's WPT fixture loader normalizes field names before
// lookup.
func normalizeRuleName(name string) string {
	return strings.ReplaceAll(strcase.SnakeCase(name), "_", "")
}

// LoadProfile reads a YAML tailoring profile and returns the resulting
// RuleSet. It fails with [DataLoadError] if the document can't be
// parsed, or names a base rule set or rule that doesn't exist.
//
// Remove operations shift every later tailorable index down by one;
// LoadProfile tracks this internally so a profile author can still name
// rules by their position in the untouched [DefaultRuleSet], in any
// order, without reasoning about the shift themselves.
func LoadProfile(r io.Reader) (RuleSet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return RuleSet{}, &DataLoadError{Err: err}
	}

	var doc Profile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return RuleSet{}, &DataLoadError{Err: err}
	}

	rs, err := baseRuleSet(doc.Base)
	if err != nil {
		return RuleSet{}, err
	}

	removed := make(map[int]bool)
	adjust := func(original int) int {
		idx := original
		for r := range removed {
			if r < original {
				idx--
			}
		}
		return idx
	}

	for i, op := range doc.Operations {
		line := i + 1
		switch {
		case op.Replace != "":
			entry, ok := namedRules[normalizeRuleName(op.Replace)]
			if !ok {
				return RuleSet{}, &DataLoadError{Line: line, Err: fmt.Errorf("unknown rule %q", op.Replace)}
			}
			rs, err = rs.Replace(adjust(entry.index), entry.rule)
		case op.Remove != "":
			entry, ok := namedRules[normalizeRuleName(op.Remove)]
			if !ok {
				return RuleSet{}, &DataLoadError{Line: line, Err: fmt.Errorf("unknown rule %q", op.Remove)}
			}
			rs, err = rs.Remove(adjust(entry.index))
			if err == nil {
				removed[entry.index] = true
			}
		default:
			err = errors.New("operation names neither a replace nor a remove target")
		}
		if err != nil {
			return RuleSet{}, &DataLoadError{Line: line, Err: err}
		}
	}

	return rs, nil
}

func baseRuleSet(name string) (RuleSet, error) {
	switch normalizeRuleName(name) {
	case "", "default":
		return DefaultRuleSet(), nil
	case "numeric":
		return NumericTailoring(DefaultRuleSet()), nil
	default:
		return RuleSet{}, &DataLoadError{Err: fmt.Errorf("unknown base rule set %q", name)}
	}
}
