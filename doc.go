/*
Package linebreak implements the Unicode Line Breaking Algorithm (UAX #14):
a conformant, tailorable engine for deciding where a line of text may or
must be broken.

This package conforms to:
  - Unicode Standard Annex #14 (https://unicode.org/reports/tr14/) for line
    breaking
  - Unicode version 17.0

# Overview

Using this package, you can:
  - Classify a code point into its Line_Break class ([ClassOf])
  - Find every break opportunity in a string, tagged required or allowed
    ([LinebreakLocations])
  - Hard-wrap a string at its mandatory breaks only ([ApplyRequiredLinebreaks])
  - Hard-wrap a string and, for each resulting line, report the candidate
    soft-break offsets within it ([IdentifyLinebreakPositions])

# Tailoring

The algorithm is pipeline of three replaceable parts:
  - A [Resolver] maps a raw classification to the resolved class the rule
    engine consumes (LB1). [DefaultResolver] implements the standard's
    default resolution.
  - A [RuleSet] is an ordered list of pairwise [Rule] predicates. The
    required rules (LB2-LB12's shape) always run first; the tailorable
    rules that follow can be replaced or removed individually with
    [RuleSet.Replace] and [RuleSet.Remove]. [DefaultRuleSet] builds the
    standard's default order.
  - [NumericTailoring] swaps in the numeric-aware LB13/LB25 variants from
    UAX #14 §8.2, the tailoring the conformance test suite requires.

For config-driven tailoring, [LoadProfile] reads a YAML profile naming a
base rule set plus a list of replace/remove operations, and [CompileRule]
turns a small CEL expression over the two adjacent class names into a
[Rule] without recompiling the program.

# Getting Started

	locations, err := linebreak.LinebreakLocations("hello,\ncruel world", nil)
	lines, err := linebreak.ApplyRequiredLinebreaks("hello,\ncruel world", nil)
	segments, err := linebreak.IdentifyLinebreakPositions("hello,\ncruel world", nil)

Pass a non-nil [Options] to any of the three driver functions to supply a
custom [Resolver] or [RuleSet]; a nil [Options] uses the defaults.
*/
package linebreak
