package linebreak

import "unicode"

// Resolver maps a raw classification (and its General_Category, needed by
// the SA case) to the resolved class the rule engine consumes. This is
// LB1 and the first tailoring hook: callers may supply their own to
// implement locale-specific or contextual adjustments.
type Resolver func(r rune, raw Class, gc GeneralCategory) Class

// DefaultResolver implements LB1's default resolution:
//
//	AI, SG, XX -> AL
//	SA         -> CM if General_Category is Mn or Mc, else AL
//	CJ         -> NS
//	otherwise  -> unchanged
//
// The SA case mirrors gorilla/i18n/linebreak's classResolver, which
// performs the same Mn/Mc check via the standard library's unicode
// package.
func DefaultResolver(r rune, raw Class, gc GeneralCategory) Class {
	switch raw {
	case AI, SG, XX:
		return AL
	case SA:
		if unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r) || gc == gcMn || gc == gcMc {
			return CM
		}
		return AL
	case CJ:
		return NS
	default:
		return raw
	}
}

// resolve applies a possibly-nil Resolver, falling back to DefaultResolver.
func resolve(resolver Resolver, r rune, raw Class, gc GeneralCategory) Class {
	if resolver == nil {
		resolver = DefaultResolver
	}
	return resolver(r, raw, gc)
}
