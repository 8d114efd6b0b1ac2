// Package matcher implements the backtracking matcher described in
// spec.md §4.2: given a syntax.Pattern and an input string, it decides
// whether the pattern matches. The matcher never errors; a failed match is
// simply false.
package matcher

import "github.com/corelang/grep/syntax"

// matchToken's result models spec.md's Remaining type. Rather than a
// Single/Multiple enum we always return an ordered list of candidate
// remainders plus a matched flag: a single-element list is the Single
// case, a longer one is the Multiple case, and matched=false is "no
// match" (there is no Go analogue needed for Remaining::Single(None) --
// failure is conveyed by the bool alone).
func matchToken(tok syntax.Token, s []rune) (candidates [][]rune, matched bool) {
	switch tok.Kind {
	case syntax.KindLiteral:
		if len(s) == 0 {
			return nil, false
		}
		if tok.Literal != '.' && s[0] != tok.Literal {
			return nil, false
		}
		return [][]rune{s[1:]}, true

	case syntax.KindCharClass:
		if len(s) == 0 || !matchesClass(tok.Class, s[0]) {
			return nil, false
		}
		return [][]rune{s[1:]}, true

	case syntax.KindGroup:
		if len(s) == 0 {
			return nil, false
		}
		member := containsRune(tok.GroupLits, s[0])
		if tok.Group == syntax.OneOf && !member {
			return nil, false
		}
		if tok.Group == syntax.NoneOf && member {
			return nil, false
		}
		return [][]rune{s[1:]}, true

	case syntax.KindStartAnchor, syntax.KindEndAnchor:
		ok, rem := matchSubTokens(tok.Sub, s)
		if !ok {
			return nil, false
		}
		return [][]rune{rem}, true

	case syntax.KindExact:
		ok, rem := matchSubTokensExact(tok.Sub, s)
		if !ok {
			return nil, false
		}
		return [][]rune{rem}, true

	case syntax.KindOneOrMore:
		return matchOneOrMore(*tok.Inner, s)

	case syntax.KindZeroOrOne:
		return matchZeroOrOne(*tok.Inner, s)
	}
	return nil, false
}

// matchOneOrMore matches the wrapped token one or more times, greedily,
// and returns every prefix length from 1 to n that matched -- shortest
// first -- so the caller can backtrack through them in order.
func matchOneOrMore(inner syntax.Token, s []rune) ([][]rune, bool) {
	first, ok := matchToken(inner, s)
	if !ok {
		return nil, false
	}
	remainders := [][]rune{first[0]}
	for {
		next, ok := matchToken(inner, remainders[len(remainders)-1])
		if !ok {
			break
		}
		remainders = append(remainders, next[0])
	}
	return remainders, true
}

// matchZeroOrOne always succeeds: it offers the zero-match candidate
// first, then the one-match candidate if the wrapped token matches.
func matchZeroOrOne(inner syntax.Token, s []rune) ([][]rune, bool) {
	one, ok := matchToken(inner, s)
	if !ok {
		return [][]rune{s}, true
	}
	return [][]rune{s, one[0]}, true
}

func matchesClass(k syntax.CharClassKind, r rune) bool {
	if k == syntax.Digit {
		return r >= '0' && r <= '9'
	}
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

func containsRune(set []rune, r rune) bool {
	for _, c := range set {
		if c == r {
			return true
		}
	}
	return false
}
