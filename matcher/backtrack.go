package matcher

import "github.com/corelang/grep/syntax"

// Matches reports whether any alternative of pattern matches input,
// trying alternatives in source order (spec.md §4.2 pattern dispatch).
// Every offset is tried for an unanchored sub-pattern; callers with a
// literal prefilter available should use MatchesFrom instead.
func Matches(pattern *syntax.Pattern, input string) bool {
	return MatchesFrom(pattern, input, nil)
}

// MatchesFrom behaves like Matches, except that an unanchored
// sub-pattern's free-position scan tries only the offsets in offsetHint
// (ascending) instead of every offset 0..len(input). Pass nil to fall
// back to the exhaustive scan. offsetHint must be a superset of every
// offset at which some unanchored alternative could start matching, or
// this function can wrongly return false; see literal.Prefilter.
func MatchesFrom(pattern *syntax.Pattern, input string, offsetHint []int) bool {
	runes := []rune(input)
	for _, sub := range pattern.Alternatives {
		if matchSubPattern(sub, runes, offsetHint) {
			return true
		}
	}
	return false
}

// matchSubPattern dispatches on the sub-pattern's first token to pick a
// scan strategy, then walks the remaining tokens with backtracking.
func matchSubPattern(sub syntax.SubPattern, input []rune, offsetHint []int) bool {
	if len(sub.Tokens) == 0 {
		return true
	}

	switch first := sub.Tokens[0]; first.Kind {
	case syntax.KindStartAnchor:
		_, ok := matchToken(first, input)
		return ok

	case syntax.KindEndAnchor:
		_, ok := matchToken(first, reverseRunes(input))
		return ok

	case syntax.KindExact:
		_, ok := matchToken(first, input)
		return ok

	default:
		for _, offset := range freePositions(len(input), offsetHint) {
			if ok, _ := matchSubTokens(sub.Tokens, input[offset:]); ok {
				return true
			}
		}
		return false
	}
}

// freePositions returns the offsets a free-position scan should try, in
// left-to-right order: every offset 0..n when no candidate list was
// supplied, or exactly the supplied list otherwise.
func freePositions(n int, candidates []int) []int {
	if candidates != nil {
		return candidates
	}
	all := make([]int, n+1)
	for i := range all {
		all[i] = i
	}
	return all
}

// matchSubTokens walks tokens left to right against s, backtracking over
// any token that offered more than one candidate remainder (spec.md §4.2
// match_subpattern). It returns the remainder left after the whole list
// matched.
func matchSubTokens(tokens []syntax.Token, s []rune) (bool, []rune) {
	if len(tokens) == 0 {
		return true, s
	}

	candidates, ok := matchToken(tokens[0], s)
	if !ok {
		return false, nil
	}
	for _, candidate := range candidates {
		if ok, rest := matchSubTokens(tokens[1:], candidate); ok {
			return true, rest
		}
	}
	return false, nil
}

// matchSubTokensExact is matchSubTokens for an Exact-wrapped sub-pattern
// (spec.md §9: a ^...$-anchored pattern must consume the input exactly).
// Its base case rejects a non-empty remainder instead of accepting
// unconditionally, so a quantifier's shorter candidate -- tried first,
// per spec's own ordering -- gets rejected and backtracking moves on to
// a longer one instead of the search stopping as soon as the token list
// runs out.
func matchSubTokensExact(tokens []syntax.Token, s []rune) (bool, []rune) {
	if len(tokens) == 0 {
		if len(s) != 0 {
			return false, nil
		}
		return true, s
	}

	candidates, ok := matchToken(tokens[0], s)
	if !ok {
		return false, nil
	}
	for _, candidate := range candidates {
		if ok, rest := matchSubTokensExact(tokens[1:], candidate); ok {
			return true, rest
		}
	}
	return false, nil
}
