package matcher

// reverseRunes reverses s character-wise (not byte-wise), matching
// spec.md §9's "end-anchor by reversal" design: the parser already stored
// an EndAnchor's inner tokens reversed, so reversing the input here lets
// the same forward matchToken/matchSubTokens pair serve both anchors --
// no separate right-to-left engine.
func reverseRunes(s []rune) []rune {
	out := make([]rune, len(s))
	for i, r := range s {
		out[len(s)-1-i] = r
	}
	return out
}
