// Package literal extracts leading literal runs from unanchored
// sub-patterns and turns them into an Aho-Corasick prefilter, the same
// architecture coregx-coregex's literal+meta packages use (extract
// literals, then let github.com/coregx/ahocorasick skip past
// non-matching regions) scaled down to this engine's one need: producing
// candidate start offsets for the matcher's free-position scan instead of
// trying every offset.
//
// The prefilter is purely an optimization. It only ever narrows the
// offsets matcher.MatchesFrom tries down to a superset of the offsets
// that could actually match; every candidate is still verified by the
// full backtracking matcher, so it cannot change the boolean result.
package literal

import (
	"sort"
	"unicode/utf8"

	"github.com/coregx/ahocorasick"

	"github.com/corelang/grep/syntax"
)

// LeadingLiteral returns the run of consecutive, unquantified, non-wildcard
// ASCII Literal tokens at the front of tokens. ok is false if tokens starts
// with anything else (a class, a group, a quantified atom, `.`, a non-ASCII
// literal, or is empty),
// in which case that sub-pattern has no literal to prefilter on.
func LeadingLiteral(tokens []syntax.Token) (string, bool) {
	var run []rune
	for _, t := range tokens {
		if t.Kind != syntax.KindLiteral || t.Literal == '.' || t.Literal > 127 {
			break
		}
		run = append(run, t.Literal)
	}
	if len(run) == 0 {
		return "", false
	}
	return string(run), true
}

// Prefilter is an Aho-Corasick automaton over the leading literals of
// every unanchored alternative in a pattern.
type Prefilter struct {
	automaton *ahocorasick.Automaton
}

// Build constructs a Prefilter for pattern. ok is false when any
// unanchored alternative lacks a usable leading literal (an alternative
// starting with `\d`, `[abc]`, `.`, or a quantified atom) -- callers
// should fall back to scanning every offset in that case, exactly as
// spec.md §4.2 describes without this optimization.
func Build(pattern *syntax.Pattern) (*Prefilter, bool) {
	builder := ahocorasick.NewBuilder()
	unanchored := 0
	for _, sub := range pattern.Alternatives {
		if len(sub.Tokens) == 0 {
			return nil, false
		}
		switch sub.Tokens[0].Kind {
		case syntax.KindStartAnchor, syntax.KindEndAnchor, syntax.KindExact:
			continue // anchored sub-patterns never consult the prefilter
		}
		lit, ok := LeadingLiteral(sub.Tokens)
		if !ok {
			return nil, false
		}
		builder.AddPattern([]byte(lit))
		unanchored++
	}
	if unanchored == 0 {
		return nil, false
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil, false
	}
	return &Prefilter{automaton: automaton}, true
}

// CandidateOffsets returns, in ascending order, every rune offset in input
// at which some alternative's leading literal begins. Every true offset a
// full scan would have tried for an unanchored alternative is present in
// this list; it may also contain extra offsets belonging to other
// alternatives, which the caller's verification step simply rejects.
func (p *Prefilter) CandidateOffsets(input string) []int {
	haystack := []byte(input)

	var offsets []int
	at := 0
	for at <= len(haystack) {
		m := p.automaton.Find(haystack, at)
		if m == nil {
			break
		}
		// m.Start always lands on a rune boundary: the literals in this
		// automaton are pure ASCII (LeadingLiteral rejects runes > 127),
		// and an ASCII byte never occurs inside a multi-byte UTF-8
		// sequence, so it is safe to count runes up to it.
		offsets = append(offsets, utf8.RuneCount(haystack[:m.Start]))
		at = m.Start + 1
	}

	sort.Ints(offsets)
	return dedup(offsets)
}

func dedup(sorted []int) []int {
	if len(sorted) < 2 {
		return sorted
	}
	out := sorted[:1]
	for _, v := range sorted[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
