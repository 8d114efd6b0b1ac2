// Package grep provides a from-scratch regular-expression engine for a
// deliberately restricted dialect: literals, the `\d`/`\w` character
// classes, positive/negative bracket expressions, `^`/`$` anchors, the
// `+`/`?` quantifiers, the `.` wildcard, and top-level alternation through
// a single pair of parentheses.
//
// Compile a pattern once and reuse the result across goroutines -- a
// Compiled value is immutable and Matches performs no synchronization.
//
// Example:
//
//	re, err := grep.Compile(`^I see \d+ (cat|dog)s?$`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if re.Matches("I see 42 dogs") {
//	    fmt.Println("matched!")
//	}
package grep

import (
	"github.com/corelang/grep/literal"
	"github.com/corelang/grep/matcher"
	"github.com/corelang/grep/syntax"
)

// Compiled is a parsed, immutable pattern ready to match input strings.
type Compiled struct {
	pattern  *syntax.Pattern
	source   string
	prefilt  *literal.Prefilter
	hasPrefl bool
}

// Compile parses pattern and returns a Compiled value, or a *syntax.ParseError
// describing the first syntax problem encountered (spec.md §4.1, §7).
func Compile(pattern string) (*Compiled, error) {
	p, err := syntax.Parse(pattern)
	if err != nil {
		return nil, err
	}

	pf, ok := literal.Build(p)
	return &Compiled{pattern: p, source: pattern, prefilt: pf, hasPrefl: ok}, nil
}

// MustCompile is like Compile but panics if pattern is invalid. Intended
// for patterns known to be valid ahead of time, e.g. a constant.
func MustCompile(pattern string) *Compiled {
	c, err := Compile(pattern)
	if err != nil {
		panic("grep: Compile(" + pattern + "): " + err.Error())
	}
	return c
}

// String returns the pattern text this value was compiled from.
func (c *Compiled) String() string { return c.source }

// Matches reports whether input is matched by the compiled pattern.
func (c *Compiled) Matches(input string) bool {
	if !c.hasPrefl {
		return matcher.Matches(c.pattern, input)
	}
	return matcher.MatchesFrom(c.pattern, input, c.prefilt.CandidateOffsets(input))
}

// Match compiles pattern and reports whether input matches it. It is a
// convenience for one-shot use; compile once with Compile/MustCompile and
// reuse the result when checking many lines against the same pattern.
func Match(pattern, input string) (bool, error) {
	c, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return c.Matches(input), nil
}
