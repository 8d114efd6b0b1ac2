package grep

import (
	"errors"
	"testing"

	"github.com/corelang/grep/matcher"
	"github.com/corelang/grep/syntax"
)

func TestCompileAndMatch(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"abc", "abc", true},
		{`\d\d`, "12", true},
		{"ca+t", "act", false},
		{"ca?at", "cat", true},
		{"g.+gol", "goX0Ogol", true},
		{"(cat|dog)", "cat", true},
		{`^I see \d+ (cat|dog)s?$`, "I see 42 dogs", true},
		{"[^xyz]", "x", false},
	}
	for _, tt := range tests {
		re, err := Compile(tt.pattern)
		if err != nil {
			t.Fatalf("Compile(%q): %v", tt.pattern, err)
		}
		if got := re.Matches(tt.input); got != tt.want {
			t.Errorf("Compile(%q).Matches(%q) = %v, want %v", tt.pattern, tt.input, got, tt.want)
		}
	}
}

func TestCompileError(t *testing.T) {
	_, err := Compile("[abc")
	if err == nil {
		t.Fatal("expected an error for an unclosed bracket expression")
	}
	if !errors.Is(err, syntax.ErrUnclosed) {
		t.Errorf("got %v, want an ErrUnclosed-wrapping error", err)
	}
}

func TestMustCompilePanicsOnInvalidPattern(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustCompile did not panic on an invalid pattern")
		}
	}()
	MustCompile(`\q`)
}

func TestMatchConvenience(t *testing.T) {
	ok, err := Match("abc", "xabcx")
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if !ok {
		t.Error("Match(\"abc\", \"xabcx\") = false, want true")
	}
}

func TestPrefilterAgreesWithUnfiltered(t *testing.T) {
	// Patterns where every alternative has a leading literal engage the
	// Aho-Corasick prefilter (literal.Build); this checks the facade's
	// Matches (which may use it) against matcher.Matches (which never
	// does), so the optimization cannot be observed from the outside.
	patterns := []string{"(cat|dog)", "cat", "(hello|world)"}
	inputs := []string{"a dog barked", "nothing here", "hello there", "world", ""}
	for _, pattern := range patterns {
		re, err := Compile(pattern)
		if err != nil {
			t.Fatalf("Compile(%q): %v", pattern, err)
		}
		p, err := syntax.Parse(pattern)
		if err != nil {
			t.Fatalf("syntax.Parse(%q): %v", pattern, err)
		}
		for _, in := range inputs {
			want := matcher.Matches(p, in)
			if got := re.Matches(in); got != want {
				t.Errorf("Compile(%q).Matches(%q) = %v, want %v (prefilter disagreement)", pattern, in, got, want)
			}
		}
	}
}
