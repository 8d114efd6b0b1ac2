package syntax

// expandAlternation runs pass 1 of the pipeline (spec.md §4.1): find a
// top-level `(...)` group, split its interior on top-level `|`, and
// substitute each alternative back into the surrounding text. Repeating on
// every remaining group left-to-right produces the cartesian product of
// alternatives. A pattern with no group expands to itself, unchanged.
func expandAlternation(pattern string) ([]string, error) {
	return expandRunes([]rune(pattern), pattern)
}

func expandRunes(runes []rune, original string) ([]string, error) {
	open, closeIdx, found, err := findTopLevelGroup(runes)
	if err != nil {
		return nil, newParseError(original, string(runes), err)
	}
	if !found {
		return []string{string(runes)}, nil
	}

	prefix := runes[:open]
	interior := runes[open+1 : closeIdx]
	suffix := runes[closeIdx+1:]

	alternatives := splitTopLevelAlternatives(interior)

	var results []string
	for _, alt := range alternatives {
		candidate := make([]rune, 0, len(prefix)+len(alt)+len(suffix))
		candidate = append(candidate, prefix...)
		candidate = append(candidate, alt...)
		candidate = append(candidate, suffix...)

		expanded, err := expandRunes(candidate, original)
		if err != nil {
			return nil, err
		}
		results = append(results, expanded...)
	}
	return results, nil
}

// findTopLevelGroup locates the first unescaped '(' and its matching
// unescaped ')'. Nested groups are not part of this dialect (spec.md §1
// Non-goals), so the first ')' after the first '(' is always the match.
func findTopLevelGroup(runes []rune) (open, close int, found bool, err error) {
	open = -1
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '\\':
			i++ // skip whatever follows; its validity is checked in pass 3
		case '(':
			if open == -1 {
				open = i
			}
		case ')':
			if open != -1 {
				return open, i, true, nil
			}
		}
	}
	if open != -1 {
		return 0, 0, false, ErrUnclosed
	}
	return 0, 0, false, nil
}

// splitTopLevelAlternatives splits a group's interior on unescaped '|'.
// A group with no '|' still participates in expansion, yielding a single
// alternative equal to the group's body (spec.md §4.1 pass 1).
func splitTopLevelAlternatives(interior []rune) [][]rune {
	var parts [][]rune
	start := 0
	for i := 0; i < len(interior); i++ {
		switch interior[i] {
		case '\\':
			i++
		case '|':
			parts = append(parts, interior[start:i])
			start = i + 1
		}
	}
	return append(parts, interior[start:])
}
