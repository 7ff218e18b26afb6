package alphabet

// Segment decomposes text into alphabet symbols (including the epsilon
// marker), proving the decomposition is unique.
//
// Implements the dynamic-programming algorithm of spec.md section 4.1:
// dp[i] counts the number of distinct decompositions of text[0:i];
// dp[0] = 1; dp[i] = sum of dp[j] over j < i with text[j:i] a symbol.
// Segment fails with AmbiguousAlphabetError when dp[n] > 1 and
// UnsegmentableStringError when dp[n] == 0. The count is capped at 2
// internally since only "zero", "one", or "more than one" matter.
func (a *Alphabet) Segment(text string) ([]string, error) {
	ext := a.extended()
	n := len(text)

	dp := make([]int, n+1)
	back := make([]int, n+1)
	for i := range back {
		back[i] = -1
	}
	dp[0] = 1

	for i := 1; i <= n; i++ {
		for j := 0; j < i; j++ {
			if dp[j] == 0 {
				continue
			}
			if _, ok := ext[text[j:i]]; !ok {
				continue
			}
			if back[i] == -1 {
				back[i] = j
			}
			dp[i] += dp[j]
			if dp[i] > 1 {
				dp[i] = 2 // cap: we only distinguish 0 / 1 / >1
			}
		}
	}

	switch {
	case dp[n] == 0:
		return nil, &UnsegmentableStringError{Text: text, Position: n}
	case dp[n] > 1:
		return nil, &AmbiguousAlphabetError{Text: text, Position: n}
	}

	return reconstruct(text, back), nil
}

// reconstruct walks the back-pointer table produced by the segmentation
// DP from n down to 0, collecting the decomposition in left-to-right
// order. Callers must already have established dp[n] == 1.
func reconstruct(text string, back []int) []string {
	n := len(text)
	var pieces []string
	for i := n; i > 0; {
		j := back[i]
		pieces = append(pieces, text[j:i])
		i = j
	}
	// pieces was built right-to-left; reverse in place.
	for l, r := 0, len(pieces)-1; l < r; l, r = l+1, r-1 {
		pieces[l], pieces[r] = pieces[r], pieces[l]
	}
	return pieces
}

// countDecompositions reports whether text has zero, exactly one, or
// more than one decomposition over the alphabet's extended symbol set,
// without materializing a decomposition. Used by Tokenize, which
// reconstructs the actual sequence via the Aho-Corasick automaton
// instead of the DP backpointer table once uniqueness is confirmed.
func (a *Alphabet) countDecompositions(text string) int {
	ext := a.extended()
	n := len(text)

	dp := make([]int, n+1)
	dp[0] = 1
	for i := 1; i <= n; i++ {
		for j := 0; j < i; j++ {
			if dp[j] == 0 {
				continue
			}
			if _, ok := ext[text[j:i]]; !ok {
				continue
			}
			dp[i] += dp[j]
			if dp[i] > 1 {
				dp[i] = 2
				break
			}
		}
	}
	return dp[n]
}

// Tokenize returns one valid decomposition of text into alphabet
// symbols, after verifying the decomposition is unique.
//
// Segment already produces a valid decomposition as a side effect of
// its ambiguity check; Tokenize exists as the fast path spec.md section
// 4.1 allows ("greedy-leftmost is acceptable once uniqueness has been
// verified"): once countDecompositions confirms dp[n] == 1, the actual
// sequence is recovered with a single leftmost-greedy scan driven by an
// Aho-Corasick automaton over the extended alphabet, rather than the
// O(n) backpointer table Segment builds.
func (a *Alphabet) Tokenize(text string) ([]string, error) {
	switch a.countDecompositions(text) {
	case 0:
		return nil, &UnsegmentableStringError{Text: text, Position: len(text)}
	case 1:
		// fall through to greedy reconstruction
	default:
		return nil, &AmbiguousAlphabetError{Text: text, Position: len(text)}
	}

	auto, err := a.automaton()
	if err != nil {
		// The automaton could not be built (e.g. pattern set rejected by
		// the library); fall back to the DP-backed Segment, which does
		// not depend on it.
		return a.Segment(text)
	}

	haystack := []byte(text)
	var pieces []string
	for at := 0; at < len(haystack); {
		m := auto.Find(haystack, at)
		if m == nil || m.Start != at {
			// Uniqueness was already confirmed; a missing match at the
			// current offset means the automaton and the DP disagree,
			// which should not happen. Fall back to the proven path.
			return a.Segment(text)
		}
		pieces = append(pieces, text[m.Start:m.End])
		at = m.End
	}
	return pieces, nil
}
