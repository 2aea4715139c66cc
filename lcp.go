package sais

// BuildLCPArray returns the LCP array of text in O(n) time. lcp[i] is the
// length of the longest common prefix of the suffixes at suffixArray[i] and
// suffixArray[i+1], so the result is one shorter than suffixArray.
//
// suffixArray must hold every suffix of text. An empty array yields nil.
func BuildLCPArray[T comparable](suffixArray []int, text []T) []int {
	n := len(suffixArray)
	if n == 0 {
		return nil
	}

	// next[p] is the suffix that follows p in suffixArray, or -1 for the
	// last one.
	next := make([]int, n)
	for i, p := range suffixArray {
		next[p] = -1
		if i+1 < n {
			next[p] = suffixArray[i+1]
		}
	}

	// Walking the text in order, each common prefix is at least one less
	// than the previous one.
	plcp := next
	h := 0
	for p := 0; p < n; p++ {
		q := next[p]
		if q < 0 {
			plcp[p] = 0
			h = 0
			continue
		}
		for p+h < len(text) && q+h < len(text) && text[p+h] == text[q+h] {
			h++
		}
		plcp[p] = h
		h = max(h-1, 0)
	}

	lcp := make([]int, n-1)
	for i, p := range suffixArray[:n-1] {
		lcp[i] = plcp[p]
	}
	return lcp
}
