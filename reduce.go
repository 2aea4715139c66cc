package sais

import "golang.org/x/exp/slices"

// construct returns the suffix array of seq. The last symbol of seq must be
// its unique minimum 0 and every symbol must be below alphabetSize.
//
// The LMS positions are sorted first, either directly when every
// LMS-substring is distinct or by recursing on the reduced sequence of
// LMS-substring ranks. A second induced sort seeded with that exact order
// places every other position.
func construct(seq []int, alphabetSize int) []int {
	switch len(seq) {
	case 0:
		return []int{}
	case 1:
		return []int{0}
	}

	counts := histogram(seq, alphabetSize)
	info := classify(seq)
	lms, ordinal := lmsPositions(info)
	sorted := sortLMS(seq, counts, info, lms, ordinal)

	t := newBucketTable(seq, counts)
	// Largest first, so each bucket's back region ends up ascending.
	for i := len(sorted) - 1; i >= 0; i-- {
		t.pushBack(sorted[i], true)
	}
	induce(t, info)
	return t.order()
}

// sortLMS returns the LMS positions of seq in suffix order.
func sortLMS(seq, counts []int, info []suffixInfo, lms, ordinal []int) []int {
	t := newBucketTable(seq, counts)
	for _, p := range lms {
		t.pushBack(p, true)
	}
	induce(t, info)

	reduced, ranks := rankLMS(t, seq, lms, ordinal)
	sorted := make([]int, len(lms))
	if ranks == len(lms) {
		// Every LMS-substring is distinct, so its rank is already the rank
		// of its LMS suffix.
		for k, r := range reduced {
			sorted[r] = lms[k]
		}
		return sorted
	}
	for i, k := range construct(reduced, ranks) {
		sorted[i] = lms[k]
	}
	return sorted
}

// rankLMS names the LMS-substrings in the order produced by the first
// induced sort. Adjacent substrings with the same length and symbols share
// a name. It returns the names in sequence order, which is the reduced
// sequence, and the number of distinct names.
//
// The substring of an LMS position runs through the next LMS position
// inclusive. The last LMS position is the sentinel; having no successor, it
// always gets a name of its own. Being the smallest suffix it is named
// first, so the reduced sequence again ends with a unique 0.
func rankLMS(t *bucketTable, seq, lms, ordinal []int) ([]int, int) {
	reduced := make([]int, len(lms))
	last := len(lms) - 1
	ranks := 0
	var prev []int
	t.each(func(s slot) {
		if !s.lms {
			return
		}
		k := ordinal[s.pos]
		if k == last {
			reduced[k] = ranks
			ranks++
			return
		}
		cur := seq[s.pos : lms[k+1]+1]
		if prev == nil || !slices.Equal(prev, cur) {
			ranks++
		}
		reduced[k] = ranks - 1
		prev = cur
	})
	return reduced, ranks
}
