package sais

// induce completes a table seeded with LMS positions in the back regions
// of their buckets. L-type positions are induced left to right into the
// front regions, then the back regions are rebuilt right to left with the
// S-type positions. The resulting order is exact when the seed order was
// exact; otherwise it is exact up to LMS-substrings.
func induce(t *bucketTable, info []suffixInfo) {
	for c := range t.buckets {
		if !t.exists[c] {
			continue
		}
		b := &t.buckets[c]
		// The front region may grow while it is being scanned.
		for j := 0; j < b.front; j++ {
			induceL(t, info, b.slots[j].pos)
		}
		for j := b.back + 1; j < len(b.slots); j++ {
			induceL(t, info, b.slots[j].pos)
		}
	}

	t.resetBack()

	for c := len(t.buckets) - 1; c >= 0; c-- {
		if !t.exists[c] {
			continue
		}
		b := &t.buckets[c]
		// The back region may grow while it is being scanned.
		for j := len(b.slots) - 1; j > b.back; j-- {
			induceS(t, info, b.slots[j].pos)
		}
		for j := b.front - 1; j >= 0; j-- {
			induceS(t, info, b.slots[j].pos)
		}
	}
}

func induceL(t *bucketTable, info []suffixInfo, pos int) {
	if pos > 0 && info[pos-1].typ == typeL {
		t.pushFront(pos-1, info[pos-1].lms)
	}
}

func induceS(t *bucketTable, info []suffixInfo, pos int) {
	if pos > 0 && info[pos-1].typ == typeS {
		t.pushBack(pos-1, info[pos-1].lms)
	}
}
