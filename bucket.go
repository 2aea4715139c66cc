package sais

// slot is one entry of a bucket: the start of a suffix and whether that
// start is an LMS position.
type slot struct {
	pos int
	lms bool
}

// bucket holds every position whose suffix starts with one symbol.
// It is a fixed-capacity two-ended container: the front region grows
// left to right and the back region grows right to left. The front region
// is slots[:front] and the back region is slots[back+1:].
type bucket struct {
	slots []slot
	front int // next free slot at the front
	back  int // next free slot at the back
}

func newBucket(slots []slot) bucket {
	return bucket{slots: slots, back: len(slots) - 1}
}

func (b *bucket) pushFront(pos int, lms bool) {
	if b.front > b.back {
		panic(ErrBucketOverflow)
	}
	b.slots[b.front] = slot{pos: pos, lms: lms}
	b.front++
}

func (b *bucket) pushBack(pos int, lms bool) {
	if b.front > b.back {
		panic(ErrBucketOverflow)
	}
	b.slots[b.back] = slot{pos: pos, lms: lms}
	b.back--
}

// resetBack discards the back region.
func (b *bucket) resetBack() {
	b.back = len(b.slots) - 1
}

// bucketTable partitions the positions of seq into buckets indexed by
// leading symbol. A table serves a single induced-sort pass and is read
// back once with each or order.
type bucketTable struct {
	seq     []int
	buckets []bucket
	exists  []bool
}

// newBucketTable returns an empty table for seq. counts[c] must be the
// number of occurrences of symbol c in seq.
func newBucketTable(seq []int, counts []int) *bucketTable {
	total := 0
	for _, n := range counts {
		total += n
	}
	if total != len(seq) {
		panic(ErrBucketOverflow)
	}
	slots := make([]slot, len(seq))
	t := &bucketTable{
		seq:     seq,
		buckets: make([]bucket, len(counts)),
		exists:  make([]bool, len(counts)),
	}
	off := 0
	for c, n := range counts {
		t.buckets[c] = newBucket(slots[off : off+n : off+n])
		off += n
	}
	return t
}

// pushFront places pos into the next free front slot of its bucket.
func (t *bucketTable) pushFront(pos int, lms bool) {
	c := t.seq[pos]
	t.buckets[c].pushFront(pos, lms)
	t.exists[c] = true
}

// pushBack places pos into the next free back slot of its bucket.
func (t *bucketTable) pushBack(pos int, lms bool) {
	c := t.seq[pos]
	t.buckets[c].pushBack(pos, lms)
	t.exists[c] = true
}

// resetBack empties the back region of every bucket except the one
// holding the sentinel. Buckets left without content are marked empty.
func (t *bucketTable) resetBack() {
	sentinel := t.seq[len(t.seq)-1]
	for c := range t.buckets {
		if !t.exists[c] || c == sentinel {
			continue
		}
		b := &t.buckets[c]
		b.resetBack()
		if b.front == 0 {
			t.exists[c] = false
		}
	}
}

// each calls fn for every occupied slot in ascending symbol order. Within
// a bucket the front region is visited in fill order, followed by the back
// region in slot order.
func (t *bucketTable) each(fn func(s slot)) {
	for c := range t.buckets {
		if !t.exists[c] {
			continue
		}
		b := &t.buckets[c]
		for _, s := range b.slots[:b.front] {
			fn(s)
		}
		for _, s := range b.slots[b.back+1:] {
			fn(s)
		}
	}
}

// order returns the positions held by the table in emission order.
func (t *bucketTable) order() []int {
	sa := make([]int, 0, len(t.seq))
	t.each(func(s slot) {
		sa = append(sa, s.pos)
	})
	return sa
}

// histogram returns the number of occurrences of every symbol of seq.
func histogram(seq []int, alphabetSize int) []int {
	counts := make([]int, alphabetSize)
	for _, c := range seq {
		counts[c]++
	}
	return counts
}
