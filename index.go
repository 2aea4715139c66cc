package sais

import (
	"bytes"
	"sort"
	"unicode/utf8"

	"github.com/viniciusth/rmq"
	"golang.org/x/exp/slices"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

const (
	// 0xFF never occurs in UTF-8, so it separates documents without
	// matching any pattern.
	docSeparator = 0xFF
)

type IndexBuilder struct {
	docs          []string
	useLCP        bool
	useDocListing bool
	caseSensitive bool
	normalize     bool
}

func NewIndexBuilder(docs []string) *IndexBuilder {
	return &IndexBuilder{
		docs:          docs,
		useLCP:        true,
		useDocListing: true,
		caseSensitive: false,
		normalize:     true,
	}
}

// Skips the LCP array, making lookups O(|P| log |T|) instead of
// O(|P| + log |T|) and saving 2|T| words of memory.
func (b *IndexBuilder) SkipLCP() *IndexBuilder {
	b.useLCP = false
	return b
}

// Skips the document listing structures. FindKMatches then scans every
// occurrence of the pattern, which is O(|T|) in the worst case, but
// 2|T| words of memory are saved.
func (b *IndexBuilder) SkipDocListing() *IndexBuilder {
	b.useDocListing = false
	return b
}

// Makes lookups case sensitive.
func (b *IndexBuilder) CaseSensitive() *IndexBuilder {
	b.caseSensitive = true
	return b
}

// Skips NFC normalization of documents and patterns.
func (b *IndexBuilder) SkipNormalization() *IndexBuilder {
	b.normalize = false
	return b
}

func (b *IndexBuilder) Build() (*Index, error) {
	for _, doc := range b.docs {
		if !utf8.ValidString(doc) {
			return nil, ErrInvalidUTF8
		}
	}

	text, starts := joinDocuments(b.docs, b.caseSensitive, b.normalize)
	full, err := BuildSuffixArray(text)
	if err != nil {
		return nil, err
	}
	// The first suffix is the empty one at the sentinel.
	sa := full[1:]

	x := &Index{
		sa:            sa,
		docs:          b.docs,
		starts:        starts,
		docOf:         documentOffsets(text),
		text:          text,
		caseSensitive: b.caseSensitive,
		normalize:     b.normalize,
	}
	if b.useLCP {
		x.lcp = BuildLCPArray(sa, text)
		if len(x.lcp) > 0 {
			x.lcpRMQ = rmq.NewRMQHybridNaive(x.lcp)
		}
	}
	if b.useDocListing {
		x.prev = buildPrevArray(sa, x.docOf, len(b.docs))
		if len(x.prev) > 0 {
			x.prevRMQ = rmq.NewRMQHybridNaive(x.prev)
		}
	}
	return x, nil
}

// Index answers exact substring queries over a set of documents.
type Index struct {
	sa            []int
	docs          []string
	starts        []int // text offset of every document
	docOf         []int // document of every text offset
	text          []byte
	lcp           []int
	lcpRMQ        *rmq.RMQHybridNaive[int]
	prev          []int
	prevRMQ       *rmq.RMQHybridNaive[int]
	caseSensitive bool
	normalize     bool
}

// Match is one occurrence of a pattern.
type Match struct {
	Document int // index of the document
	Offset   int // byte offset inside the transformed document
}

// joinDocuments transforms the documents and joins them with docSeparator.
// It also returns where each document starts.
func joinDocuments(docs []string, caseSensitive, normalize bool) ([]byte, []int) {
	var buf bytes.Buffer
	starts := make([]int, len(docs))
	for i, doc := range docs {
		if i > 0 {
			buf.WriteByte(docSeparator)
		}
		starts[i] = buf.Len()
		buf.WriteString(transform(doc, caseSensitive, normalize))
	}
	return buf.Bytes(), starts
}

func transform(s string, caseSensitive, normalize bool) string {
	if !caseSensitive {
		s = cases.Fold().String(s)
	}
	if normalize {
		s = norm.NFC.String(s)
	}
	return s
}

// documentOffsets maps every text offset to its document. A separator
// belongs to the document after it.
func documentOffsets(text []byte) []int {
	docOf := make([]int, len(text))
	doc := 0
	for i, c := range text {
		if c == docSeparator {
			doc++
		}
		docOf[i] = doc
	}
	return docOf
}

// buildPrevArray solves the document listing setup: prev[i] is the largest
// j < i whose suffix belongs to the same document as suffix i, or -1.
func buildPrevArray(sa, docOf []int, numDocs int) []int {
	prev := make([]int, len(sa))
	last := make([]int, numDocs)
	for i := range last {
		last[i] = -1
	}
	for i, p := range sa {
		d := docOf[p]
		prev[i] = last[d]
		last[d] = i
	}
	return prev
}

// SuffixArray returns the suffix array of the joined documents, without
// the sentinel suffix.
func (x *Index) SuffixArray() []int {
	return x.sa
}

// Documents returns the number of indexed documents.
func (x *Index) Documents() int {
	return len(x.docs)
}

// Document returns the document containing a text offset.
func (x *Index) Document(offset int) int {
	return x.docOf[offset]
}

// Lookup returns the text offset of every occurrence of pattern, in suffix
// order.
func (x *Index) Lookup(pattern string) []int {
	l, r := x.bounds(pattern)
	if l < 0 {
		return nil
	}
	return slices.Clone(x.sa[l : r+1])
}

// Count returns the number of occurrences of pattern.
func (x *Index) Count(pattern string) int {
	l, r := x.bounds(pattern)
	if l < 0 {
		return 0
	}
	return r - l + 1
}

// Locate returns every occurrence of pattern sorted by document and offset.
func (x *Index) Locate(pattern string) []Match {
	offsets := x.Lookup(pattern)
	matches := make([]Match, len(offsets))
	for i, off := range offsets {
		d := x.docOf[off]
		matches[i] = Match{Document: d, Offset: off - x.starts[d]}
	}
	slices.SortFunc(matches, func(a, b Match) int {
		if a.Document != b.Document {
			return a.Document - b.Document
		}
		return a.Offset - b.Offset
	})
	return matches
}

// FindKMatches returns up to k distinct documents containing pattern. Every
// document contains the empty pattern.
func (x *Index) FindKMatches(pattern string, k int) []int {
	if k <= 0 {
		return nil
	}
	if pattern == "" {
		all := make([]int, min(k, len(x.docs)))
		for i := range all {
			all[i] = i
		}
		return all
	}
	l, r := x.bounds(pattern)
	if l < 0 {
		return nil
	}

	matches := make([]int, 0, min(k, r-l+1))
	if x.prevRMQ != nil {
		return x.listDocuments(l, l, r, k, matches)
	}

	seen := make(map[int]bool)
	for i := l; i <= r && len(matches) < k; i++ {
		d := x.docOf[x.sa[i]]
		if seen[d] {
			continue
		}
		seen[d] = true
		matches = append(matches, d)
	}
	return matches
}

func (x *Index) FindKMatchesString(pattern string, k int) []string {
	idx := x.FindKMatches(pattern, k)
	matches := make([]string, len(idx))
	for i := range matches {
		matches[i] = x.docs[idx[i]]
	}
	return matches
}

// listDocuments reports the documents first seen in [l, r], where first
// means prev points before base.
func (x *Index) listDocuments(base, l, r, k int, matches []int) []int {
	if k <= len(matches) || l > r {
		return matches
	}
	p := x.prevRMQ.Query(l, r)
	if x.prev[p] >= base {
		return matches
	}
	matches = append(matches, x.docOf[x.sa[p]])
	matches = x.listDocuments(base, l, p-1, k, matches)
	return x.listDocuments(base, p+1, r, k, matches)
}

// bounds returns the range [l, r] of suffix array entries prefixed by
// pattern, or -1, -1 when there is none. The empty pattern has no
// occurrences.
func (x *Index) bounds(pattern string) (int, int) {
	if pattern == "" || !utf8.ValidString(pattern) {
		return -1, -1
	}
	p := []byte(transform(pattern, x.caseSensitive, x.normalize))
	n := len(x.sa)

	var l int
	if x.lcpRMQ != nil {
		l = x.lowerBoundLCP(p)
	} else {
		l = sort.Search(n, func(i int) bool {
			return bytes.Compare(p, x.text[x.sa[i]:]) <= 0
		})
	}
	if l == n || !bytes.HasPrefix(x.text[x.sa[l]:], p) {
		return -1, -1
	}

	// Entries l..l+i-1 share the pattern; find the first i where that fails.
	r := sort.Search(n-l, func(i int) bool {
		if i == 0 {
			return false
		}
		if x.lcpRMQ != nil {
			return x.lcp[x.lcpRMQ.Query(l, l+i-1)] < len(p)
		}
		return !bytes.HasPrefix(x.text[x.sa[l+i]:], p)
	})
	return l, l + r - 1
}

// lowerBoundLCP finds the first suffix not smaller than p. It remembers the
// longest match seen so far and uses the LCP between the remembered suffix
// and each probe to skip comparing symbols already known to match.
func (x *Index) lowerBoundLCP(p []byte) int {
	bestIdx, best := -1, 0
	expand := func(i int) bool {
		bestIdx = i
		s := x.text[x.sa[i]:]
		for best < len(p) && best < len(s) && p[best] == s[best] {
			best++
		}
		switch {
		case best == len(p):
			return true
		case best == len(s):
			return false
		default:
			return p[best] < s[best]
		}
	}
	return sort.Search(len(x.sa), func(i int) bool {
		if bestIdx == -1 || i == bestIdx {
			return expand(i)
		}
		common := x.lcp[x.lcpRMQ.Query(min(bestIdx, i), max(bestIdx, i)-1)]
		if common < best {
			// Suffix i departs from the remembered one before the pattern
			// does, on the same side as it lies from the remembered one.
			return i > bestIdx
		}
		return expand(i)
	})
}
