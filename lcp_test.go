package sais

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func naiveLCP(sa []int, text []byte) []int {
	lcp := make([]int, len(sa)-1)
	for i := range lcp {
		a, b := text[sa[i]:], text[sa[i+1]:]
		for lcp[i] < len(a) && lcp[i] < len(b) && a[lcp[i]] == b[lcp[i]] {
			lcp[i]++
		}
	}
	return lcp
}

func TestBuildLCPArray(t *testing.T) {
	text := []byte("banana")
	sa, err := BuildSuffixArray(text)
	if err != nil {
		t.Fatal(err)
	}
	// Suffixes: "", a, ana, anana, banana, na, nana.
	want := []int{0, 1, 3, 0, 0, 2}
	if diff := cmp.Diff(want, BuildLCPArray(sa, text)); diff != "" {
		t.Errorf("BuildLCPArray mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildLCPArrayRandom(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for run := 0; run < 50; run++ {
		text := make([]byte, r.Intn(300))
		for i := range text {
			text[i] = byte('a' + r.Intn(3))
		}
		sa, err := BuildSuffixArray(text)
		if err != nil {
			t.Fatal(err)
		}
		sa = sa[1:]
		if diff := cmp.Diff(naiveLCP(sa, text), BuildLCPArray(sa, text)); diff != "" {
			t.Fatalf("BuildLCPArray(%q) mismatch (-want +got):\n%s", text, diff)
		}
	}
}

func TestBuildLCPArrayEmpty(t *testing.T) {
	if got := BuildLCPArray[byte](nil, nil); got != nil {
		t.Errorf("BuildLCPArray(nil) = %v, want nil", got)
	}
}

func TestBuildLCPArrayRunes(t *testing.T) {
	text := []rune("ñaña")
	seq, size := EncodeString("ñaña")
	sa, err := SuffixArray(seq, size)
	if err != nil {
		t.Fatal(err)
	}
	// Suffixes: "", a, aña, ña, ñaña.
	want := []int{0, 1, 0, 2}
	if diff := cmp.Diff(want, BuildLCPArray(sa, text)); diff != "" {
		t.Errorf("BuildLCPArray mismatch (-want +got):\n%s", diff)
	}
}
