package sais

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func typesOf(info []suffixInfo) string {
	var sb strings.Builder
	for _, s := range info {
		sb.WriteString(s.typ.String())
	}
	return sb.String()
}

func TestClassify(t *testing.T) {
	tests := []struct {
		text  string
		types string
		lms   []int
	}{
		{"", "S", nil},
		{"a", "LS", []int{1}},
		{"banana", "LSLSLLS", []int{1, 3, 6}},
		{"aaaa", "LLLLS", []int{4}},
		{"abcabc", "SSLSSLS", []int{3, 6}},
		{"mmiissiissiippii", "LLSSLLSSLLSSLLLLS", []int{2, 6, 10, 16}},
	}
	for _, tc := range tests {
		t.Run(tc.text, func(t *testing.T) {
			seq, _ := EncodeBytes([]byte(tc.text))
			info := classify(seq)
			assert.Equal(t, tc.types, typesOf(info))

			lms, ordinal := lmsPositions(info)
			assert.Equal(t, tc.lms, lms)
			for k, p := range lms {
				assert.Equal(t, k, ordinal[p])
			}
			if len(seq) > 1 {
				// The sentinel closes the last LMS-substring.
				assert.Equal(t, len(seq)-1, lms[len(lms)-1])
			}
			assert.False(t, info[0].lms)
		})
	}
}

func TestClassifyEmpty(t *testing.T) {
	assert.Empty(t, classify(nil))
}
