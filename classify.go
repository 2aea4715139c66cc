package sais

// suffixType tells whether a suffix is smaller (S) or larger (L) than the
// suffix starting one position later.
type suffixType bool

const (
	typeS suffixType = false
	typeL suffixType = true
)

func (t suffixType) String() string {
	if t == typeL {
		return "L"
	}
	return "S"
}

// suffixInfo is the classification of a single position.
type suffixInfo struct {
	typ suffixType
	lms bool
}

// classify computes the type of every position of seq with one backward
// scan and the LMS flags with one forward scan. The last position is S.
// Position i is LMS when it is S and position i-1 is L, which makes the
// sentinel the last LMS position of any sequence longer than one.
func classify(seq []int) []suffixInfo {
	n := len(seq)
	info := make([]suffixInfo, n)
	if n == 0 {
		return info
	}
	info[n-1].typ = typeS
	for i := n - 2; i >= 0; i-- {
		switch {
		case seq[i] < seq[i+1]:
			info[i].typ = typeS
		case seq[i] > seq[i+1]:
			info[i].typ = typeL
		default:
			info[i].typ = info[i+1].typ
		}
	}
	for i := 1; i < n; i++ {
		info[i].lms = info[i].typ == typeS && info[i-1].typ == typeL
	}
	return info
}

// lmsPositions returns the LMS positions in sequence order, together with
// a lookup from position to its ordinal among them (-1 for non-LMS
// positions). The substring of the k-th LMS position ends at the
// (k+1)-th.
func lmsPositions(info []suffixInfo) (lms []int, ordinal []int) {
	ordinal = make([]int, len(info))
	for i := range info {
		ordinal[i] = -1
		if info[i].lms {
			ordinal[i] = len(lms)
			lms = append(lms, i)
		}
	}
	return lms, ordinal
}
