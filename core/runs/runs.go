// core/runs/runs.go
package runs

import "errors"

// LongRunMin is the shortest run counted by CountLong.
const LongRunMin = 5

var (
	// ErrEmptySequence is returned by the counting functions when the
	// sequence has no runs to evaluate.
	ErrEmptySequence = errors.New("runs: empty sequence")
	// ErrBadThreshold is returned when a minimum run length is below 1.
	ErrBadThreshold = errors.New("runs: minimum run length must be >= 1")
)

// Run is one maximal run: Len copies of Char starting at offset Start.
type Run struct {
	Char  byte
	Start int
	Len   int
}

// End returns the offset one past the last byte of the run.
func (r Run) End() int { return r.Start + r.Len }

// String returns the run's bytes as a string.
func (r Run) String() string {
	b := make([]byte, r.Len)
	for i := range b {
		b[i] = r.Char
	}
	return string(b)
}

// Scan calls fn for each maximal run of seq, left to right.
// Returning false from fn stops the scan early.
func Scan(seq []byte, fn func(Run) bool) {
	if len(seq) == 0 {
		return
	}
	cur := Run{Char: seq[0], Start: 0, Len: 1}
	for i := 1; i < len(seq); i++ {
		if seq[i] == seq[i-1] {
			cur.Len++
			continue
		}
		if !fn(cur) {
			return
		}
		cur = Run{Char: seq[i], Start: i, Len: 1}
	}
	// trailing run
	fn(cur)
}

// Split returns every maximal run of seq in order.
func Split(seq []byte) []Run {
	var out []Run
	Scan(seq, func(r Run) bool {
		out = append(out, r)
		return true
	})
	return out
}

// Longest returns the longest maximal run of seq. When several runs share
// the maximum length the first one wins. ok is false for an empty sequence.
func Longest(seq []byte) (best Run, ok bool) {
	Scan(seq, func(r Run) bool {
		if !ok || r.Len > best.Len {
			best, ok = r, true
		}
		return true
	})
	return best, ok
}

// LongestString is Longest returning the run's text.
func LongestString(seq []byte) (string, bool) {
	r, ok := Longest(seq)
	if !ok {
		return "", false
	}
	return r.String(), true
}

// CountAtLeast counts the maximal runs of seq whose length is >= min.
func CountAtLeast(seq []byte, min int) (int, error) {
	if min < 1 {
		return 0, ErrBadThreshold
	}
	if len(seq) == 0 {
		return 0, ErrEmptySequence
	}
	n := 0
	Scan(seq, func(r Run) bool {
		if r.Len >= min {
			n++
		}
		return true
	})
	return n, nil
}

// CountLong counts the maximal runs of seq of length LongRunMin or more.
func CountLong(seq []byte) (int, error) {
	return CountAtLeast(seq, LongRunMin)
}

// AtLeast returns the maximal runs of seq whose length is >= min.
func AtLeast(seq []byte, min int) ([]Run, error) {
	if min < 1 {
		return nil, ErrBadThreshold
	}
	var out []Run
	Scan(seq, func(r Run) bool {
		if r.Len >= min {
			out = append(out, r)
		}
		return true
	})
	return out, nil
}
