package segy

import "iter"

// copyInto is the shared bulk-assignment contract used by every view.
// Items produced by src are written to destination positions 0, 1, …
// n-1 in order. Writing stops as soon as either side is exhausted:
// running out of destination positions discards the rest of the
// source, and running out of source items leaves the remaining
// destination entries unmodified. Neither case is an error; the return
// value is the number of items written.
//
// A source error or a write failure aborts the copy and is returned
// along with the count of items written before it.
func copyInto[T any](n int, src iter.Seq2[T, error], write func(i int, v T) error) (int, error) {
	written := 0
	for v, err := range src {
		if err != nil {
			return written, err
		}
		if written >= n {
			break
		}
		if err := write(written, v); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

// clampRange normalises a (start, stop, step) selection against a
// sequence of length n, with the clamping rules of slice notation:
// out-of-bounds endpoints are pulled into range rather than failing,
// and negative steps iterate backwards. Returns the normalised start,
// stop and the number of selected positions. step must be non-zero.
func clampRange(start, stop, step, n int) (int, int, int) {
	if step > 0 {
		if start < 0 {
			start = 0
		}
		if stop > n {
			stop = n
		}
		if start >= stop {
			return start, start, 0
		}
		return start, stop, (stop - start + step - 1) / step
	}
	if start >= n {
		start = n - 1
	}
	if stop < -1 {
		stop = -1
	}
	if start <= stop {
		return start, start, 0
	}
	return start, stop, (start - stop - step - 1) / -step
}
