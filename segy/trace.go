package segy

import (
	"fmt"
	"iter"
)

// Trace is the flat trace view: the file's traces addressed by their
// physical position 0..Tracecount-1, independent of any geometry.
type Trace struct {
	f *File
}

// Len returns the number of traces.
func (t *Trace) Len() int {
	return t.f.tracecount
}

func (t *Trace) checkIndex(i int) error {
	if i < 0 || i >= t.f.tracecount {
		return fmt.Errorf("%w: trace %d of %d", ErrOutOfRange, i, t.f.tracecount)
	}
	return nil
}

// Get reads the samples of trace i.
func (t *Trace) Get(i int) ([]float32, error) {
	if err := t.f.checkOpen(); err != nil {
		return nil, err
	}
	if err := t.checkIndex(i); err != nil {
		return nil, err
	}
	out := make([]float32, t.f.samplecount)
	if err := t.f.fd.ReadTraceData(i, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetRange reads traces selected by (start, stop, step) with slice
// clamping semantics; a negative step iterates backwards.
func (t *Trace) GetRange(start, stop, step int) ([][]float32, error) {
	if err := t.f.checkOpen(); err != nil {
		return nil, err
	}
	if step == 0 {
		return nil, fmt.Errorf("%w: step must be non-zero", ErrOutOfRange)
	}
	start, _, count := clampRange(start, stop, step, t.f.tracecount)
	out := make([][]float32, count)
	for k := 0; k < count; k++ {
		tr, err := t.Get(start + k*step)
		if err != nil {
			return nil, err
		}
		out[k] = tr
	}
	return out, nil
}

// Set writes the samples of trace i. len(samples) must equal the
// file's samplecount.
func (t *Trace) Set(i int, samples []float32) error {
	if err := t.f.checkWritable(); err != nil {
		return err
	}
	if err := t.checkIndex(i); err != nil {
		return err
	}
	return t.f.fd.WriteTraceData(i, samples)
}

// All yields every trace in physical order. A read failure is yielded
// as the error of its pair and ends the iteration.
func (t *Trace) All() iter.Seq2[[]float32, error] {
	return func(yield func([]float32, error) bool) {
		for i := 0; i < t.f.tracecount; i++ {
			tr, err := t.Get(i)
			if !yield(tr, err) || err != nil {
				return
			}
		}
	}
}

// SetAll assigns traces 0, 1, … from the source sequence under the
// bulk-assignment contract: assignment stops silently when either the
// file's traces or the source are exhausted, and a source error aborts
// it. Returns the number of traces written.
func (t *Trace) SetAll(src iter.Seq2[[]float32, error]) (int, error) {
	if err := t.f.checkWritable(); err != nil {
		return 0, err
	}
	return copyInto(t.f.tracecount, src, func(i int, samples []float32) error {
		return t.f.fd.WriteTraceData(i, samples)
	})
}
