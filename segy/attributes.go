package segy

import (
	"fmt"

	"github.com/robert-malhotra/go-segy/field"
)

// Attributes is a lazy projection of one header word across the file's
// traces. Each retrieval reads from the file, so values reflect any
// header writes made between calls.
//
// The three retrieval shapes are explicit methods rather than a single
// polymorphic index operation: At for a scalar position, Range for a
// strided span, Select for an arbitrary index list.
type Attributes struct {
	f   *File
	tag field.Tag
}

// Tag returns the header word this projection reads.
func (a *Attributes) Tag() field.Tag {
	return a.tag
}

// Len returns the number of traces projected over.
func (a *Attributes) Len() int {
	return a.f.tracecount
}

// At reads the field of the single trace i.
func (a *Attributes) At(i int) (int, error) {
	if err := a.f.checkOpen(); err != nil {
		return 0, err
	}
	if i < 0 || i >= a.f.tracecount {
		return 0, fmt.Errorf("%w: trace %d of %d", ErrOutOfRange, i, a.f.tracecount)
	}
	return a.f.fd.ReadField(i, a.tag)
}

// Range reads the field over the trace indices selected by (start,
// stop, step), with slice clamping semantics. Results are positioned
// 1:1 with the selected indices, in iteration order.
func (a *Attributes) Range(start, stop, step int) ([]int, error) {
	if err := a.f.checkOpen(); err != nil {
		return nil, err
	}
	if step == 0 {
		return nil, fmt.Errorf("%w: step must be non-zero", ErrOutOfRange)
	}
	start, _, count := clampRange(start, stop, step, a.f.tracecount)
	if count == 0 {
		return nil, nil
	}
	stop = start + count*step
	return a.f.fd.ReadFieldRange(start, stop, step, a.tag)
}

// Select reads the field at each of the given trace indices, preserving
// their order and duplicates exactly.
func (a *Attributes) Select(indices []int) ([]int, error) {
	if err := a.f.checkOpen(); err != nil {
		return nil, err
	}
	for _, i := range indices {
		if i < 0 || i >= a.f.tracecount {
			return nil, fmt.Errorf("%w: trace %d of %d", ErrOutOfRange, i, a.f.tracecount)
		}
	}
	return a.f.fd.ReadFieldAt(indices, a.tag)
}
