package segy

import (
	"fmt"
	"iter"
)

// Depth addresses the file across traces at a fixed sample position:
// one value per (inline, crossline) location, forming a horizontal map
// of the survey at that depth or time. Pre-stack files are sliced at
// the first offset.
type Depth struct {
	f *File
}

// DepthSlice holds the samples of one depth across the survey grid.
type DepthSlice struct {
	Ilines []int
	Xlines []int

	// Data is inline-major: Data[i*len(Xlines)+x] is the value at
	// (Ilines[i], Xlines[x]).
	Data []float32
}

// At returns the value at inline position i, crossline position x.
func (s *DepthSlice) At(i, x int) float32 {
	return s.Data[i*len(s.Xlines)+x]
}

// Len returns the number of depth positions, the file's samplecount.
func (d *Depth) Len() int {
	return d.f.samplecount
}

func (d *Depth) checkDepth(depth int) error {
	if depth < 0 || depth >= d.f.samplecount {
		return fmt.Errorf("%w: depth %d of %d", ErrOutOfRange, depth, d.f.samplecount)
	}
	return nil
}

// traceAt maps grid positions to the flat trace index at the first
// offset, honoring the file's fast/slow axis ordering.
func (d *Depth) traceAt(ilIdx, xlIdx int) int {
	return d.f.traceIndex(ilIdx, xlIdx, 0)
}

// Get extracts sample position depth from every location.
func (d *Depth) Get(depth int) (*DepthSlice, error) {
	if err := d.f.checkOpen(); err != nil {
		return nil, err
	}
	if err := d.checkDepth(depth); err != nil {
		return nil, err
	}

	geom := d.f.geom
	slice := &DepthSlice{
		Ilines: geom.Ilines,
		Xlines: geom.Xlines,
		Data:   make([]float32, len(geom.Ilines)*len(geom.Xlines)),
	}
	for i := range geom.Ilines {
		for x := range geom.Xlines {
			v, err := d.f.fd.ReadSampleAt(d.traceAt(i, x), depth)
			if err != nil {
				return nil, err
			}
			slice.Data[i*len(geom.Xlines)+x] = v
		}
	}
	return slice, nil
}

// Set writes sample position depth of every location from values, in
// the same inline-major order Get returns. Under the bulk-assignment
// contract a short values slice writes only that many locations; extra
// values are ignored. Returns the number of locations written.
func (d *Depth) Set(depth int, values []float32) (int, error) {
	if err := d.f.checkWritable(); err != nil {
		return 0, err
	}
	if err := d.checkDepth(depth); err != nil {
		return 0, err
	}

	geom := d.f.geom
	n := len(geom.Ilines) * len(geom.Xlines)
	written := 0
	for k := 0; k < n && k < len(values); k++ {
		i, x := k/len(geom.Xlines), k%len(geom.Xlines)
		if err := d.f.fd.WriteSampleAt(d.traceAt(i, x), depth, values[k]); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

// All yields every depth slice from 0 to samplecount-1 in depth order.
// A read failure is yielded as the error of its pair and ends the
// iteration.
func (d *Depth) All() iter.Seq2[*DepthSlice, error] {
	return func(yield func(*DepthSlice, error) bool) {
		for depth := 0; depth < d.f.samplecount; depth++ {
			s, err := d.Get(depth)
			if !yield(s, err) || err != nil {
				return
			}
		}
	}
}

// SetAll assigns depth slices 0, 1, … from the source sequence under
// the bulk-assignment contract; a source error aborts the copy. Each
// element is the values slice for one depth, in inline-major order.
// Returns the number of depths written.
func (d *Depth) SetAll(src iter.Seq2[[]float32, error]) (int, error) {
	if err := d.f.checkWritable(); err != nil {
		return 0, err
	}
	return copyInto(d.f.samplecount, src, func(depth int, values []float32) error {
		_, err := d.Set(depth, values)
		return err
	})
}
