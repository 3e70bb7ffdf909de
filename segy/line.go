package segy

import (
	"fmt"
	"iter"
)

// Line addresses the file along one axis: every line label maps to a
// strided set of trace indices over the flat trace sequence. There is
// exactly one Line per axis per file, built from the resolved geometry
// and cached on the File.
type Line struct {
	f        *File
	axis     string
	labels   []int
	length   int
	stride   int
	baseStep int
	position map[int]int
}

func newLine(f *File, axis string, labels []int, length, stride, baseStep int) *Line {
	position := make(map[int]int, len(labels))
	for i, l := range labels {
		position[l] = i
	}
	return &Line{
		f:        f,
		axis:     axis,
		labels:   labels,
		length:   length,
		stride:   stride,
		baseStep: baseStep,
		position: position,
	}
}

// Axis returns "inline" or "crossline".
func (l *Line) Axis() string {
	return l.axis
}

// Labels returns the line labels in file order. The slice is shared;
// callers must not modify it.
func (l *Line) Labels() []int {
	return l.labels
}

// Length returns the number of traces per offset in one line.
func (l *Line) Length() int {
	return l.length
}

// Stride returns the trace-index distance between consecutive traces
// of a line at a fixed offset.
func (l *Line) Stride() int {
	return l.stride
}

// Offsets returns the offset labels shared by every line.
func (l *Line) Offsets() []int {
	return l.f.geom.Offsets
}

// indices resolves a label to its trace index set: positions 0..length
// at every offset when offIdx is negative, or at the single offset
// index otherwise. Indices come out in file order within each
// position: position-major, offset-minor.
func (l *Line) indices(label, offIdx int) ([]int, error) {
	pos, ok := l.position[label]
	if !ok {
		return nil, fmt.Errorf("%w: %s %d", ErrNotFound, l.axis, label)
	}
	noff := len(l.f.geom.Offsets)
	base := pos * l.baseStep

	var out []int
	for p := 0; p < l.length; p++ {
		at := base + p*l.stride
		if offIdx < 0 {
			for k := 0; k < noff; k++ {
				out = append(out, at+k)
			}
		} else {
			out = append(out, at+offIdx)
		}
	}
	return out, nil
}

func (l *Line) offsetIndex(offset int) (int, error) {
	for k, o := range l.f.geom.Offsets {
		if o == offset {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: offset %d", ErrNotFound, offset)
}

func (l *Line) read(indices []int) ([][]float32, error) {
	out := make([][]float32, len(indices))
	for k, i := range indices {
		tr := make([]float32, l.f.samplecount)
		if err := l.f.fd.ReadTraceData(i, tr); err != nil {
			return nil, err
		}
		out[k] = tr
	}
	return out, nil
}

// Get reads every trace of the line, across all offsets: length ×
// len(offsets) traces, position-major.
func (l *Line) Get(label int) ([][]float32, error) {
	if err := l.f.checkOpen(); err != nil {
		return nil, err
	}
	indices, err := l.indices(label, -1)
	if err != nil {
		return nil, err
	}
	return l.read(indices)
}

// GetOffset reads the line at a single offset label: length traces.
func (l *Line) GetOffset(label, offset int) ([][]float32, error) {
	if err := l.f.checkOpen(); err != nil {
		return nil, err
	}
	offIdx, err := l.offsetIndex(offset)
	if err != nil {
		return nil, err
	}
	indices, err := l.indices(label, offIdx)
	if err != nil {
		return nil, err
	}
	return l.read(indices)
}

func (l *Line) write(indices []int, src iter.Seq2[[]float32, error]) (int, error) {
	if err := l.f.checkWritable(); err != nil {
		return 0, err
	}
	return copyInto(len(indices), src, func(k int, samples []float32) error {
		return l.f.fd.WriteTraceData(indices[k], samples)
	})
}

// Set writes the line across all offsets from the source sequence
// under the bulk-assignment contract: a source yielding fewer than
// length × len(offsets) traces writes only that many, surplus traces
// are ignored, and a source error aborts the copy. Returns the number
// of traces written.
func (l *Line) Set(label int, src iter.Seq2[[]float32, error]) (int, error) {
	if err := l.f.checkOpen(); err != nil {
		return 0, err
	}
	indices, err := l.indices(label, -1)
	if err != nil {
		return 0, err
	}
	return l.write(indices, src)
}

// SetOffset writes the line at a single offset label.
func (l *Line) SetOffset(label, offset int, src iter.Seq2[[]float32, error]) (int, error) {
	if err := l.f.checkOpen(); err != nil {
		return 0, err
	}
	offIdx, err := l.offsetIndex(offset)
	if err != nil {
		return 0, err
	}
	indices, err := l.indices(label, offIdx)
	if err != nil {
		return 0, err
	}
	return l.write(indices, src)
}

// LabelsIn selects the labels present in the axis with values in
// [from, to) stepping by step from from; a negative step selects
// (to, from] backwards. Labels not in the file are skipped, mirroring
// slice addressing over the label axis.
func (l *Line) LabelsIn(from, to, step int) []int {
	var out []int
	if step > 0 {
		for v := from; v < to; v += step {
			if _, ok := l.position[v]; ok {
				out = append(out, v)
			}
		}
	} else if step < 0 {
		for v := from; v > to; v += step {
			if _, ok := l.position[v]; ok {
				out = append(out, v)
			}
		}
	}
	return out
}

// GetSlice reads the lines selected by LabelsIn(from, to, step),
// concatenated in label order: each selected label contributes its
// full Get(label) traces.
func (l *Line) GetSlice(from, to, step int) ([][]float32, error) {
	if step == 0 {
		return nil, fmt.Errorf("%w: step must be non-zero", ErrOutOfRange)
	}
	var out [][]float32
	for _, label := range l.LabelsIn(from, to, step) {
		traces, err := l.Get(label)
		if err != nil {
			return nil, err
		}
		out = append(out, traces...)
	}
	return out, nil
}
