package segy

import "fmt"

// Gather addresses traces by (inline, crossline, offset) location. It
// is composed from the two line views: a cell's trace indices are the
// intersection of the inline's and the crossline's index sets.
type Gather struct {
	f  *File
	il *Line
	xl *Line
}

// GatherQuery selects a sub-volume; a nil axis selection means every
// label on that axis.
type GatherQuery struct {
	Ilines  []int
	Xlines  []int
	Offsets []int
}

// Cube is a dense [inline, crossline, offset, sample] volume.
type Cube struct {
	Ilines  []int
	Xlines  []int
	Offsets []int
	Samples int

	// Data is laid out inline-major: inline, then crossline, then
	// offset, then sample.
	Data []float32
}

// At returns the sample at position s of the trace at axis positions
// (i, x, o) within the cube.
func (c *Cube) At(i, x, o, s int) float32 {
	idx := ((i*len(c.Xlines)+x)*len(c.Offsets)+o)*c.Samples + s
	return c.Data[idx]
}

// cell resolves the trace indices of one (inline, crossline) location
// by intersecting the two line index sets, in offset order. The
// intersection must contain exactly one trace per offset; anything
// else means the file's grid is missing or duplicating that location.
func (g *Gather) cell(il, xl int) ([]int, error) {
	ilIndices, err := g.il.indices(il, -1)
	if err != nil {
		return nil, err
	}
	xlIndices, err := g.xl.indices(xl, -1)
	if err != nil {
		return nil, err
	}

	inXl := make(map[int]bool, len(xlIndices))
	for _, i := range xlIndices {
		inXl[i] = true
	}
	var out []int
	for _, i := range ilIndices {
		if inXl[i] {
			out = append(out, i)
		}
	}
	if len(out) != len(g.f.geom.Offsets) {
		return nil, fmt.Errorf("%w: (inline %d, crossline %d) resolves to %d traces, want %d",
			ErrInconsistent, il, xl, len(out), len(g.f.geom.Offsets))
	}
	return out, nil
}

// Trace reads the single trace at one (inline, crossline, offset)
// location.
func (g *Gather) Trace(il, xl, offset int) ([]float32, error) {
	if err := g.f.checkOpen(); err != nil {
		return nil, err
	}
	offIdx, err := g.il.offsetIndex(offset)
	if err != nil {
		return nil, err
	}
	indices, err := g.cell(il, xl)
	if err != nil {
		return nil, err
	}
	out := make([]float32, g.f.samplecount)
	if err := g.f.fd.ReadTraceData(indices[offIdx], out); err != nil {
		return nil, err
	}
	return out, nil
}

// Cell reads the traces of one (inline, crossline) location across all
// offsets, in offset order.
func (g *Gather) Cell(il, xl int) ([][]float32, error) {
	if err := g.f.checkOpen(); err != nil {
		return nil, err
	}
	indices, err := g.cell(il, xl)
	if err != nil {
		return nil, err
	}
	out := make([][]float32, len(indices))
	for k, i := range indices {
		tr := make([]float32, g.f.samplecount)
		if err := g.f.fd.ReadTraceData(i, tr); err != nil {
			return nil, err
		}
		out[k] = tr
	}
	return out, nil
}

// Get reads the sub-volume selected by the query into a dense cube.
// Every selected label must exist in the file's label sets.
func (g *Gather) Get(q GatherQuery) (*Cube, error) {
	if err := g.f.checkOpen(); err != nil {
		return nil, err
	}

	ilines, err := selectLabels(q.Ilines, g.f.geom.Ilines, "inline")
	if err != nil {
		return nil, err
	}
	xlines, err := selectLabels(q.Xlines, g.f.geom.Xlines, "crossline")
	if err != nil {
		return nil, err
	}
	offsets, err := selectLabels(q.Offsets, g.f.geom.Offsets, "offset")
	if err != nil {
		return nil, err
	}

	cube := &Cube{
		Ilines:  ilines,
		Xlines:  xlines,
		Offsets: offsets,
		Samples: g.f.samplecount,
		Data:    make([]float32, len(ilines)*len(xlines)*len(offsets)*g.f.samplecount),
	}

	ilPos := g.il.position
	xlPos := g.xl.position
	tr := make([]float32, g.f.samplecount)
	at := 0
	for _, il := range ilines {
		for _, xl := range xlines {
			for _, off := range offsets {
				offIdx, err := g.il.offsetIndex(off)
				if err != nil {
					return nil, err
				}
				idx := g.f.traceIndex(ilPos[il], xlPos[xl], offIdx)
				if err := g.f.fd.ReadTraceData(idx, tr); err != nil {
					return nil, err
				}
				copy(cube.Data[at:], tr)
				at += g.f.samplecount
			}
		}
	}
	return cube, nil
}

// selectLabels validates an axis selection against the file's label
// set, defaulting to the full set when the selection is nil.
func selectLabels(sel, all []int, axis string) ([]int, error) {
	if sel == nil {
		return all, nil
	}
	for _, v := range sel {
		found := false
		for _, l := range all {
			if v == l {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %s %d", ErrNotFound, axis, v)
		}
	}
	return sel, nil
}
