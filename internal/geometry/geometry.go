// Package geometry derives the logical inline/crossline/offset
// coordinate system of a trace file from per-trace header coordinates.
//
// Resolution is a pure function of the coordinate sequence: it performs
// no I/O and never fails. Any inconsistency in the trace ordering
// (ragged lines, duplicate cells, irregular offsets) downgrades the
// result to unstructured, in which case only flat trace access is
// meaningful.
package geometry

// Sorting describes which axis varies slowest across the file.
type Sorting int

const (
	// SortingUnknown marks an unstructured file.
	SortingUnknown Sorting = iota
	// SortingInline means traces are grouped by inline; the
	// crossline coordinate varies fastest.
	SortingInline
	// SortingCrossline means traces are grouped by crossline; the
	// inline coordinate varies fastest.
	SortingCrossline
)

func (s Sorting) String() string {
	switch s {
	case SortingInline:
		return "inline"
	case SortingCrossline:
		return "crossline"
	}
	return "unknown"
}

// Coord holds the three header coordinates of one trace.
type Coord struct {
	Inline    int
	Crossline int
	Offset    int
}

// Geometry is the resolved coordinate system of a file. For
// unstructured files Sorting is SortingUnknown and every other field is
// zero; the label slices are nil, not empty.
type Geometry struct {
	Sorting Sorting
	Ilines  []int
	Xlines  []int
	Offsets []int

	// IlineLength is the number of traces per offset in one inline;
	// IlineStride is the trace-index distance between consecutive
	// traces of an inline at a fixed offset. Symmetric for crossline.
	IlineLength int
	IlineStride int
	XlineLength int
	XlineStride int
}

// Structured reports whether line, gather and depth addressing are
// available.
func (g Geometry) Structured() bool {
	return g.Sorting != SortingUnknown
}

var unstructured = Geometry{Sorting: SortingUnknown}

// Resolve derives the Geometry from the header coordinates of all
// traces in file order. len(coords) must equal tracecount; any
// mismatch, or any irregularity in the coordinates, yields the
// unstructured Geometry.
func Resolve(coords []Coord, tracecount int) Geometry {
	if tracecount <= 0 || len(coords) != tracecount {
		return unstructured
	}

	offsets, cells, ok := splitOffsets(coords)
	if !ok {
		return unstructured
	}

	// A single location carries no orientation; treat as unstructured.
	if sameCell(cells) {
		return unstructured
	}

	noff := len(offsets)
	if ilines, xlines, ok := group(cells, byInline); ok {
		return Geometry{
			Sorting:     SortingInline,
			Ilines:      ilines,
			Xlines:      xlines,
			Offsets:     offsets,
			IlineLength: len(xlines),
			IlineStride: noff,
			XlineLength: len(ilines),
			XlineStride: len(xlines) * noff,
		}
	}
	if xlines, ilines, ok := group(cells, byCrossline); ok {
		return Geometry{
			Sorting:     SortingCrossline,
			Ilines:      ilines,
			Xlines:      xlines,
			Offsets:     offsets,
			IlineLength: len(xlines),
			IlineStride: len(ilines) * noff,
			XlineLength: len(ilines),
			XlineStride: noff,
		}
	}
	return unstructured
}

type cell struct {
	il, xl int
}

// splitOffsets discovers the offset axis as the run of offset labels on
// the leading cell, then checks every cell repeats exactly that
// sequence. Returns the offset labels and the per-cell coordinates.
func splitOffsets(coords []Coord) ([]int, []cell, bool) {
	first := cell{coords[0].Inline, coords[0].Crossline}
	var offsets []int
	for _, c := range coords {
		if (cell{c.Inline, c.Crossline}) != first {
			break
		}
		offsets = append(offsets, c.Offset)
	}
	noff := len(offsets)
	if len(coords)%noff != 0 {
		return nil, nil, false
	}
	for i := 1; i < noff; i++ {
		for j := 0; j < i; j++ {
			if offsets[i] == offsets[j] {
				return nil, nil, false
			}
		}
	}

	cells := make([]cell, 0, len(coords)/noff)
	for base := 0; base < len(coords); base += noff {
		c := cell{coords[base].Inline, coords[base].Crossline}
		for k := 0; k < noff; k++ {
			at := coords[base+k]
			if at.Inline != c.il || at.Crossline != c.xl || at.Offset != offsets[k] {
				return nil, nil, false
			}
		}
		cells = append(cells, c)
	}
	return offsets, cells, true
}

func sameCell(cells []cell) bool {
	for _, c := range cells {
		if c != cells[0] {
			return false
		}
	}
	return true
}

func byInline(c cell) (slow, fast int)    { return c.il, c.xl }
func byCrossline(c cell) (slow, fast int) { return c.xl, c.il }

// group partitions the cell sequence into contiguous runs of constant
// slow label and checks every run carries the identical fast-label
// sequence. Returns the slow labels (one per run, in file order) and
// the shared fast labels.
func group(cells []cell, axes func(cell) (int, int)) (slowLabels, fastLabels []int, ok bool) {
	var runs [][]int
	i := 0
	for i < len(cells) {
		slow, _ := axes(cells[i])
		var fasts []int
		for i < len(cells) {
			s, f := axes(cells[i])
			if s != slow {
				break
			}
			fasts = append(fasts, f)
			i++
		}
		slowLabels = append(slowLabels, slow)
		runs = append(runs, fasts)
	}

	fastLabels = runs[0]
	for _, f := range fastLabels {
		count := 0
		for _, g := range fastLabels {
			if f == g {
				count++
			}
		}
		if count != 1 {
			return nil, nil, false
		}
	}
	for _, run := range runs[1:] {
		if len(run) != len(fastLabels) {
			return nil, nil, false
		}
		for k := range run {
			if run[k] != fastLabels[k] {
				return nil, nil, false
			}
		}
	}
	for i, s := range slowLabels {
		for j := 0; j < i; j++ {
			if slowLabels[j] == s {
				return nil, nil, false
			}
		}
	}
	return slowLabels, fastLabels, true
}
