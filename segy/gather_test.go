package segy

import (
	"errors"
	"testing"

	"github.com/robert-malhotra/go-segy/field"
	"github.com/robert-malhotra/go-segy/internal/geometry"
	"github.com/robert-malhotra/go-segy/internal/segyfd"
)

// nullTransport satisfies transport without touching a file; reads
// return zero values. Used to drive view logic against hand-built
// geometries that Resolve would never produce.
type nullTransport struct{}

func (nullTransport) Metrics() segyfd.Metrics                    { return segyfd.Metrics{} }
func (nullTransport) ReadTraceData(int, []float32) error         { return nil }
func (nullTransport) WriteTraceData(int, []float32) error        { return nil }
func (nullTransport) ReadSampleAt(int, int) (float32, error)     { return 0, nil }
func (nullTransport) WriteSampleAt(int, int, float32) error      { return nil }
func (nullTransport) ReadTraceHeader(int) ([]byte, error)        { return make([]byte, field.TraceHeaderSize), nil }
func (nullTransport) WriteTraceHeader(int, []byte) error         { return nil }
func (nullTransport) ReadField(int, field.Tag) (int, error)      { return 0, nil }
func (nullTransport) ReadFieldRange(int, int, int, field.Tag) ([]int, error) {
	return nil, nil
}
func (nullTransport) ReadFieldAt([]int, field.Tag) ([]int, error) { return nil, nil }
func (nullTransport) ScanCoords(field.Tag, field.Tag, field.Tag) ([]geometry.Coord, error) {
	return nil, nil
}
func (nullTransport) ReadText(int) (string, error) { return "", nil }
func (nullTransport) WriteText(int, string) error  { return nil }
func (nullTransport) ReadBinary() ([]byte, error)  { return make([]byte, field.BinHeaderSize), nil }
func (nullTransport) WriteBinary([]byte) error     { return nil }
func (nullTransport) Flush() error                 { return nil }
func (nullTransport) Close() error                 { return nil }

func TestGatherCellInconsistentGeometry(t *testing.T) {
	// An inline stride that disagrees with the offset count makes the
	// line index sets overlap, so a cell no longer intersects to one
	// trace per offset.
	f := &File{
		fd:          nullTransport{},
		tracecount:  8,
		samplecount: 1,
		geom: geometry.Geometry{
			Sorting:     SortingInline,
			Ilines:      []int{1, 2},
			Xlines:      []int{10, 20},
			Offsets:     []int{1, 2},
			IlineLength: 2,
			IlineStride: 1, // should be 2 for two offsets
			XlineLength: 2,
			XlineStride: 4,
		},
	}

	g, err := f.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}

	_, err = g.Cell(1, 10)
	if !errors.Is(err, ErrInconsistent) {
		t.Errorf("Cell: expected ErrInconsistent, got %v", err)
	}

	_, err = g.Trace(1, 10, 1)
	if !errors.Is(err, ErrInconsistent) {
		t.Errorf("Trace: expected ErrInconsistent, got %v", err)
	}

	// Unknown labels are still reported as missing, not inconsistent.
	_, err = g.Cell(1, 99)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Cell with unknown label: expected ErrNotFound, got %v", err)
	}
}
