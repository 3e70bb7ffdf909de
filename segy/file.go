package segy

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/robert-malhotra/go-segy/field"
	"github.com/robert-malhotra/go-segy/internal/format"
	"github.com/robert-malhotra/go-segy/internal/geometry"
	"github.com/robert-malhotra/go-segy/internal/segyfd"
)

// Sorting describes which line axis varies slowest across the file.
type Sorting = geometry.Sorting

// Sorting values. SortingInline means traces are grouped by inline and
// the crossline coordinate varies fastest.
const (
	SortingUnknown   = geometry.SortingUnknown
	SortingInline    = geometry.SortingInline
	SortingCrossline = geometry.SortingCrossline
)

// Format is a SEG-Y sample format code.
type Format = format.Format

// Sample format codes from the binary header.
const (
	FormatIBMFloat  = format.IBMFloat
	FormatInt32     = format.Int32
	FormatInt16     = format.Int16
	FormatIEEEFloat = format.IEEEFloat
	FormatInt8      = format.Int8
)

// transport is the file/transport collaborator the core addresses
// traces through. *segyfd.Fd is the production implementation; the
// core itself performs no disk I/O.
type transport interface {
	Metrics() segyfd.Metrics
	ReadTraceData(i int, out []float32) error
	WriteTraceData(i int, samples []float32) error
	ReadSampleAt(i, depth int) (float32, error)
	WriteSampleAt(i, depth int, v float32) error
	ReadTraceHeader(i int) ([]byte, error)
	WriteTraceHeader(i int, buf []byte) error
	ReadField(i int, tag field.Tag) (int, error)
	ReadFieldRange(start, stop, step int, tag field.Tag) ([]int, error)
	ReadFieldAt(indices []int, tag field.Tag) ([]int, error)
	ScanCoords(il, xl, off field.Tag) ([]geometry.Coord, error)
	ReadText(slot int) (string, error)
	WriteText(slot int, text string) error
	ReadBinary() ([]byte, error)
	WriteBinary(buf []byte) error
	Flush() error
	Close() error
}

// File is an open SEG-Y file. The geometry is resolved once when the
// file is opened and is immutable for the file's lifetime; view objects
// are created lazily on first access and cached.
//
// A File and its views are not safe for concurrent use; one goroutine
// owns the handle at a time.
type File struct {
	fd       transport
	path     string
	closed   bool
	readonly bool

	fmt         Format
	tracecount  int
	samplecount int
	extHeaders  int
	geom        geometry.Geometry

	trace  *Trace
	header *Header
	iline  *Line
	xline  *Line
	gather *Gather
	depth  *Depth
	text   *Text
	bin    *BinHeader
}

// Open opens a SEG-Y file and resolves its geometry from the trace
// headers. Files without a consistent inline/crossline grid open
// successfully in unstructured mode; only flat trace and header
// addressing is then available.
func Open(path string, opts ...Option) (*File, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	fd, err := segyfd.Open(path, options.writable)
	if err != nil {
		return nil, err
	}

	f := newFile(fd, path, !options.writable)
	if !options.unstructured {
		coords, err := fd.ScanCoords(options.ilineField, options.xlineField, options.offsetField)
		if err != nil {
			fd.Close()
			return nil, fmt.Errorf("scanning header coordinates: %w", err)
		}
		f.geom = geometry.Resolve(coords, f.tracecount)
		log.Debugf("open %s: %d traces, %s sorting", path, f.tracecount, f.geom.Sorting)
	}
	return f, nil
}

// Spec describes the survey layout of a file to be created. Either the
// Ilines/Xlines label sets are given (structured file) or Tracecount is
// given alone (unstructured file). Offsets defaults to [1] and Sorting
// to inline.
type Spec struct {
	Ilines      []int
	Xlines      []int
	Offsets     []int
	Sorting     Sorting
	Samplecount int
	Format      Format
	ExtHeaders  int
	Interval    int // sample interval in microseconds
	Tracecount  int // unstructured files only
}

// Create creates a new file laid out per the spec. The geometry is
// taken from the spec rather than scanned; trace headers start zeroed,
// so a file meant to be re-opened in structured mode must have its
// coordinate header words written before closing.
func Create(path string, spec Spec) (*File, error) {
	structured := len(spec.Ilines) > 0
	if structured && len(spec.Xlines) == 0 {
		return nil, fmt.Errorf("create %s: inline labels without crossline labels", path)
	}

	offsets := spec.Offsets
	if len(offsets) == 0 {
		offsets = []int{1}
	}

	if structured {
		if err := uniqueLabels("inline", spec.Ilines); err != nil {
			return nil, fmt.Errorf("create %s: %w", path, err)
		}
		if err := uniqueLabels("crossline", spec.Xlines); err != nil {
			return nil, fmt.Errorf("create %s: %w", path, err)
		}
		if err := uniqueLabels("offset", offsets); err != nil {
			return nil, fmt.Errorf("create %s: %w", path, err)
		}
	}
	sorting := spec.Sorting
	if sorting == SortingUnknown {
		sorting = SortingInline
	}

	tracecount := spec.Tracecount
	if structured {
		tracecount = len(spec.Ilines) * len(spec.Xlines) * len(offsets)
	}

	fd, err := segyfd.Create(path, segyfd.Config{
		Format:      spec.Format,
		Samplecount: spec.Samplecount,
		Tracecount:  tracecount,
		ExtHeaders:  spec.ExtHeaders,
		Interval:    spec.Interval,
	})
	if err != nil {
		return nil, err
	}

	f := newFile(fd, path, false)
	if structured {
		noff := len(offsets)
		geom := geometry.Geometry{
			Sorting: sorting,
			Ilines:  append([]int(nil), spec.Ilines...),
			Xlines:  append([]int(nil), spec.Xlines...),
			Offsets: append([]int(nil), offsets...),
		}
		if sorting == SortingInline {
			geom.IlineLength = len(geom.Xlines)
			geom.IlineStride = noff
			geom.XlineLength = len(geom.Ilines)
			geom.XlineStride = len(geom.Xlines) * noff
		} else {
			geom.IlineLength = len(geom.Xlines)
			geom.IlineStride = len(geom.Ilines) * noff
			geom.XlineLength = len(geom.Ilines)
			geom.XlineStride = noff
		}
		f.geom = geom
	}
	return f, nil
}

// uniqueLabels rejects duplicate labels on one geometry axis. Resolved
// geometries can never carry duplicates; caller-supplied ones must be
// checked before they reach a line's label-to-position map.
func uniqueLabels(axis string, labels []int) error {
	seen := make(map[int]bool, len(labels))
	for _, l := range labels {
		if seen[l] {
			return fmt.Errorf("%w: duplicate %s label %d", ErrInconsistent, axis, l)
		}
		seen[l] = true
	}
	return nil
}

func newFile(fd transport, path string, readonly bool) *File {
	m := fd.Metrics()
	return &File{
		fd:          fd,
		path:        path,
		readonly:    readonly,
		fmt:         m.Format,
		tracecount:  m.Tracecount,
		samplecount: m.Samplecount,
		extHeaders:  m.ExtHeaders,
		geom:        geometry.Geometry{Sorting: SortingUnknown},
	}
}

func (f *File) checkOpen() error {
	if f.closed {
		return ErrClosed
	}
	return nil
}

func (f *File) checkWritable() error {
	if f.closed {
		return ErrClosed
	}
	if f.readonly {
		return ErrReadonly
	}
	return nil
}

func (f *File) checkStructured() error {
	if f.closed {
		return ErrClosed
	}
	if !f.geom.Structured() {
		return ErrUnstructured
	}
	return nil
}

// Path returns the file path.
func (f *File) Path() string {
	return f.path
}

// Tracecount returns the number of traces in the file.
func (f *File) Tracecount() int {
	return f.tracecount
}

// Samplecount returns the number of samples per trace.
func (f *File) Samplecount() int {
	return f.samplecount
}

// ExtHeaders returns the number of extended textual headers.
func (f *File) ExtHeaders() int {
	return f.extHeaders
}

// Format returns the sample format the file stores traces in.
func (f *File) Format() Format {
	return f.fmt
}

// Readonly reports whether the file was opened read-only.
func (f *File) Readonly() bool {
	return f.readonly
}

// Sorting returns the trace sorting, or SortingUnknown when
// unstructured.
func (f *File) Sorting() Sorting {
	return f.geom.Sorting
}

// Unstructured reports whether the file lacks a consistent
// inline/crossline grid. Unstructured files support only flat trace
// and header addressing.
func (f *File) Unstructured() bool {
	return !f.geom.Structured()
}

// Ilines returns the inline labels in file order, or nil when
// unstructured. The returned slice is shared; callers must not modify
// it.
func (f *File) Ilines() []int {
	return f.geom.Ilines
}

// Xlines returns the crossline labels in file order, or nil when
// unstructured.
func (f *File) Xlines() []int {
	return f.geom.Xlines
}

// Offsets returns the offset labels, or nil when unstructured. For
// post-stack data this has length 1.
func (f *File) Offsets() []int {
	return f.geom.Offsets
}

// Trace returns the flat trace view.
func (f *File) Trace() *Trace {
	if f.trace == nil {
		f.trace = &Trace{f: f}
	}
	return f.trace
}

// Header returns the flat trace header view.
func (f *File) Header() *Header {
	if f.header == nil {
		f.header = &Header{f: f}
	}
	return f.header
}

// Iline returns the inline addressing view.
func (f *File) Iline() (*Line, error) {
	if err := f.checkStructured(); err != nil {
		return nil, err
	}
	if f.iline == nil {
		f.iline = newLine(f, "inline", f.geom.Ilines, f.geom.IlineLength, f.geom.IlineStride, f.lineBaseStep(SortingInline))
	}
	return f.iline, nil
}

// Xline returns the crossline addressing view.
func (f *File) Xline() (*Line, error) {
	if err := f.checkStructured(); err != nil {
		return nil, err
	}
	if f.xline == nil {
		f.xline = newLine(f, "crossline", f.geom.Xlines, f.geom.XlineLength, f.geom.XlineStride, f.lineBaseStep(SortingCrossline))
	}
	return f.xline, nil
}

// lineBaseStep is the trace-index distance between successive lines of
// the given axis: a full group for the slow axis, one offset block for
// the fast axis.
func (f *File) lineBaseStep(axis Sorting) int {
	noff := len(f.geom.Offsets)
	if axis == f.geom.Sorting {
		if axis == SortingInline {
			return f.geom.IlineLength * noff
		}
		return f.geom.XlineLength * noff
	}
	return noff
}

// Fast returns the line view of the fast axis, the one with linear
// disk layout.
func (f *File) Fast() (*Line, error) {
	if err := f.checkStructured(); err != nil {
		return nil, err
	}
	if f.geom.Sorting == SortingInline {
		return f.Xline()
	}
	return f.Iline()
}

// Slow returns the line view of the slow, strided axis.
func (f *File) Slow() (*Line, error) {
	if err := f.checkStructured(); err != nil {
		return nil, err
	}
	if f.geom.Sorting == SortingInline {
		return f.Iline()
	}
	return f.Xline()
}

// Gather returns the (inline, crossline, offset) addressing view.
func (f *File) Gather() (*Gather, error) {
	if err := f.checkStructured(); err != nil {
		return nil, err
	}
	if f.gather == nil {
		il, err := f.Iline()
		if err != nil {
			return nil, err
		}
		xl, err := f.Xline()
		if err != nil {
			return nil, err
		}
		f.gather = &Gather{f: f, il: il, xl: xl}
	}
	return f.gather, nil
}

// DepthSlice returns the fixed-sample addressing view.
func (f *File) DepthSlice() (*Depth, error) {
	if err := f.checkStructured(); err != nil {
		return nil, err
	}
	if f.depth == nil {
		f.depth = &Depth{f: f}
	}
	return f.depth, nil
}

// Attributes returns a lazy projection of one trace header word across
// the whole file. Values are read from the file on every call, never
// cached.
func (f *File) Attributes(tag field.Tag) *Attributes {
	return &Attributes{f: f, tag: tag}
}

// Text returns the textual header view.
func (f *File) Text() *Text {
	if f.text == nil {
		f.text = &Text{f: f}
	}
	return f.text
}

// Bin returns the binary header view.
func (f *File) Bin() *BinHeader {
	if f.bin == nil {
		f.bin = &BinHeader{f: f}
	}
	return f.bin
}

// traceIndex maps grid positions (not labels) to the flat trace index.
func (f *File) traceIndex(ilIdx, xlIdx, offIdx int) int {
	noff := len(f.geom.Offsets)
	if f.geom.Sorting == SortingInline {
		return ilIdx*f.geom.IlineLength*noff + xlIdx*noff + offIdx
	}
	return xlIdx*f.geom.XlineLength*noff + ilIdx*noff + offIdx
}

// Flush syncs library and kernel buffers for the file to disk.
func (f *File) Flush() error {
	if err := f.checkOpen(); err != nil {
		return err
	}
	return f.fd.Flush()
}

// Close closes the file and invalidates every view derived from it;
// further use of the file or its views fails with ErrClosed.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	return f.fd.Close()
}
