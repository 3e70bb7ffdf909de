// Package segyfd implements the byte-level file layer for SEG-Y files:
// opening, creating, and reading or writing raw headers and traces at
// their standard positions.
//
// Layout per SEG-Y rev1: a 3200-byte EBCDIC textual header, a 400-byte
// big-endian binary header, zero or more 3200-byte extended textual
// headers, then the traces. Every trace is a 240-byte header followed
// by samplecount samples in the binary header's sample format.
//
// The package deals only in file positions and raw records; the logical
// inline/crossline coordinate system is layered on top by the segy
// package.
package segyfd

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/robert-malhotra/go-segy/field"
	"github.com/robert-malhotra/go-segy/internal/format"
	"github.com/robert-malhotra/go-segy/internal/geometry"
)

// ErrNotSEGY is returned when a file's size or binary header cannot
// describe a valid SEG-Y layout.
var ErrNotSEGY = errors.New("not a SEG-Y file")

// TextHeaderSize is the byte size of each textual header slot.
const TextHeaderSize = 3200

const binHeaderOffset = TextHeaderSize
const firstExtOffset = TextHeaderSize + field.BinHeaderSize

// Metrics holds the file-wide quantities read from the binary header
// and the file size.
type Metrics struct {
	Format      format.Format
	Tracecount  int
	Samplecount int
	ExtHeaders  int
}

// Config describes the layout of a file to be created.
type Config struct {
	Format      format.Format
	Samplecount int
	Tracecount  int
	ExtHeaders  int
	Interval    int // sample interval in microseconds, 0 to omit
}

// Fd is an open SEG-Y file descriptor.
type Fd struct {
	file     *os.File
	path     string
	writable bool

	fmt         format.Format
	samplecount int
	tracecount  int
	extHeaders  int

	trace0     int64 // byte offset of the first trace header
	traceBsize int   // byte size of one trace's sample data
}

// Open opens the file and parses its binary header. An unknown sample
// format code is downgraded to IBM float with a warning rather than
// failing, matching the recoverable-encoding contract.
func Open(path string, writable bool) (*Fd, error) {
	flag := os.O_RDONLY
	if writable {
		flag = os.O_RDWR
	}
	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, err
	}

	fd := &Fd{file: f, path: path, writable: writable}
	if err := fd.parseLayout(); err != nil {
		f.Close()
		return nil, err
	}
	return fd, nil
}

func (fd *Fd) parseLayout() error {
	bin := make([]byte, field.BinHeaderSize)
	if _, err := fd.file.ReadAt(bin, binHeaderOffset); err != nil {
		return fmt.Errorf("%w: reading binary header: %v", ErrNotSEGY, err)
	}

	samples, _ := field.Get(bin, field.BinSamples)
	fmtcode, _ := field.Get(bin, field.BinFormat)
	ext, _ := field.Get(bin, field.BinExtendedHeaders)

	if samples <= 0 {
		return fmt.Errorf("%w: binary header reports %d samples per trace", ErrNotSEGY, samples)
	}
	if ext < 0 {
		return fmt.Errorf("%w: binary header reports %d extended headers", ErrNotSEGY, ext)
	}

	fd.fmt = format.Format(fmtcode)
	if !fd.fmt.Supported() {
		log.Warnf("unknown trace value format %d, falling back to ibm float", fmtcode)
		fd.fmt = format.IBMFloat
	}

	fd.samplecount = samples
	fd.extHeaders = ext
	fd.traceBsize = samples * fd.fmt.Size()
	fd.trace0 = int64(firstExtOffset) + int64(ext)*TextHeaderSize

	info, err := fd.file.Stat()
	if err != nil {
		return err
	}
	body := info.Size() - fd.trace0
	recordSize := int64(field.TraceHeaderSize + fd.traceBsize)
	if body < 0 || body%recordSize != 0 {
		return fmt.Errorf("%w: %d trailing bytes do not divide into %d-byte traces", ErrNotSEGY, body, recordSize)
	}
	fd.tracecount = int(body / recordSize)
	return nil
}

// Create writes a new file with blank headers and a zeroed trace body
// sized for cfg.Tracecount traces.
func Create(path string, cfg Config) (*Fd, error) {
	if cfg.Samplecount <= 0 {
		return nil, fmt.Errorf("create %s: samplecount %d must be positive", path, cfg.Samplecount)
	}
	if cfg.Tracecount < 0 || cfg.ExtHeaders < 0 {
		return nil, fmt.Errorf("create %s: negative tracecount or extended header count", path)
	}
	sfmt := cfg.Format
	if sfmt == 0 {
		sfmt = format.IBMFloat
	}
	if !sfmt.Supported() {
		log.Warnf("unknown trace value format %d, falling back to ibm float", int(sfmt))
		sfmt = format.IBMFloat
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, err
	}

	fd := &Fd{
		file:        f,
		path:        path,
		writable:    true,
		fmt:         sfmt,
		samplecount: cfg.Samplecount,
		tracecount:  cfg.Tracecount,
		extHeaders:  cfg.ExtHeaders,
		traceBsize:  cfg.Samplecount * sfmt.Size(),
		trace0:      int64(firstExtOffset) + int64(cfg.ExtHeaders)*TextHeaderSize,
	}

	blank := format.EncodeText("", TextHeaderSize)
	if _, err := f.WriteAt(blank, 0); err != nil {
		f.Close()
		os.Remove(path)
		return nil, err
	}
	for slot := 1; slot <= cfg.ExtHeaders; slot++ {
		if _, err := f.WriteAt(blank, fd.textOffset(slot)); err != nil {
			f.Close()
			os.Remove(path)
			return nil, err
		}
	}

	bin := make([]byte, field.BinHeaderSize)
	field.Put(bin, field.BinSamples, cfg.Samplecount)
	field.Put(bin, field.BinFormat, int(sfmt))
	field.Put(bin, field.BinExtendedHeaders, cfg.ExtHeaders)
	if cfg.Interval > 0 {
		field.Put(bin, field.BinInterval, cfg.Interval)
	}
	if _, err := f.WriteAt(bin, binHeaderOffset); err != nil {
		f.Close()
		os.Remove(path)
		return nil, err
	}

	size := fd.trace0 + int64(cfg.Tracecount)*int64(field.TraceHeaderSize+fd.traceBsize)
	if err := f.Truncate(size); err != nil {
		f.Close()
		os.Remove(path)
		return nil, err
	}
	return fd, nil
}

// Metrics returns the file-wide layout quantities.
func (fd *Fd) Metrics() Metrics {
	return Metrics{
		Format:      fd.fmt,
		Tracecount:  fd.tracecount,
		Samplecount: fd.samplecount,
		ExtHeaders:  fd.extHeaders,
	}
}

// Path returns the file path.
func (fd *Fd) Path() string {
	return fd.path
}

// Writable reports whether the file was opened for writing.
func (fd *Fd) Writable() bool {
	return fd.writable
}

func (fd *Fd) headerOffset(i int) int64 {
	return fd.trace0 + int64(i)*int64(field.TraceHeaderSize+fd.traceBsize)
}

func (fd *Fd) dataOffset(i int) int64 {
	return fd.headerOffset(i) + field.TraceHeaderSize
}

func (fd *Fd) textOffset(slot int) int64 {
	if slot == 0 {
		return 0
	}
	return int64(firstExtOffset) + int64(slot-1)*TextHeaderSize
}

func (fd *Fd) checkIndex(i int) error {
	if i < 0 || i >= fd.tracecount {
		return fmt.Errorf("trace index %d outside [0, %d)", i, fd.tracecount)
	}
	return nil
}

// ReadTraceData decodes the sample data of trace i into out, which must
// hold samplecount values.
func (fd *Fd) ReadTraceData(i int, out []float32) error {
	if err := fd.checkIndex(i); err != nil {
		return err
	}
	raw := make([]byte, fd.traceBsize)
	if _, err := fd.file.ReadAt(raw, fd.dataOffset(i)); err != nil {
		return err
	}
	return fd.fmt.DecodeSamples(raw, out)
}

// WriteTraceData encodes and writes the sample data of trace i.
func (fd *Fd) WriteTraceData(i int, samples []float32) error {
	if err := fd.checkIndex(i); err != nil {
		return err
	}
	if len(samples) != fd.samplecount {
		return fmt.Errorf("trace %d: %d samples, file has %d per trace", i, len(samples), fd.samplecount)
	}
	raw := make([]byte, fd.traceBsize)
	if err := fd.fmt.EncodeSamples(samples, raw); err != nil {
		return err
	}
	_, err := fd.file.WriteAt(raw, fd.dataOffset(i))
	return err
}

// ReadSampleAt reads the single sample at position depth of trace i.
func (fd *Fd) ReadSampleAt(i, depth int) (float32, error) {
	if err := fd.checkIndex(i); err != nil {
		return 0, err
	}
	raw := make([]byte, fd.fmt.Size())
	pos := fd.dataOffset(i) + int64(depth*fd.fmt.Size())
	if _, err := fd.file.ReadAt(raw, pos); err != nil {
		return 0, err
	}
	return fd.fmt.DecodeSample(raw)
}

// WriteSampleAt writes the single sample at position depth of trace i.
func (fd *Fd) WriteSampleAt(i, depth int, v float32) error {
	if err := fd.checkIndex(i); err != nil {
		return err
	}
	raw := make([]byte, fd.fmt.Size())
	if err := fd.fmt.EncodeSample(v, raw); err != nil {
		return err
	}
	pos := fd.dataOffset(i) + int64(depth*fd.fmt.Size())
	_, err := fd.file.WriteAt(raw, pos)
	return err
}

// ReadTraceHeader returns the raw 240-byte header of trace i.
func (fd *Fd) ReadTraceHeader(i int) ([]byte, error) {
	if err := fd.checkIndex(i); err != nil {
		return nil, err
	}
	buf := make([]byte, field.TraceHeaderSize)
	if _, err := fd.file.ReadAt(buf, fd.headerOffset(i)); err != nil {
		return nil, err
	}
	return buf, nil
}

// WriteTraceHeader writes the raw 240-byte header of trace i.
func (fd *Fd) WriteTraceHeader(i int, buf []byte) error {
	if err := fd.checkIndex(i); err != nil {
		return err
	}
	if len(buf) != field.TraceHeaderSize {
		return fmt.Errorf("trace header must be %d bytes, got %d", field.TraceHeaderSize, len(buf))
	}
	_, err := fd.file.WriteAt(buf, fd.headerOffset(i))
	return err
}

// ReadField reads one header field of trace i without fetching the
// whole header.
func (fd *Fd) ReadField(i int, tag field.Tag) (int, error) {
	if err := fd.checkIndex(i); err != nil {
		return 0, err
	}
	w := tag.Width()
	if w == 0 {
		return 0, fmt.Errorf("unknown header field at byte %d", int(tag))
	}
	buf := make([]byte, w)
	pos := fd.headerOffset(i) + int64(int(tag)-1)
	if _, err := fd.file.ReadAt(buf, pos); err != nil {
		return 0, err
	}
	if w == 2 {
		return int(int16(binary.BigEndian.Uint16(buf))), nil
	}
	return int(int32(binary.BigEndian.Uint32(buf))), nil
}

// ReadFieldRange reads one header field for every trace index from
// start towards stop by step. step must be non-zero; results are in
// iteration order.
func (fd *Fd) ReadFieldRange(start, stop, step int, tag field.Tag) ([]int, error) {
	if step == 0 {
		return nil, fmt.Errorf("field range step must be non-zero")
	}
	var out []int
	for i := start; (step > 0 && i < stop) || (step < 0 && i > stop); i += step {
		v, err := fd.ReadField(i, tag)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// ReadFieldAt reads one header field at each of the given trace
// indices, preserving order and duplicates.
func (fd *Fd) ReadFieldAt(indices []int, tag field.Tag) ([]int, error) {
	out := make([]int, len(indices))
	for k, i := range indices {
		v, err := fd.ReadField(i, tag)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

// ScanCoords reads the three geometry coordinates from every trace
// header in file order. Used once, at geometry resolution time.
func (fd *Fd) ScanCoords(il, xl, off field.Tag) ([]geometry.Coord, error) {
	coords := make([]geometry.Coord, fd.tracecount)
	for i := 0; i < fd.tracecount; i++ {
		buf, err := fd.ReadTraceHeader(i)
		if err != nil {
			return nil, err
		}
		iv, err := field.Get(buf, il)
		if err != nil {
			return nil, err
		}
		xv, err := field.Get(buf, xl)
		if err != nil {
			return nil, err
		}
		ov, err := field.Get(buf, off)
		if err != nil {
			return nil, err
		}
		coords[i] = geometry.Coord{Inline: iv, Crossline: xv, Offset: ov}
	}
	return coords, nil
}

// ReadText returns textual header slot 0..ExtHeaders decoded to ASCII.
func (fd *Fd) ReadText(slot int) (string, error) {
	if slot < 0 || slot > fd.extHeaders {
		return "", fmt.Errorf("textual header %d not in file", slot)
	}
	raw := make([]byte, TextHeaderSize)
	if _, err := fd.file.ReadAt(raw, fd.textOffset(slot)); err != nil {
		return "", err
	}
	return format.DecodeText(raw), nil
}

// WriteText encodes text to EBCDIC and writes it to the given slot.
func (fd *Fd) WriteText(slot int, text string) error {
	if slot < 0 || slot > fd.extHeaders {
		return fmt.Errorf("textual header %d not in file", slot)
	}
	_, err := fd.file.WriteAt(format.EncodeText(text, TextHeaderSize), fd.textOffset(slot))
	return err
}

// ReadBinary returns the raw 400-byte binary header.
func (fd *Fd) ReadBinary() ([]byte, error) {
	buf := make([]byte, field.BinHeaderSize)
	if _, err := fd.file.ReadAt(buf, binHeaderOffset); err != nil {
		return nil, err
	}
	return buf, nil
}

// WriteBinary writes the raw 400-byte binary header.
func (fd *Fd) WriteBinary(buf []byte) error {
	if len(buf) != field.BinHeaderSize {
		return fmt.Errorf("binary header must be %d bytes, got %d", field.BinHeaderSize, len(buf))
	}
	_, err := fd.file.WriteAt(buf, binHeaderOffset)
	return err
}

// Flush syncs file contents to stable storage.
func (fd *Fd) Flush() error {
	return fd.file.Sync()
}

// Close closes the underlying file.
func (fd *Fd) Close() error {
	return fd.file.Close()
}
