package segy

import (
	"fmt"
	"iter"

	"github.com/robert-malhotra/go-segy/field"
)

// Header is the flat trace header view, addressing the 240-byte binary
// metadata block of each trace by physical position.
type Header struct {
	f *File
}

// HeaderRecord is one trace's header. It wraps the raw buffer; reads
// and writes go through the standard field positions.
type HeaderRecord struct {
	buf []byte
}

// NewHeaderRecord returns an empty (all zero) header record, useful as
// a starting point when filling headers of a created file.
func NewHeaderRecord() *HeaderRecord {
	return &HeaderRecord{buf: make([]byte, field.TraceHeaderSize)}
}

// Get extracts one field's value.
func (r *HeaderRecord) Get(tag field.Tag) (int, error) {
	return field.Get(r.buf, tag)
}

// Set patches one field's value.
func (r *HeaderRecord) Set(tag field.Tag, v int) error {
	return field.Put(r.buf, tag, v)
}

// Update applies several field values at once; fields not present in
// the map keep their current values.
func (r *HeaderRecord) Update(fields map[field.Tag]int) error {
	for tag, v := range fields {
		if err := field.Put(r.buf, tag, v); err != nil {
			return err
		}
	}
	return nil
}

// Raw returns the underlying 240-byte buffer.
func (r *HeaderRecord) Raw() []byte {
	return r.buf
}

// Len returns the number of trace headers.
func (h *Header) Len() int {
	return h.f.tracecount
}

func (h *Header) checkIndex(i int) error {
	if i < 0 || i >= h.f.tracecount {
		return fmt.Errorf("%w: header %d of %d", ErrOutOfRange, i, h.f.tracecount)
	}
	return nil
}

// Get reads the header of trace i.
func (h *Header) Get(i int) (*HeaderRecord, error) {
	if err := h.f.checkOpen(); err != nil {
		return nil, err
	}
	if err := h.checkIndex(i); err != nil {
		return nil, err
	}
	buf, err := h.f.fd.ReadTraceHeader(i)
	if err != nil {
		return nil, err
	}
	return &HeaderRecord{buf: buf}, nil
}

// Write stores the record as the header of trace i.
func (h *Header) Write(i int, rec *HeaderRecord) error {
	if err := h.f.checkWritable(); err != nil {
		return err
	}
	if err := h.checkIndex(i); err != nil {
		return err
	}
	return h.f.fd.WriteTraceHeader(i, rec.buf)
}

// Update merges field values into the header of trace i: supplied
// fields overwrite, all others are retained.
func (h *Header) Update(i int, fields map[field.Tag]int) error {
	rec, err := h.Get(i)
	if err != nil {
		return err
	}
	if err := h.f.checkWritable(); err != nil {
		return err
	}
	if err := rec.Update(fields); err != nil {
		return err
	}
	return h.f.fd.WriteTraceHeader(i, rec.buf)
}

// All yields every trace header in physical order. A read failure is
// yielded as the error of its pair and ends the iteration.
func (h *Header) All() iter.Seq2[*HeaderRecord, error] {
	return func(yield func(*HeaderRecord, error) bool) {
		for i := 0; i < h.f.tracecount; i++ {
			rec, err := h.Get(i)
			if !yield(rec, err) || err != nil {
				return
			}
		}
	}
}

// SetAll assigns headers 0, 1, … from the source sequence under the
// bulk-assignment contract; a source error aborts the copy. Returns
// the number of headers written.
func (h *Header) SetAll(src iter.Seq2[*HeaderRecord, error]) (int, error) {
	if err := h.f.checkWritable(); err != nil {
		return 0, err
	}
	return copyInto(h.f.tracecount, src, func(i int, rec *HeaderRecord) error {
		return h.f.fd.WriteTraceHeader(i, rec.buf)
	})
}
