package segy

import (
	"github.com/robert-malhotra/go-segy/field"
)

// BinHeader is the binary file header view. Field positions use the
// standard's 3201-based byte numbers (field.BinSamples and friends).
type BinHeader struct {
	f *File
}

// Get reads one binary header field.
func (b *BinHeader) Get(tag field.Tag) (int, error) {
	if err := b.f.checkOpen(); err != nil {
		return 0, err
	}
	buf, err := b.f.fd.ReadBinary()
	if err != nil {
		return 0, err
	}
	return field.Get(buf, tag)
}

// Raw returns the raw 400-byte binary header.
func (b *BinHeader) Raw() ([]byte, error) {
	if err := b.f.checkOpen(); err != nil {
		return nil, err
	}
	return b.f.fd.ReadBinary()
}

// Update merges field values into the binary header: supplied fields
// overwrite, all others are retained.
func (b *BinHeader) Update(fields map[field.Tag]int) error {
	if err := b.f.checkWritable(); err != nil {
		return err
	}
	buf, err := b.f.fd.ReadBinary()
	if err != nil {
		return err
	}
	for tag, v := range fields {
		if err := field.Put(buf, tag, v); err != nil {
			return err
		}
	}
	return b.f.fd.WriteBinary(buf)
}
