// Package format converts between on-disk SEG-Y sample encodings and Go
// float32 values.
//
// The binary header's format code selects one of the rev1 sample
// encodings. All of them are decoded into float32, which is exact for
// every encoding except 4-byte integers with more than 24 significant
// bits. Data on disk is big-endian throughout.
package format

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Format is a SEG-Y sample format code from the binary header.
type Format int

// Sample format codes defined by the standard. Code 4 (fixed point with
// gain) is obsolete and unsupported.
const (
	IBMFloat  Format = 1
	Int32     Format = 2
	Int16     Format = 3
	IEEEFloat Format = 5
	Int8      Format = 8
)

// Size returns the byte size of one sample, or 0 for unknown codes.
func (f Format) Size() int {
	switch f {
	case IBMFloat, Int32, IEEEFloat:
		return 4
	case Int16:
		return 2
	case Int8:
		return 1
	}
	return 0
}

// Supported reports whether samples in this format can be decoded.
func (f Format) Supported() bool {
	return f.Size() != 0
}

func (f Format) String() string {
	switch f {
	case IBMFloat:
		return "4-byte IBM float"
	case Int32:
		return "4-byte signed integer"
	case Int16:
		return "2-byte signed integer"
	case IEEEFloat:
		return "4-byte IEEE float"
	case Int8:
		return "1-byte signed char"
	}
	return fmt.Sprintf("unknown format %d", int(f))
}

// DecodeSamples decodes len(out) samples from raw into out.
func (f Format) DecodeSamples(raw []byte, out []float32) error {
	size := f.Size()
	if size == 0 {
		return fmt.Errorf("cannot decode samples: %s", f)
	}
	if len(raw) < len(out)*size {
		return fmt.Errorf("sample buffer too short: %d bytes for %d samples of %s", len(raw), len(out), f)
	}
	for i := range out {
		out[i] = f.decodeOne(raw[i*size:])
	}
	return nil
}

// EncodeSamples encodes the samples into raw, which must hold
// len(samples)*Size() bytes.
func (f Format) EncodeSamples(samples []float32, raw []byte) error {
	size := f.Size()
	if size == 0 {
		return fmt.Errorf("cannot encode samples: %s", f)
	}
	if len(raw) < len(samples)*size {
		return fmt.Errorf("raw buffer too short: %d bytes for %d samples of %s", len(raw), len(samples), f)
	}
	for i, s := range samples {
		f.encodeOne(s, raw[i*size:])
	}
	return nil
}

// DecodeSample decodes the single sample at the start of raw.
func (f Format) DecodeSample(raw []byte) (float32, error) {
	size := f.Size()
	if size == 0 {
		return 0, fmt.Errorf("cannot decode sample: %s", f)
	}
	if len(raw) < size {
		return 0, fmt.Errorf("sample buffer too short: %d bytes for one sample of %s", len(raw), f)
	}
	return f.decodeOne(raw), nil
}

// EncodeSample encodes a single sample at the start of raw.
func (f Format) EncodeSample(s float32, raw []byte) error {
	size := f.Size()
	if size == 0 {
		return fmt.Errorf("cannot encode sample: %s", f)
	}
	if len(raw) < size {
		return fmt.Errorf("raw buffer too short: %d bytes for one sample of %s", len(raw), f)
	}
	f.encodeOne(s, raw)
	return nil
}

func (f Format) decodeOne(raw []byte) float32 {
	switch f {
	case IBMFloat:
		return ibmToFloat(binary.BigEndian.Uint32(raw))
	case Int32:
		return float32(int32(binary.BigEndian.Uint32(raw)))
	case Int16:
		return float32(int16(binary.BigEndian.Uint16(raw)))
	case IEEEFloat:
		return math.Float32frombits(binary.BigEndian.Uint32(raw))
	case Int8:
		return float32(int8(raw[0]))
	}
	return 0
}

func (f Format) encodeOne(s float32, raw []byte) {
	switch f {
	case IBMFloat:
		binary.BigEndian.PutUint32(raw, floatToIBM(s))
	case Int32:
		binary.BigEndian.PutUint32(raw, uint32(int32(s)))
	case Int16:
		binary.BigEndian.PutUint16(raw, uint16(int16(s)))
	case IEEEFloat:
		binary.BigEndian.PutUint32(raw, math.Float32bits(s))
	case Int8:
		raw[0] = byte(int8(s))
	}
}
