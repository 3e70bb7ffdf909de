package format

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestIBMKnownValues(t *testing.T) {
	// Classic reference patterns for IBM hexadecimal float.
	cases := []struct {
		bits uint32
		want float32
	}{
		{0x00000000, 0},
		{0x41100000, 1},
		{0x42640000, 100},
		{0xc276a000, -118.625},
		{0x40800000, 0.5},
	}

	for _, c := range cases {
		if got := ibmToFloat(c.bits); got != c.want {
			t.Errorf("ibmToFloat(%#08x): got %v, want %v", c.bits, got, c.want)
		}
		if got := floatToIBM(c.want); got != c.bits && c.want != 0 {
			t.Errorf("floatToIBM(%v): got %#08x, want %#08x", c.want, got, c.bits)
		}
	}
}

func TestIBMRoundTrip(t *testing.T) {
	values := []float32{0, 1, -1, 0.5, 2, 1024, -118.625, 0.015625, 3.25}
	for _, v := range values {
		got := ibmToFloat(floatToIBM(v))
		if got != v {
			t.Errorf("round trip %v: got %v", v, got)
		}
	}
}

func TestDecodeEncodeSamples(t *testing.T) {
	for _, f := range []Format{IBMFloat, Int32, Int16, IEEEFloat, Int8} {
		samples := []float32{0, 1, -1, 100, -42}
		raw := make([]byte, len(samples)*f.Size())
		if err := f.EncodeSamples(samples, raw); err != nil {
			t.Fatalf("%s: encode: %v", f, err)
		}
		out := make([]float32, len(samples))
		if err := f.DecodeSamples(raw, out); err != nil {
			t.Fatalf("%s: decode: %v", f, err)
		}
		for i := range samples {
			if out[i] != samples[i] {
				t.Errorf("%s: sample %d: got %v, want %v", f, i, out[i], samples[i])
			}
		}
	}
}

func TestIEEEBitExact(t *testing.T) {
	raw := make([]byte, 4)
	if err := IEEEFloat.EncodeSamples([]float32{float32(math.Pi)}, raw); err != nil {
		t.Fatal(err)
	}
	if got := binary.BigEndian.Uint32(raw); got != math.Float32bits(float32(math.Pi)) {
		t.Errorf("IEEE encoding not bit-exact: %#08x", got)
	}
}

func TestUnknownFormat(t *testing.T) {
	f := Format(4)
	if f.Supported() {
		t.Error("format 4 should be unsupported")
	}
	if err := f.DecodeSamples(make([]byte, 8), make([]float32, 2)); err == nil {
		t.Error("expected decode error for format 4")
	}
}

func TestTextRoundTrip(t *testing.T) {
	text := "C 1 CLIENT ACME AREA 51 Xline 10-20"
	raw := EncodeText(text, 80)
	if len(raw) != 80 {
		t.Fatalf("encoded length %d, want 80", len(raw))
	}
	got := DecodeText(raw)
	if got[:len(text)] != text {
		t.Errorf("round trip: got %q", got[:len(text)])
	}
	for i := len(text); i < 80; i++ {
		if got[i] != ' ' {
			t.Errorf("padding at %d not space", i)
		}
	}
}
