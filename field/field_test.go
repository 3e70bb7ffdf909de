package field

import "testing"

func TestGetPutTraceHeader(t *testing.T) {
	buf := make([]byte, TraceHeaderSize)

	cases := []struct {
		tag Tag
		val int
	}{
		{Inline, 401},
		{Crossline, 22},
		{Offset, -150},
		{TraceIdentification, 1},
		{SourceX, 431344},
		{ElevationScalar, -100},
	}

	for _, c := range cases {
		if err := Put(buf, c.tag, c.val); err != nil {
			t.Fatalf("Put(%d): %v", int(c.tag), err)
		}
	}
	for _, c := range cases {
		got, err := Get(buf, c.tag)
		if err != nil {
			t.Fatalf("Get(%d): %v", int(c.tag), err)
		}
		if got != c.val {
			t.Errorf("field %d: got %d, want %d", int(c.tag), got, c.val)
		}
	}
}

func TestGetPutBinaryHeader(t *testing.T) {
	buf := make([]byte, BinHeaderSize)

	if err := Put(buf, BinSamples, 1251); err != nil {
		t.Fatal(err)
	}
	if err := Put(buf, BinFormat, 5); err != nil {
		t.Fatal(err)
	}
	if err := Put(buf, BinExtendedHeaders, 2); err != nil {
		t.Fatal(err)
	}

	// Binary header tags address the 400-byte buffer relative to 3201.
	if buf[3220-BinBase] != 0x04 || buf[3221-BinBase] != 0xe3 {
		t.Errorf("BinSamples not written at standard position: % x", buf[18:24])
	}

	got, err := Get(buf, BinFormat)
	if err != nil {
		t.Fatal(err)
	}
	if got != 5 {
		t.Errorf("BinFormat: got %d, want 5", got)
	}
}

func TestUnknownTag(t *testing.T) {
	buf := make([]byte, TraceHeaderSize)
	if _, err := Get(buf, Tag(2)); err == nil {
		t.Error("expected error for unknown field position")
	}
	if err := Put(buf, Tag(240), 1); err == nil {
		t.Error("expected error for unknown field position")
	}
}

func TestSignExtension(t *testing.T) {
	buf := make([]byte, TraceHeaderSize)
	if err := Put(buf, ElevationScalar, -1); err != nil {
		t.Fatal(err)
	}
	got, err := Get(buf, ElevationScalar)
	if err != nil {
		t.Fatal(err)
	}
	if got != -1 {
		t.Errorf("2-byte field: got %d, want -1", got)
	}
}
