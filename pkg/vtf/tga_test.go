package vtf

import (
	"bytes"
	"testing"
)

func TestWriteTGA(t *testing.T) {
	rgba := []byte{
		10, 20, 30, 40,
		50, 60, 70, 80,
	}

	var buf bytes.Buffer
	if err := WriteTGA(&buf, 2, 1, rgba); err != nil {
		t.Fatalf("write: %v", err)
	}

	data := buf.Bytes()
	if len(data) != 18+len(rgba) {
		t.Fatalf("expected %d bytes, got %d", 18+len(rgba), len(data))
	}

	if data[2] != 2 {
		t.Errorf("expected image type 2, got %d", data[2])
	}
	if w := int(data[12]) | int(data[13])<<8; w != 2 {
		t.Errorf("expected width 2, got %d", w)
	}
	if h := int(data[14]) | int(data[15])<<8; h != 1 {
		t.Errorf("expected height 1, got %d", h)
	}
	if data[16] != 32 {
		t.Errorf("expected 32 bpp, got %d", data[16])
	}
	if data[17] != 0x28 {
		t.Errorf("expected descriptor 0x28, got 0x%02x", data[17])
	}

	// Pixels are stored BGRA.
	want := []byte{30, 20, 10, 40, 70, 60, 50, 80}
	if !bytes.Equal(data[18:], want) {
		t.Errorf("expected pixels %v, got %v", want, data[18:])
	}
}

func TestWriteTGASizeMismatch(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTGA(&buf, 2, 2, make([]byte, 10)); err == nil {
		t.Error("expected error for mismatched buffer length")
	}
}
