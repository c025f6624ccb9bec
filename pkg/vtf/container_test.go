package vtf

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

// testHeader builds an 80-byte 7.2 header with no thumbnail.
func testHeader(width, height uint16, format ImageFormat, mipCount uint8, frameCount uint16) []byte {
	h := make([]byte, MinHeaderSize)
	binary.LittleEndian.PutUint32(h[0:], Signature)
	binary.LittleEndian.PutUint32(h[4:], 7)
	binary.LittleEndian.PutUint32(h[8:], 2)
	binary.LittleEndian.PutUint32(h[12:], MinHeaderSize)
	binary.LittleEndian.PutUint16(h[16:], width)
	binary.LittleEndian.PutUint16(h[18:], height)
	binary.LittleEndian.PutUint16(h[24:], frameCount)
	binary.LittleEndian.PutUint32(h[52:], uint32(int32(format)))
	h[56] = mipCount
	lowResFormat := int32(IMAGE_FORMAT_NONE)
	binary.LittleEndian.PutUint32(h[57:], uint32(lowResFormat))
	binary.LittleEndian.PutUint16(h[63:], 1) // depth
	return h
}

func TestParseHeader(t *testing.T) {
	data := testHeader(8, 4, IMAGE_FORMAT_RGBA8888, 1, 1)
	data = append(data, make([]byte, 8*4*4)...)

	c, err := Parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if c.VersionMajor != 7 || c.VersionMinor != 2 {
		t.Errorf("expected version 7.2, got %d.%d", c.VersionMajor, c.VersionMinor)
	}
	if c.Width != 8 || c.Height != 4 {
		t.Errorf("expected 8x4, got %dx%d", c.Width, c.Height)
	}
	if c.HighResFormat != IMAGE_FORMAT_RGBA8888 {
		t.Errorf("expected RGBA8888, got %s", c.HighResFormat)
	}
	if c.MipCount != 1 {
		t.Errorf("expected 1 mip, got %d", c.MipCount)
	}
	if c.Depth != 1 {
		t.Errorf("expected depth 1, got %d", c.Depth)
	}
	if c.LowResFormat != IMAGE_FORMAT_NONE {
		t.Errorf("expected no thumbnail format, got %s", c.LowResFormat)
	}
}

func TestParseErrors(t *testing.T) {
	t.Run("TooShort", func(t *testing.T) {
		_, err := Parse(make([]byte, 40))
		if !errors.Is(err, ErrTooShort) {
			t.Errorf("expected ErrTooShort, got %v", err)
		}
	})

	t.Run("InvalidSignature", func(t *testing.T) {
		data := testHeader(4, 4, IMAGE_FORMAT_RGBA8888, 1, 1)
		binary.LittleEndian.PutUint32(data[0:], 0x20534444) // "DDS "
		_, err := Parse(data)
		if !errors.Is(err, ErrInvalidSignature) {
			t.Errorf("expected ErrInvalidSignature, got %v", err)
		}
	})

	t.Run("TruncatedMipData", func(t *testing.T) {
		// Declares a 16x16 RGBA image but carries only the header.
		data := testHeader(16, 16, IMAGE_FORMAT_RGBA8888, 1, 1)
		_, err := Parse(data)
		if !errors.Is(err, ErrTruncated) {
			t.Errorf("expected ErrTruncated, got %v", err)
		}
	})

	t.Run("HeaderSizeBelowFixed", func(t *testing.T) {
		data := testHeader(4, 4, IMAGE_FORMAT_RGBA8888, 1, 1)
		binary.LittleEndian.PutUint32(data[12:], 32)
		data = append(data, make([]byte, 64)...)
		_, err := Parse(data)
		if !errors.Is(err, ErrTooShort) {
			t.Errorf("expected ErrTooShort, got %v", err)
		}
	})
}

func TestMipRanges(t *testing.T) {
	// 16x16 DXT1, 3 mips: level sizes 128, 32, 8.
	header := testHeader(16, 16, IMAGE_FORMAT_DXT1, 3, 1)
	data := append(header, make([]byte, 128+32+8)...)

	c, err := Parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	mips := c.Mips()
	if len(mips) != 3 {
		t.Fatalf("expected 3 mips, got %d", len(mips))
	}

	// Level 0 ends exactly at file length minus the two smaller levels.
	if end := mips[0].Offset + mips[0].Length; end != len(data)-(32+8) {
		t.Errorf("level 0 end: expected %d, got %d", len(data)-(32+8), end)
	}

	// Ranges are contiguous and non-overlapping, level 0 deepest.
	for i := 1; i < len(mips); i++ {
		if mips[i].Offset != mips[i-1].Offset+mips[i-1].Length {
			t.Errorf("level %d offset %d not contiguous with level %d end %d",
				i, mips[i].Offset, i-1, mips[i-1].Offset+mips[i-1].Length)
		}
	}
	if last := mips[2]; last.Offset+last.Length != len(data) {
		t.Errorf("smallest level should end at file end, got %d", last.Offset+last.Length)
	}

	wantDims := []struct{ w, h uint32 }{{16, 16}, {8, 8}, {4, 4}}
	for i, m := range mips {
		if m.Width != wantDims[i].w || m.Height != wantDims[i].h {
			t.Errorf("level %d: expected %dx%d, got %dx%d",
				i, wantDims[i].w, wantDims[i].h, m.Width, m.Height)
		}
	}
}

func TestMipDimClamp(t *testing.T) {
	// 8x2, 4 mips: narrow dimension clamps at 1.
	header := testHeader(8, 2, IMAGE_FORMAT_RGBA8888, 4, 1)
	total := (8*2 + 4*1 + 2*1 + 1*1) * 4
	data := append(header, make([]byte, total)...)

	c, err := Parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	wantDims := []struct{ w, h uint32 }{{8, 2}, {4, 1}, {2, 1}, {1, 1}}
	for i, m := range c.Mips() {
		if m.Width != wantDims[i].w || m.Height != wantDims[i].h {
			t.Errorf("level %d: expected %dx%d, got %dx%d",
				i, wantDims[i].w, wantDims[i].h, m.Width, m.Height)
		}
	}
}

func TestFrames(t *testing.T) {
	header := testHeader(2, 2, IMAGE_FORMAT_RGBA8888, 1, 2)
	frame0 := bytes.Repeat([]byte{10, 20, 30, 40}, 4)
	frame1 := bytes.Repeat([]byte{50, 60, 70, 80}, 4)
	data := append(header, frame0...)
	data = append(data, frame1...)

	c, err := Parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if got := c.Mips()[0].Length; got != 32 {
		t.Fatalf("mip range should span both frames, got %d", got)
	}

	raw, err := c.MipBytes(0, 1)
	if err != nil {
		t.Fatalf("mip bytes: %v", err)
	}
	if !bytes.Equal(raw, frame1) {
		t.Errorf("frame 1 bytes mismatch: got %v", raw)
	}

	rgba, err := c.DecodeRGBA(0, 1)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(rgba, frame1) {
		t.Errorf("decoded frame 1 mismatch: got %v", rgba)
	}

	if _, err := c.MipBytes(0, 2); !errors.Is(err, ErrFrameOutOfRange) {
		t.Errorf("expected ErrFrameOutOfRange, got %v", err)
	}
	if _, err := c.DecodeRGBA(1, 0); !errors.Is(err, ErrLevelOutOfRange) {
		t.Errorf("expected ErrLevelOutOfRange, got %v", err)
	}
}

func TestLargestMipBytes(t *testing.T) {
	header := testHeader(4, 4, IMAGE_FORMAT_I8, 2, 1)
	level1 := bytes.Repeat([]byte{7}, 4)
	level0 := bytes.Repeat([]byte{9}, 16)
	data := append(header, level0...)
	data = append(data, level1...)

	c, err := Parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if got := c.LargestMipBytes(); !bytes.Equal(got, level0) {
		t.Errorf("largest mip mismatch: got %v", got)
	}
}

func TestThumbnail(t *testing.T) {
	header := testHeader(2, 2, IMAGE_FORMAT_RGBA8888, 1, 1)
	binary.LittleEndian.PutUint32(header[57:], uint32(int32(IMAGE_FORMAT_I8)))
	header[61] = 2 // low res width
	header[62] = 2 // low res height

	thumb := []byte{11, 22, 33, 44}
	mip := make([]byte, 16)
	data := append(header, thumb...)
	data = append(data, mip...)

	c, err := Parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	rgba, err := c.Thumbnail(WithBottomUp())
	if err != nil {
		t.Fatalf("thumbnail: %v", err)
	}
	if len(rgba) != 2*2*4 {
		t.Fatalf("expected 16 bytes, got %d", len(rgba))
	}
	for i, want := range thumb {
		if rgba[i*4] != want || rgba[i*4+1] != want || rgba[i*4+2] != want || rgba[i*4+3] != 255 {
			t.Errorf("texel %d: expected luminance %d, got %v", i, want, rgba[i*4:i*4+4])
		}
	}
}

func TestNoThumbnail(t *testing.T) {
	data := testHeader(2, 2, IMAGE_FORMAT_RGBA8888, 1, 1)
	data = append(data, make([]byte, 16)...)

	c, err := Parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := c.Thumbnail(); !errors.Is(err, ErrNoThumbnail) {
		t.Errorf("expected ErrNoThumbnail, got %v", err)
	}
}

func TestResources(t *testing.T) {
	// 7.3 container: header + 2 resource entries, thumbnail located through
	// its resource entry rather than the sequential offset.
	header := testHeader(2, 2, IMAGE_FORMAT_RGBA8888, 1, 1)
	binary.LittleEndian.PutUint32(header[8:], 3)       // minor version
	binary.LittleEndian.PutUint32(header[12:], 96)     // header size incl. dictionary
	binary.LittleEndian.PutUint32(header[57:], uint32(int32(IMAGE_FORMAT_I8)))
	header[61] = 2
	header[62] = 2
	binary.LittleEndian.PutUint32(header[68:], 2) // resource count

	entries := make([]byte, 16)
	copy(entries[0:3], TagThumbnail[:])
	binary.LittleEndian.PutUint32(entries[4:], 96) // thumbnail data offset
	copy(entries[8:11], TagCRC[:])
	entries[11] = ResourceFlagNoData
	binary.LittleEndian.PutUint32(entries[12:], 0xdeadbeef)

	thumb := []byte{1, 2, 3, 4}
	mip := make([]byte, 16)
	data := append(header, entries...)
	data = append(data, thumb...)
	data = append(data, mip...)

	c, err := Parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if len(c.Resources) != 2 {
		t.Fatalf("expected 2 resources, got %d", len(c.Resources))
	}
	if r, ok := c.ResourceByTag(TagCRC); !ok || r.Offset != 0xdeadbeef || r.Flags != ResourceFlagNoData {
		t.Errorf("crc resource mismatch: %+v ok=%v", r, ok)
	}

	rgba, err := c.Thumbnail(WithBottomUp())
	if err != nil {
		t.Fatalf("thumbnail: %v", err)
	}
	for i, want := range thumb {
		if rgba[i*4] != want {
			t.Errorf("texel %d: expected %d, got %d", i, want, rgba[i*4])
		}
	}
}

func TestEndToEndDXT5(t *testing.T) {
	// 8x8 single-mip DXT5: four identical blocks of one solid color+alpha.
	// c0 = 0xF800 (pure red in 5-6-5), all color indices 0; a0 = 200 with
	// a0 > a1 and all alpha indices 0.
	block := make([]byte, 16)
	block[0] = 200 // a0
	block[1] = 100 // a1
	binary.LittleEndian.PutUint16(block[8:], 0xF800)  // c0
	binary.LittleEndian.PutUint16(block[10:], 0x0000) // c1

	header := testHeader(8, 8, IMAGE_FORMAT_DXT5, 1, 1)
	data := header
	for i := 0; i < 4; i++ {
		data = append(data, block...)
	}
	if want := int(EncodedSize(IMAGE_FORMAT_DXT5, 8, 8)); len(data)-MinHeaderSize != want {
		t.Fatalf("test data: expected %d image bytes, got %d", want, len(data)-MinHeaderSize)
	}

	c, err := Parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	rgba, err := c.DecodeRGBA(0, 0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(rgba) != 8*8*4 {
		t.Fatalf("expected %d bytes, got %d", 8*8*4, len(rgba))
	}
	for i := 0; i < len(rgba); i += 4 {
		if rgba[i] != 255 || rgba[i+1] != 0 || rgba[i+2] != 0 || rgba[i+3] != 200 {
			t.Fatalf("pixel %d: expected (255,0,0,200), got %v", i/4, rgba[i:i+4])
		}
	}
}

func TestParseDoesNotMutateInput(t *testing.T) {
	header := testHeader(2, 2, IMAGE_FORMAT_RGBA8888, 1, 1)
	data := append(header, bytes.Repeat([]byte{5}, 16)...)
	snapshot := append([]byte(nil), data...)

	c, err := Parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := c.DecodeRGBA(0, 0); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if !bytes.Equal(data, snapshot) {
		t.Error("input bytes were mutated")
	}
}
