package vtf

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Signature is the VTF magic "VTF\0" read as a little-endian uint32.
const Signature = 0x00465456

// MinHeaderSize is the smallest buffer that can hold every fixed header field
// read here, through version 7.2.
const MinHeaderSize = 80

// Header is the fixed portion of a VTF container header.
type Header struct {
	Signature     uint32
	VersionMajor  uint32
	VersionMinor  uint32
	HeaderSize    uint32 // offset where image data begins (header + resources)
	Width         uint16
	Height        uint16
	Flags         uint32 // opaque bit flags, forwarded untouched
	FrameCount    uint16
	FirstFrame    uint16
	Reflectivity  [3]float32
	BumpScale     float32
	HighResFormat ImageFormat
	MipCount      uint8
	LowResFormat  ImageFormat
	LowResWidth   uint8
	LowResHeight  uint8
	Depth         uint16 // volume depth, 1 unless version >= 7.2
	ResourceCount uint32 // resource dictionary entries, version >= 7.3
}

// VersionAtLeast reports whether the container version is at least
// major.minor, comparing the pair in order.
func (h *Header) VersionAtLeast(major, minor uint32) bool {
	if h.VersionMajor != major {
		return h.VersionMajor > major
	}
	return h.VersionMinor >= minor
}

// DecodeFrom reads the header from the given buffer, which must be at least
// MinHeaderSize bytes. Does not validate - use Validate afterwards.
func (h *Header) DecodeFrom(data []byte) {
	h.Signature = binary.LittleEndian.Uint32(data[0:4])
	h.VersionMajor = binary.LittleEndian.Uint32(data[4:8])
	h.VersionMinor = binary.LittleEndian.Uint32(data[8:12])
	h.HeaderSize = binary.LittleEndian.Uint32(data[12:16])
	h.Width = binary.LittleEndian.Uint16(data[16:18])
	h.Height = binary.LittleEndian.Uint16(data[18:20])
	h.Flags = binary.LittleEndian.Uint32(data[20:24])
	h.FrameCount = binary.LittleEndian.Uint16(data[24:26])
	h.FirstFrame = binary.LittleEndian.Uint16(data[26:28])
	// 4 bytes of padding at 28
	h.Reflectivity[0] = math.Float32frombits(binary.LittleEndian.Uint32(data[32:36]))
	h.Reflectivity[1] = math.Float32frombits(binary.LittleEndian.Uint32(data[36:40]))
	h.Reflectivity[2] = math.Float32frombits(binary.LittleEndian.Uint32(data[40:44]))
	// 4 bytes of padding at 44
	h.BumpScale = math.Float32frombits(binary.LittleEndian.Uint32(data[48:52]))
	h.HighResFormat = ImageFormat(int32(binary.LittleEndian.Uint32(data[52:56])))
	h.MipCount = data[56]
	h.LowResFormat = ImageFormat(int32(binary.LittleEndian.Uint32(data[57:61])))
	h.LowResWidth = data[61]
	h.LowResHeight = data[62]

	h.Depth = 1
	if h.VersionAtLeast(7, 2) {
		h.Depth = binary.LittleEndian.Uint16(data[63:65])
	}

	h.ResourceCount = 0
	if h.VersionAtLeast(7, 3) {
		h.ResourceCount = binary.LittleEndian.Uint32(data[68:72])
	}
}

// fixedSize returns the byte length of the fixed header fields for the
// declared version.
func (h *Header) fixedSize() uint32 {
	switch {
	case h.VersionAtLeast(7, 3):
		return 80
	case h.VersionAtLeast(7, 2):
		return 65
	default:
		return 63
	}
}

// Validate checks the header for structural validity.
func (h *Header) Validate() error {
	if h.Signature != Signature {
		return fmt.Errorf("%w: 0x%08x", ErrInvalidSignature, h.Signature)
	}
	if h.Width == 0 || h.Height == 0 {
		return fmt.Errorf("invalid dimensions %dx%d", h.Width, h.Height)
	}
	if h.MipCount < 1 {
		return fmt.Errorf("invalid mip count %d", h.MipCount)
	}
	if fixed := h.fixedSize(); h.HeaderSize < fixed {
		return fmt.Errorf("%w: header size %d below fixed size %d", ErrTooShort, h.HeaderSize, fixed)
	}
	return nil
}

// String returns a human-readable summary.
func (h *Header) String() string {
	return fmt.Sprintf("VTF %d.%d: %dx%d, format=%s, mips=%d, frames=%d",
		h.VersionMajor, h.VersionMinor, h.Width, h.Height,
		h.HighResFormat, h.MipCount, h.FrameCount)
}
