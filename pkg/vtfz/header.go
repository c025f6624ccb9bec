// Package vtfz wraps a single VTF payload in a framed zstd stream so large
// textures can be stored compressed and loaded transparently.
package vtfz

import (
	"encoding/binary"
	"fmt"
)

// Magic bytes identifying a vtfz bundle.
var Magic = [4]byte{'V', 'T', 'F', 'Z'}

// FormatVersion is the current bundle format version.
const FormatVersion = 1

// HeaderSize is the fixed binary size of a bundle header.
const HeaderSize = 24 // 4 + 4 + 8 + 8 bytes

// Header is the fixed header preceding the zstd stream.
type Header struct {
	Magic            [4]byte
	Version          uint32
	Length           uint64 // uncompressed payload size
	CompressedLength uint64 // compressed stream size
}

// Size returns the binary size of the header.
func (h *Header) Size() int {
	return HeaderSize
}

// Validate checks the header for validity.
func (h *Header) Validate() error {
	if h.Magic != Magic {
		return fmt.Errorf("invalid magic: expected %x, got %x", Magic, h.Magic)
	}
	if h.Version != FormatVersion {
		return fmt.Errorf("unsupported bundle version: %d", h.Version)
	}
	if h.Length == 0 {
		return fmt.Errorf("uncompressed size is zero")
	}
	if h.CompressedLength == 0 {
		return fmt.Errorf("compressed size is zero")
	}
	return nil
}

// MarshalBinary encodes the header to binary format.
func (h *Header) MarshalBinary() ([]byte, error) {
	buf := make([]byte, HeaderSize)
	h.EncodeTo(buf)
	return buf, nil
}

// EncodeTo writes the header to the given buffer.
// The buffer must be at least HeaderSize bytes.
func (h *Header) EncodeTo(buf []byte) {
	copy(buf[0:4], h.Magic[:])
	binary.LittleEndian.PutUint32(buf[4:8], h.Version)
	binary.LittleEndian.PutUint64(buf[8:16], h.Length)
	binary.LittleEndian.PutUint64(buf[16:24], h.CompressedLength)
}

// UnmarshalBinary decodes and validates the header from binary format.
func (h *Header) UnmarshalBinary(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("header data too short: need %d, got %d", HeaderSize, len(data))
	}
	h.DecodeFrom(data)
	return h.Validate()
}

// DecodeFrom reads the header from the given buffer.
// Does not validate - use UnmarshalBinary for validation.
func (h *Header) DecodeFrom(data []byte) {
	copy(h.Magic[:], data[0:4])
	h.Version = binary.LittleEndian.Uint32(data[4:8])
	h.Length = binary.LittleEndian.Uint64(data[8:16])
	h.CompressedLength = binary.LittleEndian.Uint64(data[16:24])
}

// NewHeader creates a bundle header with the given sizes.
func NewHeader(uncompressedSize, compressedSize uint64) *Header {
	return &Header{
		Magic:            Magic,
		Version:          FormatVersion,
		Length:           uncompressedSize,
		CompressedLength: compressedSize,
	}
}

// IsBundle reports whether data begins with the bundle magic.
func IsBundle(data []byte) bool {
	return len(data) >= 4 && [4]byte(data[0:4]) == Magic
}
