package vtf

import "errors"

var (
	// ErrInvalidSignature indicates the data does not start with the VTF magic.
	ErrInvalidSignature = errors.New("invalid vtf signature")

	// ErrTooShort indicates the buffer cannot hold the fixed header.
	ErrTooShort = errors.New("vtf data too short")

	// ErrTruncated indicates the file is too small for its declared mip levels.
	ErrTruncated = errors.New("vtf file truncated")

	// ErrUnsupportedFormat indicates an image format outside the decodable set.
	// Only returned in strict mode; the default decode falls back to gray fill.
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrShortPixelData indicates pixel data shorter than the format requires.
	// Only returned in strict mode; the default decode zero-fills the tail.
	ErrShortPixelData = errors.New("short pixel data")

	// ErrLevelOutOfRange indicates a mip level at or beyond the mip count.
	ErrLevelOutOfRange = errors.New("mip level out of range")

	// ErrFrameOutOfRange indicates a frame at or beyond the frame count.
	ErrFrameOutOfRange = errors.New("frame out of range")

	// ErrNoThumbnail indicates the container carries no low-res thumbnail.
	ErrNoThumbnail = errors.New("no thumbnail")
)
