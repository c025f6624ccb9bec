package vtf

import "fmt"

// ImageFormat identifies the pixel encoding of image data in a VTF container.
// Values match the enum stored in the file.
type ImageFormat int32

const (
	IMAGE_FORMAT_NONE              ImageFormat = -1
	IMAGE_FORMAT_RGBA8888          ImageFormat = 0
	IMAGE_FORMAT_ABGR8888          ImageFormat = 1
	IMAGE_FORMAT_RGB888            ImageFormat = 2
	IMAGE_FORMAT_BGR888            ImageFormat = 3
	IMAGE_FORMAT_RGB565            ImageFormat = 4
	IMAGE_FORMAT_I8                ImageFormat = 5
	IMAGE_FORMAT_IA88              ImageFormat = 6
	IMAGE_FORMAT_P8                ImageFormat = 7
	IMAGE_FORMAT_A8                ImageFormat = 8
	IMAGE_FORMAT_RGB888_BLUESCREEN ImageFormat = 9
	IMAGE_FORMAT_BGR888_BLUESCREEN ImageFormat = 10
	IMAGE_FORMAT_ARGB8888          ImageFormat = 11
	IMAGE_FORMAT_BGRA8888          ImageFormat = 12
	IMAGE_FORMAT_DXT1              ImageFormat = 13
	IMAGE_FORMAT_DXT3              ImageFormat = 14
	IMAGE_FORMAT_DXT5              ImageFormat = 15
	IMAGE_FORMAT_BGRX8888          ImageFormat = 16
	IMAGE_FORMAT_BGR565            ImageFormat = 17
	IMAGE_FORMAT_BGRX5551          ImageFormat = 18
	IMAGE_FORMAT_BGRA4444          ImageFormat = 19
	IMAGE_FORMAT_DXT1_ONEBITALPHA  ImageFormat = 20
	IMAGE_FORMAT_BGRA5551          ImageFormat = 21
	IMAGE_FORMAT_UV88              ImageFormat = 22
	IMAGE_FORMAT_UVWQ8888          ImageFormat = 23
	IMAGE_FORMAT_RGBA16161616F     ImageFormat = 24
	IMAGE_FORMAT_RGBA16161616      ImageFormat = 25
	IMAGE_FORMAT_UVLX8888          ImageFormat = 26
)

// String returns the canonical engine name for the format.
func (f ImageFormat) String() string {
	switch f {
	case IMAGE_FORMAT_NONE:
		return "NONE"
	case IMAGE_FORMAT_RGBA8888:
		return "RGBA8888"
	case IMAGE_FORMAT_ABGR8888:
		return "ABGR8888"
	case IMAGE_FORMAT_RGB888:
		return "RGB888"
	case IMAGE_FORMAT_BGR888:
		return "BGR888"
	case IMAGE_FORMAT_RGB565:
		return "RGB565"
	case IMAGE_FORMAT_I8:
		return "I8"
	case IMAGE_FORMAT_IA88:
		return "IA88"
	case IMAGE_FORMAT_P8:
		return "P8"
	case IMAGE_FORMAT_A8:
		return "A8"
	case IMAGE_FORMAT_RGB888_BLUESCREEN:
		return "RGB888_BLUESCREEN"
	case IMAGE_FORMAT_BGR888_BLUESCREEN:
		return "BGR888_BLUESCREEN"
	case IMAGE_FORMAT_ARGB8888:
		return "ARGB8888"
	case IMAGE_FORMAT_BGRA8888:
		return "BGRA8888"
	case IMAGE_FORMAT_DXT1:
		return "DXT1"
	case IMAGE_FORMAT_DXT3:
		return "DXT3"
	case IMAGE_FORMAT_DXT5:
		return "DXT5"
	case IMAGE_FORMAT_BGRX8888:
		return "BGRX8888"
	case IMAGE_FORMAT_BGR565:
		return "BGR565"
	case IMAGE_FORMAT_BGRX5551:
		return "BGRX5551"
	case IMAGE_FORMAT_BGRA4444:
		return "BGRA4444"
	case IMAGE_FORMAT_DXT1_ONEBITALPHA:
		return "DXT1_ONEBITALPHA"
	case IMAGE_FORMAT_BGRA5551:
		return "BGRA5551"
	case IMAGE_FORMAT_UV88:
		return "UV88"
	case IMAGE_FORMAT_UVWQ8888:
		return "UVWQ8888"
	case IMAGE_FORMAT_RGBA16161616F:
		return "RGBA16161616F"
	case IMAGE_FORMAT_RGBA16161616:
		return "RGBA16161616"
	case IMAGE_FORMAT_UVLX8888:
		return "UVLX8888"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int32(f))
	}
}

// IsCompressed reports whether the format is 4x4 block compressed.
func (f ImageFormat) IsCompressed() bool {
	switch f {
	case IMAGE_FORMAT_DXT1, IMAGE_FORMAT_DXT1_ONEBITALPHA, IMAGE_FORMAT_DXT3, IMAGE_FORMAT_DXT5:
		return true
	}
	return false
}

// blockBytes returns the encoded size of one 4x4 block.
func (f ImageFormat) blockBytes() uint32 {
	switch f {
	case IMAGE_FORMAT_DXT1, IMAGE_FORMAT_DXT1_ONEBITALPHA:
		return 8
	default:
		return 16
	}
}

// bytesPerPixel returns the encoded size of one pixel for uncompressed
// formats. Unknown formats are assumed to be 4 bytes per pixel so that
// forward-compatible format codes never break offset math.
func (f ImageFormat) bytesPerPixel() uint32 {
	switch f {
	case IMAGE_FORMAT_I8, IMAGE_FORMAT_P8, IMAGE_FORMAT_A8:
		return 1
	case IMAGE_FORMAT_RGB565, IMAGE_FORMAT_IA88, IMAGE_FORMAT_BGR565,
		IMAGE_FORMAT_BGRX5551, IMAGE_FORMAT_BGRA4444, IMAGE_FORMAT_BGRA5551,
		IMAGE_FORMAT_UV88:
		return 2
	case IMAGE_FORMAT_RGB888, IMAGE_FORMAT_BGR888,
		IMAGE_FORMAT_RGB888_BLUESCREEN, IMAGE_FORMAT_BGR888_BLUESCREEN:
		return 3
	case IMAGE_FORMAT_RGBA16161616F, IMAGE_FORMAT_RGBA16161616:
		return 8
	default:
		return 4
	}
}

// EncodedSize returns the byte length of an encoded width x height image in
// the given format. Block-compressed dimensions are padded up to the 4x4
// block grid before the block count is taken.
func EncodedSize(format ImageFormat, width, height uint32) uint32 {
	if format.IsCompressed() {
		if width < 4 {
			width = 4
		}
		if height < 4 {
			height = 4
		}
		blocksWide := (width + 3) / 4
		blocksHigh := (height + 3) / 4
		return blocksWide * blocksHigh * format.blockBytes()
	}
	return width * height * format.bytesPerPixel()
}
