package vtf

import "fmt"

// DecodeOption configures Decode.
type DecodeOption func(*decodeConfig)

type decodeConfig struct {
	strict   bool
	bottomUp bool
}

// WithStrict makes Decode fail on unsupported formats and short pixel data
// instead of falling back to gray or zero fill.
func WithStrict() DecodeOption {
	return func(c *decodeConfig) { c.strict = true }
}

// WithBottomUp keeps the container's native bottom-to-top row order instead
// of flipping to a top-left origin.
func WithBottomUp() DecodeOption {
	return func(c *decodeConfig) { c.bottomUp = true }
}

// decoder writes decoded texels into a shared RGBA output buffer, flipping
// rows while writing when flip is set.
type decoder struct {
	out    []byte
	width  int
	height int
	flip   bool
}

func (d *decoder) setPixel(x, y int, r, g, b, a byte) {
	if d.flip {
		y = d.height - 1 - y
	}
	off := (y*d.width + x) * 4
	d.out[off] = r
	d.out[off+1] = g
	d.out[off+2] = b
	d.out[off+3] = a
}

// eachPixel decodes fixed-size pixels through fn, stopping at the last whole
// pixel the input can supply.
func (d *decoder) eachPixel(raw []byte, bpp int, fn func(px []byte) (r, g, b, a byte)) {
	n := d.width * d.height
	if avail := len(raw) / bpp; avail < n {
		n = avail
	}
	for i := 0; i < n; i++ {
		r, g, b, a := fn(raw[i*bpp : i*bpp+bpp])
		d.setPixel(i%d.width, i/d.width, r, g, b, a)
	}
}

// Decode converts raw pixel data in the given format into an RGBA8888 buffer
// of length width*height*4. The container stores rows bottom to top; the
// returned buffer is top-left origin unless WithBottomUp is set.
//
// By default decoding is lenient: an unknown format fills the buffer with
// neutral gray (128,128,128,255) and input shorter than the format requires
// leaves the missing tail zeroed, so callers always receive a buffer of the
// expected size. WithStrict turns both cases into errors.
func Decode(format ImageFormat, raw []byte, width, height uint32, opts ...DecodeOption) ([]byte, error) {
	var cfg decodeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	w, h := int(width), int(height)
	out := make([]byte, w*h*4)
	if w == 0 || h == 0 {
		return out, nil
	}

	if cfg.strict {
		if need := int(EncodedSize(format, width, height)); len(raw) < need {
			return nil, fmt.Errorf("%w: have %d, need %d", ErrShortPixelData, len(raw), need)
		}
	}

	d := &decoder{out: out, width: w, height: h, flip: !cfg.bottomUp}

	switch format {
	case IMAGE_FORMAT_RGBA8888:
		d.eachPixel(raw, 4, func(px []byte) (byte, byte, byte, byte) {
			return px[0], px[1], px[2], px[3]
		})
	case IMAGE_FORMAT_ABGR8888:
		d.eachPixel(raw, 4, func(px []byte) (byte, byte, byte, byte) {
			return px[3], px[2], px[1], px[0]
		})
	case IMAGE_FORMAT_ARGB8888:
		d.eachPixel(raw, 4, func(px []byte) (byte, byte, byte, byte) {
			return px[1], px[2], px[3], px[0]
		})
	case IMAGE_FORMAT_BGRA8888:
		d.eachPixel(raw, 4, func(px []byte) (byte, byte, byte, byte) {
			return px[2], px[1], px[0], px[3]
		})
	case IMAGE_FORMAT_RGB888:
		d.eachPixel(raw, 3, func(px []byte) (byte, byte, byte, byte) {
			return px[0], px[1], px[2], 255
		})
	case IMAGE_FORMAT_BGR888:
		d.eachPixel(raw, 3, func(px []byte) (byte, byte, byte, byte) {
			return px[2], px[1], px[0], 255
		})
	case IMAGE_FORMAT_RGB565:
		d.eachPixel(raw, 2, func(px []byte) (byte, byte, byte, byte) {
			r, g, b := rgb565(uint16(px[0]) | uint16(px[1])<<8)
			return r, g, b, 255
		})
	case IMAGE_FORMAT_I8, IMAGE_FORMAT_P8:
		// No palette is stored for P8, so it decodes like luminance.
		d.eachPixel(raw, 1, func(px []byte) (byte, byte, byte, byte) {
			return px[0], px[0], px[0], 255
		})
	case IMAGE_FORMAT_IA88:
		d.eachPixel(raw, 2, func(px []byte) (byte, byte, byte, byte) {
			return px[0], px[0], px[0], px[1]
		})
	case IMAGE_FORMAT_A8:
		d.eachPixel(raw, 1, func(px []byte) (byte, byte, byte, byte) {
			return 255, 255, 255, px[0]
		})
	case IMAGE_FORMAT_DXT1, IMAGE_FORMAT_DXT1_ONEBITALPHA:
		d.decodeDXT1(raw)
	case IMAGE_FORMAT_DXT3:
		d.decodeDXT3(raw)
	case IMAGE_FORMAT_DXT5:
		d.decodeDXT5(raw)
	default:
		if cfg.strict {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
		}
		// Downstream importers expect a valid buffer for any format code, so
		// unknown formats become neutral gray instead of failing.
		for i := 0; i < len(out); i += 4 {
			out[i], out[i+1], out[i+2], out[i+3] = 128, 128, 128, 255
		}
	}
	return out, nil
}
