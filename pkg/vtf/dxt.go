package vtf

import "encoding/binary"

const (
	dxt1BlockSize = 8
	dxt5BlockSize = 16
)

// rgb565 expands a packed 5-6-5 color to 8-bit channels.
func rgb565(c uint16) (r, g, b byte) {
	r = byte(uint32(c>>11&0x1F) * 255 / 31)
	g = byte(uint32(c>>5&0x3F) * 255 / 63)
	b = byte(uint32(c&0x1F) * 255 / 31)
	return
}

// colorPalette builds the 4-entry RGBA palette for a BC color block. With
// punchThrough the last two entries are the endpoint midpoint and transparent
// black; otherwise both are 1/3-2/3 interpolations and fully opaque.
func colorPalette(c0, c1 uint16, punchThrough bool) [4][4]byte {
	var p [4][4]byte
	r0, g0, b0 := rgb565(c0)
	r1, g1, b1 := rgb565(c1)

	p[0] = [4]byte{r0, g0, b0, 255}
	p[1] = [4]byte{r1, g1, b1, 255}
	if punchThrough {
		p[2] = [4]byte{
			byte((int(r0) + int(r1)) / 2),
			byte((int(g0) + int(g1)) / 2),
			byte((int(b0) + int(b1)) / 2),
			255,
		}
		p[3] = [4]byte{0, 0, 0, 0}
	} else {
		p[2] = [4]byte{
			byte((2*int(r0) + int(r1)) / 3),
			byte((2*int(g0) + int(g1)) / 3),
			byte((2*int(b0) + int(b1)) / 3),
			255,
		}
		p[3] = [4]byte{
			byte((int(r0) + 2*int(r1)) / 3),
			byte((int(g0) + 2*int(g1)) / 3),
			byte((int(b0) + 2*int(b1)) / 3),
			255,
		}
	}
	return p
}

// alphaPalette builds the 8-entry DXT5 alpha palette: six interpolated
// values when a0 > a1, otherwise four interpolated values plus fixed 0 and
// 255 entries.
func alphaPalette(a0, a1 byte) [8]byte {
	var p [8]byte
	p[0], p[1] = a0, a1
	x, y := int(a0), int(a1)
	if a0 > a1 {
		for i := 1; i <= 6; i++ {
			p[1+i] = byte(((7-i)*x + i*y) / 7)
		}
	} else {
		for i := 1; i <= 4; i++ {
			p[1+i] = byte(((5-i)*x + i*y) / 5)
		}
		p[6] = 0
		p[7] = 255
	}
	return p
}

// writeBlock writes one 4x4 block into the output, skipping texels outside
// the image. indices holds 2 bits per texel, row-major. When alphaAt is
// non-nil it overrides the palette alpha per texel.
func (d *decoder) writeBlock(bx, by int, palette [4][4]byte, indices uint32, alphaAt func(texel uint) byte) {
	for py := 0; py < 4; py++ {
		for px := 0; px < 4; px++ {
			x := bx*4 + px
			y := by*4 + py
			if x >= d.width || y >= d.height {
				continue
			}
			texel := uint(py*4 + px)
			c := palette[indices>>(2*texel)&0x3]
			a := c[3]
			if alphaAt != nil {
				a = alphaAt(texel)
			}
			d.setPixel(x, y, c[0], c[1], c[2], a)
		}
	}
}

// decodeDXT1 decodes 8-byte color blocks. A block with c0 <= c1 uses the
// 3-color mode whose 4th palette entry is transparent black (punch-through
// alpha); c0 > c1 selects the opaque 4-color mode.
func (d *decoder) decodeDXT1(raw []byte) {
	blocksWide := (d.width + 3) / 4
	blocksHigh := (d.height + 3) / 4

	block := 0
	for by := 0; by < blocksHigh; by++ {
		for bx := 0; bx < blocksWide; bx++ {
			off := block * dxt1BlockSize
			block++
			if off+dxt1BlockSize > len(raw) {
				return
			}

			c0 := binary.LittleEndian.Uint16(raw[off:])
			c1 := binary.LittleEndian.Uint16(raw[off+2:])
			palette := colorPalette(c0, c1, c0 <= c1)
			indices := binary.LittleEndian.Uint32(raw[off+4:])

			d.writeBlock(bx, by, palette, indices, nil)
		}
	}
}

// decodeDXT3 decodes 16-byte blocks: 64 bits of explicit 4-bit alpha followed
// by a color block. The color palette is always the opaque 4-color mode.
func (d *decoder) decodeDXT3(raw []byte) {
	blocksWide := (d.width + 3) / 4
	blocksHigh := (d.height + 3) / 4

	block := 0
	for by := 0; by < blocksHigh; by++ {
		for bx := 0; bx < blocksWide; bx++ {
			off := block * dxt5BlockSize
			block++
			if off+dxt5BlockSize > len(raw) {
				return
			}

			alphaBits := binary.LittleEndian.Uint64(raw[off:])
			c0 := binary.LittleEndian.Uint16(raw[off+8:])
			c1 := binary.LittleEndian.Uint16(raw[off+10:])
			palette := colorPalette(c0, c1, false)
			indices := binary.LittleEndian.Uint32(raw[off+12:])

			d.writeBlock(bx, by, palette, indices, func(texel uint) byte {
				// Expand 4-bit alpha so 0xF maps to 255.
				return byte((alphaBits >> (4 * texel) & 0xF) * 17)
			})
		}
	}
}

// decodeDXT5 decodes 16-byte blocks: two 8-bit alpha endpoints, 48 bits of
// 3-bit alpha indices, then a color block. The color palette is always the
// opaque 4-color mode.
func (d *decoder) decodeDXT5(raw []byte) {
	blocksWide := (d.width + 3) / 4
	blocksHigh := (d.height + 3) / 4

	block := 0
	for by := 0; by < blocksHigh; by++ {
		for bx := 0; bx < blocksWide; bx++ {
			off := block * dxt5BlockSize
			block++
			if off+dxt5BlockSize > len(raw) {
				return
			}

			alpha := alphaPalette(raw[off], raw[off+1])
			var alphaBits uint64
			for i := 0; i < 6; i++ {
				alphaBits |= uint64(raw[off+2+i]) << (8 * i)
			}

			c0 := binary.LittleEndian.Uint16(raw[off+8:])
			c1 := binary.LittleEndian.Uint16(raw[off+10:])
			palette := colorPalette(c0, c1, false)
			indices := binary.LittleEndian.Uint32(raw[off+12:])

			d.writeBlock(bx, by, palette, indices, func(texel uint) byte {
				return alpha[alphaBits>>(3*texel)&0x7]
			})
		}
	}
}
