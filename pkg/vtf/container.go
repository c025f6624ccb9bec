package vtf

import (
	"bytes"
	"fmt"
	"os"

	"github.com/mivrik/vtfTools/pkg/vtfz"
)

// MipRange locates one mip level's bytes within the container. Level 0 is the
// full resolution image; each range spans all frames of that level.
type MipRange struct {
	Level  int
	Width  uint32
	Height uint32
	Offset int
	Length int
}

// Container is a parsed VTF file. It is never mutated after Parse, so decode
// calls on different mips or frames are safe to run concurrently.
type Container struct {
	Header
	Resources []Resource

	data  []byte
	mips  []MipRange
	thumb []byte
}

// Load reads and parses a VTF file. Files wrapped in a vtfz bundle are
// decompressed transparently.
func Load(path string) (*Container, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if vtfz.IsBundle(data) {
		data, err = vtfz.ReadAll(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("unpack %s: %w", path, err)
		}
	}
	return Parse(data)
}

// Parse parses a VTF container from bytes. The container keeps a reference to
// data and never mutates it.
func Parse(data []byte) (*Container, error) {
	if len(data) < MinHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooShort, len(data))
	}

	c := &Container{data: data}
	c.Header.DecodeFrom(data)
	if err := c.Header.Validate(); err != nil {
		return nil, err
	}

	if c.VersionAtLeast(7, 3) {
		c.Resources = parseResources(data, c.ResourceCount, c.HeaderSize)
	}

	if err := c.locateImageData(); err != nil {
		return nil, err
	}
	return c, nil
}

// frames returns the frame count clamped to at least 1.
func (c *Container) frames() int {
	if c.FrameCount < 1 {
		return 1
	}
	return int(c.FrameCount)
}

// mipDim halves a base dimension level times, clamped to 1.
func mipDim(dim uint32, level int) uint32 {
	if d := dim >> level; d >= 1 {
		return d
	}
	return 1
}

// locateImageData resolves the thumbnail slice and the byte range of every
// mip level.
//
// Mip data fills the tail of the file with level 0 first and progressively
// smaller levels behind it, so ranges are recovered by walking levels from the
// smallest down to 0, subtracting each level's size from a cursor that starts
// at the end of the file.
func (c *Container) locateImageData() error {
	thumbOffset := int(c.HeaderSize)
	if r, ok := c.ResourceByTag(TagThumbnail); ok && r.Flags&ResourceFlagNoData == 0 {
		thumbOffset = int(r.Offset)
	}
	if c.LowResFormat != IMAGE_FORMAT_NONE && c.LowResWidth > 0 && c.LowResHeight > 0 {
		size := int(EncodedSize(c.LowResFormat, uint32(c.LowResWidth), uint32(c.LowResHeight)))
		if thumbOffset >= 0 && thumbOffset+size <= len(c.data) {
			c.thumb = c.data[thumbOffset : thumbOffset+size]
		}
	}

	c.mips = make([]MipRange, c.MipCount)
	end := len(c.data)
	for level := int(c.MipCount) - 1; level >= 0; level-- {
		w := mipDim(uint32(c.Width), level)
		h := mipDim(uint32(c.Height), level)
		length := int(EncodedSize(c.HighResFormat, w, h)) * c.frames()
		end -= length
		if end < 0 {
			return fmt.Errorf("%w: mip %d needs %d bytes", ErrTruncated, level, length)
		}
		c.mips[level] = MipRange{Level: level, Width: w, Height: h, Offset: end, Length: length}
	}
	return nil
}

// Mips returns the located mip ranges, level 0 largest.
func (c *Container) Mips() []MipRange {
	return c.mips
}

// ResourceByTag returns the first resource entry with the given tag.
func (c *Container) ResourceByTag(tag [3]byte) (Resource, bool) {
	for _, r := range c.Resources {
		if r.Tag == tag {
			return r, true
		}
	}
	return Resource{}, false
}

// LargestMipBytes returns the raw encoded bytes of mip level 0, all frames.
func (c *Container) LargestMipBytes() []byte {
	m := c.mips[0]
	return c.data[m.Offset : m.Offset+m.Length]
}

// MipBytes returns the raw encoded bytes of one frame at one mip level.
func (c *Container) MipBytes(level, frame int) ([]byte, error) {
	if level < 0 || level >= len(c.mips) {
		return nil, fmt.Errorf("%w: level %d of %d", ErrLevelOutOfRange, level, len(c.mips))
	}
	if frame < 0 || frame >= c.frames() {
		return nil, fmt.Errorf("%w: frame %d of %d", ErrFrameOutOfRange, frame, c.frames())
	}
	m := c.mips[level]
	frameSize := m.Length / c.frames()
	off := m.Offset + frame*frameSize
	return c.data[off : off+frameSize], nil
}

// DecodeRGBA decodes one frame of one mip level into a freshly allocated
// RGBA8888 buffer of length width*height*4, top-left origin unless
// WithBottomUp is set.
func (c *Container) DecodeRGBA(level, frame int, opts ...DecodeOption) ([]byte, error) {
	raw, err := c.MipBytes(level, frame)
	if err != nil {
		return nil, err
	}
	m := c.mips[level]
	return Decode(c.HighResFormat, raw, m.Width, m.Height, opts...)
}

// Thumbnail decodes the embedded low resolution thumbnail.
func (c *Container) Thumbnail(opts ...DecodeOption) ([]byte, error) {
	if c.thumb == nil {
		return nil, ErrNoThumbnail
	}
	return Decode(c.LowResFormat, c.thumb, uint32(c.LowResWidth), uint32(c.LowResHeight), opts...)
}
