/*
Package vtf reads Valve Texture Format (VTF) containers and decodes their
image data into flat RGBA8888 buffers.

A container holds a little-endian fixed header, an optional low resolution
thumbnail, and a mip chain for one or more animation frames. Version 7.3
containers additionally carry a resource dictionary. Supported encodings
cover the common uncompressed layouts (RGBA/BGRA/ARGB/ABGR, RGB/BGR,
RGB565, I8, IA88, A8) and the DXT1/DXT3/DXT5 block-compressed formats.

Reader example:

	c, err := vtf.Load("brick_wall.vtf")
	if err != nil {
		// handle error
	}
	rgba, err := c.DecodeRGBA(0, 0)

Decoded buffers are width*height*4 bytes, R,G,B,A channel order, top-left
origin. The container itself stores rows bottom to top; pass WithBottomUp to
keep the native order.

Decoding is deliberately lenient: an unknown format decodes to neutral gray
and truncated pixel data zero-fills the tail, so callers always receive a
buffer of the expected size. Pass WithStrict to turn both cases into errors.

Writer example:

	err := vtf.SaveTGA("brick_wall.tga", int(c.Width), int(c.Height), rgba)
*/
package vtf
