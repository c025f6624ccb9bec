package vtf

import (
	"fmt"
	"io"
	"os"
)

// WriteTGA writes rgba as an uncompressed 32-bit true-color TGA with a
// top-left origin. rgba must be width*height*4 bytes in R,G,B,A order.
func WriteTGA(w io.Writer, width, height int, rgba []byte) error {
	if len(rgba) != width*height*4 {
		return fmt.Errorf("rgba length %d does not match %dx%d", len(rgba), width, height)
	}

	var header [18]byte
	header[2] = 2 // uncompressed true color
	header[12] = byte(width)
	header[13] = byte(width >> 8)
	header[14] = byte(height)
	header[15] = byte(height >> 8)
	header[16] = 32   // bits per pixel
	header[17] = 0x28 // top-left origin, 8 alpha bits
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	// TGA stores pixels as BGRA.
	bgra := make([]byte, len(rgba))
	for i := 0; i < len(rgba); i += 4 {
		bgra[i] = rgba[i+2]
		bgra[i+1] = rgba[i+1]
		bgra[i+2] = rgba[i]
		bgra[i+3] = rgba[i+3]
	}
	if _, err := w.Write(bgra); err != nil {
		return fmt.Errorf("write pixels: %w", err)
	}
	return nil
}

// SaveTGA writes rgba to path as an uncompressed TGA file.
func SaveTGA(path string, width, height int, rgba []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteTGA(f, width, height, rgba); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
