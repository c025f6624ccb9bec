package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/mivrik/vtfTools/pkg/vtf"
	"github.com/mivrik/vtfTools/pkg/vtfz"
)

// runInfo prints the container header, mip table, and resource dictionary.
func runInfo(path string) error {
	c, err := vtf.Load(path)
	if err != nil {
		return err
	}

	fmt.Printf("File: %s\n", path)
	fmt.Printf("%s\n", c.Header.String())
	fmt.Printf("Flags: 0x%08x\n", c.Flags)
	fmt.Printf("Depth: %d\n", c.Depth)
	fmt.Printf("Reflectivity: %.3f %.3f %.3f\n", c.Reflectivity[0], c.Reflectivity[1], c.Reflectivity[2])
	fmt.Printf("Bump scale: %.3f\n", c.BumpScale)
	if c.LowResFormat != vtf.IMAGE_FORMAT_NONE {
		fmt.Printf("Thumbnail: %dx%d %s\n", c.LowResWidth, c.LowResHeight, c.LowResFormat)
	}

	fmt.Println("Mip levels:")
	for _, m := range c.Mips() {
		fmt.Printf("  %2d: %4dx%-4d offset=0x%x length=%d\n", m.Level, m.Width, m.Height, m.Offset, m.Length)
	}

	if len(c.Resources) > 0 {
		fmt.Println("Resources:")
		for _, r := range c.Resources {
			fmt.Printf("  tag=%02x%02x%02x flags=0x%02x offset=0x%x\n",
				r.Tag[0], r.Tag[1], r.Tag[2], r.Flags, r.Offset)
		}
	}
	return nil
}

func decodeOptions() []vtf.DecodeOption {
	var opts []vtf.DecodeOption
	if decodeStrict {
		opts = append(opts, vtf.WithStrict())
	}
	if bottomUp {
		opts = append(opts, vtf.WithBottomUp())
	}
	return opts
}

// runDecode decodes one mip level and frame to PNG or TGA.
func runDecode(inputPath, outputPath string) error {
	c, err := vtf.Load(inputPath)
	if err != nil {
		return err
	}
	logger.Debug("parsed container", "header", c.Header.String())

	rgba, err := c.DecodeRGBA(decodeLevel, decodeFrame, decodeOptions()...)
	if err != nil {
		return fmt.Errorf("decode %s: %w", inputPath, err)
	}

	m := c.Mips()[decodeLevel]
	if err := writeImage(outputPath, int(m.Width), int(m.Height), rgba); err != nil {
		return err
	}
	logger.Info("decoded", "input", inputPath, "output", outputPath,
		"format", c.HighResFormat.String(), "size", fmt.Sprintf("%dx%d", m.Width, m.Height))
	return nil
}

// runThumb decodes the embedded low-res thumbnail.
func runThumb(inputPath, outputPath string) error {
	c, err := vtf.Load(inputPath)
	if err != nil {
		return err
	}

	rgba, err := c.Thumbnail()
	if err != nil {
		return fmt.Errorf("thumbnail %s: %w", inputPath, err)
	}

	if err := writeImage(outputPath, int(c.LowResWidth), int(c.LowResHeight), rgba); err != nil {
		return err
	}
	logger.Info("extracted thumbnail", "input", inputPath, "output", outputPath)
	return nil
}

// runBatch decodes the base image of every .vtf under inputDir into PNGs
// mirroring the directory layout.
func runBatch(inputDir, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	count := 0
	failures := 0

	err := filepath.Walk(inputDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(strings.ToLower(path), ".vtf") {
			return nil
		}

		relPath, _ := filepath.Rel(inputDir, path)
		outPath := filepath.Join(outputDir, strings.TrimSuffix(relPath, filepath.Ext(relPath))+".png")
		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			logger.Error("mkdir failed", "dir", filepath.Dir(outPath), "error", err)
			failures++
			return nil
		}

		c, err := vtf.Load(path)
		if err != nil {
			logger.Error("load failed", "file", path, "error", err)
			failures++
			return nil
		}
		rgba, err := c.DecodeRGBA(0, 0)
		if err != nil {
			logger.Error("decode failed", "file", path, "error", err)
			failures++
			return nil
		}
		if err := writeImage(outPath, int(c.Width), int(c.Height), rgba); err != nil {
			logger.Error("write failed", "file", outPath, "error", err)
			failures++
			return nil
		}

		count++
		if count%100 == 0 {
			logger.Info("progress", "converted", count)
		}
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Printf("Completed: %d files converted, %d failures\n", count, failures)
	return nil
}

// runPack compresses a texture file into a vtfz bundle.
func runPack(inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", inputPath, err)
	}
	if _, err := vtf.Parse(data); err != nil {
		return fmt.Errorf("%s is not a valid vtf: %w", inputPath, err)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outputPath, err)
	}
	if err := vtfz.Encode(f, data, vtfz.WithCompressionLevel(packLevel)); err != nil {
		f.Close()
		return fmt.Errorf("pack %s: %w", inputPath, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	logger.Info("packed", "input", inputPath, "output", outputPath,
		"uncompressed", len(data))
	return nil
}

// runUnpack restores the original texture from a vtfz bundle.
func runUnpack(inputPath, outputPath string) error {
	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", inputPath, err)
	}
	defer f.Close()

	data, err := vtfz.ReadAll(f)
	if err != nil {
		return fmt.Errorf("unpack %s: %w", inputPath, err)
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	logger.Info("unpacked", "input", inputPath, "output", outputPath, "size", len(data))
	return nil
}

// writeImage writes an RGBA buffer as PNG or TGA depending on the extension.
func writeImage(path string, width, height int, rgba []byte) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tga":
		return vtf.SaveTGA(path, width, height, rgba)
	case ".png":
		img := &image.NRGBA{Pix: rgba, Stride: width * 4, Rect: image.Rect(0, 0, width, height)}
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		if err := png.Encode(f, img); err != nil {
			f.Close()
			return fmt.Errorf("encode png: %w", err)
		}
		return f.Close()
	default:
		return fmt.Errorf("unsupported output extension: %s", filepath.Ext(path))
	}
}
