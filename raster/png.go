package raster

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// encoder keeps one buffer between frames. WritePNG is therefore not safe for
// concurrent use.
var encoder = png.Encoder{CompressionLevel: png.BestSpeed, BufferPool: &bufferPool{}}

type bufferPool struct {
	buf *png.EncoderBuffer
}

func (p *bufferPool) Get() *png.EncoderBuffer  { return p.buf }
func (p *bufferPool) Put(b *png.EncoderBuffer) { p.buf = b }

// WritePNG encodes img to a PNG file at path, replacing any existing file.
func WritePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create frame file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	w := bufio.NewWriter(f)
	if err := encoder.Encode(w, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// SaveFrame writes img to dir as "<label>.png", creating dir if needed, and
// returns the file path.
func SaveFrame(dir, label string, img image.Image) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create frame dir: %w", err)
	}
	path := filepath.Join(dir, frameName(label)+".png")
	if err := WritePNG(path, img); err != nil {
		return "", err
	}
	return path, nil
}

// frameName maps a label to a safe file stem. Letters, digits, '-' and '.'
// survive; everything else becomes '_'.
func frameName(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "frame"
	}
	return strings.Map(func(r rune) rune {
		if r == '-' || r == '.' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9') {
			return r
		}
		return '_'
	}, label)
}
