package source

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image describes the original image an annotation belongs to. Only its
// header is read; pixel data is never decoded.
type Image struct {
	Path   string
	Format string
	Width  int
	Height int
}

// Open reads the header of the image at path.
func Open(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}

	return &Image{
		Path:   path,
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}

// BaseName returns the file name without directory and extension.
func (img *Image) BaseName() string {
	baseName := filepath.Base(img.Path)
	return strings.TrimSuffix(baseName, filepath.Ext(baseName))
}

// Matches reports whether the image has the given dimensions.
func (img *Image) Matches(width, height int) bool {
	return img.Width == width && img.Height == height
}
