package output

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// Suffix is appended to the source image name to form the mask file name.
const Suffix = "_combined_color_mask.png"

// OutputPath returns dir/<baseName>_combined_color_mask.png, where baseName
// is the source image file name without directory and extension.
func OutputPath(baseName, dir string) string {
	return filepath.Join(dir, baseName+Suffix)
}

// WritePNG encodes img to path. The image is written to a temporary file in
// the same directory and renamed into place, so a failed write leaves no
// output behind. An existing file at path is replaced.
func WritePNG(img image.Image, path string) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".polymask-*.png")
	if err != nil {
		return fmt.Errorf("create output in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	fail := func(err error) error {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}

	if err := png.Encode(tmp, img); err != nil {
		return fail(fmt.Errorf("encode png: %w", err))
	}
	if err := tmp.Chmod(0644); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
