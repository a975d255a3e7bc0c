package composite

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/ivlev/polymask/internal/raster"
)

// Background is the color of pixels no annotation covers.
var Background = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Canvas is the color mask being built. It is owned by a single caller.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas creates a width x height canvas filled with Background.
func NewCanvas(width, height int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: Background}, image.Point{}, draw.Src)
	return &Canvas{img: img}
}

// Paint overwrites every pixel set in mask with c and returns how many
// pixels were written. Mask pixels outside the canvas are ignored.
func (cv *Canvas) Paint(mask *raster.Mask, c color.RGBA) int {
	c.A = 255
	b := cv.img.Bounds()

	// Only the filled rectangle of the mask can change the canvas.
	area := mask.Bounds().Intersect(image.Rect(0, 0, b.Dx(), b.Dy()))

	painted := 0
	for row := area.Min.Y; row < area.Max.Y; row++ {
		for col := area.Min.X; col < area.Max.X; col++ {
			if !mask.At(row, col) {
				continue
			}
			i := cv.img.PixOffset(b.Min.X+col, b.Min.Y+row)
			cv.img.Pix[i+0] = c.R
			cv.img.Pix[i+1] = c.G
			cv.img.Pix[i+2] = c.B
			cv.img.Pix[i+3] = c.A
			painted++
		}
	}
	return painted
}

// Image returns the underlying image. Further Paint calls modify it.
func (cv *Canvas) Image() *image.RGBA {
	return cv.img
}
