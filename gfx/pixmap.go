package gfx

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
)

// Pixmap is a rectangular RGBA pixel buffer the HUD draws into.
// Pixels are stored non-premultiplied, 4 bytes per pixel.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

var _ draw.Image = (*Pixmap)(nil)

// NewPixmap creates a transparent pixmap with the given dimensions.
// Negative dimensions are treated as zero.
func NewPixmap(width, height int) *Pixmap {
	width, height = max(width, 0), max(height, 0)
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel replaces the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	n := c.NRGBA()
	i := (y*p.width + x) * 4
	p.data[i+0] = n.R
	p.data[i+1] = n.G
	p.data[i+2] = n.B
	p.data[i+3] = n.A
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return RGBA8(p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3])
}

// BlendPixel composites c over the pixel at (x, y) using source-over,
// with the source alpha scaled by coverage in [0, 1].
func (p *Pixmap) BlendPixel(x, y int, c Color, coverage float64) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	sa := clamp01(c.A) * clamp01(coverage)
	if sa == 0 {
		return
	}
	dst := p.GetPixel(x, y)
	da := dst.A * (1 - sa)
	oa := sa + da
	p.SetPixel(x, y, Color{
		R: (c.R*sa + dst.R*da) / oa,
		G: (c.G*sa + dst.G*da) / oa,
		B: (c.B*sa + dst.B*da) / oa,
		A: oa,
	})
}

// FillRect composites c over the pixels of r clipped to the pixmap.
func (p *Pixmap) FillRect(r image.Rectangle, c Color) {
	r = r.Intersect(p.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			p.BlendPixel(x, y, c, 1)
		}
	}
}

// BlendMask composites c over the pixmap using mask as per-pixel coverage.
// The mask is placed with its bounds in pixmap coordinates.
func (p *Pixmap) BlendMask(mask *image.Alpha, c Color) {
	r := mask.Bounds().Intersect(p.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if cov := mask.AlphaAt(x, y).A; cov != 0 {
				p.BlendPixel(x, y, c, float64(cov)/255)
			}
		}
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c Color) {
	n := c.NRGBA()
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = n.R
		p.data[i+1] = n.G
		p.data[i+2] = n.B
		p.data[i+3] = n.A
	}
}

// ToImage converts the pixmap to an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// EncodePNG writes the pixmap to w as PNG.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.ToImage())
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := p.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).NRGBA()
}

// Set implements the draw.Image interface.
func (p *Pixmap) Set(x, y int, c color.Color) {
	p.SetPixel(x, y, FromColor(c))
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
