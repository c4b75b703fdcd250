package hud

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/oskarmendel/mass"
)

// Font is a parsed TrueType/OpenType font the HUD draws text with.
// A Font is safe for concurrent use; faces created from it are not.
type Font struct {
	name string
	data []byte
	ot   *opentype.Font

	// shaped is the go-text view of the same data, used for measuring.
	// Nil when go-text cannot parse the font.
	shaped *gotext.Font
}

// ParseFont parses font data. name is used in log output only.
func ParseFont(name string, data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	ot, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("hud: parse font %q: %w", name, err)
	}

	f := &Font{name: name, data: data, ot: ot}
	if face, err := gotext.ParseTTF(bytes.NewReader(data)); err == nil {
		f.shaped = face.Font
	} else {
		mass.Logger().Warn("hud: font not usable for shaping, falling back to advance widths",
			"font", name, "err", err)
	}
	return f, nil
}

// LoadFont reads and parses a font file.
func LoadFont(path string) (*Font, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("hud: load font: %w", err)
	}
	return ParseFont(path, data)
}

var (
	defaultFontOnce sync.Once
	defaultFont     *Font
)

// DefaultFont returns the Go Regular font bundled with golang.org/x/image.
func DefaultFont() *Font {
	defaultFontOnce.Do(func() {
		f, err := ParseFont("Go Regular", goregular.TTF)
		if err != nil {
			panic(err)
		}
		defaultFont = f
	})
	return defaultFont
}

// Name returns the name the font was parsed with.
func (f *Font) Name() string {
	return f.name
}

// Face returns a rasterizing face at the given pixel size.
// The caller must Close it.
func (f *Font) Face(size float64) (font.Face, error) {
	face, err := opentype.NewFace(f.ot, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("hud: create face for %q: %w", f.name, err)
	}
	return face, nil
}
