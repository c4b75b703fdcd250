package hud

import (
	"image"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/oskarmendel/mass"
	"github.com/oskarmendel/mass/gfx"
)

// Align selects which side of the text the x coordinate anchors.
type Align int

const (
	// AlignLeft places the left edge of the text at x.
	AlignLeft Align = iota
	// AlignRight places the right edge of the text at x.
	AlignRight
)

// DefaultTextSize is the pixel size of text components.
const DefaultTextSize = 40

// TextComponent draws a line of text with its top edge at y.
type TextComponent struct {
	font  *Font
	text  string
	x, y  int
	size  float64
	color gfx.Color
	align Align
}

// NewTextComponent creates a left-aligned text component at (x, y) using
// DefaultTextSize and a light gray color.
func NewTextComponent(f *Font, text string, x, y int) *TextComponent {
	return &TextComponent{
		font:  f,
		text:  norm.NFC.String(text),
		x:     x,
		y:     y,
		size:  DefaultTextSize,
		color: gfx.RGBA8(0xe6, 0xea, 0xed, 255),
	}
}

// Text returns the normalized text.
func (t *TextComponent) Text() string { return t.text }

// SetText replaces the text. It is normalized to NFC so combining
// sequences map to the precomposed glyphs fonts carry.
func (t *TextComponent) SetText(s string) { t.text = norm.NFC.String(s) }

// Position returns the anchor point.
func (t *TextComponent) Position() (x, y int) { return t.x, t.y }

// SetPosition moves the anchor point.
func (t *TextComponent) SetPosition(x, y int) {
	t.x = x
	t.y = y
}

// Size returns the pixel size.
func (t *TextComponent) Size() float64 { return t.size }

// SetSize sets the pixel size.
func (t *TextComponent) SetSize(size float64) { t.size = size }

// Color returns the text color.
func (t *TextComponent) Color() gfx.Color { return t.color }

// SetColor sets the text color.
func (t *TextComponent) SetColor(c gfx.Color) { t.color = c }

// SetAlign sets the horizontal alignment.
func (t *TextComponent) SetAlign(a Align) { t.align = a }

// Width returns the advance width of the text in pixels.
func (t *TextComponent) Width() float64 {
	if t.text == "" || t.font == nil {
		return 0
	}
	if t.font.shaped != nil {
		return shapedWidth(t.font.shaped, t.text, t.size)
	}

	face, err := t.font.Face(t.size)
	if err != nil {
		return 0
	}
	defer func() {
		_ = face.Close()
	}()
	return fixedToFloat64(font.MeasureString(face, t.text))
}

// shapedWidth measures text with HarfBuzz shaping so kerning is included.
func shapedWidth(f *gotext.Font, text string, size float64) float64 {
	runes := []rune(text)
	script := language.Latin
	for _, r := range runes {
		if r != ' ' {
			script = language.LookupScript(r)
			break
		}
	}

	var shaper shaping.HarfbuzzShaper
	out := shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gotext.NewFace(f),
		Size:      fixed.Int26_6(size * 64),
		Script:    script,
		Language:  language.NewLanguage("en"),
	})
	return fixedToFloat64(out.Advance)
}

// Draw renders the text onto dst.
func (t *TextComponent) Draw(dst *gfx.Pixmap) {
	if t.text == "" || t.font == nil {
		return
	}

	face, err := t.font.Face(t.size)
	if err != nil {
		mass.Logger().Warn("hud: text not drawn", "err", err)
		return
	}
	defer func() {
		_ = face.Close()
	}()

	for _, r := range t.text {
		if _, ok := face.GlyphAdvance(r); !ok {
			mass.Logger().Warn("hud: missing glyph", "font", t.font.Name(), "rune", string(r))
		}
	}

	x := fixed.I(t.x)
	if t.align == AlignRight {
		x -= font.MeasureString(face, t.text)
	}

	mask := image.NewAlpha(dst.Bounds())
	d := &font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.Point26_6{X: x, Y: fixed.I(t.y) + face.Metrics().Ascent},
	}
	d.DrawString(t.text)
	dst.BlendMask(mask, t.color)
}

func fixedToFloat64(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
