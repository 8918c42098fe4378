package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"unicode/utf8"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Canvas and typography constants of the downloadable image.
const (
	CanvasSize = 1024

	captionPadding     = 120
	captionMaxWidth    = CanvasSize - 2*captionPadding
	captionFontSize    = 44
	captionSmallSize   = 34
	longCaptionLength  = 120
	captionLineHeight  = 1.5
	watermarkText      = "LUMINA STUDIO • BY BALAJIDUDDUKURI • 2026"
	watermarkFontSize  = 18
	watermarkY         = 940
	watermarkSpacingPx = 4
)

// gradientStops are the overlay alphas at the top, middle and bottom.
var gradientStops = [3]float64{0.2, 0.6, 0.8}

var watermarkColor = color.NRGBA{R: 255, G: 255, B: 255, A: 102}

// CompositePNG decodes the card artwork from a data URI, composites the
// caption onto it, and returns the encoded PNG.
func CompositePNG(imageURI, text string) ([]byte, error) {
	_, data, err := DecodeDataURI(imageURI)
	if err != nil {
		return nil, err
	}

	src, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode card image: %w", err)
	}

	canvas, err := Composite(src, text)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, canvas, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Composite draws src stretched to CanvasSize×CanvasSize, the gradient
// overlay, the wrapped caption and the watermark.
func Composite(src image.Image, text string) (*image.NRGBA, error) {
	if err := loadFonts(); err != nil {
		return nil, err
	}

	canvas := imaging.Resize(src, CanvasSize, CanvasSize, imaging.Lanczos)
	drawGradient(canvas)

	sizePx := float64(captionFontSize)
	if utf8.RuneCountInString(text) > longCaptionLength {
		sizePx = captionSmallSize
	}

	captionFace, err := newFace(italicFont, sizePx)
	if err != nil {
		return nil, err
	}
	defer captionFace.Close()

	lines := WrapText(text, func(s string) int {
		return font.MeasureString(captionFace, s).Ceil()
	}, captionMaxWidth)

	lineHeight := sizePx * captionLineHeight
	y := (float64(CanvasSize) - float64(len(lines))*lineHeight) / 2
	for _, line := range lines {
		drawCentered(canvas, captionFace, image.White, line, CanvasSize/2, y+lineHeight/2, 0)
		y += lineHeight
	}

	markFace, err := newFace(boldFont, watermarkFontSize)
	if err != nil {
		return nil, err
	}
	defer markFace.Close()

	drawCentered(canvas, markFace, image.NewUniform(watermarkColor), watermarkText,
		CanvasSize/2, watermarkY, watermarkSpacingPx)

	return canvas, nil
}

// WrapText greedily breaks text on spaces so each line measures at most
// maxWidth. A single word wider than maxWidth stays on its own line.
func WrapText(text string, measure func(string) int, maxWidth int) []string {
	words := strings.Split(text, " ")
	lines := make([]string, 0, 4)

	line := ""
	for n, word := range words {
		candidate := line + word + " "
		if measure(candidate) > maxWidth && n > 0 {
			lines = append(lines, strings.TrimSpace(line))
			line = word + " "
			continue
		}
		line = candidate
	}
	return append(lines, strings.TrimSpace(line))
}

// gradientAlpha interpolates the overlay alpha at row y.
func gradientAlpha(y int) float64 {
	t := float64(y) / float64(CanvasSize-1)
	if t <= 0.5 {
		return gradientStops[0] + (gradientStops[1]-gradientStops[0])*(t/0.5)
	}
	return gradientStops[1] + (gradientStops[2]-gradientStops[1])*((t-0.5)/0.5)
}

func drawGradient(dst *image.NRGBA) {
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		a := uint8(gradientAlpha(y-b.Min.Y)*255 + 0.5)
		row := image.Rect(b.Min.X, y, b.Max.X, y+1)
		draw.Draw(dst, row, image.NewUniform(color.NRGBA{A: a}), image.Point{}, draw.Over)
	}
}

// drawCentered draws s horizontally centered on cx with its vertical middle
// at cy. spacing adds extra pixels after every rune.
func drawCentered(dst draw.Image, face font.Face, src image.Image, s string, cx int, cy float64, spacing int) {
	extra := fixed.I(spacing)
	width := font.MeasureString(face, s) + extra*fixed.Int26_6(utf8.RuneCountInString(s))

	m := face.Metrics()
	baseline := cy + float64(m.Ascent-m.Descent)/2/64

	d := &font.Drawer{
		Dst:  dst,
		Src:  src,
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(cx) - width/2, Y: fixed.Int26_6(baseline * 64)},
	}

	if spacing == 0 {
		d.DrawString(s)
		return
	}
	for _, r := range s {
		d.DrawString(string(r))
		d.Dot.X += extra
	}
}
