package render_test

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/phrazzld/lumina-api/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidPNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func dataURI(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func TestDecodeDataURI(t *testing.T) {
	t.Parallel()

	mime, data, err := render.DecodeDataURI("data:image/jpeg;base64,AQID")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", mime)
	assert.Equal(t, []byte{1, 2, 3}, data)

	invalid := []string{
		"",
		"https://example.com/a.png",
		"data:image/png;base64",
		"data:image/png,AQID",
		"data:image/png;base64,!!!",
		"data:image/png;base64,",
	}
	for _, uri := range invalid {
		_, _, err := render.DecodeDataURI(uri)
		assert.ErrorIs(t, err, render.ErrInvalidDataURI, "uri %q", uri)
	}
}

func TestWrapText(t *testing.T) {
	t.Parallel()

	// one unit per byte keeps the arithmetic obvious
	measure := func(s string) int { return len(s) }

	tests := []struct {
		name     string
		text     string
		maxWidth int
		want     []string
	}{
		{"fits on one line", "hello world", 40, []string{"hello world"}},
		{"wraps greedily", "aaa bbb ccc", 8, []string{"aaa bbb", "ccc"}},
		{"long first word stays", "supercalifragilistic x", 5, []string{"supercalifragilistic", "x"}},
		{"empty", "", 10, []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render.WrapText(tt.text, measure, tt.maxWidth))
		})
	}
}

func TestCompositePNG(t *testing.T) {
	t.Parallel()

	src := solidPNG(t, 64, 32, color.NRGBA{R: 200, G: 180, B: 40, A: 255})
	text := strings.Repeat("May the new year bring light ", 6)

	out, err := render.CompositePNG(dataURI("image/png", src), text)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, render.CanvasSize, render.CanvasSize), img.Bounds())

	// The gradient darkens toward the bottom.
	top := color.NRGBAModel.Convert(img.At(5, 5)).(color.NRGBA)
	bottom := color.NRGBAModel.Convert(img.At(5, render.CanvasSize-5)).(color.NRGBA)
	assert.Greater(t, top.R, bottom.R)
	assert.Equal(t, uint8(255), bottom.A)
}

func TestCompositePNG_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := render.CompositePNG("not-a-uri", "text")
	assert.ErrorIs(t, err, render.ErrInvalidDataURI)

	_, err = render.CompositePNG(dataURI("image/png", []byte("not png")), "text")
	assert.Error(t, err)
}
