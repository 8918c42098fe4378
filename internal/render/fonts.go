package render

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/opentype"
)

var (
	fontsOnce  sync.Once
	fontsErr   error
	italicFont *opentype.Font
	boldFont   *opentype.Font
)

// loadFonts parses the embedded caption and watermark fonts once.
func loadFonts() error {
	fontsOnce.Do(func() {
		italicFont, fontsErr = opentype.Parse(goitalic.TTF)
		if fontsErr != nil {
			fontsErr = fmt.Errorf("failed to parse italic font: %w", fontsErr)
			return
		}
		boldFont, fontsErr = opentype.Parse(gobold.TTF)
		if fontsErr != nil {
			fontsErr = fmt.Errorf("failed to parse bold font: %w", fontsErr)
		}
	})
	return fontsErr
}

func newFace(f *opentype.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %.0fpx face: %w", size, err)
	}
	return face, nil
}
