package render

import (
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/Xordas/ScreenX/logging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var logCtx = logging.PackageCtx("render")

type faceStyle struct {
	family FontFamily
	bold   bool
}

var fontSources = map[faceStyle][]byte{
	{FamilySans, false}: goregular.TTF,
	{FamilySans, true}:  gobold.TTF,
	{FamilyMono, false}: gomono.TTF,
	{FamilyMono, true}:  gomonobold.TTF,
}

// parsedFonts is shared between caches; sfnt fonts are safe for concurrent use.
var parsedFonts = sync.OnceValues(func() (map[faceStyle]*opentype.Font, error) {
	fonts := make(map[faceStyle]*opentype.Font, len(fontSources))

	for style, src := range fontSources {
		f, err := opentype.Parse(src)
		if err != nil {
			return nil, fmt.Errorf("could not parse %s font (bold=%t): %w", style.family, style.bold, err)
		}

		fonts[style] = f
	}

	return fonts, nil
})

type faceKey struct {
	style faceStyle
	// size in 1/64 device pixels
	size int
}

// FaceCache creates font faces at device pixel sizes and keeps them for reuse.
// Faces are not safe for concurrent use, so a cache belongs to one rendering goroutine.
type FaceCache struct {
	faces map[faceKey]font.Face
}

func NewFaceCache() *FaceCache {
	return &FaceCache{faces: make(map[faceKey]font.Face)}
}

// Face returns the face for f at deviceSize pixels. If the face cannot be built a
// fixed bitmap face is returned instead.
func (c *FaceCache) Face(family FontFamily, bold bool, deviceSize float64) font.Face {
	key := faceKey{style: faceStyle{family, bold}, size: int(math.Round(deviceSize * 64))}
	if face, ok := c.faces[key]; ok {
		return face
	}

	face, err := newFace(key)
	if err != nil {
		slog.ErrorContext(logCtx, "Could not create font face, using fallback",
			"family", family, "bold", bold, "size", deviceSize, "error", err)

		face = basicfont.Face7x13
	}

	c.faces[key] = face

	return face
}

// Len returns the number of cached faces.
func (c *FaceCache) Len() int {
	return len(c.faces)
}

func newFace(key faceKey) (font.Face, error) {
	fonts, err := parsedFonts()
	if err != nil {
		return nil, err
	}

	size := float64(key.size) / 64
	if size <= 0 {
		return nil, fmt.Errorf("font size must be positive, got %.2f", size)
	}

	face, err := opentype.NewFace(fonts[key.style], &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create %.2fpx face: %w", size, err)
	}

	return face, nil
}
