// Package preview renders scene palettes as self-contained, embeddable
// gradient swatches.
package preview

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/prism-home/prism/internal/constants"
	"github.com/prism-home/prism/internal/models"
)

type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// Synthesize renders a palette as an inline data URI image with evenly
// spaced colour stops and opacity driven by the aggregate brightness.
// An empty palette degenerates to a single white stop at full coverage,
// so the output is always a valid image.
func Synthesize(p models.ScenePalette, format Format) (string, error) {
	if format == FormatPNG {
		return PNG(p)
	}
	return SVG(p), nil
}

// SVG renders the palette as a linear-gradient SVG swatch and returns it
// as a base64 data URI.
func SVG(p models.ScenePalette) string {
	colours, opacity := stops(p)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`,
		constants.ThumbnailWidth, constants.ThumbnailHeight)
	b.WriteString(`<defs><linearGradient id="g" x1="0" y1="0" x2="1" y2="0">`)
	for i, c := range colours {
		var offset float64
		if len(colours) > 1 {
			offset = float64(i) / float64(len(colours)-1)
		}
		fmt.Fprintf(&b, `<stop offset="%.4f" stop-color="%s" stop-opacity="%.2f"/>`, offset, c, opacity)
	}
	b.WriteString(`</linearGradient></defs>`)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="url(#g)"/>`,
		constants.ThumbnailWidth, constants.ThumbnailHeight)
	b.WriteString(`</svg>`)

	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(b.String()))
}

// PNG renders the palette as a raster gradient and returns it as a base64
// data URI. The stops are painted into a one-pixel-tall strip which is
// then resized with a linear filter to blend between them; opacity is
// pre-multiplied over a white background.
func PNG(p models.ScenePalette) (string, error) {
	colours, opacity := stops(p)

	strip := image.NewNRGBA(image.Rect(0, 0, len(colours), 1))
	for i, hex := range colours {
		c, err := colorful.Hex(hex)
		if err != nil {
			c = colorful.Color{R: 1, G: 1, B: 1}
		}
		strip.SetNRGBA(i, 0, color.NRGBA{
			R: overWhite(c.R, opacity),
			G: overWhite(c.G, opacity),
			B: overWhite(c.B, opacity),
			A: 255,
		})
	}

	img := imaging.Resize(strip, constants.ThumbnailWidth, constants.ThumbnailHeight, imaging.Linear)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("error encoding thumbnail: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// overWhite composites a unit colour channel at the given opacity over a
// white background and scales it to [0,255].
func overWhite(ch float64, a float64) uint8 {
	return uint8(math.Round((ch*a + (1 - a)) * 255))
}

// stops returns the gradient colours and their common opacity, falling
// back to a single fully-opaque white stop for an empty palette.
func stops(p models.ScenePalette) ([]string, float64) {
	if len(p.Colours) == 0 {
		return []string{"#ffffff"}, 1
	}
	return p.Colours, p.Brightness / 100
}
