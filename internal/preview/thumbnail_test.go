package preview_test

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prism-home/prism/internal/models"
	"github.com/prism-home/prism/internal/preview"
)

func decodeSVG(t *testing.T, uri string) string {
	t.Helper()
	assert.True(t, strings.HasPrefix(uri, "data:image/svg+xml;base64,"))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/svg+xml;base64,"))
	assert.NoError(t, err)
	return string(raw)
}

func Test_SVG(t *testing.T) {

	t.Run("should space the stops evenly and apply the brightness as opacity", func(t *testing.T) {
		t.Parallel()
		svg := decodeSVG(t, preview.SVG(models.ScenePalette{
			Colours:    []string{"#ff0000", "#00ff00", "#0000ff"},
			Brightness: 50,
			LightCount: 3,
		}))

		assert.Contains(t, svg, `<stop offset="0.0000" stop-color="#ff0000" stop-opacity="0.50"/>`)
		assert.Contains(t, svg, `<stop offset="0.5000" stop-color="#00ff00" stop-opacity="0.50"/>`)
		assert.Contains(t, svg, `<stop offset="1.0000" stop-color="#0000ff" stop-opacity="0.50"/>`)
	})

	t.Run("should degenerate to a single white stop for an empty palette", func(t *testing.T) {
		t.Parallel()
		svg := decodeSVG(t, preview.SVG(models.ScenePalette{}))

		assert.Contains(t, svg, `<stop offset="0.0000" stop-color="#ffffff" stop-opacity="1.00"/>`)
		assert.Equal(t, 1, strings.Count(svg, "<stop"))
	})

}

func Test_PNG(t *testing.T) {

	t.Run("should produce a decodable raster of the configured size", func(t *testing.T) {
		t.Parallel()
		uri, err := preview.PNG(models.ScenePalette{
			Colours:    []string{"#ff0000", "#0000ff"},
			Brightness: 100,
			LightCount: 2,
		})
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

		raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
		assert.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(raw))
		assert.NoError(t, err)
		assert.Equal(t, 240, img.Bounds().Dx())
		assert.Equal(t, 32, img.Bounds().Dy())
	})

	t.Run("should render an empty palette as plain white", func(t *testing.T) {
		t.Parallel()
		uri, err := preview.PNG(models.ScenePalette{})
		assert.NoError(t, err)

		raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
		assert.NoError(t, err)
		img, err := png.Decode(bytes.NewReader(raw))
		assert.NoError(t, err)

		r, g, b, _ := img.At(120, 16).RGBA()
		assert.Equal(t, uint32(0xffff), r)
		assert.Equal(t, uint32(0xffff), g)
		assert.Equal(t, uint32(0xffff), b)
	})

}

func Test_Synthesize(t *testing.T) {

	t.Run("should default to the SVG encoder", func(t *testing.T) {
		t.Parallel()
		uri, err := preview.Synthesize(models.ScenePalette{Colours: []string{"#123456"}, Brightness: 80}, preview.FormatSVG)
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(uri, "data:image/svg+xml;base64,"))
	})

	t.Run("should route png requests to the raster encoder", func(t *testing.T) {
		t.Parallel()
		uri, err := preview.Synthesize(models.ScenePalette{Colours: []string{"#123456"}, Brightness: 80}, preview.FormatPNG)
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))
	})

}
