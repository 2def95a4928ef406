package scene_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prism-home/prism/internal/models"
	"github.com/prism-home/prism/internal/scene"
)

func intPtr(v int) *int { return &v }

func Test_ExtractPalette(t *testing.T) {

	t.Run("should average brightness over all lights", func(t *testing.T) {
		t.Parallel()
		states := []models.LightColourState{
			{HueSat: &models.HueSat{Hue: 0, Sat: 254}, Brightness: 254},
			{HueSat: &models.HueSat{Hue: 21845, Sat: 254}, Brightness: 127},
			{Mirek: intPtr(400), Brightness: 0},
		}

		palette := scene.ExtractPalette(states)

		assert.InDelta(t, 50, palette.Brightness, 0.0001)
		assert.Len(t, palette.Colours, 3)
		assert.Equal(t, 3, palette.LightCount)
	})

	t.Run("should keep colours in device iteration order without de-duplication", func(t *testing.T) {
		t.Parallel()
		red := models.LightColourState{HueSat: &models.HueSat{Hue: 0, Sat: 254}, Brightness: 254}
		green := models.LightColourState{HueSat: &models.HueSat{Hue: 21845, Sat: 254}, Brightness: 254}

		palette := scene.ExtractPalette([]models.LightColourState{red, green, red})

		assert.Equal(t, []string{"#ff0000", "#00ff00", "#ff0000"}, palette.Colours)
	})

	t.Run("should cap the colour list but count every light", func(t *testing.T) {
		t.Parallel()
		states := make([]models.LightColourState, 8)
		for i := range states {
			states[i] = models.LightColourState{Brightness: 254}
		}

		palette := scene.ExtractPalette(states)

		assert.Len(t, palette.Colours, 5)
		assert.Equal(t, 8, palette.LightCount)
		assert.InDelta(t, 100, palette.Brightness, 0.0001)
	})

	t.Run("should render a state with no colour field as white", func(t *testing.T) {
		t.Parallel()
		palette := scene.ExtractPalette([]models.LightColourState{{Brightness: 254}})
		assert.Equal(t, []string{"#ffffff"}, palette.Colours)
	})

	t.Run("should return an empty palette for an empty scene", func(t *testing.T) {
		t.Parallel()
		palette := scene.ExtractPalette(nil)
		assert.Empty(t, palette.Colours)
		assert.Equal(t, 0.0, palette.Brightness)
		assert.Equal(t, 0, palette.LightCount)
	})

}
