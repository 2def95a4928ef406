// Package scene derives compact visual summaries from captured sets of
// per-light colour states.
package scene

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/samber/lo"

	"github.com/prism-home/prism/internal/constants"
	"github.com/prism-home/prism/internal/lightstate"
	"github.com/prism-home/prism/internal/models"
)

// ExtractPalette summarises a scene's light states as an ordered colour
// list, an aggregate brightness and a light count. States are iterated in
// the order given (device iteration order) and repeated colours are kept,
// since they represent distinct physical fixtures. The colour list is
// capped for display, but brightness and count cover the full set; the
// cap only limits the summary colours shown.
func ExtractPalette(states []models.LightColourState) models.ScenePalette {
	colours := lo.Map(states, func(state models.LightColourState, _ int) string {
		return HexColour(lightstate.ToDisplayRGB(state))
	})
	if len(colours) > constants.PaletteColourCap {
		colours = colours[:constants.PaletteColourCap]
	}

	briSum := lo.SumBy(states, func(state models.LightColourState) int {
		return state.Brightness
	})

	var brightness float64
	if len(states) > 0 {
		brightness = float64(briSum) / float64(len(states)) / constants.BrightnessMax * 100
	}

	return models.ScenePalette{
		Colours:    colours,
		Brightness: brightness,
		LightCount: len(states),
	}
}

// HexColour formats an RGB value as a 6-hex-digit colour string ("#rrggbb").
func HexColour(rgb models.RGB) string {
	c := colorful.Color{
		R: float64(rgb.R) / 255,
		G: float64(rgb.G) / 255,
		B: float64(rgb.B) / 255,
	}
	return c.Hex()
}
