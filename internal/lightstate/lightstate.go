// Package lightstate translates between reported device colour states and
// the canonical RGB used for display, and builds device-native payloads
// from UI colour choices.
package lightstate

import (
	"math"

	"github.com/prism-home/prism/internal/colour"
	"github.com/prism-home/prism/internal/constants"
	"github.com/prism-home/prism/internal/models"
)

// ToDisplayRGB resolves a reported light state to a displayable RGB value.
// It dispatches on whichever native field the device reported: xy, then
// hue/sat, then colour temperature. A state with no colour field at all
// resolves to white; rendering is total over every possible state and
// never fails.
func ToDisplayRGB(state models.LightColourState) models.RGB {
	switch {
	case state.XY != nil:
		return colour.XYToRGB(*state.XY)
	case state.HueSat != nil:
		return colour.HSVToRGB(state.HueSat.Hue, state.HueSat.Sat, constants.BrightnessMax)
	case state.Mirek != nil:
		return colour.MirekToRGB(*state.Mirek)
	default:
		return models.RGB{R: 255, G: 255, B: 255}
	}
}

// FromUIColour builds the device payload for a UI-chosen colour, emitting
// only the fields the target device declares support for. Brightness is
// taken from the UI percentage scale. Devices with no colour support get a
// brightness-only payload.
func FromUIColour(rgb models.RGB, briPct int, caps models.ColourCapability) models.ColourPayload {
	payload := models.ColourPayload{}

	if caps.Dimming {
		bri := PercentToBri(briPct)
		payload.Bri = &bri
	}

	switch {
	case caps.XY:
		// black has no chromaticity; leave the colour fields unset and
		// let brightness zero carry the intent
		if xy, ok := colour.RGBToXY(rgb); ok {
			payload.XY = &xy
		}
	case caps.HueSat:
		hue, sat, _ := colour.RGBToHSV(rgb)
		payload.Hue = &hue
		payload.Sat = &sat
	}

	return payload
}

// PercentToBri converts a UI brightness percentage [0,100] to the device
// scale [0,254].
func PercentToBri(pct int) int {
	return int(math.Round(float64(pct) / 100 * constants.BrightnessMax))
}

// BriToPercent converts a device brightness [0,254] to the UI percentage
// scale [0,100].
func BriToPercent(bri int) int {
	return int(math.Round(float64(bri) / constants.BrightnessMax * 100))
}
