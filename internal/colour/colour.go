// Package colour holds the conversions between the canonical RGB
// representation used everywhere outside the wire layer and the three
// device-native encodings (CIE xy chromaticity, device-scaled
// hue/saturation, and mired colour temperature).
//
// All functions are pure and safe for concurrent use. Rounding to the
// integer device scales happens once, at the final step; intermediate
// maths stays in floating point.
package colour

import (
	"math"

	"github.com/prism-home/prism/internal/constants"
	"github.com/prism-home/prism/internal/models"
)

// GamutClamp brings a linear RGB triple into [0,1] per channel. When any
// channel exceeds 1 all three are rescaled by the max first, so the hue of
// an out-of-gamut colour is preserved rather than shifted by per-channel
// truncation. Negative channels (possible from the xy matrix transform)
// are clamped to 0 afterwards. Applying it twice is the same as once.
func GamutClamp(r, g, b float64) (float64, float64, float64) {
	m := math.Max(r, math.Max(g, b))
	if m > 1 {
		r /= m
		g /= m
		b /= m
	}
	return clamp01(r), clamp01(g), clamp01(b)
}

// RGBToXY converts an RGB colour to a CIE xy chromaticity coordinate,
// rounded to 4 decimal places. For pure black the coordinate is undefined
// (X+Y+Z is zero) and ok is false; callers must special-case zero
// brightness before converting.
func RGBToXY(rgb models.RGB) (models.XY, bool) {
	r := float64(rgb.R) / 255
	g := float64(rgb.G) / 255
	b := float64(rgb.B) / 255

	// linear sRGB -> CIE XYZ
	x := 0.4124*r + 0.3576*g + 0.1805*b
	y := 0.2126*r + 0.7152*g + 0.0722*b
	z := 0.0193*r + 0.1192*g + 0.9505*b

	sum := x + y + z
	if sum == 0 {
		return models.XY{}, false
	}

	return models.XY{
		X: math.Round(x/sum*10000) / 10000,
		Y: math.Round(y/sum*10000) / 10000,
	}, true
}

// XYToRGB converts a CIE xy chromaticity coordinate to RGB at full
// luminance; brightness is applied separately by the caller. A coordinate
// with y == 0 has no defined luminance and yields white, never NaN.
func XYToRGB(xy models.XY) models.RGB {
	if xy.Y == 0 {
		return models.RGB{R: 255, G: 255, B: 255}
	}

	// reconstruct XYZ assuming max luminance
	yLum := 1.0
	x := (yLum / xy.Y) * xy.X
	z := (yLum / xy.Y) * (1 - xy.X - xy.Y)

	// Wide RGB D65 inverse matrix
	r := x*1.656492 - yLum*0.354851 - z*0.255038
	g := -x*0.707196 + yLum*1.655397 + z*0.036152
	b := x*0.051713 - yLum*0.121364 + z*1.011530

	r, g, b = GamutClamp(r, g, b)

	return models.RGB{
		R: int(math.Round(r * 255)),
		G: int(math.Round(g * 255)),
		B: int(math.Round(b * 255)),
	}
}

// HSVToRGB converts device-scaled hue/sat/brightness to RGB. A hue of
// 65535 is a full turn and behaves identically to 0.
func HSVToRGB(hue int, sat int, bri int) models.RGB {
	h := float64(hue) / constants.HueMax
	s := float64(sat) / constants.SaturationMax
	v := float64(bri) / constants.BrightnessMax

	// wrap a full turn back to 0
	h = math.Mod(h, 1)

	c := v * s
	x := c * (1 - math.Abs(math.Mod(h*6, 2)-1))
	m := v - c

	var r, g, b float64
	switch int(h * 6) {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return models.RGB{
		R: int(math.Round((r + m) * 255)),
		G: int(math.Round((g + m) * 255)),
		B: int(math.Round((b + m) * 255)),
	}
}

// RGBToHSV converts an RGB colour to the device hue/sat/brightness scales.
func RGBToHSV(rgb models.RGB) (hue int, sat int, bri int) {
	r := float64(rgb.R) / 255
	g := float64(rgb.G) / 255
	b := float64(rgb.B) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	diff := max - min

	var deg float64
	switch {
	case diff == 0:
		deg = 0
	case max == r:
		deg = 60 * math.Mod((g-b)/diff, 6)
	case max == g:
		deg = 60 * ((b-r)/diff + 2)
	default:
		deg = 60 * ((r-g)/diff + 4)
	}
	if deg < 0 {
		deg += 360
	}

	var s float64
	if max > 0 {
		s = diff / max
	}

	hue = int(math.Round(deg / 360 * constants.HueMax))
	sat = int(math.Round(s * constants.SaturationMax))
	bri = int(math.Round(max * constants.BrightnessMax))
	return hue, sat, bri
}

// MirekToRGB converts a mired colour temperature to RGB using the
// Tanner-Helland piecewise approximation of the Planckian locus. This
// conversion is one-way; there is no RGB -> mired inverse.
func MirekToRGB(mirek int) models.RGB {
	kelvin := constants.MirekScale / float64(mirek)
	t := kelvin / 100

	var r, g, b float64

	if t <= constants.KelvinBranchPoint/100 {
		r = 255
		g = 99.4708025861*math.Log(t) - 161.1195681661
	} else {
		r = 329.698727446 * math.Pow(t-60, -0.1332047592)
		g = 288.1221695283 * math.Pow(t-60, -0.0755148492)
	}

	if t >= constants.KelvinBranchPoint/100 {
		b = 255
	} else if t <= 19 {
		b = 0
	} else {
		b = 138.5177312231*math.Log(t-10) - 305.0447927307
	}

	return models.RGB{
		R: int(math.Round(clamp(r, 0, 255))),
		G: int(math.Round(clamp(g, 0, 255))),
		B: int(math.Round(clamp(b, 0, 255))),
	}
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func clamp(v float64, min float64, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
