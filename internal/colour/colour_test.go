package colour_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prism-home/prism/internal/colour"
	"github.com/prism-home/prism/internal/models"
)

func Test_GamutClamp(t *testing.T) {

	t.Run("should rescale proportionally when a channel exceeds 1", func(t *testing.T) {
		t.Parallel()
		r, g, b := colour.GamutClamp(2, 1, 0.5)
		assert.InDelta(t, 1.0, r, 0.0001)
		assert.InDelta(t, 0.5, g, 0.0001)
		assert.InDelta(t, 0.25, b, 0.0001)
	})

	t.Run("should clamp negative channels to zero", func(t *testing.T) {
		t.Parallel()
		r, g, b := colour.GamutClamp(-0.2, 0.5, 0.8)
		assert.Equal(t, 0.0, r)
		assert.InDelta(t, 0.5, g, 0.0001)
		assert.InDelta(t, 0.8, b, 0.0001)
	})

	t.Run("should leave in-range values untouched", func(t *testing.T) {
		t.Parallel()
		r, g, b := colour.GamutClamp(0.1, 0.2, 0.3)
		assert.InDelta(t, 0.1, r, 0.0001)
		assert.InDelta(t, 0.2, g, 0.0001)
		assert.InDelta(t, 0.3, b, 0.0001)
	})

	t.Run("should be idempotent", func(t *testing.T) {
		t.Parallel()
		r1, g1, b1 := colour.GamutClamp(1.8, -0.4, 0.9)
		r2, g2, b2 := colour.GamutClamp(r1, g1, b1)
		assert.Equal(t, r1, r2)
		assert.Equal(t, g1, g2)
		assert.Equal(t, b1, b2)
	})

}

func Test_RGBToXY(t *testing.T) {

	t.Run("should convert pure red to its chromaticity coordinate", func(t *testing.T) {
		t.Parallel()
		xy, ok := colour.RGBToXY(models.RGB{R: 255, G: 0, B: 0})
		assert.True(t, ok)
		assert.InDelta(t, 0.6401, xy.X, 0.0001)
		assert.InDelta(t, 0.33, xy.Y, 0.0001)
	})

	t.Run("should report pure black as undefined", func(t *testing.T) {
		t.Parallel()
		_, ok := colour.RGBToXY(models.RGB{})
		assert.False(t, ok)
	})

	t.Run("should round coordinates to 4 decimal places", func(t *testing.T) {
		t.Parallel()
		xy, ok := colour.RGBToXY(models.RGB{R: 12, G: 34, B: 56})
		assert.True(t, ok)
		assert.Equal(t, xy.X, float64(int(xy.X*10000+0.5))/10000)
		assert.Equal(t, xy.Y, float64(int(xy.Y*10000+0.5))/10000)
	})

}

func Test_XYToRGB(t *testing.T) {

	t.Run("should reconstruct a red-dominant colour from the red coordinate", func(t *testing.T) {
		t.Parallel()
		rgb := colour.XYToRGB(models.XY{X: 0.6401, Y: 0.33})
		assert.Equal(t, 255, rgb.R)
		assert.InDelta(t, 26, rgb.G, 3)
		assert.InDelta(t, 6, rgb.B, 3)
	})

	t.Run("should keep every channel in range for coordinates outside the gamut", func(t *testing.T) {
		t.Parallel()
		rgb := colour.XYToRGB(models.XY{X: 0.8, Y: 0.2})
		for _, ch := range []int{rgb.R, rgb.G, rgb.B} {
			assert.GreaterOrEqual(t, ch, 0)
			assert.LessOrEqual(t, ch, 255)
		}
	})

	t.Run("should fall back to white for the y=0 singularity", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, models.RGB{R: 255, G: 255, B: 255}, colour.XYToRGB(models.XY{X: 0.5, Y: 0}))
	})

}

// The forward transform targets sRGB while the inverse targets the wider
// bridge gamut, so a round trip preserves the dominant channel and the
// channel ordering rather than the exact values. These fixtures pin the
// reconstructed colours for a spread of chromaticities.
func Test_XYRoundTrip(t *testing.T) {

	tests := []struct {
		name    string
		rgb     models.RGB
		wantXY  models.XY
		wantRGB models.RGB
	}{
		{name: "red", rgb: models.RGB{R: 255, G: 0, B: 0}, wantXY: models.XY{X: 0.6401, Y: 0.33}, wantRGB: models.RGB{R: 255, G: 26, B: 6}},
		{name: "green", rgb: models.RGB{R: 0, G: 255, B: 0}, wantXY: models.XY{X: 0.3, Y: 0.6}, wantRGB: models.RGB{R: 84, G: 255, B: 14}},
		{name: "blue", rgb: models.RGB{R: 0, G: 0, B: 255}, wantXY: models.XY{X: 0.15, Y: 0.06}, wantRGB: models.RGB{R: 8, G: 7, B: 255}},
		{name: "orange", rgb: models.RGB{R: 255, G: 128, B: 0}, wantXY: models.XY{X: 0.4763, Y: 0.46}, wantRGB: models.RGB{R: 255, G: 179, B: 14}},
		{name: "white", rgb: models.RGB{R: 255, G: 255, B: 255}, wantXY: models.XY{X: 0.3127, Y: 0.329}, wantRGB: models.RGB{R: 233, G: 253, B: 255}},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			xy, ok := colour.RGBToXY(test.rgb)
			assert.True(t, ok)
			assert.InDelta(t, test.wantXY.X, xy.X, 0.0001)
			assert.InDelta(t, test.wantXY.Y, xy.Y, 0.0001)

			back := colour.XYToRGB(xy)
			assert.InDelta(t, test.wantRGB.R, back.R, 3)
			assert.InDelta(t, test.wantRGB.G, back.G, 3)
			assert.InDelta(t, test.wantRGB.B, back.B, 3)

			// the brightest channel saturates at full luminance
			assert.Equal(t, 255, maxChannel(back))
		})
	}

}

func maxChannel(rgb models.RGB) int {
	m := rgb.R
	if rgb.G > m {
		m = rgb.G
	}
	if rgb.B > m {
		m = rgb.B
	}
	return m
}

func Test_HSVRoundTrip(t *testing.T) {

	tests := []struct {
		name string
		rgb  models.RGB
	}{
		{name: "red", rgb: models.RGB{R: 255, G: 0, B: 0}},
		{name: "green", rgb: models.RGB{R: 0, G: 255, B: 0}},
		{name: "blue", rgb: models.RGB{R: 0, G: 0, B: 255}},
		{name: "white", rgb: models.RGB{R: 255, G: 255, B: 255}},
		{name: "black", rgb: models.RGB{R: 0, G: 0, B: 0}},
		{name: "dull blue", rgb: models.RGB{R: 12, G: 34, B: 56}},
		{name: "orange", rgb: models.RGB{R: 200, G: 100, B: 50}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			hue, sat, bri := colour.RGBToHSV(tc.rgb)
			back := colour.HSVToRGB(hue, sat, bri)
			assert.InDelta(t, tc.rgb.R, back.R, 1)
			assert.InDelta(t, tc.rgb.G, back.G, 1)
			assert.InDelta(t, tc.rgb.B, back.B, 1)
		})
	}

}

func Test_RGBToHSV(t *testing.T) {

	t.Run("should convert pure red to the device scales", func(t *testing.T) {
		t.Parallel()
		hue, sat, bri := colour.RGBToHSV(models.RGB{R: 255, G: 0, B: 0})
		assert.Equal(t, 0, hue)
		assert.Equal(t, 254, sat)
		assert.Equal(t, 254, bri)
	})

	t.Run("should report greys as unsaturated", func(t *testing.T) {
		t.Parallel()
		hue, sat, _ := colour.RGBToHSV(models.RGB{R: 128, G: 128, B: 128})
		assert.Equal(t, 0, hue)
		assert.Equal(t, 0, sat)
	})

}

func Test_HueWraparound(t *testing.T) {

	t.Run("a full-turn hue should behave identically to zero", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, colour.HSVToRGB(0, 254, 254), colour.HSVToRGB(65535, 254, 254))
	})

}

func Test_MirekToRGB(t *testing.T) {

	t.Run("should produce a warm colour at the warm end of the range", func(t *testing.T) {
		t.Parallel()
		rgb := colour.MirekToRGB(500) // 2000K
		assert.Equal(t, 255, rgb.R)
		assert.Greater(t, rgb.G, rgb.B)
		assert.Less(t, rgb.B, 40)
	})

	t.Run("should produce near-white at the cool end of the range", func(t *testing.T) {
		t.Parallel()
		rgb := colour.MirekToRGB(153) // ~6500K
		assert.Equal(t, 255, rgb.R)
		assert.Greater(t, rgb.G, 245)
		assert.Greater(t, rgb.B, 245)
	})

	t.Run("should have no visible seam where the curve branches meet", func(t *testing.T) {
		t.Parallel()
		// 151 and 152 mired straddle the 6600K branch point
		below := colour.MirekToRGB(152)
		above := colour.MirekToRGB(151)
		assert.InDelta(t, below.R, above.R, 6)
		assert.InDelta(t, below.G, above.G, 6)
		assert.InDelta(t, below.B, above.B, 6)
	})

}
