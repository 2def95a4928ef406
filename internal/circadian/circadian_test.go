package circadian_test

import (
	"os"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/prism-home/prism/internal/circadian"
	"github.com/prism-home/prism/internal/constants"
)

func newService() *circadian.CircadianService {
	// at this lat/lng sunrise is around 06:00 UTC and sunset around 18:00 UTC
	viper.Set("geoLocation", "0,0")
	return circadian.NewCircadianService(log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel}))
}

func Test_SuggestMirek(t *testing.T) {

	srv := newService()
	baseDate := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("should suggest warm light in the middle of the night", func(t *testing.T) {
		assert.Equal(t, circadian.WarmMirek, srv.SuggestMirek(baseDate.Add(2*time.Hour)))
	})

	t.Run("should suggest cool light in the middle of the day", func(t *testing.T) {
		assert.Equal(t, circadian.CoolMirek, srv.SuggestMirek(baseDate.Add(12*time.Hour)))
	})

	t.Run("should suggest warm light late in the evening", func(t *testing.T) {
		assert.Equal(t, circadian.WarmMirek, srv.SuggestMirek(baseDate.Add(22*time.Hour)))
	})

	t.Run("should ramp between warm and cool through sunrise", func(t *testing.T) {
		rise, _ := srv.SunriseSunset(baseDate)
		suggested := srv.SuggestMirek(rise)

		mid := (circadian.WarmMirek + circadian.CoolMirek) / 2
		assert.InDelta(t, mid, suggested, 1)
	})

	t.Run("should ramp between cool and warm through sunset", func(t *testing.T) {
		_, set := srv.SunriseSunset(baseDate)

		before := srv.SuggestMirek(set.Add(-20 * time.Minute))
		after := srv.SuggestMirek(set.Add(20 * time.Minute))

		assert.Less(t, before, after)
		assert.Greater(t, before, circadian.CoolMirek)
		assert.Less(t, after, circadian.WarmMirek)
	})

	t.Run("should only ever suggest temperatures a bulb can accept", func(t *testing.T) {
		for hour := 0; hour < 24; hour++ {
			suggested := srv.SuggestMirek(baseDate.Add(time.Duration(hour) * time.Hour))
			assert.GreaterOrEqual(t, suggested, constants.MirekMin)
			assert.LessOrEqual(t, suggested, constants.MirekMax)
		}
	})

}
