// Package circadian suggests a colour temperature for the time of day,
// tracking the local sun: warm light before sunrise and after sunset,
// cool daylight in between, with a linear ramp through a transition
// window around each.
package circadian

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/nathan-osman/go-sunrise"
	"github.com/spf13/viper"
)

const WarmMirek = 450
const CoolMirek = 160

// the ramp between warm and cool is centred on sunrise/sunset
const transitionWindow = time.Hour

type CircadianService struct {
	logger *log.Logger
}

func NewCircadianService(logger *log.Logger) *CircadianService {
	return &CircadianService{logger: logger}
}

// SunriseSunset calculates the local sunrise and sunset for the day of t,
// from the configured geo location.
func (s *CircadianService) SunriseSunset(t time.Time) (time.Time, time.Time) {
	latLng := strings.Split(viper.GetString("geoLocation"), ",")
	lat, _ := strconv.ParseFloat(latLng[0], 64)
	lng, _ := strconv.ParseFloat(latLng[1], 64)

	rise, set := sunrise.SunriseSunset(
		lat, lng,
		t.Year(), t.Month(), t.Day(),
	)
	s.logger.Debug("Calculated local sunrise and sunset",
		"sunrise", rise.Local().Format("15:04"),
		"sunset", set.Local().Format("15:04"),
	)
	return rise, set
}

// SuggestMirek returns the colour temperature appropriate for the given
// moment, in mired.
func (s *CircadianService) SuggestMirek(t time.Time) int {
	rise, set := s.SunriseSunset(t)

	riseStart := rise.Add(-transitionWindow / 2)
	riseEnd := rise.Add(transitionWindow / 2)
	setStart := set.Add(-transitionWindow / 2)
	setEnd := set.Add(transitionWindow / 2)

	switch {
	case t.Before(riseStart) || !t.Before(setEnd):
		return WarmMirek
	case !t.Before(riseEnd) && t.Before(setStart):
		return CoolMirek
	case t.Before(riseEnd):
		// sunrise ramp, warm to cool
		return blendMirek(WarmMirek, CoolMirek, progress(t, riseStart))
	default:
		// sunset ramp, cool to warm
		return blendMirek(CoolMirek, WarmMirek, progress(t, setStart))
	}
}

func progress(t time.Time, windowStart time.Time) float64 {
	return t.Sub(windowStart).Seconds() / transitionWindow.Seconds()
}

func blendMirek(from int, to int, p float64) int {
	return int(math.Round(float64(from) + float64(to-from)*p))
}
