package lighting

import (
	"strconv"
	"strings"
	"time"

	"github.com/nathan-osman/go-sunrise"
	"github.com/spf13/viper"

	"github.com/lumeaddon/lume/internal/models"
	"github.com/lumeaddon/lume/internal/profile"
)

const clockFormat = "15:04:05"

// quietWindow resolves the quiet-hours window for the generation date.
// With Auto set the window runs from local sunset to local sunrise for
// the configured geo location; otherwise the profile times are used
// as-is. Empty from/to with a nil error means quiet hours are off.
func quietWindow(p models.Profile, baseDate time.Time) (from, to string, err error) {
	if !p.QuietHours.Enabled {
		return "", "", nil
	}
	if !p.QuietHours.Auto {
		return p.QuietHours.From, p.QuietHours.To, nil
	}

	latLng := strings.Split(viper.GetString("geoLocation"), ",")
	if len(latLng) != 2 {
		return "", "", &profile.ValidationError{
			Field:  "quietHours.auto",
			Reason: "auto quiet hours need a geoLocation option of the form \"lat,lng\"",
		}
	}
	lat, errLat := strconv.ParseFloat(strings.TrimSpace(latLng[0]), 64)
	lng, errLng := strconv.ParseFloat(strings.TrimSpace(latLng[1]), 64)
	if errLat != nil || errLng != nil {
		return "", "", &profile.ValidationError{
			Field:  "quietHours.auto",
			Reason: "the geoLocation option is not a coordinate pair",
		}
	}

	rise, set := sunrise.SunriseSunset(
		lat, lng,
		baseDate.Year(), baseDate.Month(), baseDate.Day(),
	)

	return set.Local().Format(clockFormat), rise.Local().Format(clockFormat), nil
}
