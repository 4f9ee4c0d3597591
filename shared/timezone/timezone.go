package timezone

import (
	"sync"
	"time"
	_ "time/tzdata"

	"frontdesk/config"

	"github.com/rs/zerolog/log"
)

var (
	location *time.Location
	loadOnce sync.Once
)

// load resolves APP_TIMEZONE once. Unknown or empty names fall back to UTC.
func load() *time.Location {
	loadOnce.Do(func() {
		location = resolve(config.Get().App.Timezone)
	})

	return location
}

func resolve(name string) *time.Location {
	if name == "" {
		log.Warn().Msg("No timezone configured, the hotel day follows UTC")

		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("Unknown timezone, the hotel day follows UTC")

		return time.UTC
	}

	log.Debug().Str("timezone", loc.String()).Msg("Hotel timezone loaded")

	return loc
}

// Now is the current wall clock of the hotel.
func Now() time.Time {
	return time.Now().In(load())
}

func ToAppTime(t time.Time) time.Time {
	return t.In(load())
}

func GetLocation() *time.Location {
	return load()
}

// Format renders t on the hotel clock.
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
