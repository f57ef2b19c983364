package timezone

import (
	"chrono/config"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location
)

func init() {
	cfg := config.Get()

	if cfg.App.Timezone == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		cfg.App.Timezone = "UTC"
	}

	configure(cfg.App.Timezone)
}

// configure resolves the deployment zone once. Everything that needs a
// default zone reads the result; a later change to the deployment's
// configuration does not reach records created before the restart.
func configure(name string) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Jakarta', 'UTC', 'America/New_York'")
		appLocation = time.UTC

		return
	}

	appLocation = loc
	log.Info().
		Str("timezone", name).
		Str("location", loc.String()).
		Msg("Application timezone initialized")
}

// Now returns the current time in the application timezone
func Now() time.Time {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, using UTC")
		return time.Now().UTC()
	}
	return time.Now().In(appLocation)
}

// CurrentName returns the deployment zone's IANA identifier. It is the
// default value for stored timezone fields.
func CurrentName() string {
	return GetLocation().String()
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, using UTC")
		return t.UTC()
	}
	return t.In(appLocation)
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, returning UTC")
		return time.UTC
	}
	return appLocation
}

// Location resolves an IANA identifier against the host timezone database.
// Unlike the conversions bound to the application zone, the lookup failure
// is the caller's problem: a stored identifier that no longer resolves is a
// data-integrity error and is surfaced, not masked.
func Location(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", name, err)
	}

	return loc, nil
}

// Localtime converts an absolute instant into the named zone, keeping the
// offset attached.
func Localtime(t time.Time, name string) (time.Time, error) {
	loc, err := Location(name)
	if err != nil {
		return time.Time{}, err
	}

	return t.In(loc), nil
}

// Naive converts an absolute instant into the wall-clock value the named
// zone shows at that instant and strips the offset. The result is rendered
// verbatim downstream; no ambient-zone conversion applies to it. Seasonal
// offset transitions in effect at the instant are honored.
func Naive(t time.Time, name string) (civil.DateTime, error) {
	local, err := Localtime(t, name)
	if err != nil {
		return civil.DateTime{}, err
	}

	return civil.DateTimeOf(local), nil
}

// ParseIn interprets a wall-clock string as local time in the named zone and
// returns the absolute instant it denotes. Across a fall-back transition the
// wall clock repeats itself and the mapping is ambiguous; the runtime picks
// one of the two instants.
func ParseIn(layout, value, name string) (time.Time, error) {
	loc, err := Location(name)
	if err != nil {
		return time.Time{}, err
	}

	t, err := time.ParseInLocation(layout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %q in zone %s: %w", value, name, err)
	}

	return t, nil
}

// Parse parses a time string in the application timezone
func Parse(layout, value string) (time.Time, error) {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, parsing in UTC")
		return time.Parse(layout, value)
	}
	return time.ParseInLocation(layout, value, appLocation)
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
