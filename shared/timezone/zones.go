package timezone

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Sources mirror the lookup order of the Go runtime's tz database search.
var zoneSources = []string{
	"/usr/share/zoneinfo",
	"/usr/share/lib/zoneinfo",
	"/usr/lib/locale/TZ",
	"/etc/zoneinfo",
}

// Database metadata files shipped alongside the zone files.
var nonZoneFiles = map[string]struct{}{
	"leapseconds":       {},
	"leap-seconds.list": {},
	"tzdata.zi":         {},
	"zone.tab":          {},
	"zone1970.tab":      {},
	"zonenow.tab":       {},
	"iso3166.tab":       {},
	"posixrules":        {},
	"SECURITY":          {},
	"README":            {},
	"+VERSION":          {},
}

var (
	zonesOnce sync.Once
	zoneNames []string
	zoneSet   map[string]struct{}
)

// Available returns the ordered list of IANA zone identifiers known to the
// host platform. The scan runs once per process and the result is never
// mutated afterwards; callers must treat the slice as read-only. The host
// database can change between deploys, so an identifier persisted under one
// database version may be absent under another.
func Available() []string {
	zonesOnce.Do(loadZones)

	return zoneNames
}

// IsValid reports whether name is a member of the valid-identifier set.
func IsValid(name string) bool {
	zonesOnce.Do(loadZones)

	_, ok := zoneSet[name]

	return ok
}

func loadZones() {
	zoneSet = make(map[string]struct{})

	for _, source := range zoneSources {
		info, err := os.Stat(source)
		if err != nil || !info.IsDir() {
			continue
		}

		walkZoneSource(source)

		break
	}

	// UTC is compiled into the runtime and not always a file on disk.
	zoneSet["UTC"] = struct{}{}

	zoneNames = make([]string, 0, len(zoneSet))
	for name := range zoneSet {
		zoneNames = append(zoneNames, name)
	}

	sort.Strings(zoneNames)

	log.Info().Int("count", len(zoneNames)).Msg("Timezone database enumerated")
}

func walkZoneSource(source string) {
	err := filepath.WalkDir(source, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr
		}

		base := entry.Name()

		if entry.IsDir() {
			// The right/ and posix/ trees duplicate every zone.
			if base == "right" || base == "posix" {
				return fs.SkipDir
			}

			return nil
		}

		if _, skip := nonZoneFiles[base]; skip {
			return nil
		}

		name, relErr := filepath.Rel(source, path)
		if relErr != nil {
			return nil //nolint:nilerr
		}

		name = filepath.ToSlash(name)

		// Canonical identifiers start with an uppercase letter
		// ("America/Chicago", "UTC"); lowercase entries are aliases and
		// helper files.
		if name == "" || name[0] < 'A' || name[0] > 'Z' {
			return nil
		}

		if strings.ContainsAny(name, " ") {
			return nil
		}

		if _, loadErr := time.LoadLocation(name); loadErr != nil {
			return nil
		}

		zoneSet[name] = struct{}{}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("source", source).Msg("Failed walking timezone database")
	}
}
