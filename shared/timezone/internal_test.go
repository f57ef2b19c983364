package timezone

import (
	"testing"
	"time"
)

// configure runs once at startup against APP_TIMEZONE; exercising it here
// checks the deployment-default semantics without re-running package init.
func TestConfigure(t *testing.T) {
	original := appLocation
	defer func() { appLocation = original }()

	configure("America/Chicago")

	if got := CurrentName(); got != "America/Chicago" {
		t.Errorf("CurrentName() = %q, want %q", got, "America/Chicago")
	}

	if loc := GetLocation(); loc.String() != "America/Chicago" {
		t.Errorf("GetLocation() = %q, want %q", loc, "America/Chicago")
	}
}

func TestConfigureUnknownZoneFallsBackToUTC(t *testing.T) {
	original := appLocation
	defer func() { appLocation = original }()

	configure("Mars/Phobos")

	if appLocation != time.UTC {
		t.Errorf("appLocation = %v, want UTC", appLocation)
	}
}
