package timezone_test

import (
	"chrono/shared/timezone"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailable(t *testing.T) {
	zones := timezone.Available()

	require.NotEmpty(t, zones)
	assert.True(t, sort.StringsAreSorted(zones), "expected zone list to be ordered")

	// Every enumerated identifier must resolve against the host database.
	for _, name := range zones {
		_, err := time.LoadLocation(name)
		require.NoError(t, err, "zone %s does not resolve", name)
	}
}

func TestAvailableIsStable(t *testing.T) {
	first := timezone.Available()
	second := timezone.Available()

	// Computed once, returned as-is afterwards.
	assert.Equal(t, len(first), len(second))
	if len(first) > 0 {
		assert.Equal(t, &first[0], &second[0], "expected the cached slice, not a rescan")
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, timezone.IsValid("UTC"))
	assert.True(t, timezone.IsValid("America/Chicago"))
	assert.True(t, timezone.IsValid("America/Los_Angeles"))
	assert.True(t, timezone.IsValid("Asia/Jakarta"))

	assert.False(t, timezone.IsValid("Mars/Phobos"))
	assert.False(t, timezone.IsValid(""))
	assert.False(t, timezone.IsValid("america/chicago"), "identifiers are case sensitive")
}

func TestDeploymentZoneIsEnumerated(t *testing.T) {
	assert.True(t, timezone.IsValid(timezone.CurrentName()))
}
