package dto_test

import (
	"context"
	"testing"
	"time"

	"chrono/internal/domains/event/model"
	"chrono/internal/domains/event/model/dto"
	gModel "chrono/shared/model"
	"chrono/shared/timezone"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEventRequest_ToModel(t *testing.T) {
	req := dto.CreateEventRequest{
		Name:      "Launch Party",
		Timezone:  "America/Los_Angeles",
		StartTime: "2025-02-20 16:20:00",
		EndTime:   "2025-02-20 18:00:00",
	}

	userID := "test-user-id"
	mod, err := req.ToModel(userID)
	require.NoError(t, err)

	assert.NotEmpty(t, mod.ID, "expected ID to be generated")
	assert.Equal(t, req.Name, mod.Name)
	assert.Equal(t, "America/Los_Angeles", mod.Timezone)
	assert.Equal(t, userID, mod.CreatedBy)
	assert.Equal(t, userID, mod.ModifiedBy)
	assert.False(t, mod.CreatedAt.IsZero(), "expected CreatedAt to be set")

	// 16:20 in Los Angeles during PST is 00:20 UTC the next day.
	assert.Equal(t, time.Date(2025, 2, 21, 0, 20, 0, 0, time.UTC), mod.StartTime)
	assert.Equal(t, time.UTC, mod.StartTime.Location())
}

func TestCreateEventRequest_ToModelInterpretsZonePerRequest(t *testing.T) {
	tests := []struct {
		zone    string
		wantUTC time.Time
	}{
		{"America/Los_Angeles", time.Date(2025, 2, 21, 0, 20, 0, 0, time.UTC)},
		{"America/Denver", time.Date(2025, 2, 20, 23, 20, 0, 0, time.UTC)},
		{"America/Chicago", time.Date(2025, 2, 20, 22, 20, 0, 0, time.UTC)},
		{"America/New_York", time.Date(2025, 2, 20, 21, 20, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.zone, func(t *testing.T) {
			req := dto.CreateEventRequest{
				Name:      "Same Wall Clock",
				Timezone:  tt.zone,
				StartTime: "2025-02-20 16:20:00",
				EndTime:   "2025-02-20 17:20:00",
			}

			mod, err := req.ToModel("test-user")
			require.NoError(t, err)
			assert.Equal(t, tt.wantUTC, mod.StartTime)
		})
	}
}

func TestCreateEventRequest_ToModelDefaultsToDeploymentZone(t *testing.T) {
	req := dto.CreateEventRequest{
		Name:      "No Zone Given",
		StartTime: "2025-02-20 16:20:00",
		EndTime:   "2025-02-20 17:20:00",
	}

	mod, err := req.ToModel("test-user")
	require.NoError(t, err)
	assert.Equal(t, timezone.CurrentName(), mod.Timezone)
}

func TestCreateEventRequest_ToModelRejectsBadInput(t *testing.T) {
	req := dto.CreateEventRequest{
		Name:      "Broken",
		Timezone:  "America/Chicago",
		StartTime: "not-a-datetime",
		EndTime:   "2025-02-20 17:20:00",
	}

	_, err := req.ToModel("test-user")
	assert.Error(t, err)
}

func TestBulkCreateEventsRequest_ToModels(t *testing.T) {
	req := dto.BulkCreateEventsRequest{
		Events: []dto.CreateEventRequest{
			{Name: "First", Timezone: "America/Chicago", StartTime: "2025-02-20 16:20:00", EndTime: "2025-02-20 17:20:00"},
			{Name: "Second", Timezone: "America/New_York", StartTime: "2025-02-20 16:20:00", EndTime: "2025-02-20 17:20:00"},
		},
	}

	models, err := req.ToModels("test-user")
	require.NoError(t, err)
	require.Len(t, models, 2)
	assert.Equal(t, time.Date(2025, 2, 20, 22, 20, 0, 0, time.UTC), models[0].StartTime)
	assert.Equal(t, time.Date(2025, 2, 20, 21, 20, 0, 0, time.UTC), models[1].StartTime)
}

func TestEventResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	eventModel := model.Event{
		ID:        "test-id",
		Name:      "Launch Party",
		Timezone:  "America/Los_Angeles",
		StartTime: time.Date(2025, 2, 21, 0, 20, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 2, 21, 2, 0, 0, 0, time.UTC),
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}

	var response dto.EventResponse
	err := response.FromModel(context.Background(), eventModel)
	require.NoError(t, err)

	assert.Equal(t, eventModel.ID, response.ID)
	assert.Equal(t, eventModel.Name, response.Name)
	assert.Equal(t, "America/Los_Angeles", response.Timezone)
	assert.Equal(t, "2025-02-21T00:20:00Z", response.StartTime)

	// The event's own wall clock, offset stripped.
	wantStart := civil.DateTime{
		Date: civil.Date{Year: 2025, Month: time.February, Day: 20},
		Time: civil.Time{Hour: 16, Minute: 20},
	}
	assert.Equal(t, wantStart, response.DisplayStartTime)
	assert.Equal(t, eventModel.CreatedBy, response.CreatedBy)
}

func TestEventResponse_FromModelUsesActiveTimezone(t *testing.T) {
	denver, err := timezone.Location("America/Denver")
	require.NoError(t, err)

	eventModel := model.Event{
		ID:        "test-id",
		Name:      "Launch Party",
		Timezone:  "America/Los_Angeles",
		StartTime: time.Date(2025, 2, 21, 0, 20, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 2, 21, 2, 0, 0, 0, time.UTC),
	}

	ctx := timezone.NewContext(context.Background(), denver)

	var response dto.EventResponse
	require.NoError(t, response.FromModel(ctx, eventModel))

	// Viewer in Denver sees 17:20 local, while the event's own zone shows
	// 16:20 regardless of the viewer.
	assert.Equal(t, "2025-02-20T17:20:00-07:00", response.LocalStartTime)
	assert.Equal(t, 16, response.DisplayStartTime.Time.Hour)
}

func TestEventResponse_FromModelUnknownZone(t *testing.T) {
	eventModel := model.Event{
		ID:        "test-id",
		Name:      "Orphaned",
		Timezone:  "Mars/Phobos",
		StartTime: time.Date(2025, 2, 21, 0, 20, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 2, 21, 2, 0, 0, 0, time.UTC),
	}

	var response dto.EventResponse
	err := response.FromModel(context.Background(), eventModel)
	assert.Error(t, err)
}

func TestUpdateEventRequest_ParseTimes(t *testing.T) {
	current := model.Event{
		ID:        "test-id",
		Timezone:  "America/Chicago",
		StartTime: time.Date(2025, 2, 20, 22, 20, 0, 0, time.UTC),
	}

	t.Run("reinterprets naive time in stored zone", func(t *testing.T) {
		req := dto.UpdateEventRequest{StartTime: "2025-02-20 16:20:00"}

		fields, err := req.ParseTimes(current)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 2, 20, 22, 20, 0, 0, time.UTC), fields[model.FieldStartTime])
	})

	t.Run("new zone wins for naive times", func(t *testing.T) {
		req := dto.UpdateEventRequest{Timezone: "America/New_York", StartTime: "2025-02-20 16:20:00"}

		fields, err := req.ParseTimes(current)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 2, 20, 21, 20, 0, 0, time.UTC), fields[model.FieldStartTime])
	})

	t.Run("zone change alone leaves instants untouched", func(t *testing.T) {
		req := dto.UpdateEventRequest{Timezone: "America/New_York"}

		fields, err := req.ParseTimes(current)
		require.NoError(t, err)
		assert.Empty(t, fields)
	})
}

func TestNewEventMessage(t *testing.T) {
	mod := model.Event{
		ID:        "test-id",
		Name:      "Launch Party",
		Timezone:  "America/Los_Angeles",
		StartTime: time.Date(2025, 2, 21, 0, 20, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 2, 21, 2, 0, 0, 0, time.UTC),
	}

	msg := dto.NewEventMessage(dto.EventActionCreated, mod)

	assert.Equal(t, dto.EventActionCreated, msg.Action)
	assert.Equal(t, "test-id", msg.ID)
	assert.Equal(t, "America/Los_Angeles", msg.Timezone)
	assert.Equal(t, "2025-02-21T00:20:00Z", msg.StartTime)
}
