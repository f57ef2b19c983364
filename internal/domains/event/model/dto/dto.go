package dto

import (
	"chrono/internal/domains/event/model"
	"chrono/shared"
	"chrono/shared/constant"
	gDto "chrono/shared/dto"
	gModel "chrono/shared/model"
	"chrono/shared/timezone"
	"context"
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// CreateEventRequest accepts start and end as naive wall-clock values in the
// NaiveDateTimeFormat layout. They are interpreted in the request's timezone
// when one is given, otherwise in the deployment zone, and stored as UTC.
type CreateEventRequest struct {
	Name      string `json:"name"       validate:"required,max=200"`
	Timezone  string `json:"timezone"   validate:"omitempty,iana_tz"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time"   validate:"required"`
}

func (c *CreateEventRequest) ToModel(user string) (model.Event, error) {
	zone := c.Timezone
	if zone == "" {
		zone = timezone.CurrentName()
	}

	startTime, err := timezone.ParseIn(constant.NaiveDateTimeFormat, c.StartTime, zone)
	if err != nil {
		return model.Event{}, fmt.Errorf("failed to parse start_time: %w", err)
	}

	endTime, err := timezone.ParseIn(constant.NaiveDateTimeFormat, c.EndTime, zone)
	if err != nil {
		return model.Event{}, fmt.Errorf("failed to parse end_time: %w", err)
	}

	return model.Event{
		ID:        uuid.NewString(),
		Name:      c.Name,
		Timezone:  zone,
		StartTime: startTime.UTC(),
		EndTime:   endTime.UTC(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type BulkCreateEventsRequest struct {
	Events []CreateEventRequest `json:"events" validate:"required,min=1,max=100,dive"`
}

func (c *BulkCreateEventsRequest) ToModels(user string) ([]model.Event, error) {
	models := make([]model.Event, len(c.Events))

	for i, req := range c.Events {
		mod, err := req.ToModel(user)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}

		models[i] = mod
	}

	return models, nil
}

// UpdateEventRequest changes fields in place. A new timezone alone leaves the
// stored instants untouched and only moves the displayed wall clock; naive
// start or end values are re-interpreted in the effective zone.
type UpdateEventRequest struct {
	Name      string `db:"name"       json:"name"       validate:"omitempty,max=200"`
	Timezone  string `db:"timezone"   json:"timezone"   validate:"omitempty,iana_tz"`
	StartTime string `json:"start_time" validate:"omitempty"`
	EndTime   string `json:"end_time"   validate:"omitempty"`
}

const (
	EventActionCreated = "created"
	EventActionUpdated = "updated"
)

// EventMessage is the payload published after a successful write. The zone
// travels with the UTC instants so consumers never guess at a wall clock.
type EventMessage struct {
	Action    string `json:"action"`
	ID        string `json:"id"`
	Name      string `json:"name"`
	Timezone  string `json:"timezone"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func NewEventMessage(action string, mod model.Event) EventMessage {
	return EventMessage{
		Action:    action,
		ID:        mod.ID,
		Name:      mod.Name,
		Timezone:  mod.Timezone,
		StartTime: mod.StartTime.UTC().Format(constant.DateFormat),
		EndTime:   mod.EndTime.UTC().Format(constant.DateFormat),
	}
}

// EventResponse renders each instant three ways: the UTC instant itself, the
// same instant in the caller's active timezone, and the event's own wall
// clock as a naive datetime.
type EventResponse struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Timezone         string         `json:"timezone"`
	StartTime        string         `json:"start_time"`
	EndTime          string         `json:"end_time"`
	LocalStartTime   string         `json:"local_start_time"`
	LocalEndTime     string         `json:"local_end_time"`
	DisplayStartTime civil.DateTime `json:"display_start_time"`
	DisplayEndTime   civil.DateTime `json:"display_end_time"`
	gDto.Metadata
}

func (r *EventResponse) FromModel(ctx context.Context, mod model.Event) error {
	displayStart, err := timezone.Naive(mod.StartTime, mod.Timezone)
	if err != nil {
		return fmt.Errorf("failed to localize start_time: %w", err)
	}

	displayEnd, err := timezone.Naive(mod.EndTime, mod.Timezone)
	if err != nil {
		return fmt.Errorf("failed to localize end_time: %w", err)
	}

	loc := timezone.FromContext(ctx)

	r.ID = mod.ID
	r.Name = mod.Name
	r.Timezone = mod.Timezone
	r.StartTime = mod.StartTime.UTC().Format(constant.DateFormat)
	r.EndTime = mod.EndTime.UTC().Format(constant.DateFormat)
	r.LocalStartTime = mod.StartTime.In(loc).Format(constant.DateFormat)
	r.LocalEndTime = mod.EndTime.In(loc).Format(constant.DateFormat)
	r.DisplayStartTime = displayStart
	r.DisplayEndTime = displayEnd
	r.Metadata.FromModel(ctx, mod.Metadata)

	return nil
}

type GetEventsResponse struct {
	Events    []EventResponse `json:"events"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetEventsResponse) FromModels(ctx context.Context, models []model.Event, totalData, limit int) error {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Events = make([]EventResponse, len(models))
	for i, mod := range models {
		if err := r.Events[i].FromModel(ctx, mod); err != nil {
			return err
		}
	}

	return nil
}

// EffectiveZone resolves the zone an update's naive datetimes are parsed in.
func (u *UpdateEventRequest) EffectiveZone(current model.Event) string {
	if u.Timezone != "" {
		return u.Timezone
	}

	return current.Timezone
}

// ParseTimes interprets the request's naive start and end values in the
// effective zone and returns the db columns to write, UTC-normalized.
func (u *UpdateEventRequest) ParseTimes(current model.Event) (map[string]any, error) {
	fields := map[string]any{}
	zone := u.EffectiveZone(current)

	if u.StartTime != "" {
		startTime, err := timezone.ParseIn(constant.NaiveDateTimeFormat, u.StartTime, zone)
		if err != nil {
			return nil, fmt.Errorf("failed to parse start_time: %w", err)
		}

		fields[model.FieldStartTime] = startTime.UTC()
	}

	if u.EndTime != "" {
		endTime, err := timezone.ParseIn(constant.NaiveDateTimeFormat, u.EndTime, zone)
		if err != nil {
			return nil, fmt.Errorf("failed to parse end_time: %w", err)
		}

		fields[model.FieldEndTime] = endTime.UTC()
	}

	return fields, nil
}
