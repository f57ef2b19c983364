package model

import (
	"chrono/shared/model"
	"time"
)

const (
	TableName  = "events"
	EntityName = "event"

	FieldID        = "id"
	FieldName      = "name"
	FieldTimezone  = "timezone"
	FieldStartTime = "start_time"
	FieldEndTime   = "end_time"
	FieldCreatedBy = "created_by"
)

// Event stores its instants in UTC and remembers the IANA zone the event
// belongs to, so every reader can recover the organizer's wall clock.
type Event struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Timezone  string    `db:"timezone"`
	StartTime time.Time `db:"start_time"`
	EndTime   time.Time `db:"end_time"`
	model.Metadata
}
