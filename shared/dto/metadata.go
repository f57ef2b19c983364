package dto

import (
	"chrono/shared/constant"
	"chrono/shared/model"
	"chrono/shared/timezone"
	"context"
)

type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
	CreatedBy  string `json:"created_by"`
	ModifiedBy string `json:"modified_by"`
}

// FromModel renders audit timestamps in the ambient active timezone of the
// request. Record-owned instants (event start and end) are rendered by the
// event DTOs instead, in the record's stored zone.
func (m *Metadata) FromModel(ctx context.Context, model model.Metadata) {
	loc := timezone.FromContext(ctx)

	m.CreatedAt = model.CreatedAt.In(loc).Format(constant.DateFormat)
	m.ModifiedAt = model.ModifiedAt.In(loc).Format(constant.DateFormat)
	m.CreatedBy = model.CreatedBy
	m.ModifiedBy = model.ModifiedBy
}
