package dto

import (
	"chrono/internal/domains/user/model"
	"chrono/shared/constant"
	gDto "chrono/shared/dto"
	"context"
)

// UpdateTimezoneRequest changes a user's preferred zone. The iana_tz tag
// only admits identifiers enumerated from the host timezone database, so
// made-up names are rejected before the service runs.
type UpdateTimezoneRequest struct {
	Timezone string `db:"timezone" json:"timezone" validate:"required,iana_tz"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Timezone  string `json:"timezone"`
	Active    bool   `json:"active"`
	LastLogin string `json:"last_login,omitempty"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(ctx context.Context, mod model.User) {
	r.ID = mod.ID
	r.Email = mod.Email
	r.Timezone = mod.Timezone
	r.Active = mod.Active

	if mod.LastLogin != nil {
		r.LastLogin = mod.LastLogin.UTC().Format(constant.DateFormat)
	}

	r.Metadata.FromModel(ctx, mod.Metadata)
}
