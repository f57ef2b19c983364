package user

import (
	"chrono/infras/otel"
	"chrono/internal/domains/user/model/dto"
	"chrono/internal/domains/user/service"
	"chrono/shared/constant"
	"chrono/shared/failure"
	"chrono/shared/validator"
	"chrono/transport/http/middleware"
	"chrono/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.User
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.User, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/users", func(routerGroup chi.Router) {
		routerGroup.Group(func(protected chi.Router) {
			protected.Use(handler.middleware.Auth)
			protected.Get("/me", handler.GetProfile)
			protected.Put("/me/timezone", handler.UpdateTimezone)
		})
	})
}

// GetProfile returns the authenticated user's profile.
// @Summary Get own profile
// @Description Retrieve the authenticated user's profile, including the preferred timezone.
// @Tags User
// @Accept json
// @Produce json
// @Success 200 {object} dto.UserResponse "User profile"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/me [get]
// @Security BearerAuth
func (handler *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProfile")
	defer scope.End()

	id, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if id == "" {
		response.WithError(w, failure.Unauthorized("missing user identity"))

		return
	}

	user, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get profile")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Profile retrieved successfully")

	response.WithJSON(w, http.StatusOK, user)
}

// UpdateTimezone changes the authenticated user's preferred timezone.
// @Summary Update own timezone preference
// @Description Set the preferred timezone. The identifier must exist in the host timezone database; anything else is rejected with 400.
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.UpdateTimezoneRequest true "Update Timezone Request"
// @Success 200 {object} response.Message "Timezone updated successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/me/timezone [put]
// @Security BearerAuth
func (handler *Handler) UpdateTimezone(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTimezone")
	defer scope.End()

	id, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if id == "" {
		response.WithError(w, failure.Unauthorized("missing user identity"))

		return
	}

	req := dto.UpdateTimezoneRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateTimezone(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update timezone")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Timezone updated successfully by user " + id)

	response.WithMessage(w, http.StatusOK, "Timezone updated successfully")
}
