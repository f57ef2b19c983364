package timezone

import (
	"chrono/infras/otel"
	"chrono/shared/constant"
	"chrono/shared/timezone"
	"chrono/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	otel otel.Otel
}

func New(otel otel.Otel) Handler {
	return Handler{
		otel: otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/timezones", handler.GetTimezones)
}

type ListResponse struct {
	Default   string   `json:"default"`
	Timezones []string `json:"timezones"`
}

// GetTimezones lists the timezone identifiers a client may choose from.
// @Summary List supported timezones
// @Description Enumerate the IANA identifiers available on this deployment, along with the deployment default.
// @Tags Timezone
// @Accept json
// @Produce json
// @Success 200 {object} ListResponse "Supported timezones"
// @Router /v1/timezones [get]
func (handler *Handler) GetTimezones(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTimezones")
	defer scope.End()

	res := ListResponse{
		Default:   timezone.CurrentName(),
		Timezones: timezone.Available(),
	}

	scope.AddEvent("Timezones listed successfully")

	response.WithJSON(w, http.StatusOK, res)
}
