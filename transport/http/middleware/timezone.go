package middleware

import (
	"chrono/shared/constant"
	"chrono/shared/failure"
	"chrono/shared/timezone"
	"chrono/transport/http/response"
	"net/http"

	"github.com/rs/zerolog/log"
)

// ActiveTimezone activates the zone named by the X-Timezone header for the
// duration of the request. Responses render localized values in that zone;
// without the header the deployment zone stays active. An unknown identifier
// is rejected rather than silently ignored.
func (a *appMiddleware) ActiveTimezone(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := r.Header.Get(constant.RequestHeaderTimezone)
		if name == "" {
			next.ServeHTTP(w, r)

			return
		}

		// IsValid keeps aliases like "Local" out even though LoadLocation
		// would accept them.
		if !timezone.IsValid(name) {
			log.Warn().Str("timezone", name).Msg("request carried an unknown timezone")

			response.WithError(w, failure.InvalidTimezone)

			return
		}

		loc, err := timezone.Location(name)
		if err != nil {
			response.WithError(w, failure.InvalidTimezone)

			return
		}

		ctx := timezone.NewContext(r.Context(), loc)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
