// Package timezone owns every timezone concern in the application.
//
// Instants are stored in UTC everywhere; a zone name is presentation
// metadata. This package provides the three ways a stored instant gets
// rendered:
//
//  1. In the deployment's configured zone (APP_TIMEZONE):
//     now := timezone.Now()
//     appTime := timezone.ToAppTime(someTime)
//
//  2. In the ambient active timezone of the current request, carried
//     explicitly through context rather than in hidden global state:
//     ctx := timezone.NewContext(ctx, loc)
//     loc := timezone.FromContext(ctx)
//
//  3. In a record's own stored zone, bypassing the ambient zone entirely:
//     naive, err := timezone.Naive(event.StartTime, event.Timezone)
//
// Naive values (civil.DateTime) carry no offset and must be rendered
// verbatim by consumers; aware values are expected to be converted.
//
// The set of valid zone names is enumerated once from the host platform's
// timezone database via Available() and never changes for the life of the
// process. Use standard IANA identifiers like "UTC", "Asia/Jakarta",
// "America/New_York".
package timezone
