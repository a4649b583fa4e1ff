// Package role restricts authenticated routes to particular account kinds.
package role

import (
	"log/slog"
	"net/http"
	"slices"

	id "carenest/pkg/domain"
	dErrors "carenest/pkg/domain-errors"
	"carenest/pkg/platform/httputil"
	"carenest/pkg/requestcontext"
)

// Require must run after auth.RequireAuth.
func Require(logger *slog.Logger, allowed ...id.AccountType) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			got := requestcontext.AccountType(ctx)
			if !slices.Contains(allowed, got) {
				logger.WarnContext(ctx, "forbidden - account type not allowed",
					"request_id", requestcontext.RequestID(ctx),
					"account_type", got,
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeForbidden, "Not authorized to access this route"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
