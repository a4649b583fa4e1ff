// Package auth authenticates bearer tokens and places the actor on the request context.
package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	id "carenest/pkg/domain"
	dErrors "carenest/pkg/domain-errors"
	"carenest/pkg/platform/httputil"
	"carenest/pkg/requestcontext"
)

// TokenValidator parses and verifies a bearer token.
type TokenValidator interface {
	ValidateToken(tokenString string) (*Claims, error)
}

// RevocationChecker reports whether a token id has been revoked by logout.
type RevocationChecker interface {
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
}

// Claims is the subset of token claims the middleware needs.
type Claims struct {
	AccountID   id.AccountID
	AccountType id.AccountType
	JTI         string
}

// RequireAuth rejects requests without a valid, unrevoked bearer token.
func RequireAuth(validator TokenValidator, revocations RevocationChecker, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			requestID := requestcontext.RequestID(ctx)

			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				logger.WarnContext(ctx, "unauthorized access - missing token",
					"request_id", requestID,
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "Not authorized, no token"))
				return
			}

			claims, err := validator.ValidateToken(strings.TrimSpace(token))
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"error", err,
					"request_id", requestID,
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "Not authorized, token failed"))
				return
			}

			if revocations != nil {
				if claims.JTI == "" {
					logger.WarnContext(ctx, "unauthorized access - missing token jti",
						"request_id", requestID,
					)
					httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "Not authorized, token failed"))
					return
				}
				revoked, err := revocations.IsTokenRevoked(ctx, claims.JTI)
				if err != nil {
					logger.ErrorContext(ctx, "failed to check token revocation",
						"error", err,
						"request_id", requestID,
					)
					httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to validate token"))
					return
				}
				if revoked {
					logger.WarnContext(ctx, "unauthorized access - token revoked",
						"jti", claims.JTI,
						"request_id", requestID,
					)
					httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "Token has been revoked"))
					return
				}
			}

			ctx = requestcontext.WithActor(ctx, claims.AccountID, claims.AccountType)
			ctx = requestcontext.WithTokenID(ctx, claims.JTI)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
