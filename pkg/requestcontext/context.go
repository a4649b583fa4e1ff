// Package requestcontext provides HTTP-independent context accessors for request-scoped values.
//
// Middleware sets values; services read them without importing net/http.
//
//	actor := requestcontext.Actor(ctx)
//	requestID := requestcontext.RequestID(ctx)
//	now := requestcontext.Now(ctx)
//
// Tests inject values directly:
//
//	ctx = requestcontext.WithTime(ctx, fixedTime)
//	ctx = requestcontext.WithActor(ctx, accountID, domain.AccountFamily)
package requestcontext

import (
	"context"
	"time"

	id "carenest/pkg/domain"
)

type (
	accountIDKey   struct{}
	accountTypeKey struct{}
	tokenIDKey     struct{}
	clientIPKey    struct{}
	userAgentKey   struct{}
	requestIDKey   struct{}
	requestTimeKey struct{}
)

// Exported context keys for direct use in tests that need context.WithValue.
var (
	ContextKeyAccountID   = accountIDKey{}
	ContextKeyAccountType = accountTypeKey{}
	ContextKeyTokenID     = tokenIDKey{}
	ContextKeyClientIP    = clientIPKey{}
	ContextKeyUserAgent   = userAgentKey{}
	ContextKeyRequestID   = requestIDKey{}
	ContextKeyRequestTime = requestTimeKey{}
)

// -----------------------------------------------------------------------------
// Auth context
// -----------------------------------------------------------------------------

// AccountID retrieves the authenticated account ID. Zero value when unauthenticated.
func AccountID(ctx context.Context) id.AccountID {
	if v, ok := ctx.Value(ContextKeyAccountID).(id.AccountID); ok {
		return v
	}
	return id.AccountID{}
}

// AccountType retrieves the authenticated account kind.
func AccountType(ctx context.Context) id.AccountType {
	if v, ok := ctx.Value(ContextKeyAccountType).(id.AccountType); ok {
		return v
	}
	return ""
}

// WithActor injects the authenticated account into the context.
func WithActor(ctx context.Context, accountID id.AccountID, accountType id.AccountType) context.Context {
	ctx = context.WithValue(ctx, ContextKeyAccountID, accountID)
	return context.WithValue(ctx, ContextKeyAccountType, accountType)
}

// TokenID retrieves the JTI of the bearer token used for this request.
func TokenID(ctx context.Context) string {
	if v, ok := ctx.Value(ContextKeyTokenID).(string); ok {
		return v
	}
	return ""
}

// WithTokenID injects the bearer token's JTI.
func WithTokenID(ctx context.Context, jti string) context.Context {
	return context.WithValue(ctx, ContextKeyTokenID, jti)
}

// -----------------------------------------------------------------------------
// Client metadata (IP, User-Agent)
// -----------------------------------------------------------------------------

func ClientIP(ctx context.Context) string {
	if ip, ok := ctx.Value(ContextKeyClientIP).(string); ok {
		return ip
	}
	return ""
}

func UserAgent(ctx context.Context) string {
	if ua, ok := ctx.Value(ContextKeyUserAgent).(string); ok {
		return ua
	}
	return ""
}

// WithClientMetadata injects client IP and User-Agent into a context.
func WithClientMetadata(ctx context.Context, clientIP, userAgent string) context.Context {
	ctx = context.WithValue(ctx, ContextKeyClientIP, clientIP)
	return context.WithValue(ctx, ContextKeyUserAgent, userAgent)
}

// -----------------------------------------------------------------------------
// Request metadata
// -----------------------------------------------------------------------------

func RequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return reqID
	}
	return ""
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// Now retrieves the request-scoped time from context.
// Falls back to time.Now() outside HTTP requests (workers, tests).
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ContextKeyRequestTime).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime injects a specific time into a context.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, ContextKeyRequestTime, t)
}
