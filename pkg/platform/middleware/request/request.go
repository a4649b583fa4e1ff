// Package request assigns every inbound request an identifier that is echoed
// back to the caller and attached to log lines.
package request

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"carenest/pkg/requestcontext"
)

// HeaderRequestID is read from inbound requests and written on responses.
const HeaderRequestID = "X-Request-ID"

const maxInboundIDLen = 128

// RequestID reuses a caller-supplied id when it is short and printable,
// otherwise it mints a new one.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := sanitize(r.Header.Get(HeaderRequestID))
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, reqID)
		ctx := requestcontext.WithRequestID(r.Context(), reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID returns the request id stored by RequestID.
func GetRequestID(r *http.Request) string {
	return requestcontext.RequestID(r.Context())
}

func sanitize(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || len(v) > maxInboundIDLen {
		return ""
	}
	for _, c := range v {
		if c < 0x21 || c > 0x7e {
			return ""
		}
	}
	return v
}
