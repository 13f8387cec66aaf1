package http

import (
	"net/http"
	"strings"

	"github.com/hritvik715/LanguageKeyboardCentral/pkg/httputil"
	"github.com/hritvik715/LanguageKeyboardCentral/pkg/logger"
)

// HeaderSessionID is the request header carrying the caller's cart session.
const HeaderSessionID = "X-Session-ID"

// FallbackSessionID is used when a request carries no session header. All
// header-less callers share this one cart.
const FallbackSessionID = "demo-session"

// SessionID resolves the cart session for the request and stores it in the
// request context. Requests without the header fall back to a shared demo
// session rather than being rejected.
func SessionID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get(HeaderSessionID)
		if sessionID == "" {
			sessionID = FallbackSessionID
		}

		ctx := logger.WithSessionID(r.Context(), sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionFromRequest returns the session resolved by the SessionID middleware.
func sessionFromRequest(r *http.Request) string {
	if id := logger.SessionIDFromContext(r.Context()); id != "" {
		return id
	}
	return FallbackSessionID
}

// ContentTypeJSON enforces that requests with a body have Content-Type: application/json.
func ContentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > 0 || r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch {
			ct := r.Header.Get("Content-Type")
			if ct != "" && !strings.HasPrefix(ct, "application/json") {
				httputil.WriteJSON(w, http.StatusUnsupportedMediaType, httputil.Response{
					Error: &httputil.ErrorResponse{
						Code:    "UNSUPPORTED_MEDIA_TYPE",
						Message: "Content-Type must be application/json",
					},
				})
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
