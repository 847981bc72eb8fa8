package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/arjunsdev/minifeed/internal/auth"
	"github.com/arjunsdev/minifeed/internal/constants"
	"github.com/arjunsdev/minifeed/internal/utils"
)

// RequestID assigns each request a unique ID, exposed both in the request
// context and the X-Request-ID response header for correlation.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(constants.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			w.Header().Set(constants.HeaderXRequestID, requestID)

			ctx := context.WithValue(r.Context(), auth.RequestIDContextKey, requestID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// statusRecorder captures the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(status int) {
	sr.status = status
	sr.ResponseWriter.WriteHeader(status)
}

// RequestLogger logs every request with its method, path, status and latency
func RequestLogger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(recorder, r)

			utils.LogHTTPRequest(
				auth.GetRequestID(r),
				r.Method,
				r.URL.Path,
				r.RemoteAddr,
				recorder.status,
				time.Since(start),
			)
		})
	}
}
