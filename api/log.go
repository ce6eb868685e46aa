package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// corsMiddleware stamps the permissive headers on every response, with or
// without an Origin on the request.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		setCORSHeaders(w.Header())
		next.ServeHTTP(w, req)
	})
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, req)

		log.Debug().
			Str("method", req.Method).
			Str("url", req.URL.RequestURI()).
			Str("user_agent", req.UserAgent()).
			Str("remote_addr", req.RemoteAddr).
			Int("status", rec.status).
			Dur("took", time.Since(start)).
			Msg("incoming http request")
	})
}

// recoveryMiddleware turns a handler panic into a 500 carrying the panic
// message.
func recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			log.Error().
				Str("url", req.URL.RequestURI()).
				Interface("panic", rec).
				Msg("Error handling request")
			writeError(w, http.StatusInternalServerError, fmt.Sprint(rec))
		}()

		next.ServeHTTP(w, req)
	})
}
