package httpapi

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// requestLogMiddleware tags each request with an id and logs method, path
// and duration on completion.
func requestLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		start := time.Now()

		next.ServeHTTP(w, r)

		log.Printf("[%s] %s %s (%s)", requestID, r.Method, r.URL.Path, time.Since(start))
	})
}
