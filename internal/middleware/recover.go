package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"pet-adoption/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Recover corta un panic del handler, lo loguea con stack y responde 500.
// http.ErrAbortHandler se re-lanza para que net/http aborte la conexión.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Nop()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				fields := map[string]any{
					"panic":  fmt.Sprint(rec),
					"method": r.Method,
					"path":   r.URL.Path,
					"stack":  string(debug.Stack()),
				}
				if id := chimw.GetReqID(r.Context()); id != "" {
					fields["request_id"] = id
				}
				log.Error("panic recovered", fields)

				if r.Header.Get("Connection") != "Upgrade" {
					http.Error(w, "internal error", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
