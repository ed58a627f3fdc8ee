package httpapi

import (
	"io"
	"net/http"
	"strconv"

	"aeron-recovery-service/pkg/logger"
	"aeron-recovery-service/pkg/metrics"

	"github.com/felixge/httpsnoop"
	"github.com/gorilla/mux"
)

// Observe records duration and status of every API request and turns panics into 500s
func Observe(m *metrics.Metrics, log logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			safe := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tracked, started := trackStarted(w)
				defer func() {
					if rec := recover(); rec != nil {
						log.Error("Panic while serving request", "path", r.URL.Path, "panic", rec, "responseStarted", *started)
						// a status already on the wire cannot be replaced
						if !*started {
							writeMessage(w, http.StatusInternalServerError, "Internal server error")
						}
					}
				}()
				next.ServeHTTP(tracked, r)
			})

			snoop := httpsnoop.CaptureMetrics(safe, w, r)

			route := routeTemplate(r)
			if m != nil {
				m.RequestDuration.
					WithLabelValues(route, r.Method, strconv.Itoa(snoop.Code)).
					Observe(snoop.Duration.Seconds())
			}
			log.Info("Request served",
				"method", r.Method,
				"route", route,
				"status", snoop.Code,
				"duration", snoop.Duration.String(),
			)
		})
	}
}

func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tmpl, err := route.GetPathTemplate(); err == nil {
			return tmpl
		}
	}
	return "unmatched"
}

// trackStarted wraps w and reports through the returned flag whether a status
// or body has been written
func trackStarted(w http.ResponseWriter) (http.ResponseWriter, *bool) {
	started := new(bool)
	wrapped := httpsnoop.Wrap(w, httpsnoop.Hooks{
		WriteHeader: func(next httpsnoop.WriteHeaderFunc) httpsnoop.WriteHeaderFunc {
			return func(code int) {
				*started = true
				next(code)
			}
		},
		Write: func(next httpsnoop.WriteFunc) httpsnoop.WriteFunc {
			return func(b []byte) (int, error) {
				*started = true
				return next(b)
			}
		},
		ReadFrom: func(next httpsnoop.ReadFromFunc) httpsnoop.ReadFromFunc {
			return func(src io.Reader) (int64, error) {
				*started = true
				return next(src)
			}
		},
	})
	return wrapped, started
}
