package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/katiamach/hivebox/internal/logger"
	"github.com/katiamach/hivebox/internal/metrics"
)

const requestIDHeader = "X-Request-ID"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// requestLogger tags every request with an id and logs it once served.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)

		sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sr, r)

		route := routeName(r)
		metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(sr.status)).Inc()

		logger.WithFields(logrus.Fields{
			"requestID":  requestID,
			"method":     r.Method,
			"path":       r.URL.Path,
			"route":      route,
			"status":     sr.status,
			"durationMs": time.Since(start).Milliseconds(),
		}).Infoln("http request")
	})
}

// routeName returns the matched path template, keeping metric labels bounded.
func routeName(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return "unmatched"
	}

	tmpl, err := route.GetPathTemplate()
	if err != nil {
		return "unmatched"
	}
	return tmpl
}
