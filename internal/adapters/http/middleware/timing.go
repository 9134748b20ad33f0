package middleware

import (
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"waaranders/internal/adapters/http/perf"
)

// DefaultSlowRequestMs is the default threshold for slow request warnings.
const DefaultSlowRequestMs = 200

// slowThresholdMs returns the slow-request threshold, overridable through
// WAARANDERS_SLOW_REQUEST_MS.
var slowThresholdMs = sync.OnceValue(func() float64 {
	if v := os.Getenv("WAARANDERS_SLOW_REQUEST_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return float64(n)
		}
	}
	return DefaultSlowRequestMs
})

// requestSeq numbers requests for log correlation.
var requestSeq uint64

// statusRecorder wraps http.ResponseWriter to capture the status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// recorderPool reduces allocations on the hot path.
var recorderPool = sync.Pool{
	New: func() any { return &statusRecorder{} },
}

// Timing returns middleware that logs request duration and feeds the perf
// dashboard. Static assets are skipped. Requests at or above the slow
// threshold log at WARN, the rest at DEBUG.
func Timing(collector *perf.Collector) func(http.Handler) http.Handler {
	threshold := slowThresholdMs()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if strings.HasPrefix(path, "/static/") {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			reqID := atomic.AddUint64(&requestSeq, 1)

			sr := recorderPool.Get().(*statusRecorder)
			sr.ResponseWriter = w
			sr.status = http.StatusOK
			defer func() {
				elapsedMs := float64(time.Since(start).Microseconds()) / 1000.0

				level := slog.LevelDebug
				msg := "request"
				if elapsedMs >= threshold {
					level = slog.LevelWarn
					msg = "slow_request"
				}
				slog.Log(r.Context(), level, msg,
					"request_id", reqID,
					"method", r.Method,
					"path", path,
					"status", sr.status,
					"duration_ms", elapsedMs,
				)

				if collector != nil {
					collector.Record(perf.Entry{
						Kind:       perf.KindRequest,
						Path:       r.Method + " " + path,
						StatusCode: sr.status,
						DurationMs: elapsedMs,
						Timestamp:  start,
					})
				}

				sr.ResponseWriter = nil
				recorderPool.Put(sr)
			}()

			next.ServeHTTP(sr, r)
		})
	}
}
