package middlewares

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/gzhttp"
	"github.com/vlatan/block-site/internal/config"
	"github.com/vlatan/block-site/internal/metrics"
	"github.com/vlatan/block-site/internal/models"
	"github.com/vlatan/block-site/internal/ui"
	"github.com/vlatan/block-site/internal/utils"
)

// PreviewChecker tells whether a request is in draft mode
type PreviewChecker interface {
	Enabled(r *http.Request) bool
}

type Service struct {
	ui      ui.Service
	config  *config.Config
	preview PreviewChecker
}

func New(ui ui.Service, config *config.Config, preview PreviewChecker) *Service {
	return &Service{
		ui:      ui,
		config:  config,
		preview: preview,
	}
}

// Attach a unique id to the request, reuse the one from a proxy if any
func (s *Service) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), models.RequestIDContextKey, id)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Log every request with its status and duration
func (s *Service) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := newStatusWriter(w)

		next.ServeHTTP(sw, r)

		log.Printf(
			"%s %s %d %s [%s]",
			r.Method, r.URL.RequestURI(), sw.status,
			time.Since(start).Round(time.Microsecond), models.GetRequestID(r),
		)
	})
}

// Record the HTTP metrics.
// It has to wrap the mux directly to see the matched route pattern.
func (s *Service) Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		timer := metrics.NewTimer()
		sw := newStatusWriter(w)

		next.ServeHTTP(sw, r)

		// Unmatched paths would blow up the cardinality
		pattern := r.Pattern
		if pattern == "" {
			pattern = "unmatched"
		}

		timer.ObserveDuration(metrics.HTTPRequestDuration.WithLabelValues(r.Method, pattern))
		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, pattern, strconv.Itoa(sw.status)).Inc()
	})
}

// Flag the request as preview if it carries a draft session
func (s *Service) LoadPreview(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		if utils.IsStatic(r) || !s.preview.Enabled(r) {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), models.PreviewContextKey, true)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Create the default template data and put it in context
func (s *Service) LoadData(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		// Check if the route renders a page at all
		if !utils.NeedsData(r) {
			next.ServeHTTP(w, r)
			return
		}

		data := s.ui.NewData(w, r)
		ctx := context.WithValue(r.Context(), models.DataContextKey, data)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Close the body if POST request
func (s *Service) CloseBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Close request body for POST methods to prevent resource leaks
		if r.Method == http.MethodPost {
			defer r.Body.Close()
		}
		next.ServeHTTP(w, r)
	})
}

// Do not crash the app on panic, serve 500 error to the client
func (s *Service) RecoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// If in production recover panic
		if !s.config.Debug {
			defer func() {
				if err := recover(); err != nil {
					log.Printf("Panic in %s %s: %#v", r.Method, r.URL.Path, err)
					utils.HttpError(w, http.StatusInternalServerError)
				}
			}()
		}

		next.ServeHTTP(w, r)
	})
}

// Add security headers to request
func (s *Service) AddHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		// Prevent MIME type sniffing
		w.Header().Set("X-Content-Type-Options", "nosniff")

		// HSTS (HTTPS only)
		if !s.config.Debug {
			w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		// Drafts are embedded in the CMS live preview and never cached or indexed
		if models.IsPreview(r) || strings.HasPrefix(r.URL.Path, "/preview/") {
			w.Header().Set("Content-Security-Policy", fmt.Sprintf("frame-ancestors 'self' %s", s.config.PayloadURL))
			w.Header().Set("Cache-Control", "no-store")
			w.Header().Set("X-Robots-Tag", "noindex")
			next.ServeHTTP(w, r)
			return
		}

		// Prevent clickjacking
		w.Header().Set("X-Frame-Options", "SAMEORIGIN")

		next.ServeHTTP(w, r)
	})
}

// Let shared caches keep the response for a while
func (s *Service) PublicCache(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !models.IsPreview(r) {
			w.Header().Set("Cache-Control", "public, max-age=3600")
		}
		next(w, r)
	}
}

// Serve rich error pages in place of the bare error responses
func (s *Service) HandleErrors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		// Static files and health checks carry their own errors
		if !utils.NeedsData(r) {
			next.ServeHTTP(w, r)
			return
		}

		bw := newBufferedWriter(w)

		// Whatever ends up buffered is sent on the way out
		defer bw.flush()

		next.ServeHTTP(bw, r)

		if !bw.failed() {
			return
		}

		// The handler's own error body is replaced
		bw.discard()

		// Client probably does not want HTML, serve JSON error
		if !strings.Contains(r.Header.Get("Accept"), "text/html") {
			s.ui.JSONError(bw, r, bw.status)
			return
		}

		// Serve rich HTML error
		s.ui.HTMLError(bw, r, bw.status, models.GetDataFromContext(r))
	})
}

// Compress provides gzip compression to non-static pages
func (s *Service) Compress(next http.Handler) http.Handler {

	// Create the gzip handler
	gzipHandler := gzhttp.GzipHandler(next)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Check if request serves static files
		// Those are compressed on startup
		if utils.IsStatic(r) {
			next.ServeHTTP(w, r)
			return
		}

		gzipHandler.ServeHTTP(w, r)
	})
}

// Chain middlewares that apply to all handlers
func (s *Service) ApplyToAll(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(final http.Handler) http.Handler {
		// Apply middlewares in reverse order
		for i := len(middlewares) - 1; i >= 0; i-- {
			final = middlewares[i](final)
		}
		return final
	}
}
