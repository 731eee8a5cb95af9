// Copyright 2026 The BACS File Automation Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package route

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	moovhttp "github.com/moov-io/base/http"
	"github.com/moov-io/base/idempotent"
	"github.com/moov-io/base/idempotent/lru"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

var (
	IdempotentRecorder = lru.New()

	// Prometheus Metrics
	Histogram = prometheus.NewHistogramFrom(stdprometheus.HistogramOpts{
		Name: "http_response_duration_seconds",
		Help: "Histogram representing the http response durations",
	}, []string{"route"})
)

// Responder writes JSON or Problem responses and records the route's
// response duration. NewResponder returns nil when the request carried an
// X-Idempotency-Key that was seen before; a reply has been written already.
type Responder struct {
	XRequestID string

	logger log.Logger
	writer http.ResponseWriter

	start time.Time
	route string
}

func NewResponder(logger log.Logger, w http.ResponseWriter, r *http.Request) *Responder {
	if _, seen := idempotent.FromRequest(r, IdempotentRecorder); seen {
		idempotent.SeenBefore(w)
		return nil
	}
	return &Responder{
		XRequestID: moovhttp.GetRequestID(r),
		logger:     logger,
		writer:     w,
		start:      time.Now(),
		route:      fmt.Sprintf("%s-%s", strings.ToLower(r.Method), CleanPath(r.URL.Path)),
	}
}

func (r *Responder) Log(kvpairs ...interface{}) {
	if r == nil {
		return
	}
	args := []interface{}{
		"requestID", r.XRequestID,
	}
	for i := range kvpairs {
		args = append(args, kvpairs[i])
	}
	r.logger.Log(args...)
}

func (r *Responder) Respond(fn func(http.ResponseWriter)) {
	if r == nil {
		return
	}
	r.observe()
	r.writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	fn(r.writer)
}

func (r *Responder) Problem(err error) {
	if r == nil {
		return
	}
	r.observe()
	r.writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	moovhttp.Problem(r.writer, err)
}

func (r *Responder) observe() {
	Histogram.With("route", r.route).Observe(time.Since(r.start).Seconds())
}

// CleanPath takes a URL path and formats it for Prometheus metrics
//
// This method replaces /'s with -'s and drops empty path slugs.
func CleanPath(path string) string {
	parts := strings.Split(path, "/")
	var out []string
	for i := range parts {
		if parts[i] == "" {
			continue
		}
		out = append(out, parts[i])
	}
	return strings.Join(out, "-")
}
