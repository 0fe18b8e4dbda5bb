// Package v1handler implements the version 1 HTTP API of the service.
package v1handler

import (
	"context"
	"net/http"

	"enricher/internal/enricher"
	"enricher/pkg/controller"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Deps holds the services used by the handlers.
type Deps struct {
	Enricher enricher.Enricher

	// Environment, DatabaseConfigured and DoHEndpoint are reported by the health endpoint.
	Environment        string
	DatabaseConfigured bool
	DoHEndpoint        string
}

type Handler struct {
	deps     Deps
	requests metric.Int64Counter
}

// New constructs a Handler. Requests are counted with a counter created from meter.
func New(deps Deps, meter metric.Meter) (*Handler, error) {
	requests, err := meter.Int64Counter("enricher.api.requests",
		metric.WithDescription("Handled v1 API requests by route and status code."))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &Handler{
		deps:     deps,
		requests: requests,
	}, nil
}

// Register adds the v1 routes to mux. Paths are relative to the /v1 prefix.
func (h *Handler) Register(mux *http.ServeMux) {
	h.handle(mux, "POST /runs", h.CreateRun)
	h.handle(mux, "GET /runs/{id}", h.GetRun)
	h.handle(mux, "GET /domains", h.ListDomains)
	h.handle(mux, "GET /domains/{domain}", h.GetDomain)
	h.handle(mux, "POST /preview", h.Preview)
}

// handlerFunc is an HTTP handler returning the response body and status, or an error.
type handlerFunc func(r *http.Request) (int, any, error)

func (h *Handler) handle(mux *http.ServeMux, pattern string, fn handlerFunc) {
	mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		status, body, err := fn(r)
		if err != nil {
			status = controller.StatusCode(err)
			controller.WriteError(ctx, w, err)
		} else {
			controller.WriteJSON(ctx, w, status, body)
		}

		h.count(ctx, pattern, status)
	})
}

func (h *Handler) count(ctx context.Context, route string, status int) {
	h.requests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("route", route),
		attribute.Int("status", status),
	))
}
