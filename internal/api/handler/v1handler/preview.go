package v1handler

import (
	"net/http"
	"time"

	"enricher/pkg/controller"
)

// Preview runs the download, scan and deduplication steps on a file without
// resolving or writing anything.
func (h *Handler) Preview(r *http.Request) (int, any, error) {
	var req PreviewRequest
	if err := controller.DecodeJSON(r, &req); err != nil {
		return 0, nil, err //nolint: wrapcheck
	}

	preview, err := h.deps.Enricher.Preview(r.Context(), req.CSVURL)
	if err != nil {
		return 0, nil, err //nolint: wrapcheck
	}

	return http.StatusOK, PreviewResponse{Success: true, Preview: preview}, nil
}

// Health reports liveness and the effective configuration.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	controller.WriteJSON(r.Context(), w, http.StatusOK, HealthResponse{
		Status:             "ok",
		Timestamp:          time.Now().UTC(),
		Environment:        h.deps.Environment,
		DatabaseConfigured: h.deps.DatabaseConfigured,
		DoHEndpoint:        h.deps.DoHEndpoint,
	})
}
