package v1handler

import (
	"net/http"

	"enricher/pkg/controller"
	"enricher/pkg/domain"
	"enricher/pkg/serrors"
)

// CreateRun records a run for the announced file and enqueues it.
func (h *Handler) CreateRun(r *http.Request) (int, any, error) {
	var req CreateRunRequest
	if err := controller.DecodeJSON(r, &req); err != nil {
		return 0, nil, err //nolint: wrapcheck
	}

	run, err := h.deps.Enricher.Submit(r.Context(), domain.TriggerEvent{
		URL:        req.URL,
		FileName:   req.FileName,
		UploadedAt: req.UploadedAt,
	})
	if err != nil {
		return 0, nil, err //nolint: wrapcheck
	}

	return http.StatusAccepted, RunResponse{Success: true, Run: run}, nil
}

// GetRun returns a run by ID.
func (h *Handler) GetRun(r *http.Request) (int, any, error) {
	id, err := domain.ParseRunID(r.PathValue("id"))
	if err != nil {
		return 0, nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid run id")
	}

	run, err := h.deps.Enricher.Run(r.Context(), id)
	if err != nil {
		return 0, nil, err //nolint: wrapcheck
	}

	return http.StatusOK, RunResponse{Success: true, Run: run}, nil
}
