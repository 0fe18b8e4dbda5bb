package v1handler

import (
	"net/http"
	"strconv"

	"enricher/pkg/serrors"
)

const DefaultLimit = 50

// ListDomains returns a page of enriched domains, newest first.
func (h *Handler) ListDomains(r *http.Request) (int, any, error) {
	limit, err := queryUint(r, "limit", DefaultLimit)
	if err != nil {
		return 0, nil, err
	}
	offset, err := queryUint(r, "offset", 0)
	if err != nil {
		return 0, nil, err
	}

	page, err := h.deps.Enricher.Domains(r.Context(), limit, offset)
	if err != nil {
		return 0, nil, err //nolint: wrapcheck
	}

	return http.StatusOK, DomainListResponse{
		Success: true,
		Domains: page.Domains,
		Pagination: Pagination{
			Total:   page.Total,
			Limit:   limit,
			Offset:  offset,
			HasMore: int64(offset)+int64(len(page.Domains)) < page.Total, //nolint: gosec
		},
	}, nil
}

// GetDomain returns a single enriched domain.
func (h *Handler) GetDomain(r *http.Request) (int, any, error) {
	row, err := h.deps.Enricher.Domain(r.Context(), r.PathValue("domain"))
	if err != nil {
		return 0, nil, err //nolint: wrapcheck
	}

	return http.StatusOK, DomainResponse{Success: true, Domain: row}, nil
}

func queryUint(r *http.Request, name string, def uint) (uint, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrBadRequest, err, "invalid %s", name)
	}

	return uint(v), nil
}
