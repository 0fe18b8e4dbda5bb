package v1handler

import (
	"time"

	"enricher/internal/pipeline"
	"enricher/pkg/domain"
)

// CreateRunRequest is the trigger event announcing an uploaded CSV file.
type CreateRunRequest struct {
	URL        string    `json:"url"`
	FileName   string    `json:"fileName"`
	UploadedAt time.Time `json:"uploadedAt"`
}

type RunResponse struct {
	Success bool        `json:"success"`
	Run     *domain.Run `json:"run"`
}

type Pagination struct {
	Total   int64 `json:"total"`
	Limit   uint  `json:"limit"`
	Offset  uint  `json:"offset"`
	HasMore bool  `json:"hasMore"`
}

type DomainListResponse struct {
	Success    bool               `json:"success"`
	Domains    []domain.DomainRow `json:"domains"`
	Pagination Pagination         `json:"pagination"`
}

type DomainResponse struct {
	Success bool              `json:"success"`
	Domain  *domain.DomainRow `json:"domain"`
}

// PreviewRequest names the CSV file to inspect.
type PreviewRequest struct {
	CSVURL string `json:"csvUrl"`
}

type PreviewResponse struct {
	Success bool              `json:"success"`
	Preview *pipeline.Preview `json:"preview"`
}

type HealthResponse struct {
	Status             string    `json:"status"`
	Timestamp          time.Time `json:"timestamp"`
	Environment        string    `json:"environment"`
	DatabaseConfigured bool      `json:"databaseConfigured"`
	DoHEndpoint        string    `json:"dohEndpoint"`
}
