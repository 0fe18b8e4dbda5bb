package enricher

import (
	"context"

	"enricher/internal/pipeline"
	"enricher/pkg/domain"
	"enricher/pkg/storage"
)

//go:generate mockgen -package mockenricher -source=interface.go -destination=mock/mockenricher.go *
type Enricher interface {
	Submit(ctx context.Context, event domain.TriggerEvent) (*domain.Run, error)
	Process(ctx context.Context, runID domain.RunID, event domain.TriggerEvent) (domain.RunResult, error)
	Run(ctx context.Context, runID domain.RunID) (*domain.Run, error)
	Domains(ctx context.Context, limit, offset uint) (storage.DomainPage, error)
	Domain(ctx context.Context, name string) (*domain.DomainRow, error)
	Preview(ctx context.Context, location string) (*pipeline.Preview, error)
}
