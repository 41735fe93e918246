package interfaces

import (
	"context"

	"github.com/m-mizutani/ffget/pkg/domain/model"
)

// BatchUseCase drives a complete download run
type BatchUseCase interface {
	// Run processes every dataset of the request in order
	Run(ctx context.Context, req *model.DownloadRequest) (*model.RunSummary, error)
}

// Notifier publishes the outcome of a run
type Notifier interface {
	// NotifyRun reports a finished run summary
	NotifyRun(ctx context.Context, summary *model.RunSummary) error
}
