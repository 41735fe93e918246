package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/ffget/pkg/domain/interfaces"
	"github.com/m-mizutani/ffget/pkg/domain/model"
	"github.com/m-mizutani/ffget/pkg/domain/types"
	"github.com/m-mizutani/ffget/pkg/utils/progress"
	"github.com/m-mizutani/goerr/v2"
)

type batchUseCase struct {
	manifest *ManifestFetcher
	engine   *FetchEngine
	progress progress.Factory
}

// BatchOption is a functional option for the batch use case
type BatchOption func(*batchUseCase)

// WithProgress sets the progress bar factory used per dataset
func WithProgress(f progress.Factory) BatchOption {
	return func(uc *batchUseCase) {
		uc.progress = f
	}
}

// NewBatch creates a new instance of BatchUseCase
func NewBatch(client interfaces.MirrorClient, opts ...BatchOption) interfaces.BatchUseCase {
	uc := &batchUseCase{
		manifest: NewManifestFetcher(client),
		engine:   NewFetchEngine(client),
		progress: progress.Nop(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Run processes the datasets of req strictly in order, one file at a time.
// Selecting a standalone archive fetches it and ends the run.
func (uc *batchUseCase) Run(ctx context.Context, req *model.DownloadRequest) (*model.RunSummary, error) {
	started := time.Now()
	summary := &model.RunSummary{
		RunID:       uuid.NewString(),
		Server:      req.Server.ID,
		ContentType: req.ContentType,
	}

	logger := ctxlog.From(ctx).With("run_id", summary.RunID)
	ctx = ctxlog.With(ctx, logger)

	logger.Info("By downloading you agree to the terms of use",
		"terms_url", req.Server.TermsURL,
		"server", req.Server.ID,
		"dry_run", req.DryRun,
	)

	for _, ds := range req.Datasets {
		if ds.Archive {
			if err := uc.runArchive(ctx, req, ds, summary); err != nil {
				return nil, err
			}
			break
		}

		err := uc.runDataset(ctx, req, ds, summary)
		if errors.Is(err, types.ErrModelsUnavailable) {
			logger.Warn("Models only available for Deepfakes, aborting dataset", "dataset", ds.Name)
			summary.Aborted = append(summary.Aborted, ds.Name)
			continue
		}
		if err != nil {
			return nil, err
		}
	}

	summary.Duration = time.Since(started)
	return summary, nil
}

func (uc *batchUseCase) runArchive(ctx context.Context, req *model.DownloadRequest, ds model.Dataset, summary *model.RunSummary) error {
	logger := ctxlog.From(ctx)
	logger.Info("Downloading original youtube videos", "dataset", ds.Name)

	summary.Datasets = append(summary.Datasets, ds.Name)
	file := BuildArchiveFile(req, ds)
	result, err := uc.handle(ctx, req, file)
	if err != nil {
		return goerr.Wrap(err, "failed to download archive", goerr.V("dataset", ds.Name))
	}
	summary.Add(result)
	return nil
}

func (uc *batchUseCase) runDataset(ctx context.Context, req *model.DownloadRequest, ds model.Dataset, summary *model.RunSummary) error {
	logger := ctxlog.From(ctx)

	// Checked before the manifest is read so that no request is made at all.
	if req.ContentType == types.ContentTypeModels && !ds.HasModels() {
		return goerr.Wrap(types.ErrModelsUnavailable, "dataset has no models", goerr.V("dataset", ds.Name))
	}

	logger.Info("Downloading dataset",
		"type", req.ContentType,
		"dataset", ds.Path,
		"output_path", DatasetOutputDir(req, ds),
	)
	if req.Limit > 0 {
		logger.Info("Downloading the first videos only", "num_videos", req.Limit)
	}

	ids, err := uc.manifest.Fetch(ctx, req.Server, req.Limit)
	if err != nil {
		return goerr.Wrap(err, "failed to prepare dataset", goerr.V("dataset", ds.Name))
	}
	summary.Datasets = append(summary.Datasets, ds.Name)

	bar := uc.progress(len(ids), string(ds.Name))
	if err := uc.fetchAll(ctx, req, ds, ids, summary, bar); err != nil {
		bar.Abort()
		return err
	}
	bar.Finish()

	return nil
}

func (uc *batchUseCase) fetchAll(ctx context.Context, req *model.DownloadRequest, ds model.Dataset, ids []string, summary *model.RunSummary, bar progress.Bar) error {
	for _, id := range ids {
		files, err := BuildRemoteFiles(req, ds, id)
		if err != nil {
			return err
		}

		for _, file := range files {
			result, err := uc.handle(ctx, req, file)
			if err != nil {
				return goerr.Wrap(err, "failed to process dataset",
					goerr.V("dataset", ds.Name),
					goerr.V("identifier", id))
			}
			summary.Add(result)
		}
		bar.Increment()
	}
	return nil
}

func (uc *batchUseCase) handle(ctx context.Context, req *model.DownloadRequest, file model.RemoteFile) (*model.FetchResult, error) {
	if req.DryRun {
		return uc.engine.Plan(ctx, file), nil
	}
	return uc.engine.Fetch(ctx, file)
}
