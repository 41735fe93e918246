package usecase

import (
	"context"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/ffget/pkg/domain/interfaces"
	"github.com/m-mizutani/ffget/pkg/domain/model"
	"github.com/m-mizutani/ffget/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// FetchEngine transfers single remote files to disk, one at a time
type FetchEngine struct {
	client interfaces.MirrorClient
}

// NewFetchEngine creates a FetchEngine using client
func NewFetchEngine(client interfaces.MirrorClient) *FetchEngine {
	return &FetchEngine{client: client}
}

// Fetch stores file.URL at file.LocalPath unless the local path already exists.
// An existing file is reused without any verification of its content.
// A failed transfer leaves whatever was written on disk.
func (e *FetchEngine) Fetch(ctx context.Context, file model.RemoteFile) (*model.FetchResult, error) {
	logger := ctxlog.From(ctx)

	dir := filepath.Dir(file.LocalPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, goerr.Wrap(types.ErrDownload, "failed to create output directory",
			goerr.V("dir", dir),
			goerr.V("error", err))
	}

	if info, err := os.Stat(file.LocalPath); err == nil && !info.IsDir() {
		logger.Warn("Skipping download of existing file", "path", file.LocalPath)
		return &model.FetchResult{File: file, Status: model.FetchStatusSkipped}, nil
	}

	out, err := os.Create(file.LocalPath)
	if err != nil {
		return nil, goerr.Wrap(types.ErrDownload, "failed to create output file",
			goerr.V("path", file.LocalPath),
			goerr.V("error", err))
	}

	n, err := e.client.Download(ctx, file.URL, out)
	if closeErr := out.Close(); err == nil && closeErr != nil {
		err = goerr.Wrap(types.ErrDownload, "failed to close output file",
			goerr.V("path", file.LocalPath),
			goerr.V("error", closeErr))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to download file",
			goerr.V("url", file.URL),
			goerr.V("path", file.LocalPath))
	}

	logger.Debug("Downloaded file",
		"url", file.URL,
		"path", file.LocalPath,
		"size", humanize.Bytes(uint64(n)),
	)

	return &model.FetchResult{File: file, Status: model.FetchStatusDownloaded, Size: n}, nil
}

// Plan reports what Fetch would do with file without touching the disk or the network
func (e *FetchEngine) Plan(ctx context.Context, file model.RemoteFile) *model.FetchResult {
	logger := ctxlog.From(ctx)

	if info, err := os.Stat(file.LocalPath); err == nil && !info.IsDir() {
		logger.Info("Existing file would be skipped", "path", file.LocalPath)
		return &model.FetchResult{File: file, Status: model.FetchStatusSkipped}
	}

	logger.Info("File would be downloaded", "url", file.URL, "path", file.LocalPath)
	return &model.FetchResult{File: file, Status: model.FetchStatusPlanned}
}
