package model

import (
	"github.com/m-mizutani/ffget/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// DownloadParams holds raw user selections before validation
type DownloadParams struct {
	OutputDir   string
	Dataset     string
	Compression string
	Type        string
	NumVideos   int
	Server      string
	DryRun      bool
}

// DownloadRequest is a validated batch download request
type DownloadRequest struct {
	OutputDir   string
	Datasets    []Dataset // Processed in order
	Compression types.Compression
	ContentType types.ContentType
	Server      *ServerEndpoints
	Limit       int // Zero means no cap
	DryRun      bool
}

// NewDownloadRequest validates params against the registry and the server table.
// It performs no network access.
func NewDownloadRequest(params DownloadParams, servers ServerTable) (*DownloadRequest, error) {
	if params.OutputDir == "" {
		return nil, goerr.Wrap(types.ErrInvalidArgument, "output directory is required")
	}

	datasets, err := SelectDatasets(types.DatasetName(params.Dataset))
	if err != nil {
		return nil, err
	}

	compression, err := types.ParseCompression(params.Compression)
	if err != nil {
		return nil, err
	}

	contentType, err := types.ParseContentType(params.Type)
	if err != nil {
		return nil, err
	}

	server, err := servers.Resolve(types.ServerID(params.Server))
	if err != nil {
		return nil, err
	}

	limit := params.NumVideos
	if limit < 0 {
		limit = 0
	}

	return &DownloadRequest{
		OutputDir:   params.OutputDir,
		Datasets:    datasets,
		Compression: compression,
		ContentType: contentType,
		Server:      server,
		Limit:       limit,
		DryRun:      params.DryRun,
	}, nil
}
