package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/ffget/pkg/domain/model"
	"github.com/m-mizutani/ffget/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func validParams() model.DownloadParams {
	return model.DownloadParams{
		OutputDir:   "/tmp/out",
		Dataset:     "all",
		Compression: "raw",
		Type:        "videos",
		Server:      "EU",
	}
}

func TestNewDownloadRequest(t *testing.T) {
	params := validParams()
	params.Dataset = "Face2Face"
	params.Compression = "c23"
	params.NumVideos = 5

	req, err := model.NewDownloadRequest(params, model.DefaultServers)
	gt.NoError(t, err)
	gt.A(t, req.Datasets).Length(1)
	gt.Value(t, req.Datasets[0].Name).Equal(types.DatasetName("Face2Face"))
	gt.Value(t, req.Compression).Equal(types.CompressionC23)
	gt.Value(t, req.ContentType).Equal(types.ContentTypeVideos)
	gt.Value(t, req.Server.ID).Equal(types.ServerEU)
	gt.Value(t, req.Limit).Equal(5)
}

func TestNewDownloadRequest_NonPositiveLimit(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		params := validParams()
		params.NumVideos = n

		req, err := model.NewDownloadRequest(params, model.DefaultServers)
		gt.NoError(t, err)
		gt.Value(t, req.Limit).Equal(0)
	}
}

func TestNewDownloadRequest_InvalidArgument(t *testing.T) {
	tests := []struct {
		name   string
		modify func(p *model.DownloadParams)
	}{
		{name: "missing output", modify: func(p *model.DownloadParams) { p.OutputDir = "" }},
		{name: "unknown dataset", modify: func(p *model.DownloadParams) { p.Dataset = "Deepfake" }},
		{name: "unknown compression", modify: func(p *model.DownloadParams) { p.Compression = "c50" }},
		{name: "unknown type", modify: func(p *model.DownloadParams) { p.Type = "images" }},
		{name: "unknown server", modify: func(p *model.DownloadParams) { p.Server = "US" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validParams()
			tt.modify(&params)

			req, err := model.NewDownloadRequest(params, model.DefaultServers)
			gt.Error(t, err)
			gt.Value(t, req).Nil()
			gt.Value(t, errors.Is(err, types.ErrInvalidArgument)).Equal(true)
		})
	}
}

func TestRunSummary_Add(t *testing.T) {
	var summary model.RunSummary
	summary.Add(&model.FetchResult{Status: model.FetchStatusDownloaded, Size: 100})
	summary.Add(&model.FetchResult{Status: model.FetchStatusDownloaded, Size: 50})
	summary.Add(&model.FetchResult{Status: model.FetchStatusSkipped})
	summary.Add(&model.FetchResult{Status: model.FetchStatusPlanned})

	gt.Value(t, summary.Downloaded).Equal(2)
	gt.Value(t, summary.Skipped).Equal(1)
	gt.Value(t, summary.Planned).Equal(1)
	gt.Value(t, summary.Bytes).Equal(int64(150))
}
