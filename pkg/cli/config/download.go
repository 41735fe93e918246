package config

import (
	"github.com/m-mizutani/ffget/pkg/domain/model"
	"github.com/m-mizutani/ffget/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Download holds the selections of a download run
type Download struct {
	Dataset     string
	Compression string
	Type        string
	NumVideos   int
	Server      string
	DryRun      bool
	NoProgress  bool
}

// Flags returns CLI flags for download configuration
func (c *Download) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "dataset",
			Aliases:     []string{"d"},
			Usage:       "Which dataset to download, or \"all\"",
			Value:       string(types.DatasetAll),
			Destination: &c.Dataset,
			Sources:     cli.EnvVars("FFGET_DATASET"),
		},
		&cli.StringFlag{
			Name:        "compression",
			Aliases:     []string{"c"},
			Usage:       "Compression degree (raw, c23, c40)",
			Value:       string(types.CompressionRaw),
			Destination: &c.Compression,
			Sources:     cli.EnvVars("FFGET_COMPRESSION"),
		},
		&cli.StringFlag{
			Name:        "type",
			Aliases:     []string{"t"},
			Usage:       "File type (videos, masks, models)",
			Value:       string(types.ContentTypeVideos),
			Destination: &c.Type,
			Sources:     cli.EnvVars("FFGET_TYPE"),
		},
		&cli.IntFlag{
			Name:        "num_videos",
			Aliases:     []string{"n", "num-videos"},
			Usage:       "Number of videos to download, 0 or less downloads all",
			Destination: &c.NumVideos,
			Sources:     cli.EnvVars("FFGET_NUM_VIDEOS"),
		},
		&cli.StringFlag{
			Name:        "server",
			Usage:       "Server to download from (EU, EU2, CA or a mirror of the config file)",
			Value:       string(types.ServerEU),
			Destination: &c.Server,
			Sources:     cli.EnvVars("FFGET_SERVER"),
		},
		&cli.BoolFlag{
			Name:        "dry-run",
			Usage:       "Read the manifest and log planned files without downloading",
			Destination: &c.DryRun,
			Sources:     cli.EnvVars("FFGET_DRY_RUN"),
		},
		&cli.BoolFlag{
			Name:        "no-progress",
			Usage:       "Disable progress bars",
			Destination: &c.NoProgress,
			Sources:     cli.EnvVars("FFGET_NO_PROGRESS"),
		},
	}
}

// Params merges flag values with file defaults. A value from the file is used
// only when the flag was not set explicitly.
func (c *Download) Params(output string, isSet func(name string) bool, file *File) model.DownloadParams {
	params := model.DownloadParams{
		OutputDir:   output,
		Dataset:     c.Dataset,
		Compression: c.Compression,
		Type:        c.Type,
		NumVideos:   c.NumVideos,
		Server:      c.Server,
		DryRun:      c.DryRun,
	}
	if file == nil {
		return params
	}

	d := file.Download
	if params.OutputDir == "" {
		params.OutputDir = d.Output
	}
	if !isSet("dataset") && d.Dataset != "" {
		params.Dataset = d.Dataset
	}
	if !isSet("compression") && d.Compression != "" {
		params.Compression = d.Compression
	}
	if !isSet("type") && d.Type != "" {
		params.Type = d.Type
	}
	if !isSet("num_videos") && d.NumVideos != nil {
		params.NumVideos = *d.NumVideos
	}
	if !isSet("server") && d.Server != "" {
		params.Server = d.Server
	}

	return params
}
