package cli

import (
	"context"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/ffget/pkg/cli/config"
	"github.com/m-mizutani/ffget/pkg/domain/model"
	"github.com/m-mizutani/ffget/pkg/infra/mirror"
	"github.com/m-mizutani/ffget/pkg/usecase"
	"github.com/m-mizutani/ffget/pkg/utils/progress"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdDownload(fileCfg *config.ConfigFile) *cli.Command {
	var (
		downloadCfg config.Download
		slackCfg    config.Slack
	)

	flags := append(downloadCfg.Flags(), slackCfg.Flags()...)

	return &cli.Command{
		Name:      "download",
		Aliases:   []string{"dl"},
		Usage:     "Download videos, masks or models of the dataset",
		ArgsUsage: "OUTPUT_PATH",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			file, err := fileCfg.Load()
			if err != nil {
				return err
			}

			params := downloadCfg.Params(c.Args().First(), c.IsSet, file)
			servers := model.DefaultServers.Merge(file.ServerTable())
			req, err := model.NewDownloadRequest(params, servers)
			if err != nil {
				return goerr.Wrap(err, "invalid download request")
			}

			var opts []usecase.BatchOption
			if !downloadCfg.NoProgress {
				opts = append(opts, usecase.WithProgress(progress.New(nil)))
			}

			batchUC := usecase.NewBatch(mirror.NewClient(), opts...)
			summary, err := batchUC.Run(ctx, req)
			if err != nil {
				return goerr.Wrap(err, "download failed")
			}

			logger.Info("Download finished",
				slog.String("run_id", summary.RunID),
				slog.Int("downloaded", summary.Downloaded),
				slog.Int("skipped", summary.Skipped),
				slog.Int("planned", summary.Planned),
				slog.String("size", humanize.Bytes(uint64(summary.Bytes))),
				slog.Duration("duration", summary.Duration),
			)

			if notifier := slackCfg.Notifier(); notifier != nil {
				if err := notifier.NotifyRun(ctx, summary); err != nil {
					logger.Warn("Failed to notify run summary", slog.Any("error", err))
				}
			}

			return nil
		},
	}
}
