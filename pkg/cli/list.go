package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/m-mizutani/ffget/pkg/cli/config"
	"github.com/m-mizutani/ffget/pkg/domain/model"
	"github.com/m-mizutani/ffget/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func cmdList(fileCfg *config.ConfigFile) *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "Show datasets, compression levels, file types and servers",
		Action: func(ctx context.Context, c *cli.Command) error {
			file, err := fileCfg.Load()
			if err != nil {
				return err
			}

			w := c.Root().Writer
			if w == nil {
				w = os.Stdout
			}

			servers := model.DefaultServers.Merge(file.ServerTable())
			return printRegistry(w, servers)
		},
	}
}

func printRegistry(w io.Writer, servers model.ServerTable) error {
	heading := color.New(color.FgCyan, color.Bold)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	heading.Fprintln(tw, "DATASETS")
	for _, ds := range model.Datasets() {
		note := ""
		switch {
		case ds.Archive:
			note = "archive, selected by name only"
		case ds.HasModels():
			note = "videos, masks, models"
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", ds.Name, ds.Path, note)
	}
	fmt.Fprintf(tw, "  %s\t%s\t\n", types.DatasetAll, "every non-archive dataset")

	heading.Fprintln(tw, "COMPRESSION")
	for _, c := range types.Compressions {
		fmt.Fprintf(tw, "  %s\t\t\n", c)
	}

	heading.Fprintln(tw, "TYPES")
	for _, t := range types.ContentTypes {
		fmt.Fprintf(tw, "  %s\t\t\n", t)
	}

	heading.Fprintln(tw, "SERVERS")
	for _, id := range servers.IDs() {
		ep, err := servers.Resolve(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "  %s\t%s\t\n", id, ep.DatasetBaseURL)
	}

	return tw.Flush()
}
