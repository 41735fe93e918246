package config

import (
	"os"

	"github.com/m-mizutani/ffget/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// File is the optional TOML configuration file
type File struct {
	Download FileDownload          `toml:"download"`
	Servers  map[string]FileServer `toml:"servers"`
}

// FileDownload holds defaults for the download command
type FileDownload struct {
	Output      string `toml:"output"`
	Dataset     string `toml:"dataset"`
	Compression string `toml:"compression"`
	Type        string `toml:"type"`
	NumVideos   *int   `toml:"num_videos"`
	Server      string `toml:"server"`
}

// FileServer defines an additional mirror
type FileServer struct {
	URL string `toml:"url"`
}

// ServerTable returns the mirrors defined in the file
func (f *File) ServerTable() map[types.ServerID]string {
	table := make(map[types.ServerID]string, len(f.Servers))
	for id, srv := range f.Servers {
		table[types.ServerID(id)] = srv.URL
	}
	return table
}

// ConfigFile holds the location of the configuration file
type ConfigFile struct {
	Path string
}

// Flags returns CLI flags for the configuration file
func (c *ConfigFile) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to a TOML configuration file",
			Destination: &c.Path,
			Sources:     cli.EnvVars("FFGET_CONFIG"),
		},
	}
}

// Load reads the configuration file. An empty path yields an empty File.
func (c *ConfigFile) Load() (*File, error) {
	if c.Path == "" {
		return &File{}, nil
	}

	fd, err := os.Open(c.Path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open config file", goerr.V("path", c.Path))
	}
	defer fd.Close()

	var file File
	dec := toml.NewDecoder(fd)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return nil, goerr.Wrap(types.ErrInvalidArgument, "failed to parse config file",
			goerr.V("path", c.Path),
			goerr.V("error", err))
	}

	for id, srv := range file.Servers {
		if srv.URL == "" {
			return nil, goerr.Wrap(types.ErrInvalidArgument, "server url is required",
				goerr.V("path", c.Path),
				goerr.V("server", id))
		}
	}

	return &file, nil
}
