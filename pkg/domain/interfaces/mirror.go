package interfaces

import (
	"context"
	"io"
)

// MirrorClient defines the network operations against a dataset mirror
type MirrorClient interface {
	// FetchManifest retrieves and decodes the identifier pair list at url
	FetchManifest(ctx context.Context, url string) ([][]string, error)

	// Download streams the body at url into w and returns the number of bytes written
	Download(ctx context.Context, url string, w io.Writer) (int64, error)
}
