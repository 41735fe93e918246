package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/ffget/pkg/domain/interfaces"
	"github.com/m-mizutani/ffget/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// ManifestFetcher retrieves the identifier list of the release
type ManifestFetcher struct {
	client interfaces.MirrorClient
}

// NewManifestFetcher creates a ManifestFetcher using client
func NewManifestFetcher(client interfaces.MirrorClient) *ManifestFetcher {
	return &ManifestFetcher{client: client}
}

// Fetch downloads the manifest from server and returns the flattened
// identifiers, truncated to limit when limit is positive.
func (f *ManifestFetcher) Fetch(ctx context.Context, server *model.ServerEndpoints, limit int) ([]string, error) {
	logger := ctxlog.From(ctx)
	url := joinURL(server.DatasetBaseURL, model.ManifestPath)

	logger.Debug("Fetching manifest", "url", url)

	pairs, err := f.client.FetchManifest(ctx, url)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch manifest", goerr.V("url", url))
	}

	ids := FlattenPairs(pairs, limit)
	for _, id := range ids {
		if err := ValidateIdentifier(id); err != nil {
			return nil, goerr.Wrap(err, "manifest contains invalid identifier", goerr.V("url", url))
		}
	}
	logger.Debug("Fetched manifest",
		"pair_count", len(pairs),
		"identifier_count", len(ids),
	)
	return ids, nil
}

// FlattenPairs concatenates pairs in order. Duplicates are kept.
func FlattenPairs(pairs [][]string, limit int) []string {
	ids := make([]string, 0, len(pairs)*2)
	for _, pair := range pairs {
		ids = append(ids, pair...)
	}

	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	return ids
}
