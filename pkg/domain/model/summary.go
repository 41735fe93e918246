package model

import (
	"time"

	"github.com/m-mizutani/ffget/pkg/domain/types"
)

// RunSummary aggregates the results of one batch run
type RunSummary struct {
	RunID       string
	Server      types.ServerID
	ContentType types.ContentType
	Datasets    []types.DatasetName // Datasets that were processed
	Aborted     []types.DatasetName // Datasets skipped by policy
	Downloaded  int
	Skipped     int
	Planned     int
	Bytes       int64
	Duration    time.Duration
}

// Add accounts one fetch result
func (s *RunSummary) Add(result *FetchResult) {
	switch result.Status {
	case FetchStatusDownloaded:
		s.Downloaded++
		s.Bytes += result.Size
	case FetchStatusSkipped:
		s.Skipped++
	case FetchStatusPlanned:
		s.Planned++
	}
}
