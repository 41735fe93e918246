package model

// RemoteFile pairs a remote URL with the local path it is stored at
type RemoteFile struct {
	URL       string
	LocalPath string
}

// FetchStatus is the outcome of handling one RemoteFile
type FetchStatus string

const (
	FetchStatusDownloaded FetchStatus = "downloaded"
	FetchStatusSkipped    FetchStatus = "skipped"
	FetchStatusPlanned    FetchStatus = "planned"
)

// FetchResult represents the result of a single fetch
type FetchResult struct {
	File   RemoteFile
	Status FetchStatus
	Size   int64 // Bytes written, zero unless downloaded
}
