package types

import "errors"

var (
	// ErrInvalidArgument is returned for unknown dataset, compression, type or server values.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrManifestFetch is returned when the identifier manifest can not be retrieved or decoded.
	ErrManifestFetch = errors.New("manifest fetch failed")

	// ErrDownload is returned when a single file transfer fails.
	ErrDownload = errors.New("download failed")

	// ErrModelsUnavailable is returned when models are requested for a dataset other than Deepfakes.
	ErrModelsUnavailable = errors.New("models only available for Deepfakes")
)
