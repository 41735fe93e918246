package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// DatasetName is a logical dataset name of the registry, or DatasetAll.
type DatasetName string

// DatasetAll selects every manipulation and original dataset.
const DatasetAll DatasetName = "all"

// Compression is the encoding preset a video is hosted under
type Compression string

const (
	CompressionRaw Compression = "raw"
	CompressionC23 Compression = "c23"
	CompressionC40 Compression = "c40"
)

// Compressions lists all valid compression levels in display order.
var Compressions = []Compression{CompressionRaw, CompressionC23, CompressionC40}

// ParseCompression validates s as a compression level
func ParseCompression(s string) (Compression, error) {
	for _, c := range Compressions {
		if string(c) == s {
			return c, nil
		}
	}
	return "", goerr.Wrap(ErrInvalidArgument, "unknown compression",
		goerr.V("compression", s),
		goerr.V("choices", Compressions))
}

// ContentType selects which artifacts of a dataset are retrieved
type ContentType string

const (
	ContentTypeVideos ContentType = "videos"
	ContentTypeMasks  ContentType = "masks"
	ContentTypeModels ContentType = "models"
)

// ContentTypes lists all valid content types in display order.
var ContentTypes = []ContentType{ContentTypeVideos, ContentTypeMasks, ContentTypeModels}

// ParseContentType validates s as a content type
func ParseContentType(s string) (ContentType, error) {
	for _, t := range ContentTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", goerr.Wrap(ErrInvalidArgument, "unknown content type",
		goerr.V("type", s),
		goerr.V("choices", ContentTypes))
}

// ServerID names a mirror server
type ServerID string

const (
	ServerEU  ServerID = "EU"
	ServerEU2 ServerID = "EU2"
	ServerCA  ServerID = "CA"
)
