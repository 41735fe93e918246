package usecase

import (
	"path/filepath"
	"strings"

	"github.com/m-mizutani/ffget/pkg/domain/model"
	"github.com/m-mizutani/ffget/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// BuildRemoteFiles computes the files to fetch for one identifier of ds.
// It is a pure function of its arguments.
func BuildRemoteFiles(req *model.DownloadRequest, ds model.Dataset, id string) ([]model.RemoteFile, error) {
	if err := ValidateIdentifier(id); err != nil {
		return nil, err
	}
	base := req.Server.DatasetBaseURL

	switch req.ContentType {
	case types.ContentTypeVideos:
		rel := []string{ds.Path, string(req.Compression), "videos", id + ".mp4"}
		return []model.RemoteFile{{
			URL:       joinURL(base, rel...),
			LocalPath: filepath.Join(append([]string{req.OutputDir}, rel...)...),
		}}, nil

	case types.ContentTypeMasks:
		rel := []string{ds.Path, "masks", "videos", id + ".mp4"}
		return []model.RemoteFile{{
			URL:       joinURL(base, rel...),
			LocalPath: filepath.Join(append([]string{req.OutputDir}, rel...)...),
		}}, nil

	case types.ContentTypeModels:
		if !ds.HasModels() {
			return nil, goerr.Wrap(types.ErrModelsUnavailable, "models requested for unsupported dataset",
				goerr.V("dataset", ds.Name))
		}

		files := make([]model.RemoteFile, 0, len(model.DeepfakesModelFiles))
		for _, name := range model.DeepfakesModelFiles {
			files = append(files, model.RemoteFile{
				URL:       joinURL(req.Server.ModelBaseURL, id, name),
				LocalPath: filepath.Join(req.OutputDir, ds.Path, "models", id, name),
			})
		}
		return files, nil
	}

	return nil, goerr.Wrap(types.ErrInvalidArgument, "unknown content type",
		goerr.V("type", req.ContentType))
}

// BuildArchiveFile computes the single file of a standalone archive dataset
func BuildArchiveFile(req *model.DownloadRequest, ds model.Dataset) model.RemoteFile {
	return model.RemoteFile{
		URL:       joinURL(req.Server.DatasetBaseURL, ds.Path),
		LocalPath: filepath.Join(req.OutputDir, model.ArchiveFileName),
	}
}

// ValidateIdentifier accepts only identifiers that are a single local path
// element, so that every file stays under the output directory.
func ValidateIdentifier(id string) error {
	if id == "." || strings.ContainsAny(id, `/\`) || !filepath.IsLocal(id) {
		return goerr.Wrap(types.ErrManifestFetch, "invalid identifier", goerr.V("identifier", id))
	}
	return nil
}

func joinURL(base string, parts ...string) string {
	return strings.TrimRight(base, "/") + "/" + strings.Join(parts, "/")
}

// DatasetOutputDir returns the directory the files of ds are stored under
func DatasetOutputDir(req *model.DownloadRequest, ds model.Dataset) string {
	switch req.ContentType {
	case types.ContentTypeVideos:
		return filepath.Join(req.OutputDir, ds.Path, string(req.Compression), "videos")
	case types.ContentTypeMasks:
		return filepath.Join(req.OutputDir, ds.Path, "masks", "videos")
	default:
		return filepath.Join(req.OutputDir, ds.Path, string(req.ContentType))
	}
}
