package model

import (
	"strings"

	"github.com/m-mizutani/ffget/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Dataset describes one logical dataset of the FaceForensics++ release
type Dataset struct {
	Name types.DatasetName // Logical name given on the command line
	Path string            // Remote path fragment relative to the dataset base URL

	// Archive marks standalone zip releases which bypass the manifest.
	Archive bool
}

// DeepfakesDataset is the only dataset that ships trained models
const DeepfakesDataset types.DatasetName = "Deepfakes"

// ManifestPath is the identifier list location relative to the dataset base URL
const ManifestPath = "misc/filelist.json"

// ArchiveFileName is the local name of a downloaded standalone archive
const ArchiveFileName = "downloaded_videos.zip"

// DeepfakesModelFiles are fetched for every identifier when models are requested
var DeepfakesModelFiles = []string{"decoder_A.h5", "decoder_B.h5", "encoder.h5"}

var registry = []Dataset{
	{Name: "original_youtube_videos", Path: "misc/downloaded_youtube_videos.zip", Archive: true},
	{Name: "original_youtube_videos_info", Path: "misc/downloaded_youtube_videos_info.zip", Archive: true},
	{Name: "original", Path: "original_sequences/youtube"},
	{Name: "DeepFakeDetection_original", Path: "original_sequences/actors"},
	{Name: DeepfakesDataset, Path: "manipulated_sequences/Deepfakes"},
	{Name: "DeepFakeDetection", Path: "manipulated_sequences/DeepFakeDetection"},
	{Name: "Face2Face", Path: "manipulated_sequences/Face2Face"},
	{Name: "FaceSwap", Path: "manipulated_sequences/FaceSwap"},
	{Name: "NeuralTextures", Path: "manipulated_sequences/NeuralTextures"},
}

// Datasets returns every registered dataset, archives included, in registry order.
func Datasets() []Dataset {
	return append([]Dataset(nil), registry...)
}

// LookupDataset returns the registered dataset named name.
func LookupDataset(name types.DatasetName) (Dataset, error) {
	for _, ds := range registry {
		if ds.Name == name {
			return ds, nil
		}
	}
	return Dataset{}, goerr.Wrap(types.ErrInvalidArgument, "unknown dataset",
		goerr.V("dataset", name),
		goerr.V("choices", datasetChoices()))
}

// SelectDatasets expands a dataset selection into the ordered list to process.
// DatasetAll yields every non-archive dataset.
func SelectDatasets(name types.DatasetName) ([]Dataset, error) {
	if name == types.DatasetAll {
		var selected []Dataset
		for _, ds := range registry {
			if !ds.Archive {
				selected = append(selected, ds)
			}
		}
		return selected, nil
	}

	ds, err := LookupDataset(name)
	if err != nil {
		return nil, err
	}
	return []Dataset{ds}, nil
}

// HasModels reports whether trained models are hosted for the dataset
func (d Dataset) HasModels() bool {
	return d.Name == DeepfakesDataset
}

func datasetChoices() string {
	names := make([]string, 0, len(registry)+1)
	for _, ds := range registry {
		names = append(names, string(ds.Name))
	}
	names = append(names, string(types.DatasetAll))
	return strings.Join(names, ", ")
}
