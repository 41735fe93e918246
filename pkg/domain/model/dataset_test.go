package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/ffget/pkg/domain/model"
	"github.com/m-mizutani/ffget/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestLookupDataset(t *testing.T) {
	tests := []struct {
		name     string
		dataset  types.DatasetName
		wantPath string
		wantErr  bool
	}{
		{name: "original", dataset: "original", wantPath: "original_sequences/youtube"},
		{name: "actors", dataset: "DeepFakeDetection_original", wantPath: "original_sequences/actors"},
		{name: "Face2Face", dataset: "Face2Face", wantPath: "manipulated_sequences/Face2Face"},
		{name: "archive", dataset: "original_youtube_videos", wantPath: "misc/downloaded_youtube_videos.zip"},
		{name: "case sensitive", dataset: "face2face", wantErr: true},
		{name: "all is not a dataset", dataset: types.DatasetAll, wantErr: true},
		{name: "empty", dataset: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := model.LookupDataset(tt.dataset)
			if tt.wantErr {
				gt.Error(t, err)
				gt.Value(t, errors.Is(err, types.ErrInvalidArgument)).Equal(true)
				return
			}
			gt.NoError(t, err)
			gt.Value(t, ds.Path).Equal(tt.wantPath)
		})
	}
}

func TestSelectDatasets_All(t *testing.T) {
	selected, err := model.SelectDatasets(types.DatasetAll)
	gt.NoError(t, err)

	var names []types.DatasetName
	for _, ds := range selected {
		names = append(names, ds.Name)
		gt.Value(t, ds.Archive).Equal(false)
	}
	gt.Value(t, names).Equal([]types.DatasetName{
		"original",
		"DeepFakeDetection_original",
		"Deepfakes",
		"DeepFakeDetection",
		"Face2Face",
		"FaceSwap",
		"NeuralTextures",
	})
}

func TestSelectDatasets_Single(t *testing.T) {
	t.Run("archive selected by name", func(t *testing.T) {
		selected, err := model.SelectDatasets("original_youtube_videos_info")
		gt.NoError(t, err)
		gt.A(t, selected).Length(1)
		gt.Value(t, selected[0].Archive).Equal(true)
	})

	t.Run("unknown dataset", func(t *testing.T) {
		_, err := model.SelectDatasets("CelebDF")
		gt.Error(t, err)
		gt.Value(t, errors.Is(err, types.ErrInvalidArgument)).Equal(true)
	})
}

func TestDataset_HasModels(t *testing.T) {
	for _, ds := range model.Datasets() {
		gt.Value(t, ds.HasModels()).Equal(ds.Name == model.DeepfakesDataset)
	}
}

func TestDatasets_ReturnsCopy(t *testing.T) {
	list := model.Datasets()
	list[0].Path = "modified"

	ds, err := model.LookupDataset("original_youtube_videos")
	gt.NoError(t, err)
	gt.Value(t, ds.Path).Equal("misc/downloaded_youtube_videos.zip")
}
