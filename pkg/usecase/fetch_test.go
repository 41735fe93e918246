package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/ffget/pkg/domain/model"
	"github.com/m-mizutani/ffget/pkg/domain/types"
	"github.com/m-mizutani/ffget/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func TestFetchEngine_Fetch_Downloads(t *testing.T) {
	dir := t.TempDir()
	file := model.RemoteFile{
		URL:       "http://mirror.example.com/v3/a/b/c.mp4",
		LocalPath: filepath.Join(dir, "a", "b", "c.mp4"),
	}
	mock := &MockMirrorClient{}

	result, err := usecase.NewFetchEngine(mock).Fetch(context.Background(), file)
	gt.NoError(t, err)
	gt.Value(t, result.Status).Equal(model.FetchStatusDownloaded)
	gt.Value(t, mock.downloadCalls).Equal([]string{file.URL})

	content, err := os.ReadFile(file.LocalPath)
	gt.NoError(t, err)
	gt.Value(t, string(content)).Equal("body of " + file.URL)
	gt.Value(t, result.Size).Equal(int64(len(content)))
}

func TestFetchEngine_Fetch_SkipsExisting(t *testing.T) {
	for _, content := range [][]byte{{}, []byte("partial"), []byte("complete video")} {
		dir := t.TempDir()
		file := model.RemoteFile{
			URL:       "http://mirror.example.com/v3/x.mp4",
			LocalPath: filepath.Join(dir, "x.mp4"),
		}
		gt.NoError(t, os.WriteFile(file.LocalPath, content, 0644))

		var logs bytes.Buffer
		ctx := ctxlog.With(context.Background(), slog.New(slog.NewTextHandler(&logs, nil)))
		mock := &MockMirrorClient{}

		result, err := usecase.NewFetchEngine(mock).Fetch(ctx, file)
		gt.NoError(t, err)
		gt.Value(t, result.Status).Equal(model.FetchStatusSkipped)
		gt.A(t, mock.downloadCalls).Length(0)
		gt.String(t, logs.String()).Contains("Skipping download of existing file")

		got, err := os.ReadFile(file.LocalPath)
		gt.NoError(t, err)
		gt.Value(t, got).Equal(content)
	}
}

func TestFetchEngine_Fetch_Error(t *testing.T) {
	dir := t.TempDir()
	file := model.RemoteFile{
		URL:       "http://mirror.example.com/v3/x.mp4",
		LocalPath: filepath.Join(dir, "out", "x.mp4"),
	}
	mock := &MockMirrorClient{
		downloadFunc: func(ctx context.Context, url string, w io.Writer) (int64, error) {
			n, _ := w.Write([]byte("trunc"))
			return int64(n), goerr.Wrap(types.ErrDownload, "connection reset")
		},
	}

	result, err := usecase.NewFetchEngine(mock).Fetch(context.Background(), file)
	gt.Error(t, err)
	gt.Value(t, result).Nil()
	gt.Value(t, errors.Is(err, types.ErrDownload)).Equal(true)

	// The truncated file stays on disk and is reused by the next run.
	content, err := os.ReadFile(file.LocalPath)
	gt.NoError(t, err)
	gt.Value(t, string(content)).Equal("trunc")

	again, err := usecase.NewFetchEngine(&MockMirrorClient{}).Fetch(context.Background(), file)
	gt.NoError(t, err)
	gt.Value(t, again.Status).Equal(model.FetchStatusSkipped)
}

func TestFetchEngine_Fetch_DirectoryInTheWay(t *testing.T) {
	dir := t.TempDir()
	file := model.RemoteFile{
		URL:       "http://mirror.example.com/v3/x.mp4",
		LocalPath: filepath.Join(dir, "x.mp4"),
	}
	gt.NoError(t, os.Mkdir(file.LocalPath, 0755))

	_, err := usecase.NewFetchEngine(&MockMirrorClient{}).Fetch(context.Background(), file)
	gt.Error(t, err)
	gt.Value(t, errors.Is(err, types.ErrDownload)).Equal(true)
}

func TestFetchEngine_Plan(t *testing.T) {
	dir := t.TempDir()
	existing := model.RemoteFile{URL: "http://mirror.example.com/v3/a.mp4", LocalPath: filepath.Join(dir, "a.mp4")}
	missing := model.RemoteFile{URL: "http://mirror.example.com/v3/b.mp4", LocalPath: filepath.Join(dir, "sub", "b.mp4")}
	gt.NoError(t, os.WriteFile(existing.LocalPath, []byte("x"), 0644))

	mock := &MockMirrorClient{}
	engine := usecase.NewFetchEngine(mock)

	gt.Value(t, engine.Plan(context.Background(), existing).Status).Equal(model.FetchStatusSkipped)
	gt.Value(t, engine.Plan(context.Background(), missing).Status).Equal(model.FetchStatusPlanned)
	gt.A(t, mock.downloadCalls).Length(0)

	_, err := os.Stat(filepath.Join(dir, "sub"))
	gt.Value(t, os.IsNotExist(err)).Equal(true)
}
