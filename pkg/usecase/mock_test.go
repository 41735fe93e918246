package usecase_test

import (
	"context"
	"errors"
	"io"
	"strings"
)

// MockMirrorClient is a mock implementation of MirrorClient
type MockMirrorClient struct {
	fetchManifestFunc func(ctx context.Context, url string) ([][]string, error)
	downloadFunc      func(ctx context.Context, url string, w io.Writer) (int64, error)

	manifestCalls []string
	downloadCalls []string
}

func (m *MockMirrorClient) FetchManifest(ctx context.Context, url string) ([][]string, error) {
	m.manifestCalls = append(m.manifestCalls, url)
	if m.fetchManifestFunc != nil {
		return m.fetchManifestFunc(ctx, url)
	}
	return nil, errors.New("mock not configured")
}

func (m *MockMirrorClient) Download(ctx context.Context, url string, w io.Writer) (int64, error) {
	m.downloadCalls = append(m.downloadCalls, url)
	if m.downloadFunc != nil {
		return m.downloadFunc(ctx, url, w)
	}
	n, err := io.Copy(w, strings.NewReader("body of "+url))
	return n, err
}

func manifestOf(pairs ...[]string) func(ctx context.Context, url string) ([][]string, error) {
	return func(ctx context.Context, url string) ([][]string, error) {
		return pairs, nil
	}
}
