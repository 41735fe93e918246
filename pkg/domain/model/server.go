package model

import (
	"slices"
	"strings"

	"github.com/m-mizutani/ffget/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// ServerEndpoints are the base URLs derived from a mirror root
type ServerEndpoints struct {
	ID             types.ServerID
	TermsURL       string
	DatasetBaseURL string
	ModelBaseURL   string
}

// ServerTable maps mirror identifiers to their root URL
type ServerTable map[types.ServerID]string

// DefaultServers are the public mirrors of the release
var DefaultServers = ServerTable{
	types.ServerEU:  "http://canis.vc.in.tum.de:8100/",
	types.ServerEU2: "http://kaldir.vc.in.tum.de/faceforensics/",
	types.ServerCA:  "http://falas.cmpt.sfu.ca:8100/",
}

// Merge returns a new table with extra entries added. Entries of extra win.
func (t ServerTable) Merge(extra map[types.ServerID]string) ServerTable {
	merged := make(ServerTable, len(t)+len(extra))
	for id, root := range t {
		merged[id] = root
	}
	for id, root := range extra {
		merged[id] = root
	}
	return merged
}

// IDs returns the known identifiers, built-in mirrors first.
func (t ServerTable) IDs() []types.ServerID {
	ids := []types.ServerID{}
	for _, id := range []types.ServerID{types.ServerEU, types.ServerEU2, types.ServerCA} {
		if _, ok := t[id]; ok {
			ids = append(ids, id)
		}
	}
	var custom []types.ServerID
	for id := range t {
		if id != types.ServerEU && id != types.ServerEU2 && id != types.ServerCA {
			custom = append(custom, id)
		}
	}
	slices.Sort(custom)
	return append(ids, custom...)
}

// Resolve derives the endpoints of mirror id
func (t ServerTable) Resolve(id types.ServerID) (*ServerEndpoints, error) {
	root, ok := t[id]
	if !ok {
		return nil, goerr.Wrap(types.ErrInvalidArgument, "unknown server",
			goerr.V("server", id),
			goerr.V("choices", t.IDs()))
	}
	if !strings.HasSuffix(root, "/") {
		root += "/"
	}

	return &ServerEndpoints{
		ID:             id,
		TermsURL:       root + "webpage/FaceForensics_TOS.pdf",
		DatasetBaseURL: root + "v3/",
		ModelBaseURL:   root + "v3/manipulated_sequences/Deepfakes/models/",
	}, nil
}

// ResolveServer resolves id against the built-in mirrors
func ResolveServer(id types.ServerID) (*ServerEndpoints, error) {
	return DefaultServers.Resolve(id)
}
