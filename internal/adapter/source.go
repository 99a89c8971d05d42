package adapter

import (
	"context"
	"fmt"
)

// RemoteSource is an env source reading the public namespace of a running
// server. It only ever yields public variables.
type RemoteSource struct {
	adapter ServerAdapter
}

// NewRemoteSource returns a source backed by adapter.
func NewRemoteSource(adapter ServerAdapter) *RemoteSource {
	return &RemoteSource{adapter: adapter}
}

// Name implements env.Source.
func (s *RemoteSource) Name() string {
	return "remote"
}

// Load implements env.Source.
func (s *RemoteSource) Load(ctx context.Context) (map[string]string, error) {
	public, err := s.adapter.PublicEnv(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching remote env: %w", err)
	}
	return public.ToMap(), nil
}
