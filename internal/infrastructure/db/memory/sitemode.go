// Package memory holds in-process fallbacks for stores that normally live in Redis.
package memory

import (
	"context"
	"sync/atomic"
)

// SiteModeStore keeps the "under construction" flag for this process only.
type SiteModeStore struct {
	on atomic.Bool
}

func NewSiteModeStore(initial bool) *SiteModeStore {
	s := &SiteModeStore{}
	s.on.Store(initial)
	return s
}

func (s *SiteModeStore) UnderConstruction(context.Context) (bool, error) {
	return s.on.Load(), nil
}

func (s *SiteModeStore) SetUnderConstruction(_ context.Context, on bool) error {
	s.on.Store(on)
	return nil
}
