package tree

import (
	"sync"
	"time"
)

const DefaultFreshness = 30 * time.Second

// State holds the current snapshot and when it last arrived. One State is
// shared by every handler of a server.
type State struct {
	mu         sync.RWMutex
	snapshot   *Snapshot
	lastUpdate time.Time
	now        func() time.Time
}

type Option func(*State)

// WithClock replaces the wall clock used for update times and status.
func WithClock(now func() time.Time) Option {
	return func(s *State) {
		s.now = now
	}
}

func NewState(initial *Snapshot, opts ...Option) *State {
	if initial == nil {
		initial = Placeholder()
	}

	s := &State{
		snapshot: initial,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Replace swaps in snap as the current snapshot and records the update time.
func (s *State) Replace(snap *Snapshot) time.Time {
	now := s.now()

	s.mu.Lock()
	s.snapshot = snap
	s.lastUpdate = now
	s.mu.Unlock()

	return now
}

func (s *State) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// LastUpdate is the zero time until the first Replace.
func (s *State) LastUpdate() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastUpdate
}

type Status struct {
	Connected      bool
	LastUpdate     time.Time
	SinceUpdate    time.Duration
	GameName       string
	ContainerCount int
}

// Status reports whether a sync arrived within freshness, along with a summary
// of the current snapshot.
func (s *State) Status(freshness time.Duration) Status {
	now := s.now()

	s.mu.RLock()
	snap, last := s.snapshot, s.lastUpdate
	s.mu.RUnlock()

	var since time.Duration
	if last.IsZero() {
		since = time.Duration(now.UnixMilli()) * time.Millisecond
	} else {
		since = now.Sub(last)
	}

	name, ok := snap.Name()
	if !ok {
		name = UnknownName
	}

	return Status{
		Connected:      !last.IsZero() && since < freshness,
		LastUpdate:     last,
		SinceUpdate:    since,
		GameName:       name,
		ContainerCount: len(snap.Containers()),
	}
}
