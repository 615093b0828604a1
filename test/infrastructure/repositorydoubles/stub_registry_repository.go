//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rios0rios0/devmanager/internal/domain/repositories"
)

// StubRegistryRepository implements repositories.RegistryRepository with canned versions.
// Unknown packages behave like a failed lookup. Delays hold a lookup for the given time,
// outside the lock, so concurrent lookups overlap and can finish out of order.
type StubRegistryRepository struct {
	Versions map[string][]string
	Delays   map[string]time.Duration

	mu        sync.Mutex
	Calls     []string
	Completed []string

	inFlight    atomic.Int32
	maxInFlight atomic.Int32
}

var _ repositories.RegistryRepository = (*StubRegistryRepository)(nil)

func (s *StubRegistryRepository) ListVersions(ctx context.Context, name string) []string {
	s.mu.Lock()
	s.Calls = append(s.Calls, name)
	delay := s.Delays[name]
	s.mu.Unlock()

	current := s.inFlight.Add(1)
	defer s.inFlight.Add(-1)
	for {
		peak := s.maxInFlight.Load()
		if current <= peak || s.maxInFlight.CompareAndSwap(peak, current) {
			break
		}
	}

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.Completed = append(s.Completed, name)
	versions, ok := s.Versions[name]
	if !ok {
		return []string{}
	}
	return append([]string{}, versions...)
}

// CallCount returns the number of lookups made.
func (s *StubRegistryRepository) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Calls)
}

// MaxInFlight returns the highest number of lookups that ran at the same time.
func (s *StubRegistryRepository) MaxInFlight() int {
	return int(s.maxInFlight.Load())
}

// CompletionOrder returns the package names in the order their lookups finished.
func (s *StubRegistryRepository) CompletionOrder() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.Completed...)
}
