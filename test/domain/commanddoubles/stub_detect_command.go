//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rios0rios0/devmanager/internal/domain/commands"
	"github.com/rios0rios0/devmanager/internal/domain/entities"
)

// StubDetectCommand is a stub implementation of commands.Detect.
// Delay holds every call, outside the lock, so concurrent calls overlap.
type StubDetectCommand struct {
	Result entities.PackageManager
	Delay  time.Duration

	mu          sync.Mutex
	ProjectDirs []string

	inFlight    atomic.Int32
	maxInFlight atomic.Int32
}

var _ commands.Detect = (*StubDetectCommand)(nil)

func (s *StubDetectCommand) Execute(_ context.Context, projectDir string) entities.PackageManager {
	current := s.inFlight.Add(1)
	defer s.inFlight.Add(-1)
	for {
		peak := s.maxInFlight.Load()
		if current <= peak || s.maxInFlight.CompareAndSwap(peak, current) {
			break
		}
	}
	if s.Delay > 0 {
		time.Sleep(s.Delay)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ProjectDirs = append(s.ProjectDirs, projectDir)
	if s.Result == "" {
		return entities.PackageManagerNpm
	}
	return s.Result
}

// MaxInFlight returns the highest number of calls that ran at the same time.
func (s *StubDetectCommand) MaxInFlight() int {
	return int(s.maxInFlight.Load())
}
