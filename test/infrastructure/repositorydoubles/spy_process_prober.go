//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"sync"

	"github.com/rios0rios0/devmanager/internal/domain/repositories"
)

// SpyProcessProber implements repositories.ProcessProber as a configurable spy.
type SpyProcessProber struct {
	// Installed lists the executables that answer --version.
	Installed map[string]bool

	mu     sync.Mutex
	Probed []string
}

var _ repositories.ProcessProber = (*SpyProcessProber)(nil)

func (s *SpyProcessProber) ProbeVersion(_ context.Context, executable string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Probed = append(s.Probed, executable)
	return s.Installed[executable]
}
