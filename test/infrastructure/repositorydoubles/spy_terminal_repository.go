//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"sync"

	"github.com/rios0rios0/devmanager/internal/domain/repositories"
)

// SentCommand records a single invocation of Send.
type SentCommand struct {
	Title   string
	Dir     string
	Command string
}

// SpyTerminalRepository implements repositories.TerminalRepository as a configurable spy.
type SpyTerminalRepository struct {
	SendErr error

	mu   sync.Mutex
	Sent []SentCommand
}

var _ repositories.TerminalRepository = (*SpyTerminalRepository)(nil)

func (s *SpyTerminalRepository) Send(_ context.Context, title, dir, command string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Sent = append(s.Sent, SentCommand{Title: title, Dir: dir, Command: command})
	return s.SendErr
}
