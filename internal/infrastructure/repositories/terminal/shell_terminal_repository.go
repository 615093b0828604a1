package terminal

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/devmanager/internal/domain/repositories"
)

// ShellTerminalRepository runs command lines through a shell, streaming their output.
type ShellTerminalRepository struct {
	shell  string
	dryRun bool
	stdout io.Writer
	stderr io.Writer
}

// NewShellTerminalRepository creates a terminal that runs commands with "<shell> -c".
// In dry-run mode commands are only logged.
func NewShellTerminalRepository(shell string, dryRun bool) *ShellTerminalRepository {
	return &ShellTerminalRepository{
		shell:  shell,
		dryRun: dryRun,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// WithOutput redirects the output of the commands.
func (it *ShellTerminalRepository) WithOutput(stdout, stderr io.Writer) *ShellTerminalRepository {
	it.stdout = stdout
	it.stderr = stderr
	return it
}

func (it *ShellTerminalRepository) Send(ctx context.Context, title, dir, command string) error {
	if it.dryRun {
		logger.Infof("[dry-run] %s: %s", title, command)
		return nil
	}

	logger.Infof("[%s] $ %s", title, command)
	cmd := exec.CommandContext(ctx, it.shell, "-c", command)
	cmd.Dir = dir
	cmd.Stdout = it.stdout
	cmd.Stderr = it.stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}
	return nil
}

var _ repositories.TerminalRepository = (*ShellTerminalRepository)(nil)
