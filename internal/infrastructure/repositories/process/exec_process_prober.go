package process

import (
	"context"
	"os/exec"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/devmanager/internal/domain/repositories"
)

// ExecProcessProber runs "<executable> --version" with a bounded timeout.
type ExecProcessProber struct {
	timeout time.Duration
}

// NewExecProcessProber creates a prober that gives every probe at most timeout to finish.
func NewExecProcessProber(timeout time.Duration) *ExecProcessProber {
	return &ExecProcessProber{timeout: timeout}
}

func (it *ExecProcessProber) ProbeVersion(ctx context.Context, executable string) bool {
	if _, err := exec.LookPath(executable); err != nil {
		return false
	}

	probeCtx, cancel := context.WithTimeout(ctx, it.timeout)
	defer cancel()

	cmd := exec.CommandContext(probeCtx, executable, "--version")
	output, err := cmd.Output()
	if err != nil {
		logger.Debugf("[probe] %s --version failed: %v", executable, err)
		return false
	}
	logger.Debugf("[probe] %s --version: %s", executable, output)
	return true
}

var _ repositories.ProcessProber = (*ExecProcessProber)(nil)
