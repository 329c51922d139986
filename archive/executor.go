package archive

import (
	"os/exec"

	"github.com/pkg/errors"
)

// CommandExecutor is an abstraction layer on top of the exec package to
// improve testability: tests substitute a fake compressor without shelling
// out.
type CommandExecutor interface {
	// Run executes the command and blocks until it exits. A non-zero exit
	// is returned as an *exec.ExitError.
	Run(cmd *exec.Cmd) error
}

// systemExecutor runs commands on the host system.
type systemExecutor struct{}

// NewSystemExecutor returns the CommandExecutor used outside of tests.
func NewSystemExecutor() CommandExecutor {
	return systemExecutor{}
}

func (systemExecutor) Run(cmd *exec.Cmd) error {
	if err := cmd.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return err
		}
		return errors.Wrapf(err, "running %s", cmd.Path)
	}
	return nil
}
