package shell

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/josephlewis42/lsh/core/logger"
)

// ProcAttr holds the attributes of a process started by a Spawner.
// The process always inherits the shell's working directory and environment.
type ProcAttr struct {
	// Files holds the standard streams of the process.
	Files IO
}

// Process is a program started by a Spawner.
type Process interface {
	// Wait blocks until the process terminates and returns its exit status.
	// A process that runs to completion is not an error, whatever its status.
	Wait() (int, error)
}

// Spawner starts programs.
type Spawner interface {
	// Spawn starts program with the given arguments, not including the
	// program name.
	Spawn(program string, args []string, attr *ProcAttr) (Process, error)
}

// ExecSpawner starts programs as operating system processes, resolving
// program names through PATH.
type ExecSpawner struct{}

var _ Spawner = (*ExecSpawner)(nil)

// Spawn implements Spawner.Spawn.
func (*ExecSpawner) Spawn(program string, args []string, attr *ProcAttr) (Process, error) {
	cmd := exec.Command(program, args...)
	if attr != nil && attr.Files != nil {
		cmd.Stdin = attr.Files.Stdin()
		cmd.Stdout = attr.Files.Stdout()
		cmd.Stderr = attr.Files.Stderr()
	}

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	return &execProcess{cmd: cmd}, nil
}

type execProcess struct {
	cmd *exec.Cmd
}

func (p *execProcess) Wait() (int, error) {
	err := p.cmd.Wait()

	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		// Non-zero exit or killed by a signal, the process still completed.
		return exitErr.ExitCode(), nil
	case err != nil:
		return -1, err
	}

	return p.cmd.ProcessState.ExitCode(), nil
}

// Launch runs an external program in the foreground and waits for it to
// finish.
//
// The program's exit status doesn't affect the shell. Failing to start or
// wait on the program does: the error is reported and the shell stops.
func (s *Shell) Launch(program string, args []string) Signal {
	command := append([]string{program}, args...)

	proc, err := s.Spawner.Spawn(program, args, &ProcAttr{Files: s.IO})
	if err != nil {
		fmt.Fprintf(s.IO.Stderr(), "Error spawning process: %v\n", err)
		s.record(&logger.LaunchError{Command: command, Stage: logger.LaunchStageSpawn, Error: err.Error()})
		return Stop
	}

	status, err := proc.Wait()
	if err != nil {
		fmt.Fprintf(s.IO.Stderr(), "Error waiting for the child process: %v\n", err)
		s.record(&logger.LaunchError{Command: command, Stage: logger.LaunchStageWait, Error: err.Error()})
		return Stop
	}

	s.record(&logger.CommandExit{Command: command, ExitStatus: status})
	return Continue
}
