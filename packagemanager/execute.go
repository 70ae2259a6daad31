package packagemanager

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/safedep/dry/log"
)

// Replaced in tests
var execCommandContext = exec.CommandContext

// processWaitDelay bounds how long a cancelled or exited process may keep
// its output pipes open through descendants that outlive it.
var processWaitDelay = 5 * time.Second

// Output is the result of a completed package manager process.
type Output struct {
	Stdout []byte
	Stderr []byte

	// ExitCode of the process. A non-zero exit code is not an error,
	// callers decide what to do with it.
	ExitCode int
}

// Success reports whether the process exited with status 0.
func (o *Output) Success() bool {
	return o.ExitCode == 0
}

// Process is a handle to a running package manager process.
type Process struct {
	Invocation *Invocation

	// Stdout is the read end of the process standard output. It must be
	// drained before calling Wait.
	Stdout io.ReadCloser

	cmd *exec.Cmd
	ctx context.Context
}

// Pid returns the operating system process id.
func (p *Process) Pid() int {
	return p.cmd.Process.Pid
}

// Wait blocks until the process exits and returns its exit code. As with
// Output, a non-zero exit code is not reported as an error. A process
// stopped by Kill reports exit code -1. A process stopped because the
// context passed to ExecuteAsync was done fails with the context error.
func (p *Process) Wait() (int, error) {
	err := p.cmd.Wait()
	if err != nil {
		if p.ctx.Err() != nil {
			return -1, fmt.Errorf("%s interrupted: %w", p.Invocation.Exe(), p.ctx.Err())
		}

		if !isExitError(err) {
			return -1, fmt.Errorf("failed to wait for %s: %w", p.Invocation.Exe(), err)
		}
	}

	return p.cmd.ProcessState.ExitCode(), nil
}

// Kill terminates the process immediately.
func (p *Process) Kill() error {
	return p.cmd.Process.Kill()
}

func (i *Invocation) command(ctx context.Context) *exec.Cmd {
	cmd := execCommandContext(ctx, i.Exe(), i.Args...)
	cmd.Dir = i.Dir
	cmd.WaitDelay = processWaitDelay

	return cmd
}

// isExitError reports whether err only describes how the process ended,
// either a non-zero exit or output pipes held open past processWaitDelay.
func isExitError(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr) || errors.Is(err, exec.ErrWaitDelay)
}

// Execute runs the package manager and waits for it to exit. Standard
// output and standard error are captured.
func (b Builder) Execute(ctx context.Context) (*Output, error) {
	invocation, err := b.Prepare()
	if err != nil {
		return nil, err
	}

	return invocation.Run(ctx)
}

// ExecuteAsync starts the package manager and returns without waiting for
// it. See Invocation.Start.
func (b Builder) ExecuteAsync(ctx context.Context) (*Process, error) {
	invocation, err := b.Prepare()
	if err != nil {
		return nil, err
	}

	return invocation.Start(ctx)
}

// Run executes a prepared invocation and waits for it to exit.
func (i *Invocation) Run(ctx context.Context) (*Output, error) {
	cmd := i.command(ctx)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Debugf("Executing %s %v in %s", i.Exe(), i.Args, i.Dir)

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%s interrupted: %w", i.Exe(), ctx.Err())
		}

		if !isExitError(err) {
			return nil, ErrProcessSpawn.Wrap(err)
		}
	}

	return &Output{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		ExitCode: cmd.ProcessState.ExitCode(),
	}, nil
}

// Start launches a prepared invocation without waiting for it. Standard
// output is piped to Process.Stdout, standard error is inherited from the
// current process. Cancelling ctx kills the process.
func (i *Invocation) Start(ctx context.Context) (*Process, error) {
	cmd := i.command(ctx)
	cmd.Stderr = os.Stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, ErrProcessSpawn.Wrap(err)
	}

	log.Debugf("Starting %s %v in %s", i.Exe(), i.Args, i.Dir)

	if err := cmd.Start(); err != nil {
		return nil, ErrProcessSpawn.Wrap(err)
	}

	return &Process{
		Invocation: i,
		Stdout:     stdout,
		cmd:        cmd,
		ctx:        ctx,
	}, nil
}
