package flows

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/safedep/dry/log"
	"github.com/safedep/pmb/config"
	"github.com/safedep/pmb/internal/eventlog"
	"github.com/safedep/pmb/internal/ui"
	"github.com/safedep/pmb/packagemanager"
)

// Operation selects what the package manager is asked to do.
type Operation int

const (
	OperationInstall Operation = iota
	OperationRemove
)

func (o Operation) String() string {
	switch o {
	case OperationInstall:
		return "install"
	case OperationRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Result of a flow that got as far as preparing an invocation.
type Result struct {
	InvocationID string
	Outcome      Outcome
	ExitCode     int
}

type invocationFlow struct {
	operation Operation
	packages  []string
	flags     []string

	stdout io.Writer
	stderr io.Writer
}

// Invocation creates the flow shared by all CLI operations: build the
// invocation from configuration, record it in the event log and run it
// (or print it for a dry run). Flags given here replace the configured
// per-manager flags.
func Invocation(operation Operation, packages, flags []string) *invocationFlow {
	return &invocationFlow{
		operation: operation,
		packages:  packages,
		flags:     flags,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}
}

// WithOutput redirects the package manager output and status messages.
func (f *invocationFlow) WithOutput(stdout, stderr io.Writer) *invocationFlow {
	f.stdout = stdout
	f.stderr = stderr
	return f
}

func (f *invocationFlow) Run(ctx context.Context, cfg *config.RuntimeConfig) (*Result, error) {
	id := eventlog.NewInvocationID()

	builder, err := f.builder(cfg)
	if err != nil {
		eventlog.LogInvocationFailed(id, cfg.Config.Manager, err)
		return failedResult(id, err), err
	}

	invocation, err := builder.Prepare()
	if err != nil {
		eventlog.LogInvocationFailed(id, builder.Manager().String(), err)
		return failedResult(id, err), err
	}

	view := ui.InvocationView{
		ID:        id,
		Manager:   invocation.Exe(),
		Directory: invocation.Dir,
		Args:      invocation.Args,
	}

	if cfg.DryRun {
		log.Debugf("Dry run, skipping execution of %s", invocation.Exe())
		ui.PrintDryRun(f.stdout, view)

		return &Result{InvocationID: id, Outcome: inferOutcome(true, 0, nil)}, nil
	}

	eventlog.LogInvocationStarted(id, invocation.Exe(), invocation.Dir, invocation.Args)
	ui.PrintStarting(f.stderr, view)

	var exitCode int
	if cfg.Async {
		exitCode, err = f.runAsync(ctx, invocation)
	} else {
		exitCode, err = f.runSync(ctx, invocation)
	}

	if err != nil {
		eventlog.LogInvocationFailed(id, invocation.Exe(), err)
		return failedResult(id, err), err
	}

	eventlog.LogInvocationCompleted(id, invocation.Exe(), exitCode)
	ui.PrintExitStatus(f.stderr, invocation.Exe(), exitCode)

	return &Result{
		InvocationID: id,
		Outcome:      inferOutcome(false, exitCode, nil),
		ExitCode:     exitCode,
	}, nil
}

// failedResult is returned along with the error of a run that could not
// be prepared, started or waited for.
func failedResult(id string, err error) *Result {
	return &Result{
		InvocationID: id,
		Outcome:      inferOutcome(false, -1, err),
		ExitCode:     -1,
	}
}

func (f *invocationFlow) builder(cfg *config.RuntimeConfig) (packagemanager.Builder, error) {
	manager, err := resolveManager(cfg.Config.Manager, cfg.Config.Directory)
	if err != nil {
		return packagemanager.Builder{}, err
	}

	flags := f.flags
	if len(flags) == 0 {
		flags = cfg.Config.FlagsFor(manager.String())
	}

	builder := packagemanager.New(manager).
		Dir(cfg.Config.Directory).
		Flags(flags...)

	if cfg.Config.Global {
		builder = builder.Global()
	}

	switch f.operation {
	case OperationInstall:
		builder = builder.Install(f.packages...)
	case OperationRemove:
		builder = builder.Remove(f.packages...)
	default:
		return packagemanager.Builder{}, fmt.Errorf("unknown operation: %s", f.operation)
	}

	return builder, nil
}

// resolveManager maps the configured manager name to a manager. The name
// "auto" detects the manager from lockfiles in dir.
func resolveManager(name, dir string) (packagemanager.Manager, error) {
	if strings.EqualFold(strings.TrimSpace(name), config.ManagerAuto) {
		if dir == "" {
			dir = "."
		}

		manager := packagemanager.DetectManager(dir)
		log.Debugf("Detected package manager %s in %s", manager, dir)

		return manager, nil
	}

	return packagemanager.ParseManager(name)
}

func (f *invocationFlow) runSync(ctx context.Context, invocation *packagemanager.Invocation) (int, error) {
	output, err := invocation.Run(ctx)
	if err != nil {
		return -1, err
	}

	if _, err := f.stdout.Write(output.Stdout); err != nil {
		log.Warnf("Failed to write package manager output: %v", err)
	}

	if _, err := f.stderr.Write(output.Stderr); err != nil {
		log.Warnf("Failed to write package manager output: %v", err)
	}

	return output.ExitCode, nil
}

func (f *invocationFlow) runAsync(ctx context.Context, invocation *packagemanager.Invocation) (int, error) {
	process, err := invocation.Start(ctx)
	if err != nil {
		return -1, err
	}

	log.Debugf("Started %s with pid %d", invocation.Exe(), process.Pid())

	if _, err := io.Copy(f.stdout, process.Stdout); err != nil {
		log.Warnf("Failed to stream package manager output: %v", err)

		// Keep draining so the process does not block on a full pipe
		_, _ = io.Copy(io.Discard, process.Stdout)
	}

	return process.Wait()
}
