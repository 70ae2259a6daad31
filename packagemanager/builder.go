package packagemanager

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/safedep/dry/log"
)

const globalFlag = "--global"

type operation int

const (
	operationNone operation = iota
	operationInstall
	operationRemove
)

// Builder accumulates a package manager invocation. All configuration
// methods have value receivers and return an updated copy, so a Builder
// can be shared and branched without aliasing.
//
//	out, err := packagemanager.New(packagemanager.Yarn).
//		Dir("./web").
//		Global().
//		Install("typescript").
//		Execute(ctx)
type Builder struct {
	manager   Manager
	operation operation
	dir       string
	packages  []string
	flags     []string
}

// Invocation is a fully prepared package manager command.
type Invocation struct {
	Manager Manager

	// Dir is the absolute, symlink free working directory
	Dir string

	// Args starts with the verb, followed by packages and then flags
	Args []string
}

// Exe returns the name of the executable to run.
func (i *Invocation) Exe() string {
	return i.Manager.String()
}

// New creates a builder for the given manager with no operation selected.
func New(manager Manager) Builder {
	return Builder{manager: manager}
}

// Manager returns the package manager this builder targets.
func (b Builder) Manager() Manager {
	return b.manager
}

// Dir sets the working directory. Relative paths are resolved against the
// current directory at execution time. The directory is not checked here.
func (b Builder) Dir(relativePath string) Builder {
	b.dir = relativePath
	return b
}

// Global appends --global to the flags.
func (b Builder) Global() Builder {
	b.flags = append(slices.Clip(b.flags), globalFlag)
	return b
}

// Flags replaces all extra flags, including one added by Global.
func (b Builder) Flags(flags ...string) Builder {
	b.flags = slices.Clone(flags)
	return b
}

// Install selects the install operation for packages.
func (b Builder) Install(packages ...string) Builder {
	b.operation = operationInstall
	b.packages = slices.Clone(packages)
	return b
}

// Remove selects the remove operation for packages.
func (b Builder) Remove(packages ...string) Builder {
	b.operation = operationRemove
	b.packages = slices.Clone(packages)
	return b
}

// verb maps the selected operation to the manager specific subcommand.
func (b Builder) verb() (string, error) {
	if !b.manager.IsSupported() {
		return "", ErrUnsupportedManager.Wrap(fmt.Errorf("no verb mapping for %s", b.manager))
	}

	switch b.operation {
	case operationInstall:
		switch b.manager {
		case Npm:
			return "install", nil
		case Yarn, Pnpm:
			return "add", nil
		}
	case operationRemove:
		switch b.manager {
		case Npm, Yarn, Pnpm:
			return "remove", nil
		}
	case operationNone:
		return "", ErrNoOperation
	}

	return "", ErrUnsupportedManager.Wrap(fmt.Errorf("%s does not support operation %d", b.manager, b.operation))
}

func verbRequiresPackages(verb string) bool {
	switch verb {
	case "install", "add", "remove":
		return true
	default:
		return false
	}
}

// Prepare validates the builder and resolves the invocation without
// running it. The working directory is created when missing.
// Validation that does not touch the filesystem runs first so that an
// invalid builder never creates directories.
func (b Builder) Prepare() (*Invocation, error) {
	verb, err := b.verb()
	if err != nil {
		return nil, err
	}

	if len(b.packages) == 0 && verbRequiresPackages(verb) {
		return nil, ErrMissingParameter.Wrap(fmt.Errorf("%s %s requires at least one package", b.manager, verb))
	}

	dir, err := resolveDir(b.dir)
	if err != nil {
		return nil, err
	}

	args := make([]string, 0, 1+len(b.packages)+len(b.flags))
	args = append(args, verb)
	args = append(args, b.packages...)
	args = append(args, b.flags...)

	log.Debugf("Prepared %s invocation in %s with args: %v", b.manager, dir, args)

	return &Invocation{
		Manager: b.manager,
		Dir:     dir,
		Args:    args,
	}, nil
}

func resolveDir(relativePath string) (string, error) {
	if relativePath == "" {
		relativePath = "./"
	}

	dir, err := canonicalDir(relativePath)
	if err == nil {
		return dir, nil
	}

	log.Debugf("Creating working directory %s: %v", relativePath, err)

	if err := os.MkdirAll(relativePath, 0o755); err != nil {
		return "", ErrDirectoryResolution.Wrap(err)
	}

	dir, err = canonicalDir(relativePath)
	if err != nil {
		return "", ErrDirectoryResolution.Wrap(err)
	}

	return dir, nil
}

// canonicalDir returns the absolute path of an existing directory with
// symlinks evaluated.
func canonicalDir(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", err
	}

	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", resolved)
	}

	return resolved, nil
}
