package packagemanager

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Manager is one of the supported package managers. The zero value is Npm.
type Manager int

const (
	Npm Manager = iota
	Yarn
	Pnpm
)

// Managers returns all supported package managers in declaration order.
func Managers() []Manager {
	return []Manager{Npm, Yarn, Pnpm}
}

// String returns the canonical name of the manager, which is also the
// name of its executable.
func (m Manager) String() string {
	switch m {
	case Npm:
		return "npm"
	case Yarn:
		return "yarn"
	case Pnpm:
		return "pnpm"
	default:
		return fmt.Sprintf("Manager(%d)", int(m))
	}
}

// IsSupported reports whether m is one of the known managers.
func (m Manager) IsSupported() bool {
	switch m {
	case Npm, Yarn, Pnpm:
		return true
	default:
		return false
	}
}

// ParseManager is the inverse of Manager.String. An empty name selects
// the default manager.
func ParseManager(name string) (Manager, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Npm, nil
	}

	for _, m := range Managers() {
		if m.String() == name {
			return m, nil
		}
	}

	return Npm, ErrUnsupportedManager.Wrap(fmt.Errorf("unknown package manager %q", name))
}

// Lockfiles in order of precedence. pnpm and yarn projects sometimes carry
// a stale package-lock.json, so npm comes last.
var lockfiles = []struct {
	name    string
	manager Manager
}{
	{"pnpm-lock.yaml", Pnpm},
	{"yarn.lock", Yarn},
	{"package-lock.json", Npm},
	{"npm-shrinkwrap.json", Npm},
}

// DetectManager picks a manager based on the lockfile present in dir.
// It falls back to Npm when no lockfile is found or dir is unreadable.
func DetectManager(dir string) Manager {
	for _, lf := range lockfiles {
		info, err := os.Stat(filepath.Join(dir, lf.name))
		if err != nil || info.IsDir() {
			continue
		}

		return lf.manager
	}

	return Npm
}
