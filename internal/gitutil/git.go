// Package gitutil queries local version-control metadata by shelling out
// to git. Every query reports absence (missing binary, not a repository,
// no such remote) as a negative result rather than an error.
package gitutil

import (
	"os/exec"
	"strings"
)

// Git answers the three questions the CLI has about the working
// directory. It is an interface so commands can be tested without a git
// binary or a real checkout.
type Git interface {
	IsRepository(dir string) bool
	RemoteURL(dir, remote string) (string, bool)
	CurrentBranch(dir string) (string, bool)
}

// System runs the real git binary.
type System struct{}

func (System) IsRepository(dir string) bool {
	_, ok := runGit(dir, "rev-parse", "--git-dir")
	return ok
}

func (System) RemoteURL(dir, remote string) (string, bool) {
	return runGit(dir, "remote", "get-url", remote)
}

func (System) CurrentBranch(dir string) (string, bool) {
	out, ok := runGit(dir, "branch", "--show-current")
	if !ok || out == "" {
		// Detached HEAD prints nothing; treat as no branch.
		return "", false
	}

	return out, true
}

func runGit(dir string, args ...string) (string, bool) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir

	out, err := cmd.Output()
	if err != nil {
		return "", false
	}

	return strings.TrimSpace(string(out)), true
}
