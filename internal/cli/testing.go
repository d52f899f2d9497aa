package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/LtttAZ/fus/internal/config"
)

// FakeGit is a canned gitutil.Git for command tests.
type FakeGit struct {
	Repo   bool
	Remote string // empty means no 'origin' remote
	Branch string // empty means detached / unborn
}

func (g FakeGit) IsRepository(string) bool { return g.Repo }

func (g FakeGit) RemoteURL(_, remote string) (string, bool) {
	if remote != "origin" || g.Remote == "" {
		return "", false
	}

	return g.Remote, true
}

func (g FakeGit) CurrentBranch(string) (string, bool) {
	return g.Branch, g.Branch != ""
}

// TestApp wires an App against temp paths and records every URL handed
// to the browser opener.
type TestApp struct {
	*App

	Opened []string
}

// NewTestApp builds an App whose config, cache, git and browser are all
// test-controlled. The environment starts with ADO_PAT set since most
// commands need it; tests that exercise the missing-PAT path delete it.
func NewTestApp(t *testing.T) *TestApp {
	t.Helper()

	dir := t.TempDir()

	ta := &TestApp{}
	ta.App = &App{
		ConfigPath: filepath.Join(dir, "ado.yaml"),
		DBPath:     filepath.Join(dir, "ado.db"),
		WorkDir:    dir,
		Git:        FakeGit{},
		OpenURL: func(url string) error {
			ta.Opened = append(ta.Opened, url)
			return nil
		},
		Env: map[string]string{"ADO_PAT": "test-pat"},
	}

	return ta
}

// SetConfig writes the given document to the app's config path.
func (ta *TestApp) SetConfig(t *testing.T, doc config.Document) {
	t.Helper()

	if err := config.Write(ta.ConfigPath, doc); err != nil {
		t.Fatalf("write test config: %v", err)
	}
}

// RunLine runs one command line ("ado ..." shorthand without the binary
// name) with the given stdin and returns exit code, stdout and stderr.
func (ta *TestApp) RunLine(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()

	var out, errOut bytes.Buffer

	code = ta.Run(strings.NewReader(stdin), &out, &errOut, append([]string{"ado"}, args...))

	return code, out.String(), errOut.String()
}
