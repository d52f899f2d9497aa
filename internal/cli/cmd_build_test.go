package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/LtttAZ/fus/internal/config"
	"github.com/LtttAZ/fus/internal/repodb"
)

// buildListServer serves the builds endpoint and records each request's
// query string.
func buildListServer(t *testing.T, builds []map[string]any, queries *[]string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/Acme/Widgets/_apis/build/builds" {
			http.NotFound(w, r)
			return
		}

		if queries != nil {
			*queries = append(*queries, r.URL.RawQuery)
		}

		_ = json.NewEncoder(w).Encode(map[string]any{"count": len(builds), "value": builds})
	}))
	t.Cleanup(srv.Close)

	return srv
}

func seedRepoCache(t *testing.T, app *TestApp) {
	t.Helper()

	err := repodb.UpsertAll(app.DBPath, []repodb.Entry{{ID: "repo-guid-1", Name: "frontend"}})
	if err != nil {
		t.Fatalf("seed cache: %v", err)
	}
}

func sampleBuilds() []map[string]any {
	return []map[string]any{
		{
			"id":           101,
			"buildNumber":  "20260830.1",
			"status":       "completed",
			"result":       "succeeded",
			"sourceBranch": "refs/heads/main",
			"finishTime":   "2026-08-30T10:15:00Z",
			"definition":   map[string]any{"id": 9, "name": "CI"},
		},
		{
			"id":           102,
			"buildNumber":  "20260830.2",
			"status":       "inProgress",
			"sourceBranch": "refs/heads/feature/login",
			"definition":   map[string]any{"id": 9, "name": "CI"},
		},
	}
}

func TestBuildList(t *testing.T) {
	t.Parallel()

	var queries []string
	srv := buildListServer(t, sampleBuilds(), &queries)

	app := NewTestApp(t)
	configureRemote(t, app, srv.URL, nil)
	seedRepoCache(t, app)

	code, stdout, stderr := app.RunLine(t, "\n", "build", "list", "--repo-name", "frontend")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0\nstderr: %s", code, stderr)
	}

	for _, cell := range []string{"build_id", "definition", "20260830.1", "refs/heads/main", "succeeded", "CI"} {
		if !strings.Contains(stdout, cell) {
			t.Errorf("stdout missing %q:\n%s", cell, stdout)
		}
	}

	// Unfinished builds render the absent marker in the finished column.
	if !strings.Contains(stdout, "—") {
		t.Errorf("absent marker missing:\n%s", stdout)
	}

	if len(queries) != 1 {
		t.Fatalf("requests = %d, want 1", len(queries))
	}

	q := queries[0]
	if !strings.Contains(q, "repositoryId=repo-guid-1") || !strings.Contains(q, "repositoryType=TfsGit") {
		t.Errorf("query = %q", q)
	}

	if strings.Contains(q, "%24top") || strings.Contains(q, "$top") {
		t.Errorf("$top sent without --top: %q", q)
	}
}

func TestBuildListTopFlag(t *testing.T) {
	t.Parallel()

	var queries []string
	srv := buildListServer(t, nil, &queries)

	app := NewTestApp(t)
	configureRemote(t, app, srv.URL, nil)
	seedRepoCache(t, app)

	code, _, _ := app.RunLine(t, "", "build", "list", "--repo-name", "frontend", "--top", "5")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}

	if len(queries) != 1 || !strings.Contains(queries[0], "top=5") {
		t.Errorf("queries = %v, want $top=5", queries)
	}
}

func TestBuildListMissingRepoName(t *testing.T) {
	t.Parallel()

	app := NewTestApp(t)

	code, _, stderr := app.RunLine(t, "", "build", "list")
	if code != 2 {
		t.Fatalf("exit code = %d, want 2", code)
	}

	if !strings.Contains(stderr, "Error: missing required option: --repo-name") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestBuildListCacheMiss(t *testing.T) {
	t.Parallel()

	app := NewTestApp(t)
	app.SetConfig(t, config.Document{"org": "Acme", "project": "Widgets"})

	code, _, stderr := app.RunLine(t, "", "build", "list", "--repo-name", "ghost")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}

	want := "Error: Repository 'ghost' not found in local cache. Run 'ado repo list' to refresh it.\n"
	if stderr != want {
		t.Errorf("stderr = %q, want %q", stderr, want)
	}
}

func TestBuildListOpensSelection(t *testing.T) {
	t.Parallel()

	srv := buildListServer(t, sampleBuilds(), nil)

	app := NewTestApp(t)
	configureRemote(t, app, srv.URL, nil)
	seedRepoCache(t, app)

	code, stdout, _ := app.RunLine(t, "2\n", "build", "list", "--repo-name", "frontend")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}

	if !strings.Contains(stdout, "Enter build number to open (or press Enter to skip): ") {
		t.Errorf("prompt missing:\n%s", stdout)
	}

	want := srv.URL + "/Acme/Widgets/_build/results?buildId=102"
	if len(app.Opened) != 1 || app.Opened[0] != want {
		t.Errorf("opened = %v, want [%s]", app.Opened, want)
	}
}

func TestBuildListLenientSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		stdin string
		want  string
	}{
		{name: "not a number", stdin: "abc\n", want: "Invalid input: abc\n"},
		{name: "out of range", stdin: "9\n", want: "Invalid selection: must be between 1 and 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := buildListServer(t, sampleBuilds(), nil)

			app := NewTestApp(t)
			configureRemote(t, app, srv.URL, nil)
			seedRepoCache(t, app)

			// Bad selections are reported but never fatal here.
			code, stdout, stderr := app.RunLine(t, tt.stdin, "build", "list", "--repo-name", "frontend")
			if code != 0 {
				t.Fatalf("exit code = %d, want 0\nstderr: %s", code, stderr)
			}

			if !strings.Contains(stdout, tt.want) {
				t.Errorf("stdout missing %q:\n%s", tt.want, stdout)
			}

			if len(app.Opened) != 0 {
				t.Errorf("opened = %v, want none", app.Opened)
			}
		})
	}
}

func TestBuildListColumnMismatchWarnsAndFallsBack(t *testing.T) {
	t.Parallel()

	srv := buildListServer(t, sampleBuilds(), nil)

	app := NewTestApp(t)
	configureRemote(t, app, srv.URL, config.Document{
		"build": map[string]any{
			"columns":      "id,status",
			"column-names": "Only",
			"open":         false,
		},
	})
	seedRepoCache(t, app)

	code, stdout, stderr := app.RunLine(t, "", "build", "list", "--repo-name", "frontend")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0\nstderr: %s", code, stderr)
	}

	want := "Warning: Number of column names (1) doesn't match number of columns (2). Using column paths as headers.\n"
	if stderr != want {
		t.Errorf("stderr = %q, want %q", stderr, want)
	}

	// Field paths serve as headers in the fallback.
	if !strings.Contains(stdout, "status") || !strings.Contains(stdout, "completed") {
		t.Errorf("fallback table wrong:\n%s", stdout)
	}
}

func TestBuildListEmptySkipsPrompt(t *testing.T) {
	t.Parallel()

	srv := buildListServer(t, nil, nil)

	app := NewTestApp(t)
	configureRemote(t, app, srv.URL, nil)
	seedRepoCache(t, app)

	code, stdout, _ := app.RunLine(t, "", "build", "list", "--repo-name", "frontend")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}

	if strings.Contains(stdout, "Enter build number") {
		t.Errorf("prompt shown for empty listing:\n%s", stdout)
	}
}
