package config

import (
	"errors"

	"github.com/LtttAZ/fus/internal/ado"
)

// Default display schemas per command section.
var (
	DefaultRepoFields = []string{"id", "name"}
	DefaultRepoNames  = []string{"repo_id", "repo_name"}

	DefaultBuildFields = []string{"id", "definition.name", "build_number", "status", "result", "source_branch", "finish_time"}
	DefaultBuildNames  = []string{"build_id", "definition", "number", "status", "result", "branch", "finished"}
)

// PATEnvVar carries the personal access token. It is the only place a
// credential is ever read from; the config file never holds one.
const PATEnvVar = "ADO_PAT"

// Required-field and credential errors, worded as the single user-facing
// line each command prints. Every default and required check lives here
// rather than being spread across lazy accessors.
var (
	ErrOrgNotConfigured     = errors.New("Organization not configured. Use 'ado config set --org <org>' to set it.")
	ErrProjectNotConfigured = errors.New("Project not configured. Use 'ado config set --project <project>' to set it.")
	ErrPATNotSet            = errors.New("ADO_PAT environment variable not set.\nSet it with: export ADO_PAT='your-personal-access-token'")
)

// Section holds the per-command display settings (repo: / build: in the
// config file).
type Section struct {
	Columns     string // CSV of field paths; empty means defaults
	ColumnNames string // CSV of display headers; empty means derived
	Open        bool   // prompt to open a row after listing
}

// Resolved is the fully resolved configuration for one command
// invocation. Org and Project stay empty when unset; commands that need
// them call the Require accessors.
type Resolved struct {
	Server  string
	Org     string
	Project string
	Repo    Section
	Build   Section
}

// Resolve builds the resolved configuration from a document, applying
// every default in one place.
func Resolve(doc Document) Resolved {
	server, _ := doc["server"].(string)
	if server == "" {
		server = ado.DefaultServer
	}

	org, _ := doc["org"].(string)
	project, _ := doc["project"].(string)

	return Resolved{
		Server:  server,
		Org:     org,
		Project: project,
		Repo:    sectionFrom(doc, "repo"),
		Build:   sectionFrom(doc, "build"),
	}
}

func sectionFrom(doc Document, key string) Section {
	section := Section{Open: true}

	m, ok := doc[key].(map[string]any)
	if !ok {
		return section
	}

	if v, ok := m["columns"].(string); ok {
		section.Columns = v
	}

	if v, ok := m["column-names"].(string); ok {
		section.ColumnNames = v
	}

	if v, ok := m["open"].(bool); ok {
		section.Open = v
	}

	return section
}

// RequireOrg returns the organization or the fatal configuration error.
func (r Resolved) RequireOrg() (string, error) {
	if r.Org == "" {
		return "", ErrOrgNotConfigured
	}

	return r.Org, nil
}

// RequireProject returns the project or the fatal configuration error.
func (r Resolved) RequireProject() (string, error) {
	if r.Project == "" {
		return "", ErrProjectNotConfigured
	}

	return r.Project, nil
}

// PAT reads the access token from the process environment. It is passed
// explicitly into the API client, never read deeper in the call stack.
func PAT(env map[string]string) (string, error) {
	if v := env[PATEnvVar]; v != "" {
		return v, nil
	}

	return "", ErrPATNotSet
}
