package ado

import "time"

// ProjectRef is the nested project reference carried by repositories.
type ProjectRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Repository is a git repository as returned by the service.
type Repository struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	URL           string     `json:"url"`
	RemoteURL     string     `json:"remoteUrl"`
	SSHURL        string     `json:"sshUrl"`
	WebURL        string     `json:"webUrl"`
	DefaultBranch string     `json:"defaultBranch"`
	Size          int64      `json:"size"`
	Project       ProjectRef `json:"project"`
}

// Fields returns the repository's projectable attributes keyed by the
// names users put in repo.columns. Nested references appear as nested
// maps so dotted paths like project.name resolve.
func (r Repository) Fields() map[string]any {
	return map[string]any{
		"id":             r.ID,
		"name":           r.Name,
		"url":            r.URL,
		"remote_url":     r.RemoteURL,
		"ssh_url":        r.SSHURL,
		"web_url":        r.WebURL,
		"default_branch": r.DefaultBranch,
		"size":           r.Size,
		"project": map[string]any{
			"id":   r.Project.ID,
			"name": r.Project.Name,
		},
	}
}

// DefinitionRef is the nested pipeline definition reference on builds.
type DefinitionRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Build is a pipeline run as returned by the service.
type Build struct {
	ID           int           `json:"id"`
	BuildNumber  string        `json:"buildNumber"`
	Status       string        `json:"status"`
	Result       string        `json:"result"`
	SourceBranch string        `json:"sourceBranch"`
	QueueTime    time.Time     `json:"queueTime"`
	FinishTime   *time.Time    `json:"finishTime"`
	Definition   DefinitionRef `json:"definition"`
}

// Fields returns the build's projectable attributes. An absent finish
// time maps to nil so it renders as a placeholder rather than a zero
// timestamp.
func (b Build) Fields() map[string]any {
	var finish any
	if b.FinishTime != nil {
		finish = *b.FinishTime
	}

	return map[string]any{
		"id":            b.ID,
		"build_number":  b.BuildNumber,
		"status":        b.Status,
		"result":        b.Result,
		"source_branch": b.SourceBranch,
		"queue_time":    b.QueueTime,
		"finish_time":   finish,
		"definition": map[string]any{
			"id":   b.Definition.ID,
			"name": b.Definition.Name,
		},
	}
}
