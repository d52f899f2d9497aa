package ado

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const apiVersion = "7.0"

// Client talks to the Azure DevOps REST API for a single organization.
// The personal access token is passed in explicitly; the client never
// reads the environment itself.
type Client struct {
	orgURL string // server + "/" + org
	pat    string
	http   *http.Client
}

// NewClient creates a client for the given server and organization.
func NewClient(server, org, pat string) *Client {
	return &Client{
		orgURL: strings.TrimRight(server, "/") + "/" + url.PathEscape(org),
		pat:    pat,
		http:   &http.Client{Timeout: 30 * time.Second},
	}
}

// listEnvelope is the collection wrapper every list endpoint returns.
type listEnvelope[T any] struct {
	Count int `json:"count"`
	Value []T `json:"value"`
}

// ListRepos returns all git repositories in a project.
func (c *Client) ListRepos(project string) ([]Repository, error) {
	body, err := c.get(fmt.Sprintf("/%s/_apis/git/repositories", url.PathEscape(project)), nil)
	if err != nil {
		return nil, err
	}

	var env listEnvelope[Repository]
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &apiError{kind: ErrRemote, msg: fmt.Sprintf("Azure DevOps API error: %v", err)}
	}

	return env.Value, nil
}

// GetRepo returns a single repository by id or name.
func (c *Client) GetRepo(project, repoID string) (Repository, error) {
	body, err := c.get(fmt.Sprintf("/%s/_apis/git/repositories/%s", url.PathEscape(project), url.PathEscape(repoID)), nil)
	if err != nil {
		return Repository{}, err
	}

	var repo Repository
	if err := json.Unmarshal(body, &repo); err != nil {
		return Repository{}, &apiError{kind: ErrRemote, msg: fmt.Sprintf("Azure DevOps API error: %v", err)}
	}

	return repo, nil
}

// ListBuilds returns builds for a repository, newest first as the service
// orders them. A positive top limits the result server-side.
func (c *Client) ListBuilds(project, repoID string, top int) ([]Build, error) {
	query := url.Values{
		"repositoryId":   {repoID},
		"repositoryType": {"TfsGit"},
	}
	if top > 0 {
		query.Set("$top", strconv.Itoa(top))
	}

	body, err := c.get(fmt.Sprintf("/%s/_apis/build/builds", url.PathEscape(project)), query)
	if err != nil {
		return nil, err
	}

	var env listEnvelope[Build]
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &apiError{kind: ErrRemote, msg: fmt.Sprintf("Azure DevOps API error: %v", err)}
	}

	return env.Value, nil
}

func (c *Client) get(path string, query url.Values) ([]byte, error) {
	if query == nil {
		query = url.Values{}
	}

	query.Set("api-version", apiVersion)

	req, err := http.NewRequest(http.MethodGet, c.orgURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, &apiError{kind: ErrRemote, msg: fmt.Sprintf("Azure DevOps API error: %v", err)}
	}

	req.SetBasicAuth("", c.pat)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &apiError{kind: ErrRemote, msg: fmt.Sprintf("Azure DevOps API error: %v", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apiError{kind: ErrRemote, msg: fmt.Sprintf("Azure DevOps API error: %v", err)}
	}

	if err := classifyStatus(resp.StatusCode, body); err != nil {
		return nil, err
	}

	return body, nil
}

// classifyStatus maps response codes onto the three remote error kinds.
// 203 is what the service answers with when a bad token gets redirected
// to the sign-in page.
func classifyStatus(status int, body []byte) error {
	switch {
	case status >= 200 && status < 300 && status != http.StatusNonAuthoritativeInfo:
		return nil
	case status == http.StatusUnauthorized || status == http.StatusNonAuthoritativeInfo:
		return &apiError{kind: ErrAuth, msg: "Authentication failed. Check your ADO_PAT environment variable."}
	case status == http.StatusNotFound:
		return &apiError{kind: ErrNotFound, msg: "Resource not found: " + errorDetail(status, body)}
	default:
		return &apiError{kind: ErrRemote, msg: "Azure DevOps API error: " + errorDetail(status, body)}
	}
}

// errorDetail prefers the service's message field over the raw status.
func errorDetail(status int, body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}

	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}

	return fmt.Sprintf("%d %s", status, http.StatusText(status))
}
