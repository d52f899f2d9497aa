package ado

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultServer is the Azure DevOps cloud endpoint.
const DefaultServer = "https://dev.azure.com"

// Descriptor identifies a repository on an Azure DevOps server.
type Descriptor struct {
	Server  string
	Org     string
	Project string
	Repo    string
}

// Remote URL shapes. HTTPS may carry a user@ prefix, SSH is always the
// v3 form used by the hosted service. A trailing .git is stripped from
// the repository name.
var (
	httpsRemoteRe = regexp.MustCompile(`^https://(?:[^@]+@)?([^/]+)/([^/]+)/([^/]+)/_git/([^/\s]+?)(?:\.git)?$`)
	sshRemoteRe   = regexp.MustCompile(`^git@ssh\.dev\.azure\.com:v3/([^/]+)/([^/]+)/([^/\s]+?)(?:\.git)?$`)
)

// ParseRemoteURL extracts the server, organization, project and repository
// from a git remote URL. The second return value is false when the URL does
// not match either recognized shape; the caller decides whether that is
// fatal.
//
// Hosts containing "dev.azure.com" normalize to the canonical cloud server
// regardless of prefix; any other host is an on-premises server and is
// reconstructed as https://<host>.
func ParseRemoteURL(remoteURL string) (Descriptor, bool) {
	if m := httpsRemoteRe.FindStringSubmatch(remoteURL); m != nil {
		server := "https://" + m[1]
		if strings.Contains(m[1], "dev.azure.com") {
			server = DefaultServer
		}

		return Descriptor{Server: server, Org: m[2], Project: m[3], Repo: m[4]}, true
	}

	if m := sshRemoteRe.FindStringSubmatch(remoteURL); m != nil {
		return Descriptor{Server: DefaultServer, Org: m[1], Project: m[2], Repo: m[3]}, true
	}

	return Descriptor{}, false
}

// RepoURL builds the browser URL for a repository. A non-empty branch is
// appended as a version query parameter verbatim; slashes in branch names
// are accepted by the service unescaped.
func RepoURL(server, org, project, repo, branch string) string {
	base := fmt.Sprintf("%s/%s/%s/_git/%s", server, org, project, repo)
	if branch != "" {
		return base + "?version=GB" + branch
	}

	return base
}

// WorkItemURL builds the browser URL for editing a work item.
func WorkItemURL(server, org, project string, workItemID int) string {
	return fmt.Sprintf("%s/%s/%s/_workitems/edit/%d", server, org, project, workItemID)
}

// BuildResultURL builds the browser URL for a build's result page.
func BuildResultURL(server, org, project string, buildID int) string {
	return fmt.Sprintf("%s/%s/%s/_build/results?buildId=%d", server, org, project, buildID)
}
