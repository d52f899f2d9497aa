package cli

import (
	"errors"
	"fmt"
	"path"

	flag "github.com/spf13/pflag"

	"github.com/LtttAZ/fus/internal/ado"
	"github.com/LtttAZ/fus/internal/config"
	"github.com/LtttAZ/fus/internal/repodb"
)

func (a *App) repoBrowseCmd() *Command {
	fs := flag.NewFlagSet("browse", flag.ContinueOnError)
	fs.String("branch", "", "Branch to open (defaults to the current branch)")

	return &Command{
		Flags: fs,
		Usage: "repo browse [--branch <b>]",
		Short: "Open the current repository in the browser",
		Long:  "Open the repository behind the 'origin' remote of the current directory in the browser.",
		Exec: func(o *IO, _ []string) error {
			return a.execRepoBrowse(o, fs)
		},
	}
}

func (a *App) execRepoBrowse(o *IO, fs *flag.FlagSet) error {
	if !a.Git.IsRepository(a.WorkDir) {
		return errors.New("Not in a git repository")
	}

	remote, ok := a.Git.RemoteURL(a.WorkDir, "origin")
	if !ok {
		return errors.New("No remote 'origin' found")
	}

	desc, ok := ado.ParseRemoteURL(remote)
	if !ok {
		return errors.New("Remote URL is not a valid Azure DevOps repository URL")
	}

	branch, _ := fs.GetString("branch")
	if branch == "" {
		branch, _ = a.Git.CurrentBranch(a.WorkDir)
	}

	url := ado.RepoURL(desc.Server, desc.Org, desc.Project, desc.Repo, branch)
	o.Println("Opening:", url)

	if err := a.OpenURL(url); err != nil {
		return fmt.Errorf("open browser: %w", err)
	}

	return nil
}

func (a *App) repoListCmd() *Command {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.String("pattern", "", "Only show repositories whose name matches this glob")
	fs.String("patt", "", "Alias for --pattern")
	fs.Bool("open", false, "Prompt to open a repository even when repo.open is false")

	return &Command{
		Flags: fs,
		Usage: "repo list [--pattern <glob>] [--open]",
		Short: "List repositories in the configured project",
		Long:  "List repositories in the configured project and refresh the local name cache. Columns come from repo.columns / repo.column-names.",
		Exec: func(o *IO, _ []string) error {
			return a.execRepoList(o, fs)
		},
	}
}

func (a *App) execRepoList(o *IO, fs *flag.FlagSet) error {
	doc, err := config.Read(a.ConfigPath)
	if err != nil {
		return err
	}

	cfg := config.Resolve(doc)

	org, err := cfg.RequireOrg()
	if err != nil {
		return err
	}

	project, err := cfg.RequireProject()
	if err != nil {
		return err
	}

	pat, err := config.PAT(a.Env)
	if err != nil {
		return err
	}

	client := ado.NewClient(cfg.Server, org, pat)

	repos, err := client.ListRepos(project)
	if err != nil {
		return err
	}

	// Refresh the name cache with the unfiltered listing so build
	// commands resolve names that the pattern below would hide.
	entries := make([]repodb.Entry, len(repos))
	for i, r := range repos {
		entries[i] = repodb.Entry{ID: r.ID, Name: r.Name}
	}

	if err := repodb.UpsertAll(a.DBPath, entries); err != nil {
		o.Warnf("could not refresh repo cache: %v", err)
	}

	pattern, _ := fs.GetString("pattern")
	if pattern == "" {
		pattern, _ = fs.GetString("patt")
	}

	if pattern != "" {
		filtered := repos[:0]

		for _, r := range repos {
			match, err := path.Match(pattern, r.Name)
			if err != nil {
				return fmt.Errorf("invalid pattern '%s'", pattern)
			}

			if match {
				filtered = append(filtered, r)
			}
		}

		repos = filtered
	}

	if len(repos) == 0 {
		msg := fmt.Sprintf("No repositories found in project '%s'", project)
		if pattern != "" {
			msg += fmt.Sprintf(" matching pattern '%s'", pattern)
		}

		o.Println(msg)

		return nil
	}

	fields, names, err := config.ResolveColumns(cfg.Repo.Columns, cfg.Repo.ColumnNames, config.DefaultRepoFields, config.DefaultRepoNames)
	if err != nil {
		return err
	}

	records := make([]map[string]any, len(repos))
	for i, r := range repos {
		records[i] = r.Fields()
	}

	rows, err := projectRows(records, fields)
	if err != nil {
		return err
	}

	o.Println(renderTable(append([]string{"#"}, names...), rows))

	openAfter := cfg.Repo.Open
	if fs.Changed("open") {
		openAfter, _ = fs.GetBool("open")
	}

	if !openAfter {
		return nil
	}

	o.Printf("Enter repository number to open (or press Enter to skip): ")

	index, skip, err := ParseSelection(o.ReadLine(), len(repos))

	// Strict variant: bad input is fatal here, unlike the build listing.
	switch {
	case skip:
		return nil
	case errors.Is(err, ErrNotANumber):
		return errors.New("Invalid number")
	case err != nil:
		return fmt.Errorf("Repository number must be between 1 and %d", len(repos))
	}

	url := repos[index-1].WebURL
	o.Println("Opening:", url)

	if err := a.OpenURL(url); err != nil {
		return fmt.Errorf("open browser: %w", err)
	}

	return nil
}
