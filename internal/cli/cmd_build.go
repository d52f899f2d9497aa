package cli

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/LtttAZ/fus/internal/ado"
	"github.com/LtttAZ/fus/internal/config"
	"github.com/LtttAZ/fus/internal/repodb"
)

func (a *App) buildListCmd() *Command {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.String("repo-name", "", "Repository name, resolved via the local cache (required)")
	fs.Int("top", 0, "Maximum number of builds to fetch")
	fs.Bool("open", false, "Prompt to open a build even when build.open is false")

	return &Command{
		Flags: fs,
		Usage: "build list --repo-name <name> [--top <n>] [--open]",
		Short: "List builds for a repository",
		Long:  "List builds for a repository. The repository name is resolved to an id through the local cache populated by 'ado repo list'.",
		Exec: func(o *IO, _ []string) error {
			return a.execBuildList(o, fs)
		},
	}
}

func (a *App) execBuildList(o *IO, fs *flag.FlagSet) error {
	if !fs.Changed("repo-name") {
		return &usageError{msg: "missing required option: --repo-name"}
	}

	repoName, _ := fs.GetString("repo-name")

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

	repoID, found, err := repodb.IDByName(a.DBPath, repoName)
	if err != nil {
		return err
	}

	if !found {
		return fmt.Errorf("Repository '%s' not found in local cache. Run 'ado repo list' to refresh it.", repoName)
	}

	pat, err := config.PAT(a.Env)
	if err != nil {
		return err
	}

	top, _ := fs.GetInt("top")

	client := ado.NewClient(cfg.Server, org, pat)

	builds, err := client.ListBuilds(project, repoID, top)
	if err != nil {
		return err
	}

	fields, names, err := config.ResolveColumns(cfg.Build.Columns, cfg.Build.ColumnNames, config.DefaultBuildFields, config.DefaultBuildNames)
	if err != nil {
		// Lenient variant: the repo listing aborts on this, the build
		// listing falls back to field paths as headers.
		var mismatch *config.CountMismatchError
		if !errors.As(err, &mismatch) {
			return err
		}

		o.Warnf("%v Using column paths as headers.", err)

		names = slices.Clone(fields)
	}

	records := make([]map[string]any, len(builds))
	for i, b := range builds {
		records[i] = b.Fields()
	}

	rows, err := projectRows(records, fields)
	if err != nil {
		return err
	}

	o.Println(renderTable(append([]string{"#"}, names...), rows))

	openAfter := cfg.Build.Open
	if fs.Changed("open") {
		openAfter, _ = fs.GetBool("open")
	}

	if !openAfter || len(builds) == 0 {
		return nil
	}

	o.Printf("Enter build number to open (or press Enter to skip): ")

	line := o.ReadLine()

	index, skip, err := ParseSelection(line, len(builds))

	switch {
	case skip:
		return nil
	case errors.Is(err, ErrNotANumber):
		o.Println("Invalid input: " + strings.TrimSpace(line))
		return nil
	case err != nil:
		o.Println(fmt.Sprintf("Invalid selection: must be between 1 and %d", len(builds)))
		return nil
	}

	url := ado.BuildResultURL(cfg.Server, org, project, builds[index-1].ID)
	o.Println("Opening:", url)

	if err := a.OpenURL(url); err != nil {
		return fmt.Errorf("open browser: %w", err)
	}

	return nil
}
