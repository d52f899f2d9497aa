package cli

import (
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/LtttAZ/fus/internal/ado"
	"github.com/LtttAZ/fus/internal/config"
)

func (a *App) workItemBrowseCmd() *Command {
	fs := flag.NewFlagSet("browse", flag.ContinueOnError)
	fs.Int("id", 0, "Work item id (required)")

	return &Command{
		Flags: fs,
		Usage: "workitem browse --id <n>",
		Short: "Open a work item in the browser",
		Long:  "Open the work item edit page for the configured organization and project.",
		Exec: func(o *IO, _ []string) error {
			return a.execWorkItemBrowse(o, fs)
		},
	}
}

func (a *App) execWorkItemBrowse(o *IO, fs *flag.FlagSet) error {
	if !fs.Changed("id") {
		return &usageError{msg: "missing required option: --id"}
	}

	id, _ := fs.GetInt("id")

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

	url := ado.WorkItemURL(cfg.Server, org, project, id)
	o.Println("Opening:", url)

	if err := a.OpenURL(url); err != nil {
		return fmt.Errorf("open browser: %w", err)
	}

	return nil
}
