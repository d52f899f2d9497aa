package cli

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/LtttAZ/fus/internal/ado"
	"github.com/LtttAZ/fus/internal/config"
)

// setFlags maps config set flags onto their dotted document keys, in the
// order the success message reports them.
var setFlags = []struct {
	flag    string
	key     string
	boolean bool
}{
	{flag: "project", key: "project"},
	{flag: "org", key: "org"},
	{flag: "server", key: "server"},
	{flag: "repo-columns", key: "repo.columns"},
	{flag: "repo-column-names", key: "repo.column-names"},
	{flag: "repo.open", key: "repo.open", boolean: true},
	{flag: "build-columns", key: "build.columns"},
	{flag: "build-column-names", key: "build.column-names"},
	{flag: "build.open", key: "build.open", boolean: true},
}

func (a *App) configSetCmd() *Command {
	fs := flag.NewFlagSet("set", flag.ContinueOnError)
	fs.String("project", "", "Azure DevOps project name")
	fs.String("org", "", "Azure DevOps organization name")
	fs.String("server", "", "Server base URL (on-premises installs)")
	fs.String("repo-columns", "", "CSV of repo list field paths")
	fs.String("repo-column-names", "", "CSV of repo list column headers")
	fs.String("repo.open", "", "Prompt to open a repository after listing (true|false)")
	fs.String("build-columns", "", "CSV of build list field paths")
	fs.String("build-column-names", "", "CSV of build list column headers")
	fs.String("build.open", "", "Prompt to open a build after listing (true|false)")

	return &Command{
		Flags: fs,
		Usage: "config set [flags]",
		Short: "Set configuration values",
		Long:  "Set configuration values. Only the provided options are updated; everything else in the config file is preserved.",
		Exec: func(o *IO, _ []string) error {
			return a.execConfigSet(o, fs)
		},
	}
}

func (a *App) execConfigSet(o *IO, fs *flag.FlagSet) error {
	type update struct {
		key   string
		value any
		shown string
	}

	var updates []update

	for _, def := range setFlags {
		if !fs.Changed(def.flag) {
			continue
		}

		raw, _ := fs.GetString(def.flag)

		var value any = raw

		if def.boolean {
			if raw != "true" && raw != "false" {
				return fmt.Errorf("--%s must be 'true' or 'false'", def.flag)
			}

			value = raw == "true"
		}

		updates = append(updates, update{key: def.key, value: value, shown: raw})
	}

	if len(updates) == 0 {
		return errors.New("At least one configuration option must be provided")
	}

	doc, err := config.Read(a.ConfigPath)
	if err != nil {
		return err
	}

	for _, u := range updates {
		config.SetNested(doc, u.key, u.value)
	}

	if err := config.Write(a.ConfigPath, doc); err != nil {
		return err
	}

	parts := make([]string, len(updates))
	for i, u := range updates {
		parts[i] = u.key + "=" + u.shown
	}

	o.Println("Configuration saved: " + strings.Join(parts, ", "))

	return nil
}

func (a *App) configInitCmd() *Command {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "config init",
		Short: "Create a config file with default values",
		Exec: func(o *IO, _ []string) error {
			return a.execConfigInit(o)
		},
	}
}

func (a *App) execConfigInit(o *IO) error {
	if _, err := os.Stat(a.ConfigPath); err == nil {
		return fmt.Errorf("Configuration file already exists at %s", a.ConfigPath)
	}

	// Only keys with defaults; org and project must be set explicitly.
	doc := config.Document{
		"server": ado.DefaultServer,
		"repo": map[string]any{
			"columns":      strings.Join(config.DefaultRepoFields, ","),
			"column-names": strings.Join(config.DefaultRepoNames, ","),
			"open":         true,
		},
		"build": map[string]any{
			"columns":      strings.Join(config.DefaultBuildFields, ","),
			"column-names": strings.Join(config.DefaultBuildNames, ","),
			"open":         true,
		},
	}

	if err := config.Write(a.ConfigPath, doc); err != nil {
		return err
	}

	o.Println("Configuration initialized at " + a.ConfigPath)

	return nil
}

func (a *App) configListCmd() *Command {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "config list",
		Short: "Show the configured organization, project and server",
		Exec: func(o *IO, _ []string) error {
			return a.execConfigList(o)
		},
	}
}

func (a *App) execConfigList(o *IO) error {
	doc, err := config.Read(a.ConfigPath)
	if err != nil {
		return err
	}

	cfg := config.Resolve(doc)

	entries := map[string]string{"server": cfg.Server}
	if cfg.Org != "" {
		entries["org"] = cfg.Org
	}

	if cfg.Project != "" {
		entries["project"] = cfg.Project
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		o.Println(k + ": " + entries[k])
	}

	return nil
}
