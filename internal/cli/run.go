package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/LtttAZ/fus/internal/config"
	"github.com/LtttAZ/fus/internal/gitutil"
	"github.com/LtttAZ/fus/internal/repodb"
)

// App holds the collaborators every command shares. Tests substitute the
// paths, the git runner and the browser opener; production code uses
// DefaultApp.
type App struct {
	ConfigPath string            // ado.yaml location
	DBPath     string            // repo name cache location
	WorkDir    string            // directory git queries run in
	Git        gitutil.Git       // local version-control collaborator
	OpenURL    func(string) error // browser-launch side effect
	Env        map[string]string // process environment (ADO_PAT)
}

// DefaultApp builds the production App.
func DefaultApp() (*App, error) {
	configPath, err := config.DefaultPath()
	if err != nil {
		return nil, err
	}

	dbPath, err := repodb.DefaultPath()
	if err != nil {
		return nil, err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	return &App{
		ConfigPath: configPath,
		DBPath:     dbPath,
		WorkDir:    workDir,
		Git:        gitutil.System{},
		OpenURL:    openBrowser,
		Env:        environMap(os.Environ()),
	}, nil
}

func environMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))

	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}

	return env
}

// Run dispatches a full command line ("ado" included in args) and
// returns the process exit code.
func (a *App) Run(in io.Reader, out, errOut io.Writer, args []string) int {
	o := NewIO(in, out, errOut)

	if len(args) < 2 || args[1] == "-h" || args[1] == "--help" {
		a.printUsage(o, out)
		return 0
	}

	group := args[1]

	sub := ""
	if len(args) > 2 {
		sub = args[2]
	}

	var cmd *Command

	switch group + " " + sub {
	case "config set":
		cmd = a.configSetCmd()
	case "config init":
		cmd = a.configInitCmd()
	case "config list":
		cmd = a.configListCmd()
	case "repo browse":
		cmd = a.repoBrowseCmd()
	case "repo list":
		cmd = a.repoListCmd()
	case "workitem browse", "wi browse":
		cmd = a.workItemBrowseCmd()
	case "build list":
		cmd = a.buildListCmd()
	default:
		o.ErrPrintln("Error: unknown command:", strings.TrimSpace(group+" "+sub))
		a.printUsage(o, errOut)

		return 2
	}

	if hasHelpFlag(args[3:]) {
		cmd.PrintHelp(o)
		return 0
	}

	return cmd.Run(o, args[3:])
}

func hasHelpFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return true
		}
	}

	return false
}

func (a *App) printUsage(o *IO, w io.Writer) {
	_, _ = fmt.Fprintln(w, `ado - Azure DevOps command-line client

Usage: ado <command> <subcommand> [flags]

Commands:`)

	for _, cmd := range []*Command{
		a.configSetCmd(),
		a.configInitCmd(),
		a.configListCmd(),
		a.repoBrowseCmd(),
		a.repoListCmd(),
		a.workItemBrowseCmd(),
		a.buildListCmd(),
	} {
		_, _ = fmt.Fprintln(w, cmd.HelpLine())
	}

	_, _ = fmt.Fprintln(w, `
"wi" is an alias for "workitem".`)
}
