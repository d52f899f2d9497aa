package cli

import (
	"os/exec"
	"runtime"
)

// openBrowser launches the platform's URL handler. The command is
// started, not waited on; browsers detach immediately anyway.
func openBrowser(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}

	return cmd.Start()
}
