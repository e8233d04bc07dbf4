package export

import (
	"fmt"
	"log"
	"os/exec"
	"runtime"
)

// openInBrowser opens the exported file with the platform's default
// handler. Exec failures are not fatal: the document itself was produced.
func openInBrowser(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}

	if err := cmd.Start(); err != nil {
		log.Printf("Could not open %s automatically: %v", path, err)
		fmt.Printf("Document exporté: %s\n", path)
	}
	return nil
}
