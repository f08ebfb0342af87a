// Package browser opens article links in the system browser.
package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// Open opens the given article URL in the default browser. The URL is
// validated first so nothing unvetted reaches the shell.
func Open(urlString string) error {
	args, err := openerArgs(runtime.GOOS, urlString)
	if err != nil {
		return err
	}

	cmd := exec.Command(args[0], args[1:]...) // #nosec G204 -- URL validated in openerArgs
	return cmd.Start()
}

// openerArgs validates the URL and picks the platform opener command.
func openerArgs(goos, urlString string) ([]string, error) {
	parsed, err := url.Parse(urlString)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}

	// Only web links; rejects file:, javascript: and friends.
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("unsupported URL scheme: %q (only http and https allowed)", parsed.Scheme)
	}

	switch goos {
	case "linux":
		return []string{"xdg-open", urlString}, nil
	case "darwin":
		return []string{"open", urlString}, nil
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler", urlString}, nil
	default:
		return nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}
