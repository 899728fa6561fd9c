// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-fontload/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserConnect returns hints for browser connection errors.
// Detects CI/Docker environment and suggests relevant environment variables.
func ForBrowserConnect() string {
	var hints []string

	// Detect CI environment
	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""

	// Suggest ROD_NO_SANDBOX for container/CI environments
	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	// Suggest ROD_BROWSER_BIN if not set
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use custom Chrome")
	}
	// Doctor reports the full picture
	hints = append(hints, "run 'fontload doctor' to inspect the setup")

	return formatHints(hints)
}

// ForTimeout returns a hint about increasing the browser timeout.
func ForTimeout() string {
	return format("large tables load slowly; use --timeout or FONTLOAD_TIMEOUT")
}

// ForConfigNotFound suggests --config and the user config location among searchedPaths.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/fontload.yaml"

	// Find a user config path (contains go-fontload/) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(strings.ReplaceAll(p, `\`, "/"), "go-fontload/") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForPayloadNotFound explains where named payloads are looked up.
func ForPayloadNotFound(basePath string) string {
	if basePath == "" {
		return format("set fonts.basePath or --assets to a directory holding fonts/{name}.b64|.ttf|.otf")
	}
	return format("expected " + basePath + "/fonts/{name}.b64, .txt, .ttf or .otf")
}

// ForParser lists the accepted parser names.
func ForParser(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available parsers: " + strings.Join(available, ", "))
}

// ForFailedVariants points at the log lines that explain failed loads.
func ForFailedVariants() string {
	return format("see the ❌ log lines above; rerun with -v for details")
}

// ForOutputDirectory returns hints for output write errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
