// Package hints appends short remedies to CLI error messages. Every hint
// has the form "\n  hint: <text>".
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-docmerge/internal/fileutil"
)

// IsInContainer reports whether the process runs under Docker.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserConnect suggests browser settings for sandboxed environments.
func ForBrowserConnect() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""
	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use an installed Chrome")
	}
	hints = append(hints, "or export with --format html or docx")

	return formatHints(hints)
}

// ForTimeout suggests a longer browser timeout.
func ForTimeout() string {
	return format("for large batches or remote images, raise --timeout")
}

// ForConfigNotFound points at --config and the first user config path.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(slashPath(p), "go-docmerge/") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// slashPath normalizes separators so the search works on Windows paths.
func slashPath(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

// ForOutputDirectory explains output write failures.
func ForOutputDirectory() string {
	return format("check the --output directory exists or can be created, and is writable")
}

// ForStyleNotFound lists the available styles.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForUnsupportedFile lists the importable extensions.
func ForUnsupportedFile() string {
	return format("supported data files: .csv, .json, .xlsx")
}

// ForLimit suggests raising an import limit.
func ForLimit() string {
	return format("raise the limits section of your config file (limits.maxRows, limits.maxColumns)")
}

// ForEmptySelection explains how to pick rows.
func ForEmptySelection() string {
	return format("use --range all, or --rows with 1-based row numbers")
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
