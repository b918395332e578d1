// Package apps enumerates macOS applications and performs open/quit
// actions against them.
package apps

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/appswitch/appswitch/internal/logging/events"
)

// ErrEnumerationFailed wraps any failure to list running or installed
// applications.
var ErrEnumerationFailed = errors.New("application enumeration failed")

const runningAppsScript = `tell application "System Events" to get name of (processes where background only is false)`

// commandOutput is swapped out in tests.
var commandOutput = func(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	return string(out), err
}

// Running returns the names of applications with a foreground process,
// in enumeration order.
func Running() ([]string, error) {
	out, err := commandOutput("osascript", "-e", runningAppsScript)
	if err != nil {
		return nil, fmt.Errorf("%w: running applications: %v", ErrEnumerationFailed, err)
	}
	names := parseAppleScriptList(out)
	events.App.Enumerated("running", len(names))
	return names, nil
}

// Installed returns the names of application bundles found in the search
// directories, sorted and de-duplicated.
func Installed() ([]string, error) {
	args := append(searchDirs(), "-maxdepth", "2", "-name", "*.app")
	out, err := commandOutput("find", args...)
	if err != nil {
		return nil, fmt.Errorf("%w: installed applications: %v", ErrEnumerationFailed, err)
	}
	seen := make(map[string]struct{})
	names := make([]string, 0, 64)
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasSuffix(line, ".app") {
			continue
		}
		name := strings.TrimSuffix(filepath.Base(line), ".app")
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	events.App.Enumerated("installed", len(names))
	return names, nil
}

// searchDirs lists the directories scanned for .app bundles.
// APPSWITCH_APP_DIRS (colon-separated) overrides the defaults.
func searchDirs() []string {
	if env := strings.TrimSpace(os.Getenv("APPSWITCH_APP_DIRS")); env != "" {
		parts := strings.Split(env, ":")
		dirs := make([]string, 0, len(parts))
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				dirs = append(dirs, trimmed)
			}
		}
		if len(dirs) > 0 {
			return dirs
		}
	}
	return []string{"/Applications", "/System/Applications"}
}

// parseAppleScriptList splits osascript's comma-separated list output,
// tolerating the optional {braces} and "quotes" AppleScript emits.
func parseAppleScriptList(raw string) []string {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "{")
	text = strings.TrimSuffix(text, "}")
	if strings.TrimSpace(text) == "" {
		return nil
	}
	parts := strings.Split(text, ", ")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		name := strings.Trim(strings.TrimSpace(part), `"`)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}
