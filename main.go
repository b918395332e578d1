package main

import (
	"fmt"
	"os"

	"github.com/appswitch/appswitch/internal/app"
	"github.com/appswitch/appswitch/internal/config"
	"github.com/appswitch/appswitch/internal/logging"
	"github.com/appswitch/appswitch/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	cfg := config.MustLoad()
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	events.App.Start(startupTracePayload(cfg))

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath

	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
		"tty":    collectTTYDetails(),
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails probes the standard descriptors for terminal support
// and dimensions; the first sized terminal wins as the detected one.
func collectTTYDetails() ttyDetails {
	var details ttyDetails
	for _, probe := range []struct {
		name string
		file *os.File
	}{
		{"stdin", os.Stdin},
		{"stdout", os.Stdout},
		{"stderr", os.Stderr},
	} {
		entry := probeTTY(probe.name, probe.file)
		if details.Detected == nil && entry.IsTerminal && entry.Error == "" {
			details.Detected = &ttyDetected{Source: entry.Name, Width: entry.Width, Height: entry.Height}
		}
		details.Probes = append(details.Probes, entry)
	}
	return details
}

func probeTTY(name string, file *os.File) ttyProbeResult {
	entry := ttyProbeResult{Name: name}
	fd := int(file.Fd())
	if fd < 0 || !term.IsTerminal(fd) {
		return entry
	}
	entry.IsTerminal = true
	width, height, err := term.GetSize(fd)
	if err != nil {
		entry.Error = err.Error()
		return entry
	}
	entry.Width = width
	entry.Height = height
	return entry
}
