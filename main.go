package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/checklist/internal/app"
	"github.com/atomicstack/checklist/internal/config"
	"github.com/atomicstack/checklist/internal/logging"
	"github.com/atomicstack/checklist/internal/logging/events"
	"github.com/atomicstack/checklist/internal/rows"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	traceStartup(runtimeCfg)

	checked, err := app.Run(runtimeCfg.App, app.IO{In: os.Stdin, Out: os.Stdout})
	if err == nil {
		err = app.WriteChecked(os.Stdout, checked)
	}
	if err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
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
	payload["checklist"] = checklistTraceContext(cfg.App)
	payload["tty"] = collectTTYDetails()
	return payload
}

// checklistTraceContext describes where rows come from and how the list is
// laid out, so a trace shows what the session was started against.
func checklistTraceContext(cfg app.Config) map[string]interface{} {
	orientation := "vertical"
	if cfg.Horizontal {
		orientation = "horizontal"
	}
	ctx := map[string]interface{}{
		"dataFile":    cfg.DataFile,
		"source":      "file",
		"watch":       cfg.Watch,
		"focusIndex":  cfg.FocusIndex,
		"orientation": orientation,
		"cycle":       cfg.Cycle,
		"classes":     cfg.Classes(),
	}
	if cfg.DataFile == rows.Stdin {
		ctx["source"] = "stdin"
		return ctx
	}
	if info, err := os.Stat(cfg.DataFile); err == nil {
		ctx["dataSize"] = info.Size()
		ctx["dataModTime"] = info.ModTime()
	} else {
		ctx["dataError"] = err.Error()
	}
	return ctx
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

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		} else {
			entry.IsTerminal = false
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
