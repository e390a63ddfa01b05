package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/checklist/internal/app"
	"github.com/atomicstack/checklist/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			DataFile:   "rows.yaml",
			FocusIndex: 1,
			Width:      80,
			Height:     24,
			ShowFooter: true,
			Cycle:      true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"data":   "rows.yaml",
			"focus":  "1",
			"width":  "80",
			"height": "24",
			"footer": "true",
			"cycle":  "true",
		},
		Args: []string{"--data", "rows.yaml"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["data"] != "rows.yaml" {
		t.Fatalf("expected data flag %q, got %v", "rows.yaml", flagsValue["data"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["height"] != "24" {
		t.Fatalf("expected height 24, got %v", flagsValue["height"])
	}
	if flagsValue["footer"] != "true" {
		t.Fatalf("expected footer flag true, got %v", flagsValue["footer"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["cycle"] != "true" {
		t.Fatalf("expected cycle flag true, got %v", flagsValue["cycle"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}

func TestChecklistTraceContextDescribesRowsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.yaml")
	if err := os.WriteFile(path, []byte("- title: A\n"), 0o644); err != nil {
		t.Fatalf("write rows: %v", err)
	}

	ctx := checklistTraceContext(app.Config{DataFile: path, Watch: true, Horizontal: true, ClassChecked: "picked"})
	if ctx["source"] != "file" {
		t.Fatalf("expected file source, got %v", ctx["source"])
	}
	if ctx["watch"] != true {
		t.Fatalf("expected watch true, got %v", ctx["watch"])
	}
	if ctx["orientation"] != "horizontal" {
		t.Fatalf("expected horizontal orientation, got %v", ctx["orientation"])
	}
	if ctx["dataSize"] != int64(len("- title: A\n")) {
		t.Fatalf("expected data size, got %v", ctx["dataSize"])
	}
	if _, ok := ctx["dataError"]; ok {
		t.Fatalf("unexpected data error %v", ctx["dataError"])
	}

	missing := checklistTraceContext(app.Config{DataFile: filepath.Join(t.TempDir(), "missing.yaml")})
	if _, ok := missing["dataError"]; !ok {
		t.Fatalf("expected data error for missing rows file")
	}

	stdin := checklistTraceContext(app.Config{DataFile: "-"})
	if stdin["source"] != "stdin" {
		t.Fatalf("expected stdin source, got %v", stdin["source"])
	}
}

func TestStartupTracePayloadIncludesChecklistContext(t *testing.T) {
	payload := startupTracePayload(config.Config{App: app.Config{DataFile: "-"}})
	ctx, ok := payload["checklist"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected checklist context in payload")
	}
	if ctx["dataFile"] != "-" {
		t.Fatalf("expected data file -, got %v", ctx["dataFile"])
	}
}
