package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/checklist/internal/app"
	"github.com/atomicstack/checklist/internal/list"
	"github.com/atomicstack/checklist/internal/rows"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envDataFile        = "CHECKLIST_DATA"
	envFocus           = "CHECKLIST_FOCUS"
	envWidth           = "CHECKLIST_WIDTH"
	envHeight          = "CHECKLIST_HEIGHT"
	envShowFooter      = "CHECKLIST_FOOTER"
	envCycle           = "CHECKLIST_CYCLE"
	envHorizontal      = "CHECKLIST_HORIZONTAL"
	envWatch           = "CHECKLIST_WATCH"
	envClassIcon       = "CHECKLIST_CLASS_ICON"
	envClassIconActive = "CHECKLIST_CLASS_ICON_ACTIVE"
	envClassChecked    = "CHECKLIST_CLASS_CHECKED"
	envTrace           = "CHECKLIST_TRACE"
	envLogFile         = "CHECKLIST_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("checklist", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	data := fs.String("data", envOrDefault(env, envDataFile, ""), "path to a YAML rows file (- reads stdin)")
	focus := fs.Int("focus", envOrInt(env, envFocus, list.NoFocus), "initially focused row (-1 keeps the default)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	cycle := fs.Bool("cycle", envOrBool(env, envCycle, false), "wrap focus from the last row to the first")
	horizontal := fs.Bool("horizontal", envOrBool(env, envHorizontal, false), "navigate with left/right instead of up/down")
	watch := fs.Bool("watch", envOrBool(env, envWatch, false), "reload rows when the data file changes")
	classIcon := fs.String("class-icon", envOrDefault(env, envClassIcon, ""), "class name for unchecked indicators")
	classIconActive := fs.String("class-icon-active", envOrDefault(env, envClassIconActive, ""), "class name for checked indicators")
	classChecked := fs.String("class-checked", envOrDefault(env, envClassChecked, ""), "class name marking checked rows")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *focus < list.NoFocus {
		*focus = list.NoFocus
	}

	cfg := Config{
		App: app.Config{
			DataFile:        *data,
			FocusIndex:      *focus,
			Width:           *width,
			Height:          *height,
			ShowFooter:      *footer,
			Cycle:           *cycle,
			Horizontal:      *horizontal,
			Watch:           *watch,
			ClassIcon:       *classIcon,
			ClassIconActive: *classIconActive,
			ClassChecked:    *classChecked,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"data":            *data,
			"focus":           strconv.Itoa(*focus),
			"width":           strconv.Itoa(*width),
			"height":          strconv.Itoa(*height),
			"footer":          strconv.FormatBool(*footer),
			"cycle":           strconv.FormatBool(*cycle),
			"horizontal":      strconv.FormatBool(*horizontal),
			"watch":           strconv.FormatBool(*watch),
			"classIcon":       *classIcon,
			"classIconActive": *classIconActive,
			"classChecked":    *classChecked,
			"trace":           strconv.FormatBool(*trace),
			"logFile":         *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.DataFile) == "" {
		return fmt.Errorf("no rows file given (use --data or %s)", envDataFile)
	}
	if cfg.App.Watch && cfg.App.DataFile == rows.Stdin {
		return fmt.Errorf("--watch needs a rows file, not stdin")
	}
	return nil
}
