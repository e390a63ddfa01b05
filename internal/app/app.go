package app

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/atomicstack/checklist/internal/backend"
	"github.com/atomicstack/checklist/internal/checklist"
	"github.com/atomicstack/checklist/internal/format/table"
	"github.com/atomicstack/checklist/internal/logging/events"
	"github.com/atomicstack/checklist/internal/rows"
	"github.com/atomicstack/checklist/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	DataFile        string
	FocusIndex      int
	Width           int
	Height          int
	ShowFooter      bool
	Cycle           bool
	Horizontal      bool
	Watch           bool
	ClassIcon       string
	ClassIconActive string
	ClassChecked    string
}

// Classes returns the class-name overrides as checklist classes.
func (c Config) Classes() checklist.Classes {
	return checklist.Classes{
		Icon:       c.ClassIcon,
		IconActive: c.ClassIconActive,
		Checked:    c.ClassChecked,
	}
}

const watchInterval = 500 * time.Millisecond

// IO bundles the streams the program reads rows from and renders to.
type IO struct {
	In  io.Reader
	Out io.Writer
}

// Run loads the rows, runs the Bubble Tea program, and returns the rows that
// were checked when the user quit, in checked-set order.
func Run(cfg Config, streams IO) ([]*checklist.Record, error) {
	records, err := rows.Load(cfg.DataFile, streams.In)
	if err != nil {
		return nil, fmt.Errorf("load rows: %w", err)
	}

	var watcher *backend.Watcher
	if cfg.Watch && cfg.DataFile != rows.Stdin {
		watcher = backend.NewWatcher(cfg.DataFile, watchInterval)
		defer watcher.Stop()
	}

	model := ui.NewModel(ui.Options{
		Title:      title(cfg.DataFile),
		Rows:       records,
		FocusIndex: cfg.FocusIndex,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Cycle:      cfg.Cycle,
		Horizontal: cfg.Horizontal,
		Classes:    cfg.Classes(),
		Watcher:    watcher,
	})

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
	if streams.Out != nil {
		opts = append(opts, tea.WithOutput(streams.Out))
	}
	if cfg.DataFile == rows.Stdin {
		// stdin carried the rows; keys must come from the terminal.
		opts = append(opts, tea.WithInputTTY())
	} else if streams.In != nil {
		opts = append(opts, tea.WithInput(streams.In))
	}

	program := tea.NewProgram(model, opts...)
	_, err = program.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return nil, err
	}
	checked := model.Checked()
	events.App.Exit(len(checked))
	return checked, nil
}

// WriteChecked prints the checked rows as a title/value table.
func WriteChecked(w io.Writer, checked []*checklist.Record) error {
	if len(checked) == 0 {
		return nil
	}
	lines := make([][]string, len(checked))
	for i, rec := range checked {
		lines[i] = []string{rec.Title, formatValue(rec.Value)}
	}
	for _, line := range table.Format(lines, []table.Alignment{table.AlignLeft, table.AlignLeft}) {
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return fmt.Errorf("write checked rows: %w", err)
		}
	}
	return nil
}

func formatValue(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func title(path string) string {
	if path == rows.Stdin || strings.TrimSpace(path) == "" {
		return ""
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
