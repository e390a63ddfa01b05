package config

import (
	"testing"

	"github.com/atomicstack/checklist/internal/list"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, list.NoFocus, cfg.App.FocusIndex)
	assert.Equal(t, "", cfg.App.DataFile)
	assert.False(t, cfg.App.Cycle)
	assert.False(t, cfg.Logging.Trace)
	assert.Error(t, Validate(cfg), "expected missing data file to fail validation")
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	env := []string{
		"CHECKLIST_DATA=env.yaml",
		"CHECKLIST_FOCUS=2",
		"CHECKLIST_CLASS_ICON_ACTIVE=on",
		"CHECKLIST_TRACE=true",
		"CHECKLIST_CYCLE=not-a-bool",
		"MALFORMED",
	}
	cfg, err := LoadArgs([]string{"--data", "flag.yaml", "--class-checked", "picked", "--horizontal"}, env)
	require.NoError(t, err)

	assert.Equal(t, "flag.yaml", cfg.App.DataFile)
	assert.Equal(t, 2, cfg.App.FocusIndex)
	assert.Equal(t, "on", cfg.App.ClassIconActive)
	assert.Equal(t, "picked", cfg.App.ClassChecked)
	assert.True(t, cfg.App.Horizontal)
	assert.False(t, cfg.App.Cycle, "unparsable env values fall back to the default")
	assert.True(t, cfg.Logging.Trace)
	assert.Equal(t, "2", cfg.Flags["focus"])
	assert.NoError(t, Validate(cfg))
}

func TestLoadArgsRejectsNegativeSize(t *testing.T) {
	_, err := LoadArgs([]string{"--width", "-1"}, nil)
	assert.Error(t, err)
	_, err = LoadArgs([]string{"--height=-3"}, nil)
	assert.Error(t, err)
}

func TestLoadArgsClampsFocus(t *testing.T) {
	cfg, err := LoadArgs([]string{"--focus", "-9"}, nil)
	require.NoError(t, err)
	assert.Equal(t, list.NoFocus, cfg.App.FocusIndex)
}

func TestLoadArgsUnknownFlag(t *testing.T) {
	_, err := LoadArgs([]string{"--socket", "x"}, nil)
	assert.Error(t, err)
}

func TestValidateWatchNeedsFile(t *testing.T) {
	cfg, err := LoadArgs([]string{"--data", "-", "--watch"}, nil)
	require.NoError(t, err)
	assert.Error(t, Validate(cfg))

	cfg, err = LoadArgs([]string{"--data", "rows.yaml"}, []string{"CHECKLIST_WATCH=1"})
	require.NoError(t, err)
	assert.True(t, cfg.App.Watch)
	assert.Equal(t, "true", cfg.Flags["watch"])
	assert.NoError(t, Validate(cfg))
}
