package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/atomicstack/checklist/internal/checklist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigClasses(t *testing.T) {
	cfg := Config{ClassIconActive: "on"}
	classes := cfg.Classes()
	assert.Equal(t, "on", classes.IconActive)
	assert.Empty(t, classes.Icon, "unset overrides stay empty until the checklist applies defaults")
}

func TestWriteChecked(t *testing.T) {
	var buf bytes.Buffer
	err := WriteChecked(&buf, []*checklist.Record{
		{Title: "Build", Value: "build"},
		{Title: "QA"},
		{Title: "Deploy", Value: 3},
	})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"Build   build",
		"QA",
		"Deploy  3",
	}, lines)
}

func TestWriteCheckedNothing(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteChecked(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestRunReportsLoadErrors(t *testing.T) {
	_, err := Run(Config{DataFile: "/nonexistent/rows.yaml"}, IO{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load rows")
}

func TestTitleFromPath(t *testing.T) {
	assert.Equal(t, "release", title("/tmp/release.yaml"))
	assert.Equal(t, "", title("-"))
	assert.Equal(t, "", title(""))
}
