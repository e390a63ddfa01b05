package rows

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	input := `
- title: Build
  value: build
  state: true
- title: Deploy
  value: {env: prod}
  className: danger
- value: 7
`
	records, err := Decode(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "Build", records[0].Title)
	assert.Equal(t, "build", records[0].Value)
	assert.True(t, records[0].State)

	assert.Equal(t, "danger", records[1].ClassName)
	assert.Equal(t, map[string]any{"env": "prod"}, records[1].Value)
	assert.False(t, records[1].State)

	assert.Equal(t, "", records[2].Title)
	assert.Equal(t, 7, records[2].Value)
}

func TestDecodeMissingValueStaysNil(t *testing.T) {
	records, err := Decode(strings.NewReader("- title: only\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Nil(t, records[0].Value)
}

func TestDecodeEmpty(t *testing.T) {
	for _, input := range []string{"", "~\n", "[]\n"} {
		records, err := Decode(strings.NewReader(input))
		require.NoError(t, err, "input %q", input)
		assert.Empty(t, records, "input %q", input)
	}
}

func TestDecodeRejectsMapping(t *testing.T) {
	_, err := Decode(strings.NewReader("title: nope\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotSequence)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- title: a\n- title: b\n  state: true\n"), 0o644))

	records, err := Load(path, nil)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.True(t, records[1].State)

	records, err = Load(Stdin, strings.NewReader("- title: piped\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "piped", records[0].Title)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}
