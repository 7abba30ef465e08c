// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/svgbatch/pkg/types"
)

func TestWriteAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	run := types.RunRecord{
		StartedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		InputDir:  "icons",
		Rendered:  1,
		Failed:    1,
		Files: []types.FileOutcome{
			{Path: "icons/a.svg", Output: "icons/a.png", Status: types.RenderDone},
			{Path: "icons/b.svg", Output: "icons/b.png", Status: types.RenderFailed, Error: "parse error"},
		},
	}

	require.NoError(t, Write(path, run))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "generated_at:")
	assert.Contains(t, text, "input_dir: icons")
	assert.Contains(t, text, "status: failed")
	assert.NotContains(t, strings.SplitN(text, "files:", 2)[0], "error:",
		"error field should only appear under failed files")

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, run.InputDir, got.InputDir)
	assert.Equal(t, run.Total(), got.Total())
	require.Len(t, got.Files, 2)
	assert.Equal(t, "parse error", got.Files[1].Error)
}

func TestWrite_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("old contents"), 0o644))

	require.NoError(t, Write(path, types.RunRecord{InputDir: "icons"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "old contents")
}

func TestWrite_BadPath(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "missing", "run.yaml"), types.RunRecord{})
	require.Error(t, err)
}

func TestRead_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{unclosed flow mapping"), 0o644))

	_, err := Read(path)
	require.Error(t, err)
}
