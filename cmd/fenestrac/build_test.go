package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const counterSource = `package widgets

component Counter {
	state {
		Label string
	}

	reactive var Count int = 0

	//fenestra:onMount
	mount {
		c.Count.Set(0)
	}

	computed func Doubled() int {
		return c.Count.Get() * 2
	}
}
`

func TestDialectFilesFindsUIAndUIX(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.ui"), []byte(counterSource), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.uix"), []byte(counterSource), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.md"), []byte("ignored"), 0o644))

	files, err := dialectFiles(dir)
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestRunBuildWritesGoFilesAlongsideSource(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "counter.ui")
	require.NoError(t, os.WriteFile(src, []byte(counterSource), 0o644))

	require.NoError(t, runBuild(dir, false, false))

	out, err := os.ReadFile(filepath.Join(dir, "counter.go"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "type Counter struct")
	assert.Contains(t, string(out), "fenestra.BaseComponent")
}
