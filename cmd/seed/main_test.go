package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noticias/internal/loader"
)

func TestRun_WritesLoadableYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "articles.yaml")

	require.NoError(t, run(path, false))

	records, err := loader.LoadYAML(path)
	require.NoError(t, err)
	require.Len(t, records, len(samples))
	assert.Equal(t, samples[0].Title, records[0].Title)
	assert.Equal(t, samples[0].Author, records[0].Author, "whitespace must survive the round trip")
}

func TestRun_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "articles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("keep"), 0644))

	require.Error(t, run(path, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data))

	require.NoError(t, run(path, true))
}
