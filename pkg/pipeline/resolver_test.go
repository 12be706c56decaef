package pipeline_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-seqpipe/pkg/pipeline"
)

func TestResolveDeterministic(t *testing.T) {
	root := t.TempDir()
	inputDir := filepath.Join(root, "data")
	require.NoError(t, os.Mkdir(inputDir, 0o755))

	first, err := pipeline.Resolve(inputDir, "trim_output")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "trim_output"), first)

	second, err := pipeline.Resolve(inputDir, "trim_output")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	info, err := os.Stat(first)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestResolveRecreatesAfterDeletion(t *testing.T) {
	root := t.TempDir()
	inputDir := filepath.Join(root, "data")
	require.NoError(t, os.Mkdir(inputDir, 0o755))

	outputDir, err := pipeline.Resolve(inputDir, "trim_output")
	require.NoError(t, err)
	require.NoError(t, os.Remove(outputDir))

	again, err := pipeline.Resolve(inputDir, "trim_output")
	require.NoError(t, err)
	assert.Equal(t, outputDir, again)

	_, err = os.Stat(again)
	assert.NoError(t, err)
}

func TestResolveCreationError(t *testing.T) {
	root := t.TempDir()
	inputDir := filepath.Join(root, "data")
	require.NoError(t, os.Mkdir(inputDir, 0o755))
	// The sibling path is already taken by a regular file.
	require.NoError(t, os.WriteFile(filepath.Join(root, "trim_output"), nil, 0o644))

	_, err := pipeline.Resolve(inputDir, "trim_output")

	expectedErr := &pipeline.DirectoryCreationError{}
	require.ErrorAs(t, err, &expectedErr)
	assert.Equal(t, filepath.Join(root, "trim_output"), expectedErr.Dir)
}
