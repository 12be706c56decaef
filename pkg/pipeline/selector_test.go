package pipeline_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-seqpipe/pkg/pipeline"
)

func TestSelect(t *testing.T) {
	inputDir := makeInputDir(t, "sample_1.fastq", "sample_2.fastq", "other_1.fastq", "notes.txt")

	names, err := pipeline.Select(inputDir, pipeline.HasSuffix("_1.fastq"))

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"sample_1.fastq", "other_1.fastq"}, names)
}

func TestSelectFreshListing(t *testing.T) {
	inputDir := makeInputDir(t, "sample_1.fastq")

	first, err := pipeline.Select(inputDir, pipeline.HasSuffix(".fastq"))
	require.NoError(t, err)

	touch(filepath.Join(inputDir, "late_1.fastq"))

	second, err := pipeline.Select(inputDir, pipeline.HasSuffix(".fastq"))
	require.NoError(t, err)

	assert.Len(t, first, 1)
	assert.Len(t, second, 2)
}

func TestSelectMissingDir(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	_, err := pipeline.Select(missing, pipeline.HasSuffix(".fastq"))

	expectedErr := &pipeline.DirectoryNotFoundError{}
	require.ErrorAs(t, err, &expectedErr)
	assert.Equal(t, missing, expectedErr.Dir)
}

func TestSelectFileIsNotDir(t *testing.T) {
	inputDir := makeInputDir(t, "sample_1.fastq")

	_, err := pipeline.Select(filepath.Join(inputDir, "sample_1.fastq"), pipeline.HasSuffix(".fastq"))

	expectedErr := &pipeline.DirectoryNotFoundError{}
	assert.ErrorAs(t, err, &expectedErr)
}

func TestPredicates(t *testing.T) {
	tcs := map[string]struct {
		pred     pipeline.Predicate
		name     string
		expected bool
	}{
		"suffix match":      {pipeline.HasSuffix(".sam"), "aligned.sample.sam", true},
		"suffix no match":   {pipeline.HasSuffix(".sam"), "aligned.sample.bam", false},
		"prefix match":      {pipeline.HasPrefix("sorted."), "sorted.sample.bam", true},
		"prefix no match":   {pipeline.HasPrefix("sorted."), "sample.bam", false},
		"contains match":    {pipeline.Contains("trimmed"), "trimmed.sample_1.fastq", true},
		"contains no match": {pipeline.Contains("trimmed"), "notes.txt", false},
		"and match":         {pipeline.And(pipeline.HasPrefix("covered_"), pipeline.HasSuffix(".gtf")), "covered_sample.gtf", true},
		"and partial":       {pipeline.And(pipeline.HasPrefix("covered_"), pipeline.HasSuffix(".gtf")), "covered_sample.txt", false},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.pred(tc.name))
		})
	}
}
