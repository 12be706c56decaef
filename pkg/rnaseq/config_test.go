package rnaseq_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-seqpipe/pkg/rnaseq"
)

const configFixture = `
fastq_dir = "/data/fastq"
genome_index = "/data/genome.idx"
annotation_gtf = "/data/annotation.gtf"
gene_id = "ENSMUSG00000025902"
gene_name = "Sox17"
threads = 4
`

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(configFixture), 0o644))

	cfg, err := rnaseq.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "/data/fastq", cfg.FastqDir)
	assert.Equal(t, "/data/genome.idx", cfg.GenomeIndex)
	assert.Equal(t, "/data/annotation.gtf", cfg.AnnotationGTF)
	assert.Equal(t, "ENSMUSG00000025902", cfg.GeneID)
	assert.Equal(t, "Sox17", cfg.GeneName)
	assert.Equal(t, 4, cfg.Threads)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := rnaseq.LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestCheckDefaults(t *testing.T) {
	cfg := &rnaseq.Config{
		FastqDir:      "/data/fastq",
		GenomeIndex:   "/data/genome.idx",
		AnnotationGTF: "/data/annotation.gtf",
	}

	warn := &bytes.Buffer{}
	require.NoError(t, cfg.Check(warn))

	assert.Equal(t, rnaseq.DefaultGeneID, cfg.GeneID)
	assert.Equal(t, rnaseq.DefaultGeneName, cfg.GeneName)
	assert.Equal(t, rnaseq.DefaultForwardAdapter, cfg.ForwardAdapter)
	assert.Equal(t, rnaseq.DefaultReverseAdapter, cfg.ReverseAdapter)
	assert.Equal(t, 2, cfg.Threads)
	assert.Equal(t, "seqpipe_logs", cfg.LogDir)
	assert.Contains(t, warn.String(), "gene_id not provided")
}

func TestCheckRequired(t *testing.T) {
	tcs := map[string]*rnaseq.Config{
		"missing fastq dir":    {GenomeIndex: "idx", AnnotationGTF: "gtf"},
		"missing genome index": {FastqDir: "fastq", AnnotationGTF: "gtf"},
		"missing annotation":   {FastqDir: "fastq", GenomeIndex: "idx"},
	}

	for name, cfg := range tcs {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, cfg.Check(&bytes.Buffer{}))
		})
	}
}

func TestCheckKeepsProvidedValues(t *testing.T) {
	cfg := &rnaseq.Config{
		FastqDir:       "/data/fastq",
		GenomeIndex:    "/data/genome.idx",
		AnnotationGTF:  "/data/annotation.gtf",
		GeneID:         "ENSMUSG00000000001",
		GeneName:       "Gnai3",
		ForwardAdapter: "ACGT",
		ReverseAdapter: "TGCA",
		Threads:        8,
	}

	warn := &bytes.Buffer{}
	require.NoError(t, cfg.Check(warn))

	assert.Equal(t, "ENSMUSG00000000001", cfg.GeneID)
	assert.Equal(t, "ACGT", cfg.ForwardAdapter)
	assert.Equal(t, 8, cfg.Threads)
	assert.Empty(t, warn.String())
}
