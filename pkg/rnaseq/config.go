package rnaseq

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Common Illumina adapter sequences, used when the configuration does not
// provide its own.
const (
	DefaultForwardAdapter = "AGATCGGAAGAGCACACGTCTGAACTCCAGTCA"
	DefaultReverseAdapter = "AGATCGGAAGAGCGTCGTGTAGGGAAAGAGTGT"
)

// Defaults for the gene region of interest (the mouse Dcx gene).
const (
	DefaultGeneID   = "ENSMUSG00000031285"
	DefaultGeneName = "Dcx"
)

// Config carries the run parameters of the RNA-seq pipeline.
type Config struct {
	// FastqDir is the directory containing the paired-end FASTQ files.
	FastqDir string `toml:"fastq_dir"`

	// GenomeIndex is the path to the hisat2 genome index.
	GenomeIndex string `toml:"genome_index"`

	// AnnotationGTF is the path to the GTF file with genomic annotations.
	AnnotationGTF string `toml:"annotation_gtf"`

	// GeneID selects the annotation records of the gene region of
	// interest.
	GeneID string `toml:"gene_id"`

	// GeneName names the derived region annotation file.
	GeneName string `toml:"gene_name"`

	// ForwardAdapter and ReverseAdapter are the sequences trimmed from the
	// forward and reverse reads.
	ForwardAdapter string `toml:"forward_adapter"`
	ReverseAdapter string `toml:"reverse_adapter"`

	// Threads is the number of alignment threads passed to hisat2.
	Threads int `toml:"threads"`

	// LogDir is where per-run log directories are created.
	LogDir string `toml:"log_dir"`

	// SVGFileName, when set, is where the stage graph is drawn.
	SVGFileName string `toml:"svg_file"`
}

// LoadConfig reads a run configuration in TOML format.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	_, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read config file %s", path)
	}

	return cfg, nil
}

// Check validates the configuration, filling defaults and writing a warning
// to warn for every defaulted parameter.
func (c *Config) Check(warn io.Writer) error {
	if c.FastqDir == "" {
		return errors.New("fastq_dir must be provided")
	}
	if c.GenomeIndex == "" {
		return errors.New("genome_index must be provided")
	}
	if c.AnnotationGTF == "" {
		return errors.New("annotation_gtf must be provided")
	}

	if c.GeneID == "" {
		fmt.Fprintf(warn, "gene_id not provided, defaulting to %s\n", DefaultGeneID)
		c.GeneID = DefaultGeneID
	}
	if c.GeneName == "" {
		fmt.Fprintf(warn, "gene_name not provided, defaulting to %s\n", DefaultGeneName)
		c.GeneName = DefaultGeneName
	}
	if c.ForwardAdapter == "" {
		fmt.Fprintln(warn, "forward_adapter not provided, defaulting to the common Illumina sequence")
		c.ForwardAdapter = DefaultForwardAdapter
	}
	if c.ReverseAdapter == "" {
		fmt.Fprintln(warn, "reverse_adapter not provided, defaulting to the common Illumina sequence")
		c.ReverseAdapter = DefaultReverseAdapter
	}
	if c.Threads == 0 {
		c.Threads = 2
	}
	if c.LogDir == "" {
		c.LogDir = "seqpipe_logs"
	}

	return nil
}
