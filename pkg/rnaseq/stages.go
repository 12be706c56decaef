package rnaseq

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/askiada/go-seqpipe/pkg/pipeline"
)

// Output directory labels, siblings of each stage's input directory.
const (
	TrimLabel     = "FASTQ_output"
	AlignLabel    = "hisat2_output"
	ConvertLabel  = "bam"
	AssembleLabel = "mapped_transcripts"
)

// Stages builds the four pipeline stages in execution order.
func Stages(cfg *Config) []*pipeline.Stage {
	return []*pipeline.Stage{
		TrimStage(cfg),
		AlignStage(cfg),
		ConvertStage(),
		AssembleStage(cfg),
	}
}

// TrimStage trims adapter sequences from paired-end reads with cutadapt.
// Pairs are discovered through their forward file: for every <sample>_1.fastq
// the matching <sample>_2.fastq is trimmed in the same invocation. The
// reverse output is gzip-compressed by cutadapt itself.
func TrimStage(cfg *Config) *pipeline.Stage {
	return pipeline.NewStage("trim", TrimLabel, pipeline.HasSuffix("_1.fastq"),
		func(state *pipeline.PhaseState, file string) (pipeline.Command, error) {
			sample := strings.TrimSuffix(file, "_1.fastq")
			output1 := filepath.Join(state.OutputDir, "trimmed."+sample+"_1.fastq")
			output2 := filepath.Join(state.OutputDir, "trimmed."+sample+"_2.fastq.gz")

			return pipeline.Command{
				Argv: []string{
					"cutadapt",
					"-a", cfg.ForwardAdapter,
					"-A", cfg.ReverseAdapter,
					"-o", output1,
					"-p", output2,
					filepath.Join(state.InputDir, file),
					filepath.Join(state.InputDir, sample+"_2.fastq"),
				},
				Output: output1,
			}, nil
		})
}

// AlignStage aligns every trimmed read file with hisat2, producing one SAM
// file per input. The --dta-cufflinks flag keeps the alignments usable by
// downstream transcript assembly.
func AlignStage(cfg *Config) *pipeline.Stage {
	stage := pipeline.NewStage("align", AlignLabel, pipeline.Contains("trimmed"),
		func(state *pipeline.PhaseState, file string) (pipeline.Command, error) {
			base := strings.TrimSuffix(file, filepath.Ext(file))
			outputSAM := filepath.Join(state.OutputDir, "aligned."+base+".sam")

			return pipeline.Command{
				Argv: []string{
					"hisat2",
					"-q",
					"-p", strconv.Itoa(cfg.Threads),
					"--dta-cufflinks",
					"-x", cfg.GenomeIndex,
					"-U", filepath.Join(state.InputDir, file),
					"-S", outputSAM,
				},
				Output: outputSAM,
			}, nil
		})
	stage.AuxInputs = []string{cfg.GenomeIndex}

	return stage
}

// ConvertStage converts every SAM alignment to BAM with samtools.
func ConvertStage() *pipeline.Stage {
	return pipeline.NewStage("convert", ConvertLabel, pipeline.HasSuffix(".sam"),
		func(state *pipeline.PhaseState, file string) (pipeline.Command, error) {
			base := strings.TrimSuffix(file, filepath.Ext(file))
			outputBAM := filepath.Join(state.OutputDir, base+".bam")

			return pipeline.Command{
				Argv: []string{
					"samtools", "view", "-bS",
					filepath.Join(state.InputDir, file),
					"-o", outputBAM,
				},
				Output: outputBAM,
			}, nil
		})
}

// Keys under which the assemble phases exchange derived file paths.
const (
	regionKey   = "region"
	manifestKey = "manifest"
	mergedKey   = "merged"
)

// AssembleStage assembles and merges transcripts restricted to the gene
// region of interest with stringtie. It runs four phases: extract the region
// annotation from the GTF, assemble transcripts covering the region for
// every alignment, merge the per-alignment assemblies, then re-assemble the
// sorted alignments against the merged reference.
func AssembleStage(cfg *Config) *pipeline.Stage {
	return &pipeline.Stage{
		Name:      "assemble",
		Label:     AssembleLabel,
		Match:     pipeline.HasSuffix(".bam"),
		AuxInputs: []string{cfg.AnnotationGTF},
		Phases: []pipeline.Phase{
			{
				Name: "extract-region",
				Kind: pipeline.Aggregate,
				Prepare: func(state *pipeline.PhaseState) error {
					state.SetPath(regionKey, filepath.Join(state.OutputDir, cfg.GeneName+".gtf"))

					return nil
				},
				Command: func(state *pipeline.PhaseState, _ string) (pipeline.Command, error) {
					return pipeline.Command{
						Argv:           []string{"awk", fmt.Sprintf("$8 == %q", cfg.GeneID), cfg.AnnotationGTF},
						StdoutRedirect: state.Path(regionKey),
					}, nil
				},
			},
			{
				Name:    "assemble",
				Kind:    pipeline.PerFile,
				Command: assembleCommand(regionKey),
			},
			{
				Name: "merge",
				Kind: pipeline.Aggregate,
				Prepare: func(state *pipeline.PhaseState) error {
					manifest := filepath.Join(state.OutputDir, "assembly_gtf_list.txt")

					err := writeManifest(manifest, state.Produced())
					if err != nil {
						return err
					}

					state.SetPath(manifestKey, manifest)
					state.SetPath(mergedKey, filepath.Join(state.OutputDir, "ref_merged_transcripts.gtf"))

					return nil
				},
				Command: func(state *pipeline.PhaseState, _ string) (pipeline.Command, error) {
					return pipeline.Command{
						Argv: []string{
							"stringtie", "--merge",
							"-G", state.Path(regionKey),
							"-o", state.Path(mergedKey),
							state.Path(manifestKey),
						},
					}, nil
				},
			},
			{
				Name:    "reassemble",
				Kind:    pipeline.PerFile,
				Match:   pipeline.And(pipeline.HasPrefix("sorted."), pipeline.HasSuffix(".bam")),
				Command: assembleCommand(mergedKey),
			},
		},
	}
}

// assembleCommand builds the per-alignment stringtie invocation against the
// reference annotation registered under referenceKey.
func assembleCommand(referenceKey string) func(state *pipeline.PhaseState, file string) (pipeline.Command, error) {
	return func(state *pipeline.PhaseState, file string) (pipeline.Command, error) {
		base := strings.TrimSuffix(file, filepath.Ext(file))
		covered := filepath.Join(state.OutputDir, "covered_transcripts_"+base+".gtf")

		return pipeline.Command{
			Argv: []string{
				"stringtie",
				filepath.Join(state.InputDir, file),
				"-G", state.Path(referenceKey),
				"-C", covered,
				"-l", base,
			},
			Output: covered,
		}, nil
	}
}

// writeManifest lists the assembled GTF paths one per line. The manifest is
// built from the paths recorded during the assemble phase of this run, not
// from a re-listing of the output directory, so the phase boundary is an
// explicit synchronization point.
func writeManifest(path string, produced []string) error {
	fid, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "unable to create manifest %s", path)
	}
	defer fid.Close()

	for _, gtf := range produced {
		_, err := fmt.Fprintln(fid, gtf)
		if err != nil {
			return errors.Wrapf(err, "unable to write manifest %s", path)
		}
	}

	return nil
}
