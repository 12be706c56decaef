// Command seqpipe runs the RNA-seq pipeline: trim paired-end reads with
// cutadapt, align them with hisat2, convert the alignments to BAM with
// samtools, then assemble and merge transcripts for the gene region of
// interest with stringtie. All parameters can come from a TOML config file,
// with flags overriding individual values.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/askiada/go-seqpipe/internal/runlog"
	"github.com/askiada/go-seqpipe/pkg/pipeline"
	"github.com/askiada/go-seqpipe/pkg/pipeline/drawer"
	"github.com/askiada/go-seqpipe/pkg/pipeline/measure"
	"github.com/askiada/go-seqpipe/pkg/pipeline/model"
	"github.com/askiada/go-seqpipe/pkg/rnaseq"
)

var (
	configFile     = flag.String("config", "", "TOML file containing run parameters")
	fastqDir       = flag.String("fastq-dir", "", "Directory containing paired-end FASTQ files")
	genomeIndex    = flag.String("genome-index", "", "Path to the hisat2 genome index")
	annotationGTF  = flag.String("annotation-gtf", "", "Path to the GTF annotation file")
	geneID         = flag.String("gene-id", "", "Gene identifier of the region of interest")
	geneName       = flag.String("gene-name", "", "Gene name, used for the derived region annotation file")
	forwardAdapter = flag.String("forward-adapter", "", "Adapter sequence trimmed from forward reads")
	reverseAdapter = flag.String("reverse-adapter", "", "Adapter sequence trimmed from reverse reads")
	threads        = flag.Int("threads", 0, "Number of alignment threads")
	logDir         = flag.String("log-dir", "", "Directory for per-run logs")
	svgFile        = flag.String("svg", "", "Draw the stage graph to this file")
)

func handleArgs() (*rnaseq.Config, error) {
	flag.Parse()

	cfg := &rnaseq.Config{}
	if *configFile != "" {
		var err error
		cfg, err = rnaseq.LoadConfig(*configFile)
		if err != nil {
			return nil, err
		}
	}

	if *fastqDir != "" {
		cfg.FastqDir = *fastqDir
	}
	if *genomeIndex != "" {
		cfg.GenomeIndex = *genomeIndex
	}
	if *annotationGTF != "" {
		cfg.AnnotationGTF = *annotationGTF
	}
	if *geneID != "" {
		cfg.GeneID = *geneID
	}
	if *geneName != "" {
		cfg.GeneName = *geneName
	}
	if *forwardAdapter != "" {
		cfg.ForwardAdapter = *forwardAdapter
	}
	if *reverseAdapter != "" {
		cfg.ReverseAdapter = *reverseAdapter
	}
	if *threads != 0 {
		cfg.Threads = *threads
	}
	if *logDir != "" {
		cfg.LogDir = *logDir
	}
	if *svgFile != "" {
		cfg.SVGFileName = *svgFile
	}

	err := cfg.Check(os.Stderr)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func run(cfg *rnaseq.Config) error {
	logger, runDir, err := runlog.Setup(cfg.LogDir)
	if err != nil {
		return err
	}
	fmt.Printf("Storing log files in %s\n", runDir)

	err = runlog.SaveConfig(runDir, cfg)
	if err != nil {
		return err
	}

	msr := measure.New()
	observers := []model.PipelineOption{measure.NewPipelineOption(msr)}
	if cfg.SVGFileName != "" {
		observers = append(observers, drawer.NewPipelineOption(drawer.NewSVGDrawer(cfg.SVGFileName), msr))
	}

	pipe, err := pipeline.New(
		pipeline.WithLogger(logger),
		pipeline.WithPipelineOptions(observers...),
	)
	if err != nil {
		return err
	}

	for _, stage := range rnaseq.Stages(cfg) {
		err := pipe.AddStage(stage)
		if err != nil {
			return err
		}
	}

	finalDir, err := pipe.Run(context.Background(), cfg.FastqDir)
	if err != nil {
		return err
	}

	color.Green("Pipeline completed")
	fmt.Printf("Merged transcripts written to %s\n", finalDir)

	for name, metric := range msr.AllMetrics() {
		fmt.Printf("  %s: %d commands, avg %s, total %s\n",
			name, metric.CommandCount(), metric.AVGCommandDuration(), metric.StageDuration())
	}

	return nil
}

func main() {
	cfg, err := handleArgs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n\nRun 'seqpipe --help' for more information.\n", err)
		os.Exit(1)
	}

	err = run(cfg)
	if err != nil {
		color.Red("Pipeline failed: %v", err)
		os.Exit(1)
	}
}
