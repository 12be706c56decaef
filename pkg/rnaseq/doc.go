// Package rnaseq instantiates the pipeline for an RNA-seq workflow: adapter
// trimming of paired-end reads with cutadapt, alignment with hisat2,
// SAM-to-BAM conversion with samtools, and transcript assembly restricted to
// a gene region of interest with stringtie. The package only builds stage
// configurations; all sequence processing is delegated to the external
// tools.
package rnaseq
