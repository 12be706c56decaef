// Package pipeline provides a staged file pipeline for driving external
// command-line tools over directories of files.
//
// A pipeline is an ordered chain of stages. Each stage discovers its input
// files by listing a directory and filtering the entry names with a pure
// predicate, derives a deterministic sibling output directory from its label,
// and invokes one external command per matched file. The output directory of
// a stage becomes the input directory of the next one.
//
// Stages may declare several phases. A phase either iterates the matched
// files or runs a single aggregate command, and later phases can consume the
// paths recorded by earlier phases of the same stage execution. This is
// enough to express derived filter files written before a per-file loop, and
// manifest/merge passes that depend on everything a previous phase produced.
//
// The pipeline stops on the first encountered error. Nothing is retried and
// no failure is substituted with a default; the error returned to the caller
// identifies the failing stage and, for external tools, the exact argument
// vector and exit status. Outputs already written stay in place.
//
// The external process boundary is the narrow Runner interface, so tests can
// swap the real exec-based runner for a double that records invocations
// instead of spawning tools.
package pipeline
