// Package pipeline runs the renumbering of a survey document end to end.
//
// # Architecture
//
// A run is one sequential pipeline with four stages:
//
//  1. Load: read and parse the document file
//  2. Renumber: rewrite question ids and questionId references in memory
//  3. Write: overwrite the document file with the rewritten tree
//  4. Verify: re-read the written file and check it parses to the same tree
//
// Any failure ends the run. Nothing is retried and no backup is kept; the
// write is not atomic. A dry run stops after stage 2 and returns the bytes
// that would have been written.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Path: "src/data/survey_data.json",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Report.IDsChanged)
package pipeline

import (
	"time"

	"github.com/matzehuels/renumber/pkg/errors"
	surveyio "github.com/matzehuels/renumber/pkg/io"
	"github.com/matzehuels/renumber/pkg/survey"
)

// DefaultPath is the document renumbered when no path is given.
const DefaultPath = "src/data/survey_data.json"

// Options configures a pipeline run.
type Options struct {
	Path   string // document to renumber
	Indent int    // spaces per nesting level in the output (0 = default, never compact)
	DryRun bool   // stop before writing

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults fills in defaults and checks the options.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Path == "" {
		o.Path = DefaultPath
	}
	if o.Indent == 0 {
		o.Indent = surveyio.DefaultIndent
	}
	if err := errors.ValidatePath(o.Path); err != nil {
		return err
	}
	if err := errors.ValidateIndent(o.Indent); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// Result contains the outcome of a pipeline run.
type Result struct {
	// RunID identifies the run in log output.
	RunID string

	// Report summarizes what the renumbering changed.
	Report survey.Report

	// Input is the document as loaded, before renumbering.
	Input *surveyio.Snapshot

	// Output is the verified written document. It is nil for dry runs.
	Output *surveyio.Snapshot

	// Rendered holds the encoded document a dry run would have written.
	Rendered []byte

	// Stats contains stage timings.
	Stats Stats
}

// Changed reports whether the run rewrote any identifier.
func (r *Result) Changed() bool {
	return r.Report.IDsChanged > 0 || r.Report.ReferencesChanged > 0
}

// Stats contains pipeline execution timings.
type Stats struct {
	LoadTime     time.Duration
	RenumberTime time.Duration
	WriteTime    time.Duration
	VerifyTime   time.Duration
}

// Total returns the time spent in all stages.
func (s Stats) Total() time.Duration {
	return s.LoadTime + s.RenumberTime + s.WriteTime + s.VerifyTime
}
