package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	surveyio "github.com/matzehuels/renumber/pkg/io"
	"github.com/matzehuels/renumber/pkg/survey"
)

// Runner executes renumbering runs.
//
// The Runner holds no per-run state. Running two pipelines against the same
// file at once is not supported and may corrupt it.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner that logs to logger.
// If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs load → renumber → write → verify.
//
// ctx is checked between stages only; once the write has started it runs
// to completion.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{RunID: uuid.NewString()}
	logger := r.Logger.With("run", result.RunID[:8])

	// Stage 1: Load
	start := time.Now()
	in, err := surveyio.ImportDocument(opts.Path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Input = in
	result.Stats.LoadTime = time.Since(start)
	logger.Debug("loaded document",
		"path", in.Path,
		"bytes", in.Size,
		"sha256", in.Digest[:12],
		"duration", result.Stats.LoadTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Renumber
	start = time.Now()
	result.Report = survey.Renumber(in.Root)
	result.Stats.RenumberTime = time.Since(start)
	logger.Info("renumbered questions",
		"sections", result.Report.Sections,
		"questions", result.Report.Questions,
		"ids", result.Report.IDsChanged,
		"references", result.Report.ReferencesChanged,
		"duration", result.Stats.RenumberTime)
	for _, c := range result.Report.Changes {
		logger.Debug("question id", "old", c.Old, "new", c.New)
	}

	if opts.DryRun {
		rendered, err := survey.Marshal(in.Root, opts.Indent)
		if err != nil {
			return nil, fmt.Errorf("encode: %w", err)
		}
		result.Rendered = rendered
		logger.Info("dry run, document not written", "path", opts.Path)
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Write
	start = time.Now()
	written, err := surveyio.ExportDocument(in.Root, opts.Path, opts.Indent)
	if err != nil {
		return nil, fmt.Errorf("write: %w", err)
	}
	result.Stats.WriteTime = time.Since(start)
	logger.Debug("wrote document",
		"path", written.Path,
		"bytes", written.Size,
		"duration", result.Stats.WriteTime)

	// Stage 4: Verify
	start = time.Now()
	verified, err := surveyio.VerifyDocument(opts.Path, in.Root)
	if err != nil {
		return nil, fmt.Errorf("verify: %w", err)
	}
	if verified.Digest != written.Digest {
		logger.Warn("written and re-read bytes differ", "path", opts.Path)
	}
	result.Output = verified
	result.Stats.VerifyTime = time.Since(start)
	logger.Debug("verified document", "sha256", verified.Digest[:12], "duration", result.Stats.VerifyTime)

	return result, nil
}
