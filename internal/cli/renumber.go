package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/renumber/internal/config"
	"github.com/matzehuels/renumber/pkg/pipeline"
)

type renumberFlags struct {
	file   string
	config string
	dryRun bool
}

// resolveConfig layers explicitly set flags over the config file.
func resolveConfig(cmd *cobra.Command, flags renumberFlags) (config.Config, error) {
	cfg, err := config.Load(flags.config)
	if err != nil {
		return config.Config{}, err
	}
	if cmd.Flags().Changed("file") {
		cfg.File = flags.file
	}
	if cmd.Flags().Changed("dry-run") {
		cfg.DryRun = flags.dryRun
	}
	return cfg, nil
}

func (c *CLI) runRenumber(cmd *cobra.Command, flags renumberFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := resolveConfig(cmd, flags)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	result, err := pipeline.NewRunner(logger).Execute(ctx, cfg.Options())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if cfg.DryRun {
		printDryRun(cmd, cfg.File, result)
		return nil
	}

	prog.done("renumbered document", "path", cfg.File)
	fmt.Fprintln(out, CompletionMessage)
	return nil
}

func printDryRun(cmd *cobra.Command, path string, result *pipeline.Result) {
	out := cmd.OutOrStdout()
	report := result.Report

	if !result.Changed() {
		printWarning(out, "No identifiers would change in %s", path)
		return
	}

	printInfo(out, "Dry run, %s not written", path)
	for _, ch := range report.Changes {
		printMapping(out, ch.Old.String(), ch.New.String())
	}
	printSuccess(out, "%d question ids and %d references would change", report.IDsChanged, report.ReferencesChanged)
	printDetail(out, "%d sections, %d questions", report.Sections, report.Questions)
}
