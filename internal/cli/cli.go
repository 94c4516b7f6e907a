package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/renumber/pkg/buildinfo"
	"github.com/matzehuels/renumber/pkg/pipeline"
)

// CompletionMessage is printed to stdout after a successful run.
const CompletionMessage = "Renumbering complete, JSON valid"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Run without arguments, the root command renumbers the survey document.
func (c *CLI) RootCommand() *cobra.Command {
	var flags renumberFlags

	root := &cobra.Command{
		Use:   "renumber",
		Short: "Renumber question identifiers in a survey document",
		Long: `Renumber shifts every question identifier of a survey document up by one,
keeping sub-question fractions (2 becomes 3, 2.3 becomes 3.3). Identifier 0 is
reserved and never moves; 0.1 becomes question 1. Every "questionId" reference
in the document is rewritten the same way so conditional questions keep
pointing at the right question.

The document is overwritten in place and then re-read to verify it. No backup
is made.`,
		Example: `  # Renumber src/data/survey_data.json
  renumber

  # Preview the changes without writing
  renumber --dry-run

  # Renumber another document
  renumber -f data/pilot.json`,
		Args:          cobra.NoArgs,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRenumber(cmd, flags)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.Flags().StringVarP(&flags.file, "file", "f", pipeline.DefaultPath, "survey document to renumber")
	root.Flags().StringVar(&flags.config, "config", "", "TOML config file")
	root.Flags().BoolVar(&flags.dryRun, "dry-run", false, "show what would change without writing")

	root.AddCommand(c.mapCommand())
	root.AddCommand(c.completionCommand())

	return root
}
