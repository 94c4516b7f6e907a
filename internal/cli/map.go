package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/renumber/pkg/errors"
	"github.com/matzehuels/renumber/pkg/survey"
)

// mapCommand creates the map command for previewing the renumbering rule.
func (c *CLI) mapCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "map <id>...",
		Short: "Print the new identifier for each given identifier",
		Long: `Print the new identifier for each given identifier without touching any file.

Each argument is read as a JSON value, so numbers map by the renumbering rule
and quoted strings are passed through unchanged.`,
		Example: `  renumber map 2 2.3 0 0.1
  renumber map '"intro"'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, id := range ids {
				printKeyValue(out, args[i], survey.MapID(id).String())
			}
			return nil
		},
	}
}

// parseIDs parses each argument as a JSON value.
func parseIDs(args []string) ([]survey.Value, error) {
	ids := make([]survey.Value, len(args))
	for i, arg := range args {
		v, err := survey.Parse([]byte(arg))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid identifier %q", arg)
		}
		ids[i] = v
	}
	return ids, nil
}
