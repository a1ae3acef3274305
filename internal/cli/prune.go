// Prune command: removes every todo entry.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPruneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Delete all todo entries",
		Long: `Prune deletes every entry in the store. There is no confirmation
prompt and no undo; the next added entry starts again at id 1.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Prune(); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Pruned all todos")
			return nil
		},
	}
}
