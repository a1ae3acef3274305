// Add command: stores one new todo entry stamped with the current time.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dukaforge/cltodo/pkg/types"
)

func newAddCmd() *cobra.Command {
	var priorityName string

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a todo entry",
		Long: `Add stores one todo entry with the current local time as its date.

Example:
  cltodo add "fix the server" --priority critical`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := types.ParsePriority(priorityName)
			if err != nil {
				return err
			}

			s, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			id, err := s.Insert(types.Todo{
				Date:     time.Now(),
				Text:     args[0],
				Priority: p,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created todo #%d\n", id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&priorityName, "priority", "p", "", "priority level (normal, important, critical)")
	_ = cmd.MarkFlagRequired("priority")

	return cmd
}
