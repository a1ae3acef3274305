// Delete command: removes one todo entry by id.
package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a todo entry by id",
		Long: `Delete removes the entry with the given id. Deleting an id that does
not exist is not an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q: expected an integer", args[0])
			}

			s, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Delete(id); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted todo #%d\n", id)
			return nil
		},
	}
}
