package cli

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/sferrer-dev/petitsplats/internal/config"
)

func newShowCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.WithHint(errors.Newf("invalid recipe id %q", args[0]), "recipe ids are whole numbers, as shown by 'petitsplats list'")
			}

			s, err := opts.open(cmd)
			if err != nil {
				return err
			}

			r, ok := s.catalog.ByID(id)
			if !ok {
				return errors.WithHint(errors.Newf("recipe %d not found", id), "run 'petitsplats list' to see every recipe id")
			}

			if s.cfg.Output != config.OutputText {
				return writeStructured(cmd.OutOrStdout(), s.cfg.Output, newRecipeView(r))
			}
			writeCard(cmd.OutOrStdout(), r, s.sorter())
			return nil
		},
	}
	return cmd
}
