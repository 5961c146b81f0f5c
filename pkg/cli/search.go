package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/sferrer-dev/petitsplats/internal/filter"
)

func newSearchCommand(opts *Options) *cobra.Command {
	var flags tagFlags

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search recipes by name, description or ingredient",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")
			if !filter.IsActiveQuery(query) {
				s.log.Warnf("query %q is shorter than %d characters and matches every recipe", query, filter.MinQueryLength)
			}

			sels, err := flags.selections(s.catalog)
			if err != nil {
				return err
			}

			res := run(s.pipeline(), query, sels)
			return writeResult(cmd.OutOrStdout(), s.cfg.Output, res, s.sorter())
		},
	}

	flags.register(cmd)
	return cmd
}
