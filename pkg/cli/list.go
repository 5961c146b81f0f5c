package cli

import (
	"github.com/spf13/cobra"
)

func newListCommand(opts *Options) *cobra.Command {
	var (
		query string
		flags tagFlags
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recipes, optionally filtered by query and tags",
		Example: `  petitsplats list
  petitsplats list --query coco
  petitsplats list --appliance four --ingredient "crème fraîche"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}

			sels, err := flags.selections(s.catalog)
			if err != nil {
				return err
			}

			res := run(s.pipeline(), query, sels)
			return writeResult(cmd.OutOrStdout(), s.cfg.Output, res, s.sorter())
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Search name, description and ingredients (3 characters minimum)")
	flags.register(cmd)
	return cmd
}
