package cli

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/sferrer-dev/petitsplats/internal/tui"
)

func newBrowseCommand(opts *Options) *cobra.Command {
	var (
		query       string
		flags       tagFlags
		noAltScreen bool
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse recipes interactively",
		Long:  "Open an interactive browser: type a query, pick tags from the lists, remove them from the tag row. Ctrl+D prints the matching recipes and exits.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}

			sels, err := flags.selections(s.catalog)
			if err != nil {
				return err
			}

			p := s.pipeline()
			run(p, query, sels)

			res, err := tui.Browse(p, tui.BrowseOptions{UseAltScreen: !noAltScreen})
			if err != nil {
				if errors.Is(err, tui.ErrCancelled) {
					return nil
				}
				return err
			}
			return writeResult(cmd.OutOrStdout(), s.cfg.Output, res, s.sorter())
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Initial query")
	cmd.Flags().BoolVar(&noAltScreen, "no-alt-screen", false, "Render inline instead of in the alternate screen")
	flags.register(cmd)
	return cmd
}
