package cli

import (
	"github.com/spf13/cobra"

	"github.com/sferrer-dev/petitsplats/internal/tags"
)

func newTagsCommand(opts *Options) *cobra.Command {
	var (
		category string
		narrow   string
		query    string
		flags    tagFlags
	)

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List the tags still available for the matching recipes",
		Long:  "List the ingredients, utensils and appliances of the recipes matching the query and tags. Tags already selected are not listed.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			only := tags.Categories()
			if category != "" {
				c, err := tags.ParseCategory(category)
				if err != nil {
					return err
				}
				only = []tags.Category{c}
			}

			s, err := opts.open(cmd)
			if err != nil {
				return err
			}

			sels, err := flags.selections(s.catalog)
			if err != nil {
				return err
			}

			vocab := run(s.pipeline(), query, sels).Vocabulary
			for _, c := range only {
				vocab = vocab.Narrow(c, narrow)
			}
			return writeVocabulary(cmd.OutOrStdout(), s.cfg.Output, vocab, only)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Only list one category (ingredients, utensils, appliances)")
	cmd.Flags().StringVarP(&narrow, "filter", "f", "", "Only list tags containing this text")
	cmd.Flags().StringVarP(&query, "query", "q", "", "Search name, description and ingredients first")
	flags.register(cmd)
	return cmd
}
