package cli

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sferrer-dev/petitsplats/internal/config"
	"github.com/sferrer-dev/petitsplats/internal/logger"
	"github.com/sferrer-dev/petitsplats/internal/pipeline"
	"github.com/sferrer-dev/petitsplats/internal/recipes"
	"github.com/sferrer-dev/petitsplats/internal/source"
	"github.com/sferrer-dev/petitsplats/internal/text"
)

type Options struct {
	ConfigPath  string
	CatalogPath string
	Output      string
	Verbose     bool
	Quiet       bool
	JSONLogs    bool
}

var Version = "dev"

func Execute() error {
	opts := &Options{}
	root := NewRootCommand(opts)
	return root.Execute()
}

func NewRootCommand(opts *Options) *cobra.Command {
	root := &cobra.Command{
		Use:           "petitsplats",
		Short:         "Search and filter a recipe catalog",
		Long:          "Search recipes by name, description or ingredient, and narrow them down with ingredient, utensil and appliance tags.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "Config file path")
	root.PersistentFlags().StringVar(&opts.CatalogPath, "catalog", "", "Recipe catalog file (.json, .yaml); overrides catalog_path")
	root.PersistentFlags().StringVarP(&opts.Output, "output", "o", "", "Output format: text, json or yaml; overrides output")
	root.PersistentFlags().BoolVar(&opts.Verbose, "verbose", false, "Enable verbose output")
	root.PersistentFlags().BoolVar(&opts.Quiet, "quiet", false, "Suppress non-error output")
	root.PersistentFlags().BoolVar(&opts.JSONLogs, "log-json", false, "Write logs as JSON")

	root.AddCommand(
		newListCommand(opts),
		newSearchCommand(opts),
		newTagsCommand(opts),
		newShowCommand(opts),
		newBrowseCommand(opts),
		newConfigCommand(opts),
	)

	root.Version = Version
	root.SetVersionTemplate(fmt.Sprintf("petitsplats %s\n", Version))

	return root
}

// session bundles what every catalog command needs once flags are parsed.
type session struct {
	cfg     config.Config
	log     *zap.SugaredLogger
	catalog *recipes.Catalog
}

func (o *Options) config() (config.Config, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}
	if o.CatalogPath != "" {
		cfg.CatalogPath = o.CatalogPath
	}
	if o.Output != "" {
		output := strings.ToLower(o.Output)
		if !slices.Contains(config.OutputFormats(), output) {
			return config.Config{}, errors.WithHintf(
				errors.Newf("invalid output format %q", o.Output),
				"use one of: %s", strings.Join(config.OutputFormats(), ", "),
			)
		}
		cfg.Output = output
	}
	return cfg, nil
}

func (o *Options) logger(cmd *cobra.Command) *zap.SugaredLogger {
	return logger.New(logger.Options{
		Verbose: o.Verbose,
		Quiet:   o.Quiet,
		JSON:    o.JSONLogs,
		Out:     cmd.ErrOrStderr(),
	})
}

func (o *Options) open(cmd *cobra.Command) (*session, error) {
	cfg, err := o.config()
	if err != nil {
		return nil, err
	}
	log := o.logger(cmd)

	catalog, err := source.Open(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	status := source.Describe(cfg.CatalogPath)
	log.Debugw("catalog loaded",
		logger.FieldPath, status.Path,
		logger.FieldFormat, status.Format,
		logger.FieldCount, catalog.Count(),
		logger.FieldLocale, cfg.Locale,
	)

	return &session{cfg: cfg, log: log, catalog: catalog}, nil
}

func (s *session) sorter() *text.Sorter {
	return text.NewSorter(s.cfg.Locale)
}

func (s *session) pipeline() *pipeline.Pipeline {
	return pipeline.New(s.catalog, pipeline.WithLogger(s.log), pipeline.WithSorter(s.sorter()))
}

func ExitWithError(err error) {
	if err == nil {
		return
	}
	printError(os.Stderr, err)
	os.Exit(1)
}

// printError writes the message and every hint attached to err.
func printError(w io.Writer, err error) {
	fmt.Fprintln(w, "Error:", err.Error())
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintln(w, "Hint:", hint)
	}
}
