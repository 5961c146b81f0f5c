package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sferrer-dev/petitsplats/internal/config"
	"github.com/sferrer-dev/petitsplats/internal/source"
)

type configView struct {
	Path    string        `json:"path" yaml:"path"`
	Config  config.Config `json:"config" yaml:"config"`
	Catalog source.Status `json:"catalog" yaml:"catalog"`
}

func newConfigCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change settings",
	}

	cmd.AddCommand(
		newConfigShowCommand(opts),
		newConfigSetCommand(opts),
		newConfigPathCommand(opts),
	)
	return cmd
}

func (o *Options) configPath() (string, error) {
	if o.ConfigPath != "" {
		return o.ConfigPath, nil
	}
	return config.GetConfigPath()
}

func newConfigShowCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			path, err := opts.configPath()
			if err != nil {
				return err
			}

			view := configView{Path: path, Config: cfg, Catalog: source.Describe(cfg.CatalogPath)}
			if cfg.Output != config.OutputText {
				return writeStructured(cmd.OutOrStdout(), cfg.Output, view)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "config file:  %s\n", view.Path)
			fmt.Fprintf(out, "%s: %s\n", config.KeyCatalogPath, view.Catalog.Path)
			if !view.Catalog.Exists {
				fmt.Fprintln(out, "              (file not found)")
			}
			fmt.Fprintf(out, "%s:       %s\n", config.KeyLocale, cfg.Locale)
			fmt.Fprintf(out, "%s:       %s\n", config.KeyOutput, cfg.Output)
			return nil
		},
	}
}

func newConfigSetCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:       "set <key> <value>",
		Short:     "Change a setting and save it",
		Args:      cobra.ExactArgs(2),
		ValidArgs: config.Keys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := opts.configPath()
			if err != nil {
				return err
			}

			cfg, err := config.LoadFile(path)
			if err != nil {
				return err
			}
			if err := cfg.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := config.Save(path, cfg); err != nil {
				return err
			}

			if !opts.Quiet {
				value, _ := cfg.Get(args[0])
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %q\n", args[0], value)
			}
			return nil
		},
	}
}

func newConfigPathCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := opts.configPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
