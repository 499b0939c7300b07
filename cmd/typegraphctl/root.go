package main

import (
	"github.com/spf13/cobra"

	"typegraph/config"
)

var configPath string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "typegraphctl",
		Short: "Inspect the type resolution and composition core",
		Long: "typegraphctl runs the type resolution core over one of its built-in\n" +
			"scenario fixtures and reports the resulting type graph.",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a typegraphctl TOML config file")
	root.AddCommand(newResolveCmd())
	return root
}

func loadConfig() (config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}
