package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "scheduler",
		Short:         "SMC scheduling service: barbershop appointments, availability and payments",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.toml", "Path to TOML config file")

	rootCmd.AddCommand(serveCmd(&configPath))
	rootCmd.AddCommand(migrateCmd(&configPath))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
