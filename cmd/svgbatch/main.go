// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the svgbatch CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the svgbatch CLI.
var rootCmd = &cobra.Command{
	Use:   "svgbatch",
	Short: "Batch-rasterize SVG directory trees to fixed-size PNGs",
	Long: `svgbatch walks a directory tree, finds every file with an .svg
extension, and rasterizes each one to a PNG of fixed dimensions next to
its source, reporting a success/failure summary.

The render subcommand does the work; history lists recorded runs.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./svgbatch.yaml or ~/.config/svgbatch/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("svgbatch")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "svgbatch"))
		}
	}

	viper.SetEnvPrefix("SVGBATCH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
