// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/svgbatch/internal/discover"
	"github.com/pdiddy/svgbatch/internal/history"
	"github.com/pdiddy/svgbatch/internal/render"
	"github.com/pdiddy/svgbatch/internal/report"
	"github.com/pdiddy/svgbatch/pkg/types"
)

const (
	defaultWidth  = 200
	defaultHeight = 200
)

var renderCmd = &cobra.Command{
	Use:   "render [input-dir]",
	Short: "Rasterize every SVG under a directory to fixed-size PNGs",
	Long: `Render recursively finds .svg files under the input directory (the
extension match is case-sensitive), rasterizes each into a fixed output
box with the pure-Go oksvg backend, and writes the PNG next to its
source, overwriting any previous output.

Files are processed in sorted path order. A per-file failure is logged
and counted but never stops the remaining files; the command exits
nonzero when any file failed.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().Int("width", 0, "output PNG width in pixels (default 200)")
	renderCmd.Flags().Int("height", 0, "output PNG height in pixels (default 200)")
	renderCmd.Flags().String("report", "", "write a YAML run report to this path")
	renderCmd.Flags().Bool("history", false, "record this run in the history database")
	renderCmd.Flags().String("history-dir", "", "history database directory (default .svgbatch)")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	inputDir := args[0]
	cfg := renderConfig(cmd)

	rast, err := render.NewOksvgRasterizer(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}

	paths, err := discover.FindSVGs(inputDir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		fmt.Printf("No SVG files found in %s\n", inputDir)
		return nil
	}
	fmt.Printf("Found %d file(s) to process\n", len(paths))

	started := time.Now().UTC()
	result := render.RenderBatch(rast, paths, os.Stdout, os.Stderr)

	run := types.RunRecord{
		StartedAt: started,
		InputDir:  inputDir,
		Rendered:  result.Rendered,
		Failed:    result.Failed,
		Files:     result.Files,
	}

	if reportPath, _ := cmd.Flags().GetString("report"); reportPath != "" {
		if err := report.Write(reportPath, run); err != nil {
			return err
		}
		fmt.Printf("Report written to %s\n", reportPath)
	}

	if record, _ := cmd.Flags().GetBool("history"); record {
		id, err := recordRun(cmd, run)
		if err != nil {
			return err
		}
		fmt.Printf("Run recorded: %s\n", id)
	}

	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed rendering", result.Failed)
	}
	color.Green("All %d file(s) rendered", result.Rendered)
	return nil
}

// renderConfig resolves the output box: flag, then config/env, then default.
func renderConfig(cmd *cobra.Command) types.RenderConfig {
	width, _ := cmd.Flags().GetInt("width")
	if width == 0 {
		width = viper.GetInt("render.width")
	}
	if width == 0 {
		width = defaultWidth
	}

	height, _ := cmd.Flags().GetInt("height")
	if height == 0 {
		height = viper.GetInt("render.height")
	}
	if height == 0 {
		height = defaultHeight
	}

	return types.RenderConfig{Width: width, Height: height}
}

// historyConfig resolves the history directory: flag, then config/env,
// then the package default.
func historyConfig(cmd *cobra.Command) types.HistoryConfig {
	dir, _ := cmd.Flags().GetString("history-dir")
	if dir == "" {
		dir = viper.GetString("history.dir")
	}
	if dir == "" {
		dir = history.DefaultDir
	}
	return types.HistoryConfig{
		Dir:     dir,
		MaxRuns: viper.GetInt("history.max_runs"),
	}
}

func recordRun(cmd *cobra.Command, run types.RunRecord) (string, error) {
	store, err := history.NewStore(historyConfig(cmd))
	if err != nil {
		return "", err
	}
	defer store.Close()

	return store.RecordRun(context.Background(), run)
}
