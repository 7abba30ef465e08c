// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/svgbatch/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded render runs",
	Long: `History lists runs previously recorded with render --history,
most recent first. Use --run with a run id to show its per-file outcomes.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 0, "maximum number of runs to list (default 20)")
	historyCmd.Flags().String("run", "", "show per-file outcomes for one run id")
	historyCmd.Flags().Bool("json", false, "output as JSON")
	historyCmd.Flags().String("history-dir", "", "history database directory (default .svgbatch)")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := history.NewStore(historyConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	jsonOutput, _ := cmd.Flags().GetBool("json")

	if runID, _ := cmd.Flags().GetString("run"); runID != "" {
		run, err := store.GetRun(context.Background(), runID)
		if err != nil {
			return err
		}
		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(run)
		}
		fmt.Printf("Run %s  %s  %s\n", run.ID, run.StartedAt.Format(time.RFC3339), run.InputDir)
		for _, f := range run.Files {
			if f.Error != "" {
				fmt.Printf("  %-8s  %s (%s)\n", f.Status, f.Path, f.Error)
				continue
			}
			fmt.Printf("  %-8s  %s\n", f.Status, f.Path)
		}
		return nil
	}

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.ListRuns(context.Background(), limit)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-36s  %-20s  %-9s  %-7s  %s\n",
		"Run", "Started", "Rendered", "Failed", "Input")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 90))
	for _, r := range runs {
		fmt.Fprintf(os.Stdout, "%-36s  %-20s  %-9d  %-7d  %s\n",
			r.ID, r.StartedAt.Format("2006-01-02 15:04:05"), r.Rendered, r.Failed, r.InputDir)
	}
	fmt.Fprintf(os.Stdout, "\n%d run(s)\n", len(runs))
	return nil
}
