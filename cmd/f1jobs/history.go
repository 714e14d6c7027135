package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"f1jobs/internal/store"

	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyRun   int64
	historyTeam  string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Lists recent runs recorded in the history database.",
	Long:  "Lists recent runs. With --run and --team, prints the rows one team exported in that run.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if (historyRun != 0) != (historyTeam != "") {
			return errors.New("--run and --team must be used together")
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		db, err := store.Open(cfg.History.Path)
		if err != nil {
			return err
		}
		defer db.Close()

		if historyRun != 0 {
			return printTeamJobs(cmd, db, historyRun, historyTeam)
		}

		runs, err := store.LastRuns(cmd.Context(), db.Pool, historyLimit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, r := range runs {
			fmt.Fprintf(out, "run %d  %s  %.1fs  %s\n", r.ID, r.StartedAt.Local().Format(time.DateTime), r.Elapsed.Seconds(), r.OutputPath)
			for _, t := range r.Teams {
				switch {
				case t.Skipped == "":
					fmt.Fprintf(out, "  %-16s status=%d rows=%d\n", t.TeamID, t.Status, t.Rows)
				case t.Error != "":
					fmt.Fprintf(out, "  %-16s skipped=%s err=%s\n", t.TeamID, t.Skipped, t.Error)
				default:
					fmt.Fprintf(out, "  %-16s skipped=%s status=%d\n", t.TeamID, t.Skipped, t.Status)
				}
			}
		}
		return nil
	},
}

func printTeamJobs(cmd *cobra.Command, db *store.DB, runID int64, team string) error {
	t, err := store.TeamJobs(cmd.Context(), db.Pool, runID, team)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run %d  %s\n", runID, t.TeamID)
	fmt.Fprintln(out, strings.Join(t.Headers, "\t"))
	for _, row := range t.Rows {
		fmt.Fprintln(out, strings.Join(row, "\t"))
	}
	return nil
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "number of runs to show")
	historyCmd.Flags().Int64Var(&historyRun, "run", 0, "run id to show rows for (with --team)")
	historyCmd.Flags().StringVar(&historyTeam, "team", "", "team id to show rows for (with --run)")
	rootCmd.AddCommand(historyCmd)
}
