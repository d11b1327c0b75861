package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"leadflow/internal/app/config"
	"leadflow/internal/app/repository"
)

var checkDBCmd = &cobra.Command{
	Use:   "check-db",
	Short: "Check the database connection and print recent submissions",
	RunE: func(cmd *cobra.Command, _ []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		cfg, err := config.NewConfig()
		if err != nil {
			return err
		}

		repo, err := repository.Open(cfg.DB)
		if err != nil {
			return err
		}
		defer repo.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		if err := repo.Ping(ctx); err != nil {
			return fmt.Errorf("%s: %w", repository.DescribeError(err, "Database is unavailable"), err)
		}

		submissions, err := repo.ListSubmissions(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", repository.DescribeError(err, "Failed to fetch submissions"), err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Connected to %s database %q, %d submissions\n", cfg.DB.Driver, cfg.DB.Name, len(submissions))
		for i, s := range submissions {
			if i == limit {
				break
			}
			fmt.Fprintf(out, "ID: %s, Company: %s, Email: %s, SubmittedAt: %s\n",
				s.SubmissionID, s.CompanyName, s.Email, s.SubmittedAt.Format(time.RFC3339))
		}
		return nil
	},
}

func init() {
	checkDBCmd.Flags().Int("limit", 10, "number of recent submissions to print")
	rootCmd.AddCommand(checkDBCmd)
}
