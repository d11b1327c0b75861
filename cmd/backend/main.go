package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	_ "go.uber.org/automaxprocs"

	"leadflow/internal/api"
	"leadflow/internal/app/config"
	"leadflow/internal/app/pricing"
	"leadflow/internal/app/wizard"
)

// @title Leadflow API
// @version 1.0
// @description Мастера заявок (business case, consulting, training), расчет стоимости и ROI, рекомендации тем обучения
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "leadflow",
	Short:        "Lead qualification backend",
	SilenceUsage: true,
	RunE:         runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

var quoteCmd = &cobra.Command{
	Use:   "quote [file]",
	Short: "Calculate business case pricing and ROI",
	Long: `Calculate business case pricing and ROI from a JSON form state.

Examples:
  leadflow quote ./business-case.json
  cat business-case.json | leadflow quote`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var in io.Reader = cmd.InOrStdin()
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening file: %w", err)
			}
			defer f.Close()
			in = f
		}

		var state wizard.BusinessCaseState
		if err := json.NewDecoder(in).Decode(&state); err != nil {
			return fmt.Errorf("decoding business case: %w", err)
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(pricing.Calculate(&state))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, quoteCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	logrus.Info("App start")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Error("Error reading config: ", err)
		return err
	}
	cfg.ConfigureLogger()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := api.StartServer(ctx, cfg); err != nil {
		logrus.Error(err)
		return err
	}

	logrus.Info("App terminated")
	return nil
}
