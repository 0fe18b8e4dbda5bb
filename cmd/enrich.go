package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"enricher/internal/config"
	"enricher/pkg/domain"
	"enricher/pkg/logger"
	"enricher/pkg/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// enrichCommand constructs the 'enrich' subcommand that processes a single CSV
// file synchronously and prints the run result as JSON.
func enrichCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enrich <csv url or path>",
		Short: "Enriches the domains of a single CSV file and prints the result",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if detect, _ := cmd.Flags().GetBool("detect-header"); detect {
				cfg.Pipeline.DetectHeader = true
			}

			var strg storage.Storage
			if path, _ := cmd.Flags().GetString("sqlite"); path != "" {
				db, closeStrg := getSQLite(ctx, path)
				defer closeStrg()
				strg = db
			} else {
				db, closeStrg := getPostgres(ctx, cfg)
				defer closeStrg()
				strg = db
			}

			runID := domain.NewRunID()
			if resume, _ := cmd.Flags().GetString("run"); resume != "" {
				id, err := domain.ParseRunID(resume)
				if err != nil {
					logger.Fatal(ctx, "invalid run id", zap.Error(err))
				}
				runID = id
			}

			event := domain.TriggerEvent{
				URL:        args[0],
				FileName:   filepath.Base(args[0]),
				UploadedAt: time.Now().UTC(),
			}
			ctx = logger.WithFields(ctx, zap.String("runID", string(runID)))

			result, err := newPipeline(ctx, cfg, strg, true).Run(ctx, runID, event)
			if err != nil {
				logger.Error(ctx, "run failed, rerun with --run to resume", zap.Error(err))
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			_ = enc.Encode(struct {
				RunID domain.RunID `json:"runId"`
				domain.RunResult
			}{runID, result})

			if err != nil {
				os.Exit(1) //nolint: gocritic
			}
		},
	}

	cmd.Flags().String("sqlite", "", "Store results in the SQLite database file at this path instead of PostgreSQL")
	cmd.Flags().Bool("detect-header", false, "Scan the columns whose header names a domain column instead of the first column")
	cmd.Flags().String("run", "", "Resume the run with this ID")

	return cmd
}
