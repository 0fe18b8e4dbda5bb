package main

import (
	"context"
	"encoding/json"
	"os"

	"enricher/internal/config"
	"enricher/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// previewCommand constructs the 'preview' subcommand that reports what a run
// would enrich without resolving or storing anything.
func previewCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <csv url or path>",
		Short: "Shows the domains a CSV file would yield",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			if detect, _ := cmd.Flags().GetBool("detect-header"); detect {
				cfg.Pipeline.DetectHeader = true
			}

			// preview writes nothing, the pipeline never touches its storage
			preview, err := newPipeline(ctx, cfg, nil, true).Preview(ctx, args[0])
			if err != nil {
				logger.Fatal(ctx, "could not preview file", zap.Error(err))
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			_ = enc.Encode(preview)
		},
	}

	cmd.Flags().Bool("detect-header", false, "Scan the columns whose header names a domain column instead of the first column")

	return cmd
}
