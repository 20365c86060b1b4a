package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/akeren/waitlist-relay/config"
	"github.com/akeren/waitlist-relay/domain/relay"
	apperrors "github.com/akeren/waitlist-relay/pkg/errors"
	"github.com/spf13/cobra"
)

// check: confirm NOTION_SECRET can see NOTION_DB without writing a record.
func checkCmd(verbose *bool) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify the Notion credential and destination database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cliLogger(cmd, *verbose)

			notionConfig, err := config.LoadNotionConfig()
			if err != nil {
				return err
			}
			if missing := notionConfig.Missing(); len(missing) > 0 {
				return fmt.Errorf("missing configuration: %v", missing)
			}

			client, err := notionConfig.NewClient(logger)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			if err := relay.NewWaitlistWriter(client, notionConfig).Ping(ctx); err != nil {
				logger.Error("Upstream check failed", "error", err)
				return fmt.Errorf("%s (%s)", apperrors.GetHumanReadableMessage(err), apperrors.GetErrorType(err))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Notion database %s is reachable\n", notionConfig.DatabaseID)
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "upstream request timeout")
	return cmd
}
