package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/akeren/waitlist-relay/internal/form"
	"github.com/akeren/waitlist-relay/internal/log"
	"github.com/akeren/waitlist-relay/internal/models"
	"github.com/akeren/waitlist-relay/pkg/utils"
	"github.com/spf13/cobra"
)

const (
	defaultRelayURL = "http://localhost:8080"
	relayURLEnvKey  = "WAITLIST_RELAY_URL"
)

type joinOptions struct {
	relayURL       string
	name           string
	email          string
	profession     string
	referralSource string
	other          string
	timeout        time.Duration
}

// join: fill the signup form from flags and submit it once.
func joinCmd(verbose *bool) *cobra.Command {
	opts := &joinOptions{}

	cmd := &cobra.Command{
		Use:   "join",
		Short: "Join the waitlist through a running relay",
		Example: `  waitlist join --name Ada --email ada@x.io --referral-source friend
  waitlist join --name Lin --email lin@y.org --referral-source other --other Podcast`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := resolveReferralSource(opts.referralSource, opts.other)
			if err != nil {
				return err
			}

			relayURL := opts.relayURL
			if relayURL == "" {
				relayURL = utils.GetEnvOrDefault(relayURLEnvKey, defaultRelayURL)
			}

			logger := cliLogger(cmd, *verbose)
			correlationID := log.GenerateCorrelationID()
			logger.Info("Submitting waitlist form",
				"relay", relayURL,
				"correlation_id", correlationID,
			)

			client := form.NewRelayClient(relayURL, nil)
			controller := form.NewController(client, &terminalNotifier{out: cmd.OutOrStdout(), errOut: cmd.ErrOrStderr()})

			controller.SetName(opts.name)
			controller.SetEmail(opts.email)
			controller.SetProfession(opts.profession)
			controller.SetReferralSource(source)
			controller.SetOtherReferralSource(opts.other)

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			if err := controller.Submit(log.ContextWithCorrelationID(ctx, correlationID)); err != nil {
				logFieldErrors(logger, err)
				// Already shown to the user by the notifier.
				cmd.SilenceErrors = true
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.relayURL, "relay", "", "relay base URL (default $"+relayURLEnvKey+" or "+defaultRelayURL+")")
	cmd.Flags().StringVar(&opts.name, "name", "", "your name")
	cmd.Flags().StringVar(&opts.email, "email", "", "your email address")
	cmd.Flags().StringVar(&opts.profession, "profession", "", "your profession (optional)")
	cmd.Flags().StringVar(&opts.referralSource, "referral-source", "", "how you heard about us: "+referralChoices())
	cmd.Flags().StringVar(&opts.other, "other", "", `free-text source when --referral-source is "Other"`)
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "give up waiting for the relay after this long")

	return cmd
}

func logFieldErrors(logger *log.Logger, err error) {
	var validationErr *form.ValidationError
	if !errors.As(err, &validationErr) {
		return
	}
	for _, detail := range validationErr.Details {
		logger.Warn("Form field rejected", "field", detail.Field, "tag", detail.Tag, "message", detail.Message)
	}
}

// resolveReferralSource canonicalises the flag. An empty source with --other set
// selects "Other"; an empty source otherwise is left for form validation.
func resolveReferralSource(raw, other string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		if other != "" {
			return string(models.ReferralSourceOther), nil
		}
		return "", nil
	}

	source, ok := models.ParseReferralSource(raw)
	if !ok {
		return "", fmt.Errorf("unknown referral source %q (choose one of %s)", raw, referralChoices())
	}
	return string(source), nil
}

func referralChoices() string {
	sources := models.ReferralSources()
	names := make([]string, len(sources))
	for i, s := range sources {
		names[i] = fmt.Sprintf("%q", s)
	}
	return strings.Join(names, ", ")
}
