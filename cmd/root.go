package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/fraudlens/internal/predict"
)

var rootCmd = &cobra.Command{
	Use:   "fraudlens",
	Short: "Terminal client for a transaction fraud detection service",
	Long:  "FraudLens: enter a card transaction, submit it to the fraud classification service, and review the verdict.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	registerFlags(rootCmd)
	rootCmd.AddCommand(versionCmd)
}

func registerFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("api", "", "Prediction service base URL (overrides "+predict.EnvBaseURL+")")
	flags.Duration("timeout", predict.DefaultTimeout, "Per-request timeout")
	flags.String("feature-prefix", predict.DefaultConfig().FeaturePrefix, "Key prefix for the 28 anonymized features")
	flags.String("log-file", "", "Append request logs to this file")
	flags.Bool("no-splash", false, "Skip the welcome screen")
}

// resolveConfig builds the client config: flags override the environment,
// which overrides the defaults.
func resolveConfig(cmd *cobra.Command) (predict.Config, error) {
	cfg := predict.ConfigFromEnv()

	if u, _ := cmd.Flags().GetString("api"); u != "" {
		cfg.BaseURL = u
	}
	if cmd.Flags().Changed("timeout") {
		d, _ := cmd.Flags().GetDuration("timeout")
		cfg.Timeout = d
	}
	if cmd.Flags().Changed("feature-prefix") {
		p, _ := cmd.Flags().GetString("feature-prefix")
		cfg.FeaturePrefix = p
	}

	return cfg, cfg.Validate()
}
