package main

import (
	"github.com/spf13/cobra"

	simplelogin "github.com/vkram2711/vault-go"
	"github.com/vkram2711/vault-go/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "vault",
	Short: "SimpleLogin alias toolkit",
	Long: `vault drives the SimpleLogin email-alias API and bundles small
generators for fake usernames, display names and passwords.

Credentials come from the environment (or a .env file): SL_EMAIL,
SL_PASSWORD and SL_DEVICE for the login flow, or SL_API_KEY to skip it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDemo,
}

func init() {
	rootCmd.AddCommand(aliasesCmd)
	rootCmd.AddCommand(mailboxesCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(activateCmd)
	rootCmd.AddCommand(generateCmd)
}

// newClient builds an SDK client honoring the SL_BASE_URL override.
func newClient(apiKey string, cfg *config.Config) *simplelogin.Client {
	var opts []simplelogin.Option
	if cfg.BaseURL != "" {
		opts = append(opts, simplelogin.WithBaseURL(cfg.BaseURL))
	}
	return simplelogin.New(apiKey, opts...)
}

// authedClient loads the config and returns a client holding an API
// key, running the password login when SL_API_KEY is not set.
func authedClient(cmd *cobra.Command) (*simplelogin.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	apiKey, err := obtainAPIKey(cmd, cfg)
	if err != nil {
		return nil, err
	}
	if apiKey == "" {
		// MFA account: obtainAPIKey already printed the MFA key.
		return nil, errMFARequired
	}

	return newClient(apiKey, cfg), nil
}
