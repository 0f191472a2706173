package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	simplelogin "github.com/vkram2711/vault-go"
	"github.com/vkram2711/vault-go/internal/config"
	"github.com/vkram2711/vault-go/internal/logger"
)

// errMFARequired aborts subcommands that need an API key when the
// account only yields an MFA key.
var errMFARequired = errors.New("MFA is enabled, use an API key via SL_API_KEY")

// obtainAPIKey returns a usable API key: SL_API_KEY when set, otherwise
// the key issued by a password login. On MFA-enabled accounts it prints
// the MFA key and returns an empty key; completing the OTP exchange is
// out of scope.
func obtainAPIKey(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if cfg.HasAPIKey() {
		return cfg.APIKey, nil
	}

	if err := cfg.RequireLogin(); err != nil {
		return "", err
	}

	log := logger.New()
	client := newClient("", cfg)

	session, err := client.Auth.Login(cmd.Context(), cfg.Email, cfg.Password, cfg.Device)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}

	if session.MFAEnabled {
		mfaKey := ""
		if session.MFAKey != nil {
			mfaKey = *session.MFAKey
		}
		fmt.Printf("MFA is enabled. Use MFA key: %s\n", mfaKey)
		return "", nil
	}

	if session.APIKey == nil {
		return "", errors.New("login succeeded but no API key was returned")
	}

	log.Info().Str("email", session.Email).Msg("logged in")
	return *session.APIKey, nil
}

// runDemo is the default command: login, list the existing aliases,
// then create one random alias. Any failure aborts the remaining steps.
func runDemo(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	apiKey, err := obtainAPIKey(cmd, cfg)
	if err != nil {
		return err
	}
	if apiKey == "" {
		// MFA account; the MFA key has been printed, nothing more to do.
		return nil
	}

	client := newClient(apiKey, cfg)

	aliases, err := client.Aliases.List(cmd.Context(), 0)
	if err != nil {
		return fmt.Errorf("list aliases: %w", err)
	}
	fmt.Printf("Existing aliases (%d):\n", len(aliases))
	for _, alias := range aliases {
		printAlias(alias)
	}

	created, err := client.Aliases.CreateRandom(cmd.Context(), simplelogin.RandomAliasOptions{
		Hostname: "example.com",
		Mode:     simplelogin.AliasModeWord,
		Note:     "My random alias note",
	})
	if err != nil {
		return fmt.Errorf("create random alias: %w", err)
	}
	fmt.Printf("Random alias created: %s (id %d)\n", created.Email, created.ID)

	return nil
}

func printAlias(alias simplelogin.Alias) {
	state := "disabled"
	if alias.Enabled {
		state = "enabled"
	}
	fmt.Printf("  %6d  %-40s %s", alias.ID, alias.Email, state)
	if alias.Note != nil {
		fmt.Printf("  // %s", *alias.Note)
	}
	fmt.Println()
}
