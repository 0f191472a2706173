package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vkram2711/vault-go/internal/config"
)

var registerCmd = &cobra.Command{
	Use:   "register <email> <password>",
	Short: "Register a new account",
	Long: `Register a new SimpleLogin account. The service emails an
activation code; confirm it with "vault activate".`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		client := newClient("", cfg)
		if err := client.Auth.Register(cmd.Context(), args[0], args[1]); err != nil {
			return fmt.Errorf("register: %w", err)
		}
		fmt.Printf("Registered %s, check the inbox for the activation code\n", args[0])
		return nil
	},
}

var activateCmd = &cobra.Command{
	Use:   "activate <email> <code>",
	Short: "Activate a registered account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		client := newClient("", cfg)
		if err := client.Auth.Activate(cmd.Context(), args[0], args[1]); err != nil {
			return fmt.Errorf("activate: %w", err)
		}
		fmt.Printf("Account %s activated\n", args[0])
		return nil
	},
}
