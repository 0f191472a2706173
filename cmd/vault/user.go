package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Show account info",
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, err := authedClient(cmd)
		if err != nil {
			return err
		}

		info, err := client.User.GetUserInfo(cmd.Context())
		if err != nil {
			return fmt.Errorf("get user info: %w", err)
		}

		fmt.Printf("Name:    %s\n", info.Name)
		fmt.Printf("Email:   %s\n", info.Email)
		fmt.Printf("Premium: %t (trial: %t)\n", info.IsPremium, info.InTrial)
		if info.MaxAliasFreePlan != nil {
			fmt.Printf("Free-plan alias cap: %d\n", *info.MaxAliasFreePlan)
		}
		return nil
	},
}
