package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var mailboxesCmd = &cobra.Command{
	Use:   "mailboxes",
	Short: "List the account's mailboxes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, err := authedClient(cmd)
		if err != nil {
			return err
		}

		mailboxes, err := client.Mailboxes.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("list mailboxes: %w", err)
		}

		for _, mb := range mailboxes {
			flags := ""
			if mb.Default {
				flags += " default"
			}
			if mb.Verified {
				flags += " verified"
			}
			created := time.Unix(mb.CreationTimestamp, 0).UTC().Format(time.DateOnly)
			fmt.Printf("  %6d  %-40s %2d aliases  created %s%s\n",
				mb.ID, mb.Email, mb.NbAlias, created, flags)
		}
		return nil
	},
}
