package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var aliasPage int

var aliasesCmd = &cobra.Command{
	Use:   "aliases",
	Short: "List or delete aliases",
}

var aliasesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List one page of aliases",
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, err := authedClient(cmd)
		if err != nil {
			return err
		}

		aliases, err := client.Aliases.List(cmd.Context(), aliasPage)
		if err != nil {
			return fmt.Errorf("list aliases: %w", err)
		}

		for _, alias := range aliases {
			printAlias(alias)
		}
		return nil
	},
}

var aliasesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an alias by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("alias id must be a number: %q", args[0])
		}

		client, err := authedClient(cmd)
		if err != nil {
			return err
		}

		deleted, err := client.Aliases.Delete(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("delete alias %d: %w", id, err)
		}
		fmt.Printf("Alias %d deleted: %t\n", id, deleted)
		return nil
	},
}

func init() {
	aliasesListCmd.Flags().IntVar(&aliasPage, "page", 0, "page cursor, starting at 0")
	aliasesCmd.AddCommand(aliasesListCmd)
	aliasesCmd.AddCommand(aliasesDeleteCmd)
}
