package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vkram2711/vault-go/generator"
)

var passwordLength int

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate fake usernames, names and passwords",
}

var generateUsernameCmd = &cobra.Command{
	Use:   "username",
	Short: "Generate a random username",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(generator.Username())
	},
}

var generateNameCmd = &cobra.Command{
	Use:   "name",
	Short: "Generate a random full name",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(generator.FullName())
	},
}

var generatePasswordCmd = &cobra.Command{
	Use:   "password",
	Short: "Generate a random password",
	RunE: func(_ *cobra.Command, _ []string) error {
		if passwordLength < generator.MinPasswordLength {
			return fmt.Errorf("password length must be at least %d", generator.MinPasswordLength)
		}
		fmt.Println(generator.Password(passwordLength))
		return nil
	},
}

func init() {
	generatePasswordCmd.Flags().IntVar(&passwordLength, "length", 16, "password length")
	generateCmd.AddCommand(generateUsernameCmd)
	generateCmd.AddCommand(generateNameCmd)
	generateCmd.AddCommand(generatePasswordCmd)
}
