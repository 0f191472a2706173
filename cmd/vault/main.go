// Command vault is a command-line demo for the SimpleLogin client SDK.
// Without arguments it logs in, lists the aliases and creates one random
// alias; subcommands expose the individual API operations and the
// fake-identity generators.
package main

import (
	"os"

	"github.com/vkram2711/vault-go/internal/logger"
)

func main() {
	log := logger.New()
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("vault failed")
		os.Exit(1)
	}
}
