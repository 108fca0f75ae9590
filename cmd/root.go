package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "wargame",
	Short: "Play the card game War from CSV decks",
	Long: `Wargame is a command-line tool that plays the two-player card game War.
It loads a deck from a CSV file (one card per line), deals it between
Player A and Player B, plays the game round by round, and writes a CSV
report of every round.`,
}

func init() {
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
