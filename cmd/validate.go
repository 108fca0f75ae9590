package cmd

import (
	"fmt"

	"github.com/arcanaland/wargame/internal/config"
	"github.com/arcanaland/wargame/internal/validator"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [deck]",
	Short: "Validate a deck CSV file",
	Long: `Validate checks that a deck file parses: one card per line, either
<Suit>,<Rank> with Rank between 1 and 13, or Joker,<Label>. Blank lines
are ignored. The deck must contain at least one card.

Unlike loading a deck for play, which stops at the first bad line,
validate reports every problem it finds, plus warnings for legal but
suspicious content such as duplicate cards or an odd card count.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckPath, err := config.GetDeckPath(args[0])
		if err != nil {
			return err
		}

		// Create validator and run validation
		v := validator.NewValidator(deckPath)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %v", err)
		}

		// Display validation results
		fmt.Println("Validation Results:")
		fmt.Println("-------------------")

		if len(results.Errors) == 0 {
			fmt.Printf("✅ Deck '%s' is valid.\n", args[0])
		} else {
			fmt.Printf("❌ Deck '%s' has %d validation errors:\n", args[0], len(results.Errors))
			for i, err := range results.Errors {
				fmt.Printf("%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Println("\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Printf("%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}
