package cmd

import (
	"fmt"
	"os"

	"github.com/arcanaland/wargame/internal/config"
	"github.com/arcanaland/wargame/internal/deckio"
	"github.com/arcanaland/wargame/internal/game"
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play [deck] [report.csv]",
	Short: "Play a game of War and write a round-by-round report",
	Long: `Play loads a deck from a CSV file, deals it alternately between Player A
and Player B, and plays War until one player runs out of cards (or the
round cap is reached, which ends the game in a tie). Every round is
appended to the report CSV.

The deck argument is a name from your deck library
(XDG_DATA_HOME/wargame/decks) or a path to a CSV file.

Examples:
  wargame play decks/simple_deck.csv report.csv
  wargame play classic report.csv --max-rounds 500`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}

		maxRounds, _ := cmd.Flags().GetInt("max-rounds")
		if maxRounds > 0 {
			cfg.MaxRounds = maxRounds
		}
		if cfg.NoColor || !term.IsTerminal(int(os.Stdout.Fd())) {
			colorize.NoColor = true
		}

		deckPath, err := config.GetDeckPath(args[0])
		if err != nil {
			return err
		}

		full, err := deckio.ReadDeckFile(deckPath)
		if err != nil {
			return fmt.Errorf("error loading deck %s: %v", deckPath, err)
		}

		writer, err := deckio.NewRoundWriter(args[1])
		if err != nil {
			return fmt.Errorf("error opening report: %v", err)
		}
		defer writer.Close()

		a, b := game.Deal(full)
		g := &game.Game{
			A:         a,
			B:         b,
			Recorder:  writer,
			Out:       cmd.OutOrStdout(),
			MaxRounds: cfg.MaxRounds,
		}

		_, rounds, err := g.Play()
		if err != nil {
			return fmt.Errorf("error playing game: %v", err)
		}

		colorize.New(colorize.Bold).Fprintf(cmd.OutOrStdout(),
			"Report for %d round(s) written to %s\n", rounds, args[1])
		return nil
	},
}

func init() {
	RootCmd.AddCommand(playCmd)

	playCmd.Flags().Int("max-rounds", 0, "Cap the number of rounds (overrides the config file)")
}
