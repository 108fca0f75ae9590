package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/arcanaland/wargame/internal/card"
	"github.com/arcanaland/wargame/internal/config"
	"github.com/arcanaland/wargame/internal/deck"
	"github.com/arcanaland/wargame/internal/deckio"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var showCmd = &cobra.Command{
	Use:   "show [deck]",
	Short: "Display the cards of a deck in draw order",
	Long: `Show parses a deck file and prints its cards in draw order, laid out in
columns sized to the terminal. Hearts and Diamonds are shown in red,
jokers in yellow.

The deck argument is a name from your deck library
(XDG_DATA_HOME/wargame/decks) or a path to a CSV file.

Examples:
  wargame show classic
  wargame show ./decks/with_jokers.csv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}

		deckPath, err := config.GetDeckPath(args[0])
		if err != nil {
			return err
		}

		d, err := deckio.ReadDeckFile(deckPath)
		if err != nil {
			return fmt.Errorf("error loading deck: %v", err)
		}

		width := 80
		if term.IsTerminal(int(os.Stdout.Fd())) {
			if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
				width = w
			}
		} else {
			colorize.NoColor = true
		}
		if cfg.NoColor {
			colorize.NoColor = true
		}

		displayDeck(d, width)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}

// displayDeck prints the deck's cards in as many columns as fit in width.
func displayDeck(d *deck.Deck, width int) {
	cards := d.Cards()

	colWidth := 0
	for _, c := range cards {
		if len(c.Name()) > colWidth {
			colWidth = len(c.Name())
		}
	}
	colWidth += 2

	cols := width / colWidth
	if cols < 1 {
		cols = 1
	}

	for i, c := range cards {
		// Pad by hand: the painted form carries ANSI escapes, so %-*s
		// would count the wrong length.
		fmt.Print(paintCard(c), strings.Repeat(" ", colWidth-len(c.Name())))
		if (i+1)%cols == 0 {
			fmt.Println()
		}
	}
	if len(cards)%cols != 0 {
		fmt.Println()
	}

	fmt.Printf("\n%d cards\n", len(cards))
}

func paintCard(c card.Card) string {
	switch cc := c.(type) {
	case card.JokerCard:
		return colorize.New(colorize.FgYellow).Sprint(cc.Name())
	case card.PlayingCard:
		return paintSuit(cc.Suit(), cc.Name())
	case card.FaceCard:
		return paintSuit(cc.Suit(), cc.Name())
	}
	return c.Name()
}

func paintSuit(suit, name string) string {
	switch suit {
	case "Hearts", "Diamonds":
		return colorize.New(colorize.FgRed).Sprint(name)
	}
	return name
}
