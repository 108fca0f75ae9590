package validator

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/arcanaland/wargame/internal/card"
	"github.com/arcanaland/wargame/internal/deckio"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Validator checks a deck file line by line. Unlike deckio.ParseDeck,
// which fails fast, it collects every problem so a deck author can fix
// them in one pass. Errors mark lines the game loader would reject;
// warnings mark legal but suspicious content.
type Validator struct {
	DeckPath string
	Results  ValidationResults
}

func NewValidator(deckPath string) *Validator {
	return &Validator{
		DeckPath: deckPath,
		Results:  ValidationResults{},
	}
}

var standardSuits = map[string]bool{
	"Hearts":   true,
	"Diamonds": true,
	"Clubs":    true,
	"Spades":   true,
}

func (v *Validator) Validate() (ValidationResults, error) {
	f, err := os.Open(v.DeckPath)
	if err != nil {
		return v.Results, fmt.Errorf("cannot open deck file: %v", err)
	}
	defer f.Close()

	seen := map[string]int{}
	count := 0
	lineNo := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		c, err := deckio.ParseCard(line)
		if err != nil {
			v.addError(fmt.Sprintf("line %d: %v", lineNo, err))
			continue
		}

		count++
		seen[c.String()]++
		v.checkSuit(c, lineNo)
	}
	if err := scanner.Err(); err != nil {
		return v.Results, fmt.Errorf("cannot read deck file: %v", err)
	}

	if count == 0 {
		v.addError("deck contains no cards")
	}
	if count == 1 {
		v.addWarning("deck holds a single card: Player B is dealt nothing and loses immediately")
	}
	if count > 1 && count%2 != 0 {
		v.addWarning(fmt.Sprintf("odd card count %d: Player A is dealt one card more than Player B", count))
	}

	forms := make([]string, 0, len(seen))
	for form := range seen {
		forms = append(forms, form)
	}
	sort.Strings(forms)
	for _, form := range forms {
		if n := seen[form]; n > 1 {
			v.addWarning(fmt.Sprintf("card %s appears %d times", form, n))
		}
	}

	return v.Results, nil
}

func (v *Validator) checkSuit(c card.Card, lineNo int) {
	var suit string
	switch cc := c.(type) {
	case card.PlayingCard:
		suit = cc.Suit()
	case card.FaceCard:
		suit = cc.Suit()
	default:
		return
	}
	if !standardSuits[suit] {
		v.addWarning(fmt.Sprintf("line %d: nonstandard suit %q", lineNo, suit))
	}
}

func (v *Validator) addError(msg string) {
	v.Results.Errors = append(v.Results.Errors, msg)
}

func (v *Validator) addWarning(msg string) {
	v.Results.Warnings = append(v.Results.Warnings, msg)
}
