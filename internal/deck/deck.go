package deck

import (
	"strings"

	"github.com/arcanaland/wargame/internal/card"
)

// Deck is an ordered pile of cards. Index 0 is the top: cards are drawn
// from the top and appended to the bottom. A Deck is owned by a single
// goroutine and does no locking of its own.
type Deck struct {
	cards []card.Card
}

// New returns an empty deck.
func New() *Deck {
	return &Deck{}
}

// Append puts c on the bottom of the deck.
func (d *Deck) Append(c card.Card) {
	d.cards = append(d.cards, c)
}

// Draw removes and returns the top card. ok is false on an empty deck.
func (d *Deck) Draw() (c card.Card, ok bool) {
	if len(d.cards) == 0 {
		return nil, false
	}
	c = d.cards[0]
	d.cards = d.cards[1:]
	return c, true
}

// Size is the number of cards currently in the deck.
func (d *Deck) Size() int {
	return len(d.cards)
}

// Cards returns a copy of the deck's contents in draw order.
func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

// String renders the deck's cards in draw order, separated by semicolons,
// e.g. "Hearts,5;Joker,Red;Spades,12". The card forms themselves contain
// commas, so the separator keeps the whole deck re-parseable.
func (d *Deck) String() string {
	var b strings.Builder
	for i, c := range d.cards {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(c.String())
	}
	return b.String()
}
