package card

// Card represents one playing card in a War deck. PlayingCard, FaceCard
// and JokerCard are the complete set of implementations.
type Card interface {
	// Value is the integer ranking used for every game comparison.
	Value() int
	// Name is the human-readable form used in console output.
	Name() string
	// String is the deck-file form, invertible by deckio.ParseDeck.
	String() string
}

// JokerValue ranks a joker above every natural card: a joker beats a king
// and ties only another joker.
const JokerValue = 14

// Less reports whether a ranks below b. Only Value participates; suit and
// card kind never break ties, so two kings of different suits compare equal.
func Less(a, b Card) bool {
	return a.Value() < b.Value()
}

// Equal reports whether a and b rank the same.
func Equal(a, b Card) bool {
	return a.Value() == b.Value()
}

var rankNames = []string{
	"",
	"Ace", "Two", "Three", "Four", "Five", "Six", "Seven",
	"Eight", "Nine", "Ten", "Jack", "Queen", "King",
}
