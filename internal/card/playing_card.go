package card

import "fmt"

// PlayingCard is a numbered card, ace (1) through ten.
type PlayingCard struct {
	suit string
	rank int
}

func NewPlayingCard(suit string, rank int) (PlayingCard, error) {
	if suit == "" {
		return PlayingCard{}, fmt.Errorf("playing card: empty suit")
	}
	if rank < 1 || rank > 10 {
		return PlayingCard{}, fmt.Errorf("playing card: rank %d outside 1-10", rank)
	}
	return PlayingCard{suit: suit, rank: rank}, nil
}

func (c PlayingCard) Suit() string {
	return c.suit
}

func (c PlayingCard) Rank() int {
	return c.rank
}

func (c PlayingCard) Value() int {
	return c.rank
}

func (c PlayingCard) Name() string {
	return fmt.Sprintf("%s of %s", rankNames[c.rank], c.suit)
}

func (c PlayingCard) String() string {
	return fmt.Sprintf("%s,%d", c.suit, c.rank)
}
