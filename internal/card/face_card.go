package card

import "fmt"

// FaceCard is a jack (11), queen (12) or king (13).
type FaceCard struct {
	suit string
	rank int
}

func NewFaceCard(suit string, rank int) (FaceCard, error) {
	if suit == "" {
		return FaceCard{}, fmt.Errorf("face card: empty suit")
	}
	if rank < 11 || rank > 13 {
		return FaceCard{}, fmt.Errorf("face card: rank %d outside 11-13", rank)
	}
	return FaceCard{suit: suit, rank: rank}, nil
}

func (c FaceCard) Suit() string {
	return c.suit
}

func (c FaceCard) Rank() int {
	return c.rank
}

func (c FaceCard) Value() int {
	return c.rank
}

func (c FaceCard) Name() string {
	return fmt.Sprintf("%s of %s", rankNames[c.rank], c.suit)
}

func (c FaceCard) String() string {
	return fmt.Sprintf("%s,%d", c.suit, c.rank)
}
