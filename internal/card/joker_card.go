package card

import "fmt"

// JokerCard has no suit or rank, only a label such as "Red" or "Black".
type JokerCard struct {
	label string
}

func NewJokerCard(label string) (JokerCard, error) {
	if label == "" {
		return JokerCard{}, fmt.Errorf("joker card: empty label")
	}
	return JokerCard{label: label}, nil
}

func (c JokerCard) Label() string {
	return c.label
}

func (c JokerCard) Value() int {
	return JokerValue
}

func (c JokerCard) Name() string {
	return fmt.Sprintf("%s Joker", c.label)
}

func (c JokerCard) String() string {
	return "Joker," + c.label
}
