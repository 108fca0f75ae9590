package game

import (
	"fmt"
	"io"

	"github.com/arcanaland/wargame/internal/card"
	"github.com/arcanaland/wargame/internal/config"
	"github.com/arcanaland/wargame/internal/deck"
)

// RoundRecorder receives one callback per resolved round. Satisfied by
// deckio.RoundWriter.
type RoundRecorder interface {
	WriteRound(round int, a, b *deck.Deck) error
}

// Outcome is the terminal state of a game.
type Outcome int

const (
	Tie Outcome = iota
	PlayerAWins
	PlayerBWins
)

func (o Outcome) String() string {
	switch o {
	case PlayerAWins:
		return "Player A wins the game!"
	case PlayerBWins:
		return "Player B wins the game!"
	default:
		return "It's a tie!"
	}
}

// Deal splits a loaded deck into the two players' decks, alternating cards
// from the top: first card to A, second to B, and so on.
func Deal(full *deck.Deck) (a, b *deck.Deck) {
	a, b = deck.New(), deck.New()
	for i := 0; ; i++ {
		c, ok := full.Draw()
		if !ok {
			return a, b
		}
		if i%2 == 0 {
			a.Append(c)
		} else {
			b.Append(c)
		}
	}
}

// Game plays War between two decks. Each round both players draw their top
// card; the higher value takes both cards to the bottom of its owner's deck
// (own card first). On a tie each card returns to the bottom of its owner's
// deck. The game ends when a deck is exhausted, or in a tie once MaxRounds
// rounds have been played.
type Game struct {
	// A and B are the players' decks. The game draws from and appends to
	// them directly.
	A, B *deck.Deck
	// Recorder, if set, gets one WriteRound per resolved round.
	Recorder RoundRecorder
	// Out receives the round-by-round narration. Defaults to discard.
	Out io.Writer
	// MaxRounds caps the game; zero or negative means the default cap.
	MaxRounds int
}

// Play runs the game to completion and returns the outcome and the number
// of rounds played. A recorder failure aborts the game.
func (g *Game) Play() (Outcome, int, error) {
	out := g.Out
	if out == nil {
		out = io.Discard
	}
	maxRounds := g.MaxRounds
	if maxRounds <= 0 {
		maxRounds = config.DefaultMaxRounds
	}

	fmt.Fprintln(out, "Starting War!")

	round := 0
	for g.A.Size() > 0 && g.B.Size() > 0 && round < maxRounds {
		round++
		cardA, _ := g.A.Draw()
		cardB, _ := g.B.Draw()

		fmt.Fprintf(out, "Round %d:\n", round)
		fmt.Fprintf(out, "  Player A plays %s\n", cardA.Name())
		fmt.Fprintf(out, "  Player B plays %s\n", cardB.Name())

		switch {
		case card.Less(cardB, cardA):
			g.A.Append(cardA)
			g.A.Append(cardB)
			fmt.Fprintln(out, "  Player A wins the round")
		case card.Less(cardA, cardB):
			g.B.Append(cardB)
			g.B.Append(cardA)
			fmt.Fprintln(out, "  Player B wins the round")
		default:
			g.A.Append(cardA)
			g.B.Append(cardB)
			fmt.Fprintln(out, "  Tie, both cards return")
		}

		if g.Recorder != nil {
			if err := g.Recorder.WriteRound(round, g.A, g.B); err != nil {
				return Tie, round, fmt.Errorf("recording round %d: %w", round, err)
			}
		}
	}

	fmt.Fprintln(out, "Game Over")

	outcome := Tie
	switch {
	case g.B.Size() == 0:
		outcome = PlayerAWins
	case g.A.Size() == 0:
		outcome = PlayerBWins
	}
	fmt.Fprintln(out, outcome)

	return outcome, round, nil
}
