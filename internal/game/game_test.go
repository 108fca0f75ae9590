package game_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arcanaland/wargame/internal/deck"
	"github.com/arcanaland/wargame/internal/deckio"
	"github.com/arcanaland/wargame/internal/game"
	"github.com/stretchr/testify/require"
)

func TestDeal(t *testing.T) {
	t.Run("alternates_cards_between_players", func(t *testing.T) {
		full := mustParse(t, "Hearts,1\nHearts,2\nHearts,3\nHearts,4\nHearts,5\nHearts,6\n")

		a, b := game.Deal(full)
		require.Equal(t, "Hearts,1;Hearts,3;Hearts,5", a.String())
		require.Equal(t, "Hearts,2;Hearts,4;Hearts,6", b.String())
		require.Equal(t, 0, full.Size())
	})

	t.Run("odd_deck_gives_the_extra_card_to_a", func(t *testing.T) {
		full := mustParse(t, "Hearts,1\nHearts,2\nHearts,3\n")

		a, b := game.Deal(full)
		require.Equal(t, 2, a.Size())
		require.Equal(t, 1, b.Size())
	})
}

func TestPlay(t *testing.T) {
	t.Run("higher_card_wins_the_game", func(t *testing.T) {
		// Ace is low: the two beats it.
		g := &game.Game{
			A: mustParse(t, "Hearts,1\n"),
			B: mustParse(t, "Spades,2\n"),
		}
		outcome, rounds, err := g.Play()
		require.NoError(t, err)
		require.Equal(t, game.PlayerBWins, outcome)
		require.Equal(t, 1, rounds)
	})

	t.Run("joker_beats_a_king", func(t *testing.T) {
		g := &game.Game{
			A: mustParse(t, "Hearts,13\n"),
			B: mustParse(t, "Joker,Red\n"),
		}
		outcome, _, err := g.Play()
		require.NoError(t, err)
		require.Equal(t, game.PlayerBWins, outcome)
	})

	t.Run("winner_takes_both_cards_own_card_first", func(t *testing.T) {
		g := &game.Game{
			A:         mustParse(t, "Hearts,9\nHearts,2\n"),
			B:         mustParse(t, "Spades,3\nSpades,4\n"),
			MaxRounds: 1,
		}
		_, rounds, err := g.Play()
		require.NoError(t, err)
		require.Equal(t, 1, rounds)
		require.Equal(t, "Hearts,2;Hearts,9;Spades,3", g.A.String())
		require.Equal(t, "Spades,4", g.B.String())
	})

	t.Run("tie_returns_each_card_to_its_owner", func(t *testing.T) {
		g := &game.Game{
			A:         mustParse(t, "Hearts,7\nHearts,2\n"),
			B:         mustParse(t, "Spades,7\nSpades,4\n"),
			MaxRounds: 1,
		}
		_, _, err := g.Play()
		require.NoError(t, err)
		require.Equal(t, "Hearts,2;Hearts,7", g.A.String())
		require.Equal(t, "Spades,4;Spades,7", g.B.String())
	})

	t.Run("round_cap_ends_deadlocked_games_in_a_tie", func(t *testing.T) {
		// Every round ties, so the decks cycle forever without the cap.
		g := &game.Game{
			A:         mustParse(t, "Hearts,5\nHearts,8\n"),
			B:         mustParse(t, "Spades,5\nSpades,8\n"),
			MaxRounds: 10,
		}
		outcome, rounds, err := g.Play()
		require.NoError(t, err)
		require.Equal(t, game.Tie, outcome)
		require.Equal(t, 10, rounds)
		require.Equal(t, 2, g.A.Size())
		require.Equal(t, 2, g.B.Size())
	})

	t.Run("total_cards_are_preserved", func(t *testing.T) {
		full := mustParse(t, "Hearts,5\nSpades,3\nClubs,9\nDiamonds,12\nHearts,1\nJoker,Red\n")
		a, b := game.Deal(full)
		g := &game.Game{A: a, B: b, MaxRounds: 100}

		_, _, err := g.Play()
		require.NoError(t, err)
		require.Equal(t, 6, a.Size()+b.Size())
	})

	t.Run("narrates_every_round", func(t *testing.T) {
		var out bytes.Buffer
		g := &game.Game{
			A:   mustParse(t, "Hearts,5\n"),
			B:   mustParse(t, "Spades,3\n"),
			Out: &out,
		}
		outcome, _, err := g.Play()
		require.NoError(t, err)
		require.Equal(t, game.PlayerAWins, outcome)

		narration := out.String()
		require.Contains(t, narration, "Starting War!")
		require.Contains(t, narration, "Round 1:")
		require.Contains(t, narration, "Player A plays Five of Hearts")
		require.Contains(t, narration, "Player B plays Three of Spades")
		require.Contains(t, narration, "Player A wins the round")
		require.Contains(t, narration, "Game Over")
		require.Contains(t, narration, "Player A wins the game!")
	})

	t.Run("records_one_round_per_resolution", func(t *testing.T) {
		rec := &captureRecorder{}
		g := &game.Game{
			A:        mustParse(t, "Hearts,5\nHearts,9\n"),
			B:        mustParse(t, "Spades,3\nSpades,2\n"),
			Recorder: rec,
		}
		_, rounds, err := g.Play()
		require.NoError(t, err)
		require.Equal(t, rounds, len(rec.rounds))

		// Sizes are recorded after each round resolves.
		require.Equal(t, [2]int{3, 1}, rec.sizes[0])
		require.Equal(t, [2]int{4, 0}, rec.sizes[1])
	})
}

type captureRecorder struct {
	rounds []int
	sizes  [][2]int
}

func (r *captureRecorder) WriteRound(round int, a, b *deck.Deck) error {
	r.rounds = append(r.rounds, round)
	r.sizes = append(r.sizes, [2]int{a.Size(), b.Size()})
	return nil
}

func mustParse(t *testing.T, input string) *deck.Deck {
	t.Helper()
	d, err := deckio.ParseDeck(strings.NewReader(input))
	require.NoError(t, err)
	return d
}

var _ game.RoundRecorder = (*deckio.RoundWriter)(nil)
