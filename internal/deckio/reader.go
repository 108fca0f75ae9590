package deckio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/arcanaland/wargame/internal/card"
	"github.com/arcanaland/wargame/internal/deck"
)

// ParseDeck reads one card per line and returns the loaded deck. Each line
// is either `<Suit>,<Rank>` with Rank in 1-13 (11 and up is a face card) or
// `Joker,<Label>`. Blank lines are skipped. Lines are trimmed of leading
// and trailing whitespace before parsing, so CRLF files and space-padded
// lines load; whitespace inside a field (a joker label, say) is kept.
//
// Any bad line fails the whole parse with ErrMalformedInput. A source with
// no cards at all fails with ErrEmptyDeck.
func ParseDeck(r io.Reader) (*deck.Deck, error) {
	d := deck.New()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		c, err := ParseCard(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedInput, lineNo, err)
		}
		d.Append(c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	if d.Size() == 0 {
		return nil, ErrEmptyDeck
	}
	return d, nil
}

// ReadDeckFile opens path and parses it with ParseDeck. A file that cannot
// be opened fails with ErrSourceUnavailable.
func ReadDeckFile(path string) (*deck.Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer f.Close()
	return ParseDeck(f)
}

// ParseCard parses a single trimmed, non-blank deck line into a card.
func ParseCard(line string) (card.Card, error) {
	head, rest, found := strings.Cut(line, ",")
	if !found {
		return nil, fmt.Errorf("no comma in %q", line)
	}
	if head == "" || rest == "" {
		return nil, fmt.Errorf("empty field in %q", line)
	}
	if head == "Joker" {
		c, err := card.NewJokerCard(rest)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	rank, err := strconv.Atoi(rest)
	if err != nil {
		return nil, fmt.Errorf("rank %q is not an integer", rest)
	}
	// The constructors bound the rank: 0 and below fails NewPlayingCard,
	// 14 and above fails NewFaceCard.
	if rank >= 11 {
		c, err := card.NewFaceCard(head, rank)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	c, err := card.NewPlayingCard(head, rank)
	if err != nil {
		return nil, err
	}
	return c, nil
}
