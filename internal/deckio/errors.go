package deckio

import "errors"

// Every failure in this package wraps one of these sentinels, so callers
// branch with errors.Is and never need to inspect message text.
var (
	// ErrSourceUnavailable means the deck file could not be opened or read.
	ErrSourceUnavailable = errors.New("deck source unavailable")

	// ErrMalformedInput means a line violated the deck grammar. The whole
	// parse fails; no partial deck is returned.
	ErrMalformedInput = errors.New("malformed deck input")

	// ErrEmptyDeck means the source parsed cleanly but held no cards.
	ErrEmptyDeck = errors.New("deck source contains no cards")

	// ErrSinkUnavailable means the report file could not be created.
	ErrSinkUnavailable = errors.New("report sink unavailable")
)
