package deckio

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/arcanaland/wargame/internal/deck"
)

var reportHeader = []string{"Round", "PlayerA_Count", "PlayerB_Count", "PlayerA_Cards", "PlayerB_Cards"}

// RoundWriter appends one CSV record per completed round to a report file.
// The header row is written once when the writer is opened. Deck contents
// contain commas, so csv quotes those fields in the output.
type RoundWriter struct {
	f *os.File
	w *csv.Writer
}

// NewRoundWriter creates (or truncates) the report at path and writes the
// header. Failure to open or write fails with ErrSinkUnavailable.
func NewRoundWriter(path string) (*RoundWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSinkUnavailable, err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(reportHeader); err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %v", ErrSinkUnavailable, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %v", ErrSinkUnavailable, err)
	}
	return &RoundWriter{f: f, w: w}, nil
}

// WriteRound appends one record: round number, both deck sizes at the time
// of the call, then both decks' full contents in draw order.
func (rw *RoundWriter) WriteRound(round int, a, b *deck.Deck) error {
	record := []string{
		strconv.Itoa(round),
		strconv.Itoa(a.Size()),
		strconv.Itoa(b.Size()),
		a.String(),
		b.String(),
	}
	if err := rw.w.Write(record); err != nil {
		return fmt.Errorf("writing round %d: %v", round, err)
	}
	rw.w.Flush()
	if err := rw.w.Error(); err != nil {
		return fmt.Errorf("writing round %d: %v", round, err)
	}
	return nil
}

// Close flushes any buffered records and releases the file handle.
func (rw *RoundWriter) Close() error {
	rw.w.Flush()
	werr := rw.w.Error()
	cerr := rw.f.Close()
	if werr != nil {
		return werr
	}
	return cerr
}
