package edgebreaker

import (
	"errors"
	"fmt"
)

// Sentinel errors for package edgebreaker.
var (
	// ErrEmptyTable indicates Encode was called on a corner table with no
	// faces; there is nothing to traverse.
	ErrEmptyTable = errors.New("edgebreaker: corner table has no faces")

	// ErrInvalidSymbol indicates a CLERS symbol decoded from the bitstream
	// falls outside {C,L,R,S,E}, per spec.md §7.
	ErrInvalidSymbol = errors.New("edgebreaker: invalid CLERS symbol")
)

func wrapf(method string, err error) error {
	return fmt.Errorf("edgebreaker.%s: %w", method, err)
}
