package spirale

import (
	"errors"
	"fmt"
)

// Sentinel errors for package spirale.
var (
	ErrEmptyStream            = errors.New("spirale: symbol stream is empty")
	ErrPendingUnderflow       = errors.New("spirale: E symbol with no pending edge to resume from")
	ErrBoundaryRotationFailed = errors.New("spirale: S symbol found no boundary neighbor to reconnect to")
	ErrInvalidSymbol          = errors.New("spirale: invalid CLERS symbol")
)

func wrapf(method string, err error) error {
	return fmt.Errorf("spirale.%s: %w", method, err)
}
