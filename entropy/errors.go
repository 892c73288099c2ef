package entropy

import "errors"

// Sentinel errors for package entropy.
var (
	ErrInvalidSymbolIndex = errors.New("entropy: invalid symbol index")
	ErrInvalidFreqCount   = errors.New("entropy: invalid frequency count")
	ErrStateTooLarge      = errors.New("entropy: rans state too large at flush")
)
