package wireformat

import (
	"errors"
	"fmt"
)

// Sentinel errors for package wireformat.
var (
	// ErrBadMagic indicates the header's leading 5 bytes were not "DRACO".
	ErrBadMagic = errors.New("wireformat: bad magic")

	// ErrUnsupportedVersion indicates the header declares a version this
	// reader does not understand.
	ErrUnsupportedVersion = errors.New("wireformat: unsupported version")

	// ErrInvalidConnMethod indicates the connectivity-method byte is
	// outside the fixed {Edgebreaker, Sequential} table.
	ErrInvalidConnMethod = errors.New("wireformat: invalid connectivity method")

	// ErrInvalidAttributeType indicates an attribute-section type id falls
	// outside spec.md §6's fixed Position..Weight table.
	ErrInvalidAttributeType = errors.New("wireformat: invalid attribute type id")

	// ErrInvalidComponentKind indicates an attribute-section component-type
	// id falls outside spec.md §6's fixed U8..F64 table.
	ErrInvalidComponentKind = errors.New("wireformat: invalid component kind id")

	// ErrInvalidDomain indicates an attribute-section domain id is neither
	// Position (0) nor Corner (1).
	ErrInvalidDomain = errors.New("wireformat: invalid domain id")
)

func wrapf(method string, err error) error {
	return fmt.Errorf("wireformat.%s: %w", method, err)
}
