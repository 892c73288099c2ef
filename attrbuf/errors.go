package attrbuf

import "errors"

// Sentinel errors for package attrbuf. See doc.go for the full taxonomy.
var (
	ErrIndexOutOfRange      = errors.New("attrbuf: index out of range")
	ErrComponentCountMismatch = errors.New("attrbuf: component count mismatch")
	ErrIncomplete           = errors.New("attrbuf: MaybeInit buffer not fully initialised")
	ErrInvalidComponentKind = errors.New("attrbuf: invalid component kind")
)
