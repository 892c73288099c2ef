// Package wireformat implements the on-wire frame of spec.md §6: a 13-byte
// header, a connectivity section carrying an Edgebreaker CLERS stream (or,
// per SPEC_FULL.md's supplemented Sequential fallback, a plain triangle
// list), and one section per mesh attribute.
//
// wireformat only handles byte framing for the header and connectivity
// sections, plus the fixed AttributeHeader prefix of an attribute section.
// The attribute value payload itself (prediction scheme dispatch, the
// prediction transform, quantization and entropy coding) is assembled by
// the root package draco, since choosing and driving a prediction scheme
// needs a corner table and traversal order this package does not have.
//
// Grounded on spec.md §6 directly (the frame is specified exactly); the
// byte-layout helper idiom (one Write*/Read* pair per section, erroring via
// sentinel values rather than panicking) follows iobit and every other
// package in this module.
//
// Errors:
//
//	ErrBadMagic - the 5-byte magic did not read "DRACO".
//	ErrUnsupportedVersion - the header's version field is not one this
//	  package understands.
//	ErrInvalidConnMethod - the connectivity-method byte is outside
//	  {Edgebreaker, Sequential}.
//	ErrInvalidAttributeType - an attribute-section type id is outside
//	  spec.md §6's fixed table.
//	ErrInvalidComponentKind - an attribute-section component-type id is
//	  outside spec.md §6's fixed table.
//	ErrInvalidDomain - an attribute-section domain id is neither Position
//	  nor Corner.
package wireformat
