// Package meshcore defines the central data model shared by every stage of
// the codec: the nominal index types that keep vertex/corner/face/point
// arithmetic from being mixed up, the dynamically-typed Attribute value
// store, and the Mesh container that ties faces and attributes together.
//
// Design is deliberately close to lvlath/core's Graph/Vertex/Edge split:
// one small, well-documented struct per concept, sentinel errors for every
// validation failure, and plain constructors (NewMesh, NewAttributeDeduped)
// with no optional construction parameters. Nothing in this package performs
// I/O; it is pure data plus the invariants spec.md §3 requires of it.
//
// Errors:
//
//	ErrInvalidDataTypeId      - component type id outside the fixed table.
//	ErrInvalidAttributeTypeId - attribute type id outside the fixed table.
//	ErrInvalidDomainId        - domain id outside {Position, Corner}.
//	ErrMinimumDependency      - a TextureCoordinate attribute with no Position parent.
//	ErrAttributeSize          - a value array whose length disagrees with its stride.
//	ErrPositionAndConnectivityNotCompatible - face indices outside the Position
//	  attribute's value range.
package meshcore
