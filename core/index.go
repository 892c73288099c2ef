package meshcore

// The codec threads six families of index through its pipeline. Each is a
// distinct nominal type over uint32 so that, for example, a CornerIdx can
// never be passed where a VertexIdx is expected without an explicit
// conversion — the Go compiler rejects the mix at the call site. Arithmetic
// (+, -, comparisons) is permitted within a kind because all six are plain
// unsigned integers underneath; only the type name changes.
//
// NoneIdx is usize::MAX in the original; Go's uint32 max plays the same
// role as a sentinel "absent" value for fields that are conceptually
// Option<Idx>.
type (
	// VertexIdx identifies a vertex of the connectivity/corner-table graph.
	VertexIdx uint32
	// CornerIdx identifies a (face, local-vertex) corner; three per face.
	CornerIdx uint32
	// FaceIdx identifies a triangular face.
	FaceIdx uint32
	// PointIdx identifies an entry of Mesh.Faces, i.e. a position in the
	// raw (pre-corner-table) index buffer the caller supplied.
	PointIdx uint32
	// EdgeIdx identifies an undirected edge of the connectivity graph.
	EdgeIdx uint32
	// AttributeValueIdx identifies a unique value stored in an Attribute's
	// buffer (after duplicate collapsing).
	AttributeValueIdx uint32
)

// noIndexValue is the sentinel "absent" value shared by every index kind
// (analogous to CornerIdx::from(usize::MAX) in the original). Each kind
// defines its own typed constant so call sites read naturally.
const noIndexValue = ^uint32(0)

const (
	// NoCorner marks the absence of an opposite/left-most/active corner.
	NoCorner CornerIdx = CornerIdx(noIndexValue)
	// NoVertex marks the absence of a vertex (e.g. an unset traversal slot).
	NoVertex VertexIdx = VertexIdx(noIndexValue)
	// NoFace marks the absence of a face (e.g. a boundary edge's far side).
	NoFace FaceIdx = FaceIdx(noIndexValue)
)

// Valid reports whether c is not the NoCorner sentinel.
func (c CornerIdx) Valid() bool { return c != NoCorner }

// Valid reports whether v is not the NoVertex sentinel.
func (v VertexIdx) Valid() bool { return v != NoVertex }

// Valid reports whether f is not the NoFace sentinel.
func (f FaceIdx) Valid() bool { return f != NoFace }

// FaceOf returns the face a corner belongs to: corner c belongs to face
// c/3, per spec.md §4.D's "num_corners = 3F; corner c belongs to face c/3".
func FaceOf(c CornerIdx) FaceIdx { return FaceIdx(c / 3) }

// LocalIndex returns c%3, the corner's position (0, 1 or 2) within its face.
func LocalIndex(c CornerIdx) uint32 { return uint32(c % 3) }

// FirstCorner returns the first of the three corners of face f.
func FirstCorner(f FaceIdx) CornerIdx { return CornerIdx(f) * 3 }
