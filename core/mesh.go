package meshcore

// Face is a triangular face expressed as three PointIdx into the Mesh's
// raw (pre-corner-table) index space — spec.md §3's `faces: [PointIdx;3][]`.
type Face [3]PointIdx

// Mesh is the in-memory representation the codec's external collaborators
// (glTF/OBJ/STL readers, scene-graph writers) produce and consume, per
// spec.md §1. The codec core never interprets Metadata or SceneExtras; it
// only threads them through encode/decode unchanged, grounded on
// lvlath.Vertex.Metadata's identical "opaque, shared on shallow clones"
// contract and on draco-oxide's core/scene passthrough (see SPEC_FULL.md).
type Mesh struct {
	Faces      []Face
	attributes []*Attribute
	nextID     AttributeId

	// Metadata carries arbitrary caller-supplied key/value data (material
	// ids, scene-graph references, animation/skin bindings) through the
	// codec untouched.
	Metadata map[string]any

	// SceneExtras is an opaque byte blob (e.g. a serialized glTF "extras"
	// payload) carried through the codec untouched.
	SceneExtras []byte
}

// NewMesh returns an empty Mesh ready for AddAttribute calls; faces are
// set by assigning Faces directly.
func NewMesh() *Mesh {
	return &Mesh{Metadata: make(map[string]any)}
}

// AddAttribute appends attr to the mesh, assigning it the next
// monotonically increasing AttributeId (spec.md §9's open question:
// ids are never reused or reset to 0 after the first assignment).
func (m *Mesh) AddAttribute(attr *Attribute) AttributeId {
	id := m.nextID
	attr.id = id
	m.nextID++
	m.attributes = append(m.attributes, attr)
	return id
}

// Attributes returns every attribute on the mesh, in insertion order.
func (m *Mesh) Attributes() []*Attribute { return m.attributes }

// ReorderAttributes replaces the mesh's attribute order with order, which
// must be a permutation of the mesh's current attributes (same set, same
// ids, same length) — used by meshbuilder to move the Position attribute
// to the front without disturbing ids or Parents references, per
// draco-oxide's MeshBuilder::get_sorted_attributes.
func (m *Mesh) ReorderAttributes(order []*Attribute) error {
	if len(order) != len(m.attributes) {
		return wrapf("Mesh.ReorderAttributes", ErrAttributeNotFound)
	}
	seen := make(map[AttributeId]bool, len(order))
	for _, a := range order {
		if _, err := m.Attribute(a.id); err != nil {
			return wrapf("Mesh.ReorderAttributes", ErrAttributeNotFound)
		}
		seen[a.id] = true
	}
	if len(seen) != len(m.attributes) {
		return wrapf("Mesh.ReorderAttributes", ErrAttributeNotFound)
	}
	m.attributes = order
	return nil
}

// Attribute returns the attribute with the given id, or
// ErrAttributeNotFound.
func (m *Mesh) Attribute(id AttributeId) (*Attribute, error) {
	for _, a := range m.attributes {
		if a.id == id {
			return a, nil
		}
	}
	return nil, wrapf("Mesh.Attribute", ErrAttributeNotFound)
}

// AttributesOfType returns every attribute with the given AttributeType,
// in insertion order (there may be more than one, e.g. multiple UV sets).
func (m *Mesh) AttributesOfType(t AttributeType) []*Attribute {
	var out []*Attribute
	for _, a := range m.attributes {
		if a.attType == t {
			out = append(out, a)
		}
	}
	return out
}

// PositionAttribute returns the mesh's first Position attribute, or
// ErrAttributeNotFound if none is present.
func (m *Mesh) PositionAttribute() (*Attribute, error) {
	for _, a := range m.attributes {
		if a.attType == Position {
			return a, nil
		}
	}
	return nil, wrapf("Mesh.PositionAttribute", ErrAttributeNotFound)
}

// NumFaces returns the number of faces.
func (m *Mesh) NumFaces() int { return len(m.Faces) }

// NumPoints returns one past the highest PointIdx referenced by any face,
// i.e. the size of the raw index space faces are drawn from.
func (m *Mesh) NumPoints() int {
	max := -1
	for _, f := range m.Faces {
		for _, p := range f {
			if int(p) > max {
				max = int(p)
			}
		}
	}
	return max + 1
}

// Validate performs the structural self-check spec.md §1/§9 and
// SPEC_FULL.md's "Supplemented features" section add: every attribute
// dependency is satisfied, every face is non-degenerate, and every face
// index is within the Position attribute's value range. Grounded on the
// original's eval.rs post-decode sanity pass, run by Decode after
// reconstruction.
func (m *Mesh) Validate() error {
	hasPosition := false
	for _, a := range m.attributes {
		if a.attType == Position {
			hasPosition = true
		}
	}
	for _, a := range m.attributes {
		if a.attType == TextureCoordinate && !hasPosition {
			return wrapf("Mesh.Validate", ErrMinimumDependency)
		}
		for _, p := range a.parents {
			if _, err := m.Attribute(p); err != nil {
				return wrapf("Mesh.Validate", ErrMinimumDependency)
			}
		}
	}
	pos, err := m.PositionAttribute()
	if err != nil {
		// A mesh with no Position attribute at all is permitted (e.g. a
		// connectivity-only fixture in tests); only validate bounds when
		// one is present.
		pos = nil
	}
	for _, f := range m.Faces {
		if f[0] == f[1] || f[1] == f[2] || f[0] == f[2] {
			return wrapf("Mesh.Validate", ErrDegenerateFace)
		}
		if pos != nil {
			for _, p := range f {
				if int(p) >= pos.NumMapped() {
					return wrapf("Mesh.Validate", ErrPositionAndConnectivityNotCompatible)
				}
			}
		}
	}
	return nil
}
