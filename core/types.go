package meshcore

// AttributeId identifies an Attribute within a Mesh. Ids are assigned
// monotonically increasing by Mesh.AddAttribute, starting at 0 — resolving
// the open question in spec.md §9 ("the AttributeId generator... always
// assigns 0 to new attributes in one code path; an implementation must
// assign monotonically increasing ids").
type AttributeId uint16

// AttributeType classifies the semantic role of an attribute. Ids are
// bit-exact with spec.md §6 and must never be renumbered.
type AttributeType uint8

const (
	Position          AttributeType = 0
	Normal            AttributeType = 1
	Color             AttributeType = 2
	TextureCoordinate AttributeType = 3
	Custom            AttributeType = 4
	Tangent           AttributeType = 5
	Material          AttributeType = 6
	Joint             AttributeType = 7
	Weight            AttributeType = 8
	InvalidAttributeType AttributeType = 0xFF
)

// Valid reports whether t is one of the nine recognised attribute types.
func (t AttributeType) Valid() bool { return t <= Weight }

func (t AttributeType) String() string {
	switch t {
	case Position:
		return "Position"
	case Normal:
		return "Normal"
	case Color:
		return "Color"
	case TextureCoordinate:
		return "TextureCoordinate"
	case Custom:
		return "Custom"
	case Tangent:
		return "Tangent"
	case Material:
		return "Material"
	case Joint:
		return "Joint"
	case Weight:
		return "Weight"
	default:
		return "Invalid"
	}
}

// Domain distinguishes whether an attribute is indexed per vertex (shared
// across every corner touching that vertex) or per corner (allowed to
// differ on each of a vertex's incident corners, e.g. a UV seam).
type Domain uint8

const (
	PositionDomain Domain = 0
	CornerDomain   Domain = 1
)

// Valid reports whether d is PositionDomain or CornerDomain.
func (d Domain) Valid() bool { return d == PositionDomain || d == CornerDomain }

func (d Domain) String() string {
	switch d {
	case PositionDomain:
		return "Position"
	case CornerDomain:
		return "Corner"
	default:
		return "Invalid"
	}
}
