package wireformat

import (
	"github.com/dracogo/dracogo/attrbuf"
	meshcore "github.com/dracogo/dracogo/core"
	"github.com/dracogo/dracogo/iobit"
)

// AttributeHeader is the fixed-size-plus-parents prefix of an attribute
// section, per spec.md §6: id, type, domain, component kind, component
// count, value count, and parent dependency ids. The value payload that
// follows (prediction scheme, transform, quantization metadata and
// entropy-coded corrections) is assembled by the root draco package, which
// is the only caller with enough context (a corner table, a traversal
// order) to choose a prediction scheme per attribute.
type AttributeHeader struct {
	Id            meshcore.AttributeId
	Type          meshcore.AttributeType
	Domain        meshcore.Domain
	Kind          attrbuf.ComponentKind
	NumComponents int
	NumValues     int
	Parents       []meshcore.AttributeId
}

// WriteAttributeHeader appends h to w.
func WriteAttributeHeader(w *iobit.ByteWriter, h AttributeHeader) {
	w.WriteU16(uint16(h.Id))
	w.WriteU8(uint8(h.Type))
	w.WriteU8(uint8(h.Domain))
	w.WriteU8(uint8(h.Kind))
	w.WriteU8(uint8(h.NumComponents))
	w.WriteLEB128(uint64(h.NumValues))
	w.WriteU8(uint8(len(h.Parents)))
	for _, p := range h.Parents {
		w.WriteU16(uint16(p))
	}
}

// ReadAttributeHeader reads and validates an AttributeHeader from r.
func ReadAttributeHeader(r *iobit.ByteReader) (AttributeHeader, error) {
	id, err := r.ReadU16()
	if err != nil {
		return AttributeHeader{}, wrapf("ReadAttributeHeader", err)
	}
	attType, err := r.ReadU8()
	if err != nil {
		return AttributeHeader{}, wrapf("ReadAttributeHeader", err)
	}
	if !meshcore.AttributeType(attType).Valid() {
		return AttributeHeader{}, wrapf("ReadAttributeHeader", ErrInvalidAttributeType)
	}
	domain, err := r.ReadU8()
	if err != nil {
		return AttributeHeader{}, wrapf("ReadAttributeHeader", err)
	}
	if !meshcore.Domain(domain).Valid() {
		return AttributeHeader{}, wrapf("ReadAttributeHeader", ErrInvalidDomain)
	}
	kind, err := r.ReadU8()
	if err != nil {
		return AttributeHeader{}, wrapf("ReadAttributeHeader", err)
	}
	if !attrbuf.ComponentKind(kind).Valid() {
		return AttributeHeader{}, wrapf("ReadAttributeHeader", ErrInvalidComponentKind)
	}
	numComponents, err := r.ReadU8()
	if err != nil {
		return AttributeHeader{}, wrapf("ReadAttributeHeader", err)
	}
	numValues, err := r.ReadLEB128()
	if err != nil {
		return AttributeHeader{}, wrapf("ReadAttributeHeader", err)
	}
	numParents, err := r.ReadU8()
	if err != nil {
		return AttributeHeader{}, wrapf("ReadAttributeHeader", err)
	}
	parents := make([]meshcore.AttributeId, numParents)
	for i := range parents {
		p, err := r.ReadU16()
		if err != nil {
			return AttributeHeader{}, wrapf("ReadAttributeHeader", err)
		}
		parents[i] = meshcore.AttributeId(p)
	}
	return AttributeHeader{
		Id:            meshcore.AttributeId(id),
		Type:          meshcore.AttributeType(attType),
		Domain:        meshcore.Domain(domain),
		Kind:          attrbuf.ComponentKind(kind),
		NumComponents: int(numComponents),
		NumValues:     int(numValues),
		Parents:       parents,
	}, nil
}
