package meshcore

import (
	"github.com/dracogo/dracogo/attrbuf"
)

// Attribute is a dynamically-typed, deduplicated array of per-vertex or
// per-corner values, per spec.md §3. The unique-value storage lives in an
// attrbuf.Buffer; ValueMap, when non-nil, maps each referencing index
// (point or corner, depending on Domain) to the unique-value slot it
// shares with every other reference to the same value. A nil ValueMap
// means the identity mapping: referencing index i reads unique value i.
type Attribute struct {
	id       AttributeId
	attType  AttributeType
	domain   Domain
	parents  []AttributeId
	buffer   *attrbuf.Buffer
	valueMap []AttributeValueIdx // nil => identity
}

// NewAttribute returns an empty attribute of the given kind, ready for
// Push. Use NewAttributeDeduped to build one from a raw, possibly
// duplicate-laden value list in one step.
func NewAttribute(id AttributeId, attType AttributeType, domain Domain, kind attrbuf.ComponentKind, numComponents int, parents []AttributeId) *Attribute {
	return &Attribute{
		id:      id,
		attType: attType,
		domain:  domain,
		parents: append([]AttributeId(nil), parents...),
		buffer:  attrbuf.New(kind, numComponents),
	}
}

// NewAttributeDeduped builds an Attribute from rawValues (one value per
// referencing index, in order), collapsing byte-identical values into a
// single unique-value slot and recording the collapse in ValueMap — the
// "duplicates are collapsed via vertex_to_att_val_map at construction
// time" invariant of spec.md §3.
func NewAttributeDeduped(id AttributeId, attType AttributeType, domain Domain, kind attrbuf.ComponentKind, numComponents int, rawValues [][]float64, parents []AttributeId) (*Attribute, error) {
	buf := attrbuf.New(kind, numComponents)
	seen := make(map[string]int, len(rawValues))
	valMap := make([]AttributeValueIdx, len(rawValues))
	identity := true
	for i, v := range rawValues {
		idx, err := buf.Push(v)
		if err != nil {
			return nil, wrapf("NewAttributeDeduped", err)
		}
		key := string(buf.RawValue(idx))
		if existing, ok := seen[key]; ok {
			_ = buf.Remove(idx) // rollback: this value already has a slot
			valMap[i] = AttributeValueIdx(existing)
			identity = false
		} else {
			seen[key] = idx
			valMap[i] = AttributeValueIdx(idx)
			if idx != i {
				identity = false
			}
		}
	}
	a := &Attribute{
		id:      id,
		attType: attType,
		domain:  domain,
		parents: append([]AttributeId(nil), parents...),
		buffer:  buf,
	}
	if !identity {
		a.valueMap = valMap
	}
	return a, nil
}

// Id returns the attribute's id.
func (a *Attribute) Id() AttributeId { return a.id }

// Type returns the attribute's semantic type.
func (a *Attribute) Type() AttributeType { return a.attType }

// Domain returns whether the attribute indexes by vertex or by corner.
func (a *Attribute) Domain() Domain { return a.domain }

// Parents returns the ids of attributes this one depends on.
func (a *Attribute) Parents() []AttributeId { return a.parents }

// Kind returns the component kind of the underlying storage.
func (a *Attribute) Kind() attrbuf.ComponentKind { return a.buffer.Kind() }

// NumComponents returns the number of components per value.
func (a *Attribute) NumComponents() int { return a.buffer.NumComponents() }

// NumUniqueValues returns the number of distinct stored values.
func (a *Attribute) NumUniqueValues() int { return a.buffer.Len() }

// NumMapped returns the number of referencing indices: len(ValueMap) if
// present, else NumUniqueValues() (identity mapping).
func (a *Attribute) NumMapped() int {
	if a.valueMap != nil {
		return len(a.valueMap)
	}
	return a.buffer.Len()
}

// HasValueMap reports whether a non-identity vertex/corner-to-value map is
// present.
func (a *Attribute) HasValueMap() bool { return a.valueMap != nil }

// UniqueValueIdx resolves a referencing index (point or corner, per
// Domain) to the unique-value slot it reads.
func (a *Attribute) UniqueValueIdx(ref int) AttributeValueIdx {
	if a.valueMap != nil {
		return a.valueMap[ref]
	}
	return AttributeValueIdx(ref)
}

// GetByRef reads the value referenced by index ref (a point or corner
// index, per Domain), resolving the value map if present.
func (a *Attribute) GetByRef(ref int) []float64 {
	return a.buffer.Get(int(a.UniqueValueIdx(ref)))
}

// GetUnique reads unique-value slot idx directly, bypassing the value map.
func (a *Attribute) GetUnique(idx AttributeValueIdx) []float64 {
	return a.buffer.Get(int(idx))
}

// RawUnique returns the raw on-wire bytes of unique-value slot idx, for
// byte-canonical comparisons (dedup hashing).
func (a *Attribute) RawUnique(idx AttributeValueIdx) []byte {
	return a.buffer.RawValue(int(idx))
}

// PushUnique appends a new unique value and returns its slot index. It does
// not deduplicate; callers that need deduplication should go through
// NewAttributeDeduped or manage their own seen-set.
func (a *Attribute) PushUnique(vals []float64) (AttributeValueIdx, error) {
	idx, err := a.buffer.Push(vals)
	return AttributeValueIdx(idx), err
}

// SetValueMap installs an explicit referencing-index-to-unique-value map.
// Passing nil restores the identity mapping.
func (a *Attribute) SetValueMap(m []AttributeValueIdx) { a.valueMap = m }

// ValueMap returns the current mapping, or nil under the identity mapping.
func (a *Attribute) ValueMap() []AttributeValueIdx { return a.valueMap }

// Buffer exposes the underlying unique-value storage, for packages (mesh
// builder, entropy/prediction) that need direct typed access.
func (a *Attribute) Buffer() *attrbuf.Buffer { return a.buffer }

// CompactUnused drops every unique-value slot that no referencing index
// points to and rewrites ValueMap accordingly, realizing the open question
// in spec.md §9 ("remove_unique_val... compacting the mapping after
// unique-value removal are left to the implementer"): this implementation
// performs the compaction in one O(n) pass rather than leaving it
// unimplemented.
func (a *Attribute) CompactUnused() error {
	n := a.buffer.Len()
	referenced := make([]bool, n)
	if a.valueMap != nil {
		for _, idx := range a.valueMap {
			referenced[int(idx)] = true
		}
	} else {
		for i := range referenced {
			referenced[i] = true
		}
	}
	translate := make([]int, n)
	write := 0
	for read := 0; read < n; read++ {
		if !referenced[read] {
			continue
		}
		translate[read] = write
		if write != read {
			if err := a.buffer.Set(write, a.buffer.Get(read)); err != nil {
				return wrapf("CompactUnused", err)
			}
		}
		write++
	}
	for i := n - 1; i >= write; i-- {
		if err := a.buffer.Remove(i); err != nil {
			return wrapf("CompactUnused", err)
		}
	}
	if a.valueMap != nil {
		for i, idx := range a.valueMap {
			a.valueMap[i] = AttributeValueIdx(translate[int(idx)])
		}
	}
	return nil
}

// Permute reorders unique-value storage so that old slot i moves to
// perm[i], and rewrites ValueMap (or synthesizes one, if previously
// identity and perm is not itself the identity) to keep every reference
// pointing at the same logical value. Used by the Edgebreaker encoder to
// relabel attribute values into traversal order.
func (a *Attribute) Permute(perm []int) error {
	if err := a.buffer.Permute(perm); err != nil {
		return wrapf("Attribute.Permute", err)
	}
	if a.valueMap != nil {
		for i, old := range a.valueMap {
			a.valueMap[i] = AttributeValueIdx(perm[int(old)])
		}
		return nil
	}
	// Identity mapping: after permuting storage, reference i must now read
	// perm[i], so the map is no longer the identity unless perm is.
	isIdentity := true
	for i, p := range perm {
		if i != p {
			isIdentity = false
			break
		}
	}
	if isIdentity {
		return nil
	}
	m := make([]AttributeValueIdx, len(perm))
	for i, p := range perm {
		m[i] = AttributeValueIdx(p)
	}
	a.valueMap = m
	return nil
}
