package meshbuilder

import (
	meshcore "github.com/dracogo/dracogo/core"
)

// Build normalizes mesh in place and returns it, applying spec.md §4.J's
// five steps in order: dependency validation, Position-first sorting,
// position-based vertex deduplication, degenerate-face removal, and
// unreferenced-vertex compaction.
func Build(mesh *meshcore.Mesh) (*meshcore.Mesh, error) {
	if mesh == nil {
		return nil, wrapf("Build", ErrNilMesh)
	}
	if err := checkDependencies(mesh); err != nil {
		return nil, err
	}
	if err := sortPositionFirst(mesh); err != nil {
		return nil, err
	}
	if err := dedupeByPosition(mesh); err != nil {
		return nil, err
	}
	dropDegenerateFaces(mesh)
	if err := compactUnreferencedPoints(mesh); err != nil {
		return nil, err
	}
	for _, a := range mesh.Attributes() {
		if err := a.CompactUnused(); err != nil {
			return nil, wrapf("Build", err)
		}
	}
	return mesh, nil
}

// checkDependencies mirrors meshcore.Mesh.Validate's dependency clause,
// applied before degenerate faces are dropped (Validate itself would
// reject those, which at this stage are still expected input).
func checkDependencies(mesh *meshcore.Mesh) error {
	hasPosition := false
	for _, a := range mesh.Attributes() {
		if a.Type() == meshcore.Position {
			hasPosition = true
		}
	}
	for _, a := range mesh.Attributes() {
		if a.Type() == meshcore.TextureCoordinate && !hasPosition {
			return wrapf("checkDependencies", ErrMinimumDependency)
		}
		for _, pid := range a.Parents() {
			if _, err := mesh.Attribute(pid); err != nil {
				return wrapf("checkDependencies", ErrMinimumDependency)
			}
		}
	}
	return nil
}

// sortPositionFirst moves the mesh's Position attribute (if any) to index
// 0, per draco-oxide's get_sorted_attributes. Ids and Parents are
// untouched; only the slice order changes.
func sortPositionFirst(mesh *meshcore.Mesh) error {
	attrs := append([]*meshcore.Attribute(nil), mesh.Attributes()...)
	for i, a := range attrs {
		if a.Type() == meshcore.Position {
			attrs[0], attrs[i] = attrs[i], attrs[0]
			break
		}
	}
	return mesh.ReorderAttributes(attrs)
}

func attributesInDomain(mesh *meshcore.Mesh, domain meshcore.Domain) []*meshcore.Attribute {
	var out []*meshcore.Attribute
	for _, a := range mesh.Attributes() {
		if a.Domain() == domain {
			out = append(out, a)
		}
	}
	return out
}

// vertexKey concatenates the raw bytes every position-domain attribute
// stores for point p, forming a byte-exact dedup key per spec.md §4.J
// ("hashing the concatenated Position-domain attribute bytes").
func vertexKey(posAttrs []*meshcore.Attribute, p int) (string, error) {
	var buf []byte
	for _, a := range posAttrs {
		if p >= a.NumMapped() {
			return "", wrapf("vertexKey", ErrPointOutOfRange)
		}
		buf = append(buf, a.RawUnique(a.UniqueValueIdx(p))...)
	}
	return string(buf), nil
}

// dedupeByPosition collapses points whose position-domain attribute bytes
// are byte-identical, remapping faces and every position-domain
// attribute's ValueMap to the deduplicated point space. A no-op if there
// are no position-domain attributes or no duplicates.
func dedupeByPosition(mesh *meshcore.Mesh) error {
	numPoints := mesh.NumPoints()
	if numPoints == 0 {
		return nil
	}
	posAttrs := attributesInDomain(mesh, meshcore.PositionDomain)
	if len(posAttrs) == 0 {
		return nil
	}

	mapping := make([]int, numPoints)
	seen := make(map[string]int, numPoints)
	unique := 0
	for p := 0; p < numPoints; p++ {
		key, err := vertexKey(posAttrs, p)
		if err != nil {
			return err
		}
		if existing, ok := seen[key]; ok {
			mapping[p] = existing
		} else {
			seen[key] = unique
			mapping[p] = unique
			unique++
		}
	}
	if unique == numPoints {
		return nil
	}

	for i, f := range mesh.Faces {
		mesh.Faces[i] = meshcore.Face{
			meshcore.PointIdx(mapping[int(f[0])]),
			meshcore.PointIdx(mapping[int(f[1])]),
			meshcore.PointIdx(mapping[int(f[2])]),
		}
	}
	for _, a := range posAttrs {
		newMap := make([]meshcore.AttributeValueIdx, unique)
		filled := make([]bool, unique)
		for p := 0; p < numPoints; p++ {
			np := mapping[p]
			if filled[np] {
				continue
			}
			newMap[np] = a.UniqueValueIdx(p)
			filled[np] = true
		}
		a.SetValueMap(newMap)
	}
	return nil
}

// dropDegenerateFaces removes any face with a repeated vertex, truncating
// every corner-domain attribute's ValueMap in lockstep so it keeps tracking
// 3*len(Faces) entries in face order.
func dropDegenerateFaces(mesh *meshcore.Mesh) {
	cornerAttrs := attributesInDomain(mesh, meshcore.CornerDomain)
	newVals := make([][]meshcore.AttributeValueIdx, len(cornerAttrs))

	newFaces := make([]meshcore.Face, 0, len(mesh.Faces))
	for fi, f := range mesh.Faces {
		if f[0] == f[1] || f[1] == f[2] || f[0] == f[2] {
			continue
		}
		newFaces = append(newFaces, f)
		for ai, a := range cornerAttrs {
			for local := 0; local < 3; local++ {
				oldCorner := fi*3 + local
				newVals[ai] = append(newVals[ai], a.UniqueValueIdx(oldCorner))
			}
		}
	}
	mesh.Faces = newFaces
	for ai, a := range cornerAttrs {
		a.SetValueMap(newVals[ai])
	}
}

// compactUnreferencedPoints drops every point no surviving face
// references, remapping faces and every position-domain attribute's
// ValueMap to the compacted, contiguous point space.
func compactUnreferencedPoints(mesh *meshcore.Mesh) error {
	posAttrs := attributesInDomain(mesh, meshcore.PositionDomain)
	if len(posAttrs) == 0 {
		return nil
	}
	total := posAttrs[0].NumMapped()

	used := make([]bool, total)
	for _, f := range mesh.Faces {
		for _, p := range f {
			if int(p) < total {
				used[int(p)] = true
			}
		}
	}

	mapping := make([]int, total)
	next := 0
	for p := 0; p < total; p++ {
		if used[p] {
			mapping[p] = next
			next++
		} else {
			mapping[p] = -1
		}
	}
	if next == total {
		return nil
	}

	for i, f := range mesh.Faces {
		mesh.Faces[i] = meshcore.Face{
			meshcore.PointIdx(mapping[int(f[0])]),
			meshcore.PointIdx(mapping[int(f[1])]),
			meshcore.PointIdx(mapping[int(f[2])]),
		}
	}
	for _, a := range posAttrs {
		newMap := make([]meshcore.AttributeValueIdx, next)
		for p := 0; p < total; p++ {
			if mapping[p] >= 0 {
				newMap[mapping[p]] = a.UniqueValueIdx(p)
			}
		}
		a.SetValueMap(newMap)
	}
	return nil
}
