package texapply

import "strings"

// materialPrefixes are common engine naming prefixes stripped during name
// normalization, checked in this order.
var materialPrefixes = []string{"MI_", "M_", "MAT_", "MATERIAL_"}

// NormalizeMaterialName strips at most one known prefix from a material
// display name. The prefix check is case-insensitive, so "mi_wall" and
// "MI_Wall" both normalize to the same suffix.
func NormalizeMaterialName(name string) string {
	for _, p := range materialPrefixes {
		if len(name) >= len(p) && strings.EqualFold(name[:len(p)], p) {
			return name[len(p):]
		}
	}

	return name
}

// MatchMaterial returns the descriptor entry best matching a material display
// name, together with the table key it matched under. Stages are tried in
// strict order, first hit wins: exact match, case-insensitive match, exact
// match of the normalized name, case-insensitive match of the normalized
// name. No match at any stage reports ok == false.
func (idx *Index) MatchMaterial(name string) (DescriptorRef, string, bool) {
	if ref, ok := idx.Descriptors[name]; ok {
		return ref, name, true
	}
	if key, ok := idx.fold[strings.ToLower(name)]; ok {
		return idx.Descriptors[key], key, true
	}

	norm := NormalizeMaterialName(name)
	if norm == name {
		return DescriptorRef{}, "", false
	}

	if ref, ok := idx.Descriptors[norm]; ok {
		return ref, norm, true
	}
	if key, ok := idx.fold[strings.ToLower(norm)]; ok {
		return idx.Descriptors[key], key, true
	}

	return DescriptorRef{}, "", false
}
