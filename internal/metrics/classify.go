package metrics

import "strings"

// variantMarker tags enhanced protocol builds, e.g. "EBR-EMRT".
const variantMarker = "emrt"

// IsVariant reports whether the protocol name carries the enhancement
// marker. Matching is case-insensitive.
func IsVariant(protocol string) bool {
	return strings.Contains(strings.ToLower(protocol), variantMarker)
}

// Split partitions the catalog's protocol names into base and variant
// lists, each sorted lexicographically for deterministic draw order.
func (c Catalog) Split() (bases, variants []string) {
	for _, name := range c.Protocols() {
		if IsVariant(name) {
			variants = append(variants, name)
		} else {
			bases = append(bases, name)
		}
	}
	return bases, variants
}

// MatchBase pairs a variant with its base protocol: the variant name with
// the marker stripped must contain the base name (both lowercased). The
// first match in the given order wins, so callers pass bases sorted. ok is
// false when no base matches.
func MatchBase(variant string, bases []string) (base string, ok bool) {
	stripped := strings.ReplaceAll(strings.ToLower(variant), variantMarker, "")
	for _, b := range bases {
		if strings.Contains(stripped, strings.ToLower(b)) {
			return b, true
		}
	}
	return "", false
}
