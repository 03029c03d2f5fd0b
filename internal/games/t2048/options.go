package t2048

import "fmt"

// Game IDs registered with the registry.
const (
	IDOriginal = "2048"
	IDDiagonal = "2048_diagonal"
)

// GameID returns the registry ID for a variant.
func GameID(v Variant) string {
	if v == VariantDiagonal {
		return IDDiagonal
	}
	return IDOriginal
}

// BoardKey returns the score-history key for a variant and grid size,
// e.g. "2048-4x4" or "2048_diagonal-5x5".
func BoardKey(v Variant, size int) string {
	return fmt.Sprintf("%s-%dx%d", GameID(v), size, size)
}

// BoardKeys lists every board key offered by the menus.
func BoardKeys() []string {
	keys := make([]string, 0, len(Variants)*len(SupportedSizes))
	for _, v := range Variants {
		for _, size := range SupportedSizes {
			keys = append(keys, BoardKey(v, size))
		}
	}
	return keys
}

// BoardTitle returns a display title for a board key, or the key itself
// if it is not one of BoardKeys.
func BoardTitle(key string) string {
	for _, v := range Variants {
		for _, size := range SupportedSizes {
			if BoardKey(v, size) == key {
				return fmt.Sprintf("%s %dx%d", v.Label(), size, size)
			}
		}
	}
	return key
}
