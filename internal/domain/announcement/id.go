package announcement

import (
	"fmt"
	"strconv"
)

// Identifiers are store-assigned and serialized as opaque strings at the API
// boundary.

// FormatID renders a store identifier in its boundary form.
func FormatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// ParseID parses a boundary identifier back into its store form.
func ParseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid announcement identifier %q", s)
	}
	if id == 0 {
		return 0, fmt.Errorf("announcement identifier cannot be zero")
	}
	return uint(id), nil
}
