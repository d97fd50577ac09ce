package ippo

import (
	"fmt"
	"strconv"
	"strings"
)

// GenerateIppoID generates an IPPO ID from the current max number.
// The format is IPPO-XXX where XXX is a zero-padded 3-digit number.
func GenerateIppoID(currentMax int) string {
	return fmt.Sprintf("IPPO-%03d", currentMax+1)
}

// ParseIppoNumber extracts the numeric portion from an IPPO ID.
// Returns -1 if the ID format is invalid.
func ParseIppoNumber(id string) int {
	var num int
	_, err := fmt.Sscanf(id, "IPPO-%d", &num)
	if err != nil || num < 0 {
		return -1
	}
	return num
}

// NormalizeIppoID accepts a full ID in any case or a bare number ("7")
// and returns the canonical IPPO-XXX form.
func NormalizeIppoID(s string) (string, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return fmt.Sprintf("IPPO-%03d", n), nil
	}
	if n := ParseIppoNumber(s); n > 0 {
		return fmt.Sprintf("IPPO-%03d", n), nil
	}
	return "", fmt.Errorf("invalid IPPO ID %q (want IPPO-001 or 1)", s)
}
