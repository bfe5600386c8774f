package domain

import "strings"

// NormalizeHumanName trims leading/trailing whitespace and collapses internal
// whitespace runs. Used for user and driver name normalization.
func NormalizeHumanName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizePlate upper-cases and trims a license plate so uniqueness checks are
// case-insensitive.
func NormalizePlate(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
