package utils

import "regexp"

// customerCodePattern matches the canonical textual form of a UUID,
// case-insensitively. Customer codes are generated by the database as UUIDs
// and every path parameter must satisfy this pattern before it reaches the
// repository layer.
var customerCodePattern = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// ValidateCodePattern reports whether code is a syntactically valid customer
// code (UUID form, upper or lower case hex).
func ValidateCodePattern(code string) bool {
	return customerCodePattern.MatchString(code)
}
