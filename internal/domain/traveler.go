package domain

import "strings"

// TravelerName is a traveler's full name, "<first> <last>".
// Two travelers with the same composed name are indistinguishable.
type TravelerName string

// FullName composes a traveler name from its parts. ok is false when either part is empty.
// Whitespace-only parts are accepted and kept verbatim.
func FullName(firstname, lastname string) (name TravelerName, ok bool) {
	if firstname == "" || lastname == "" {
		return "", false
	}
	return TravelerName(firstname + " " + lastname), true
}

// IsVIP reports whether a full name, compared case-insensitively, contains both 'j' and 's'.
func IsVIP(fullName string) bool {
	lower := strings.ToLower(fullName)
	return strings.Contains(lower, "j") && strings.Contains(lower, "s")
}

// VIP is IsVIP for a composed traveler name.
func (n TravelerName) VIP() bool { return IsVIP(string(n)) }

func (n TravelerName) String() string { return string(n) }
