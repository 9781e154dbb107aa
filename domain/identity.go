package domain

import "strings"

// Identity is the locally derived representation of the authenticated
// user for the current session. The authoritative copy lives server
// side; this one exists so pages can render without a decoding round
// trip per request.
type Identity struct {
	SubjectID   string
	Email       string
	DisplayName string
	Role        string
	TenantID    string
	TenantSlug  string
}

// FallbackName returns the local part of an email address, used as the
// display name when the token carries no name claim.
func FallbackName(email string) string {
	if at := strings.IndexByte(email, '@'); at > 0 {
		return email[:at]
	}
	return email
}
