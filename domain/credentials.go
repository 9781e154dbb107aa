package domain

// Credentials is the full persisted client state: two opaque tokens
// plus the tenant slug the user selected at login. The slug is never
// embedded in the tokens, so it travels alongside them. The three
// slots must be written and cleared as a unit to avoid a torn session.
type Credentials struct {
	AccessToken  string
	RefreshToken string
	TenantSlug   string
}

// Empty reports whether no session is stored. The access token is the
// deciding slot; the other two are meaningless without it.
func (c Credentials) Empty() bool {
	return c.AccessToken == ""
}

// TokenPair is the response of a successful login or registration.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type,omitempty"`
	ExpiresIn    int    `json:"expires_in,omitempty"`
}
