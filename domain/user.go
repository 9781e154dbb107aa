package domain

// User is the profile shape returned by GET /users/me. It enriches a
// token-derived identity but never replaces the tenant slug, which
// only the login act knows.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	TenantID string `json:"tenant_id"`
}
