package session

import (
	"github.com/golang-jwt/jwt/v4"

	"github.com/goodtodo/taskdeck/domain"
)

// decodeIdentity derives an Identity from the access token's payload
// segment without verifying the signature. Verification belongs to the
// server; the client only needs the claims to render pages. The tenant
// slug is never in the token, so it arrives separately.
func decodeIdentity(accessToken, tenantSlug string) (*domain.Identity, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return nil, domain.WrapError(domain.ErrCodeInvalid, "parse access token", err)
	}

	subject, err := requiredClaim(claims, "user_id")
	if err != nil {
		return nil, err
	}
	email, err := requiredClaim(claims, "email")
	if err != nil {
		return nil, err
	}
	role, err := requiredClaim(claims, "role")
	if err != nil {
		return nil, err
	}
	tenantID, err := requiredClaim(claims, "tenant_id")
	if err != nil {
		return nil, err
	}

	name, _ := claims["name"].(string)
	if name == "" {
		name = domain.FallbackName(email)
	}

	return &domain.Identity{
		SubjectID:   subject,
		Email:       email,
		DisplayName: name,
		Role:        role,
		TenantID:    tenantID,
		TenantSlug:  tenantSlug,
	}, nil
}

func requiredClaim(claims jwt.MapClaims, key string) (string, error) {
	value, ok := claims[key].(string)
	if !ok || value == "" {
		return "", domain.WrapError(domain.ErrCodeInvalid, "missing claim "+key, domain.ErrMalformedToken)
	}
	return value, nil
}
