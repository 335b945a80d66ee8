package session

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// TokenPayload is the duck-typed identity block inside the bearer token.
// Only id is guaranteed; the name fields may arrive in camelCase or
// snake_case, and any of them may be missing.
type TokenPayload struct {
	ID        int64
	Email     string
	FirstName string
	LastName  string
	Username  string
}

var tokenParser = jwt.NewParser()

// DecodePayload decodes the claims segment of a bearer token without
// verifying the signature. The client only consumes the token; the
// backend is the one that validates it.
func DecodePayload(token string) (*TokenPayload, error) {
	claims := jwt.MapClaims{}
	if _, _, err := tokenParser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("decode token payload: %w", err)
	}
	return payloadFromClaims(claims), nil
}

// payloadFromClaims collapses the camelCase/snake_case field variants.
// Pure so the defaulting rules are testable without a real token.
func payloadFromClaims(claims map[string]any) *TokenPayload {
	return &TokenPayload{
		ID:        asInt64(claims["id"]),
		Email:     asString(claims["email"]),
		FirstName: firstNonEmpty(asString(claims["firstName"]), asString(claims["first_name"])),
		LastName:  firstNonEmpty(asString(claims["lastName"]), asString(claims["last_name"])),
		Username:  asString(claims["username"]),
	}
}

// Session converts the payload into a session identity, applying the
// startup defaults for missing fields.
func (p *TokenPayload) Session() *Session {
	firstName := p.FirstName
	if firstName == "" {
		firstName = defaultFirstName
	}
	username := p.Username
	if username == "" {
		username = p.Email
	}
	return &Session{
		ID:        p.ID,
		Email:     p.Email,
		FirstName: firstName,
		LastName:  p.LastName,
		Username:  username,
	}
}
