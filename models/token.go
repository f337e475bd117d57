package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT token together with its compact serialized form and the
// decoded claim set.
//
// SignedString holds the compact serialization (header.payload.signature)
// ready to be transmitted in the Authorization header. Claims is the decoded
// claim map; for tokens issued by this service it carries sub, name, role,
// iat, exp and nbf.
type Token struct {
	// Token is the underlying parsed JWT, available for low-level claim
	// inspection. Excluded from JSON serialization.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Claims is the decoded claim set of the token.
	Claims jwt.MapClaims `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
