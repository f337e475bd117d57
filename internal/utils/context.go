package utils

// ctxKey is the private type used for context keys defined by this package.
// Using an unexported type prevents collisions with context keys defined by
// other packages.
type ctxKey string

// ClaimsCtxKey is the context key under which the JWT middleware stores the
// authenticated principal's decoded claims.
const ClaimsCtxKey ctxKey = "claims"
