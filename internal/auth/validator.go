package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/lestrrat-go/jwx/v3/jwt"
)

// Validator checks bearer tokens issued by the identity provider.
type Validator struct {
	keys     KeySetProvider
	issuer   string
	audience string
	skew     time.Duration
}

// NewValidator creates a Validator. Empty issuer or audience disables that check.
func NewValidator(keys KeySetProvider, issuer, audience string, skew time.Duration) *Validator {
	return &Validator{
		keys:     keys,
		issuer:   issuer,
		audience: audience,
		skew:     skew,
	}
}

// keySetError is returned when the verification keys are not available. It is not the
// caller's fault, so the middleware reports it as an internal error rather than a 401.
type keySetError struct {
	err error
}

func (e *keySetError) Error() string { return e.err.Error() }
func (e *keySetError) Unwrap() error { return e.err }

// Validate verifies the signature of raw against the current key set and checks the
// exp, nbf, iss and aud claims.
func (v *Validator) Validate(ctx context.Context, raw string) (jwt.Token, error) {
	set, err := v.keys.KeySet(ctx)
	if err != nil {
		return nil, &keySetError{err: err}
	}

	opts := []jwt.ParseOption{
		jwt.WithKeySet(set),
		jwt.WithValidate(true),
		jwt.WithAcceptableSkew(v.skew),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	token, err := jwt.Parse([]byte(raw), opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid bearer token: %w", err)
	}
	return token, nil
}
