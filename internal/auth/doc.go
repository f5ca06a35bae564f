// Package auth validates OAuth2 bearer tokens (RFC 6750) issued by an external identity
// provider.
//
// Tokens are JWTs signed with keys published on the provider's JWKS endpoint. The
// service does not issue tokens or manage users; it only checks the signature, expiry,
// issuer and audience of each token, and exposes the token subject to handlers.
package auth
