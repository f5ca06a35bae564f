package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/lestrrat-go/jwx/v3/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer   = "https://idp.example.com/"
	testAudience = "person-api"
)

// newSigningKey returns a private signing key and a key set holding its public half.
func newSigningKey(t *testing.T, kid string) (jwk.Key, jwk.Set) {
	t.Helper()

	raw, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	private, err := jwk.Import(raw)
	require.NoError(t, err)
	require.NoError(t, private.Set(jwk.KeyIDKey, kid))
	require.NoError(t, private.Set(jwk.AlgorithmKey, jwa.RS256()))

	public, err := jwk.PublicKeyOf(private)
	require.NoError(t, err)

	set := jwk.NewSet()
	require.NoError(t, set.AddKey(public))
	return private, set
}

type tokenOpts struct {
	issuer   string
	audience string
	expires  time.Time
}

func signToken(t *testing.T, key jwk.Key, opts tokenOpts) string {
	t.Helper()

	token, err := jwt.NewBuilder().
		Issuer(opts.issuer).
		Audience([]string{opts.audience}).
		Subject("alice").
		IssuedAt(time.Now()).
		Expiration(opts.expires).
		Build()
	require.NoError(t, err)

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.RS256(), key))
	require.NoError(t, err)
	return string(signed)
}

func validOpts() tokenOpts {
	return tokenOpts{issuer: testIssuer, audience: testAudience, expires: time.Now().Add(time.Hour)}
}

func TestRequireBearerToken(t *testing.T) {
	signingKey, set := newSigningKey(t, "key-1")
	otherKey, _ := newSigningKey(t, "key-1")

	validator := NewValidator(NewStaticKeySet(set), testIssuer, testAudience, time.Second)

	var gotSubject string
	protected := RequireBearerToken(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSubject, _ = SubjectFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	expired := validOpts()
	expired.expires = time.Now().Add(-time.Hour)

	wrongIssuer := validOpts()
	wrongIssuer.issuer = "https://evil.example.com/"

	wrongAudience := validOpts()
	wrongAudience.audience = "another-api"

	tests := []struct {
		name          string
		authorization string
		wantStatus    int
		wantChallenge string
	}{
		{
			name:          "valid token",
			authorization: "Bearer " + signToken(t, signingKey, validOpts()),
			wantStatus:    http.StatusOK,
		},
		{
			name:          "scheme is case insensitive",
			authorization: "bearer " + signToken(t, signingKey, validOpts()),
			wantStatus:    http.StatusOK,
		},
		{
			name:          "missing header",
			wantStatus:    http.StatusUnauthorized,
			wantChallenge: `Bearer realm="person-api"`,
		},
		{
			name:          "basic auth",
			authorization: "Basic dXNlcjpwYXNz",
			wantStatus:    http.StatusUnauthorized,
			wantChallenge: `Bearer realm="person-api"`,
		},
		{
			name:          "garbage token",
			authorization: "Bearer not-a-jwt",
			wantStatus:    http.StatusUnauthorized,
			wantChallenge: `Bearer realm="person-api", error="invalid_token"`,
		},
		{
			name:          "expired token",
			authorization: "Bearer " + signToken(t, signingKey, expired),
			wantStatus:    http.StatusUnauthorized,
			wantChallenge: `Bearer realm="person-api", error="invalid_token"`,
		},
		{
			name:          "wrong issuer",
			authorization: "Bearer " + signToken(t, signingKey, wrongIssuer),
			wantStatus:    http.StatusUnauthorized,
			wantChallenge: `Bearer realm="person-api", error="invalid_token"`,
		},
		{
			name:          "wrong audience",
			authorization: "Bearer " + signToken(t, signingKey, wrongAudience),
			wantStatus:    http.StatusUnauthorized,
			wantChallenge: `Bearer realm="person-api", error="invalid_token"`,
		},
		{
			name:          "signed by unknown key",
			authorization: "Bearer " + signToken(t, otherKey, validOpts()),
			wantStatus:    http.StatusUnauthorized,
			wantChallenge: `Bearer realm="person-api", error="invalid_token"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotSubject = ""
			req := httptest.NewRequest(http.MethodGet, "/api/persons", nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			rr := httptest.NewRecorder()

			protected.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantChallenge, rr.Header().Get("WWW-Authenticate"))
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "alice", gotSubject)
			} else {
				assert.Empty(t, gotSubject, "handler must not run")
			}
		})
	}
}

type failingKeySet struct{}

func (failingKeySet) KeySet(context.Context) (jwk.Set, error) {
	return nil, io.ErrUnexpectedEOF
}

func TestRequireBearerToken_KeysUnavailable(t *testing.T) {
	signingKey, _ := newSigningKey(t, "key-1")
	validator := NewValidator(failingKeySet{}, testIssuer, testAudience, 0)

	protected := RequireBearerToken(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/persons", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, signingKey, validOpts()))
	rr := httptest.NewRecorder()

	protected.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Empty(t, rr.Header().Get("WWW-Authenticate"))
}

func TestRemoteKeySet(t *testing.T) {
	signingKey, set := newSigningKey(t, "remote-key")

	body, err := json.Marshal(set)
	require.NoError(t, err)

	jwks := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
	defer jwks.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := slog.New(slog.DiscardHandler)
	keys, err := NewRemoteKeySet(ctx, jwks.URL, time.Minute, time.Hour, logger)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return keys.IsReady(ctx) == nil
	}, 5*time.Second, 50*time.Millisecond)

	validator := NewValidator(keys, testIssuer, testAudience, 0)
	token, err := validator.Validate(ctx, signToken(t, signingKey, validOpts()))
	require.NoError(t, err)

	sub, ok := token.Subject()
	require.True(t, ok)
	assert.Equal(t, "alice", sub)
}

func TestNewRemoteKeySet_RequiresURL(t *testing.T) {
	_, err := NewRemoteKeySet(context.Background(), "", time.Minute, time.Hour, slog.New(slog.DiscardHandler))
	assert.Error(t, err)
}
