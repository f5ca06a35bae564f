package auth

// keys.go provides the key sets used to verify bearer token signatures.
//
// In production the keys come from the identity provider's JWKS endpoint. They are held in
// a jwk.Cache that fetches them in the background and refreshes them between the
// configured min and max intervals, so key rotation at the provider needs no restart.

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lestrrat-go/httprc/v3"
	"github.com/lestrrat-go/jwx/v3/jwk"
)

// KeySetProvider returns the current set of token verification keys.
type KeySetProvider interface {
	KeySet(ctx context.Context) (jwk.Set, error)
}

// RemoteKeySet is a KeySetProvider backed by an auto-refreshing JWKS endpoint.
type RemoteKeySet struct {
	url   string
	cache *jwk.Cache
}

// NewRemoteKeySet registers jwksURL with a new jwk.Cache.
//
// The first fetch happens in the background; until it completes KeySet returns an error
// and requests needing authentication fail.
func NewRemoteKeySet(ctx context.Context, jwksURL string, minRefresh, maxRefresh time.Duration, logger *slog.Logger) (*RemoteKeySet, error) {
	if jwksURL == "" {
		return nil, fmt.Errorf("jwks url is required")
	}

	cache, err := jwk.NewCache(ctx, httprc.NewClient())
	if err != nil {
		return nil, fmt.Errorf("failed to create JWK cache: %w", err)
	}

	err = cache.Register(ctx, jwksURL,
		jwk.WithMinInterval(minRefresh),
		jwk.WithMaxInterval(maxRefresh),
		jwk.WithWaitReady(false), // Don't block startup - fetch in background
	)
	if err != nil {
		return nil, fmt.Errorf("failed to register JWKS endpoint %s: %w", jwksURL, err)
	}

	logger.Info("registered JWKS endpoint for background fetch",
		slog.String("jwks_url", jwksURL),
		slog.Duration("min_refresh", minRefresh),
		slog.Duration("max_refresh", maxRefresh),
	)

	return &RemoteKeySet{url: jwksURL, cache: cache}, nil
}

// KeySet returns the latest cached key set.
func (k *RemoteKeySet) KeySet(ctx context.Context) (jwk.Set, error) {
	set, err := k.cache.Lookup(ctx, k.url)
	if err != nil {
		return nil, fmt.Errorf("failed to lookup JWK set %s: %w", k.url, err)
	}
	return set, nil
}

// IsReady reports whether the key set has been fetched at least once.
func (k *RemoteKeySet) IsReady(ctx context.Context) error {
	_, err := k.KeySet(ctx)
	return err
}

// StaticKeySet is a fixed key set, used for keys configured out-of-band and in tests.
type StaticKeySet struct {
	set jwk.Set
}

func NewStaticKeySet(set jwk.Set) *StaticKeySet {
	return &StaticKeySet{set: set}
}

func (k *StaticKeySet) KeySet(context.Context) (jwk.Set, error) {
	return k.set, nil
}
