package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *KeyManager {
	t.Helper()
	km, err := NewEphemeralKeyManager(KeyManagerOptions{Issuer: "clientmap-test", NumKeys: 2})
	require.NoError(t, err)
	return km
}

func TestSignAndVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	km := newTestManager(t)
	claims := NewAccessClaims(
		"user-1", "sess-1",
		[]string{"records:read", "records:write"},
		DefaultAccessTokenTTL,
		"clientmap-test", "ana@example.com", "Ana",
		time.Now().UTC(),
	)

	raw, err := km.GetSigner().Sign(claims)
	require.NoError(t, err)

	got, err := km.Verifier.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "user-1", got.Subject)
	require.Equal(t, "sess-1", got.SID)
	require.Equal(t, []string{"records:read", "records:write"}, got.Scopes)
	require.Equal(t, "ana@example.com", got.Email)
	require.NoError(t, got.ValidateExpiry())
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	t.Parallel()

	km := newTestManager(t)
	other := newTestManager(t)

	claims := NewAccessClaims("u", "s", nil, time.Minute, "clientmap-test", "", "", time.Now().UTC())
	raw, err := other.GetSigner().Sign(claims)
	require.NoError(t, err)

	_, err = km.Verifier.Verify(raw)
	require.Error(t, err)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	km := newTestManager(t)
	claims := NewAccessClaims("u", "s", nil, time.Minute, "someone-else", "", "", time.Now().UTC())
	raw, err := km.GetSigner().Sign(claims)
	require.NoError(t, err)

	_, err = km.Verifier.Verify(raw)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestExpiredClaims(t *testing.T) {
	t.Parallel()

	claims := NewAccessClaims("u", "s", nil, -time.Minute, "iss", "", "", time.Now().UTC().Add(-time.Hour))
	require.ErrorIs(t, claims.ValidateExpiry(), ErrExpired)
}

func TestJWKSPublishesAllKeys(t *testing.T) {
	t.Parallel()

	km := newTestManager(t)
	doc := km.KeySet.JWKS()
	require.Len(t, doc.Keys, 2)
	for _, k := range doc.Keys {
		require.Equal(t, "OKP", k.Kty)
		require.Equal(t, "Ed25519", k.Crv)
		require.Equal(t, "EdDSA", k.Alg)
		require.NotEmpty(t, k.X)
	}
}
