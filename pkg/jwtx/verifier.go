package jwtx

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates access tokens.
type Verifier interface {
	Verify(raw string) (Claims, error)
}

// KeySetVerifier validates EdDSA tokens against a KeySet, selecting the
// public key by the token's kid header.
type KeySetVerifier struct {
	keys   *KeySet
	issuer string
}

func NewVerifier(keys *KeySet, issuer string) *KeySetVerifier {
	return &KeySetVerifier{keys: keys, issuer: issuer}
}

func (v *KeySetVerifier) Verify(raw string) (Claims, error) {
	var claims Claims

	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodEd25519); !ok {
			return nil, fmt.Errorf("jwtx: unexpected signing method %q", t.Method.Alg())
		}
		kid, _ := t.Header["kid"].(string)
		pub, ok := v.keys.Get(kid)
		if !ok {
			return nil, ErrUnknownKID
		}
		return pub, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}))
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	if err := claims.ValidateIssuer(v.issuer); err != nil {
		return Claims{}, err
	}
	return claims, nil
}
