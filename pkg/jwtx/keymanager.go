package jwtx

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"clientmap/pkg/cryptox"
)

// KeyManager owns the signing keys for an instance. Multiple keys are
// generated so signing load can be spread and a single compromised kid can
// be reasoned about independently; selection for signing is random.
type KeyManager struct {
	Verifier Verifier
	KeySet   *KeySet

	mu      sync.RWMutex
	signers []*Signer
}

// KeyManagerOptions configures key generation.
type KeyManagerOptions struct {
	// Issuer is the iss claim validated on every token.
	Issuer string

	// NumKeys is how many signing keys to generate. Defaults to 3,
	// clamped to [1, 10].
	NumKeys int
}

// NewEphemeralKeyManager generates in-memory Ed25519 keys. Nothing is
// persisted, so all outstanding tokens become invalid on restart.
func NewEphemeralKeyManager(opts KeyManagerOptions) (*KeyManager, error) {
	if opts.Issuer == "" {
		return nil, fmt.Errorf("jwtx: Issuer is required")
	}

	numKeys := opts.NumKeys
	if numKeys <= 0 {
		numKeys = 3
	}
	if numKeys > 10 {
		numKeys = 10
	}

	keyset := NewKeySet()
	signers := make([]*Signer, 0, numKeys)

	for range numKeys {
		kid, err := cryptox.GenerateToken(8)
		if err != nil {
			return nil, fmt.Errorf("jwtx: failed to generate key id: %w", err)
		}
		signer, err := NewSigner(kid)
		if err != nil {
			return nil, fmt.Errorf("jwtx: failed to generate signer: %w", err)
		}
		keyset.Add(kid, signer.Public())
		signers = append(signers, signer)
	}

	return &KeyManager{
		Verifier: NewVerifier(keyset, opts.Issuer),
		KeySet:   keyset,
		signers:  signers,
	}, nil
}

// GetSigner returns a randomly selected signer.
func (m *KeyManager) GetSigner() *Signer {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.signers[rand.IntN(len(m.signers))]
}
