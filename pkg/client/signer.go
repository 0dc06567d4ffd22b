package client

import (
	"context"
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/galacticx/engagement/pkg/challenge"
)

// Signer is the external wallet seam: it signs the challenge message with the
// wallet's key. An empty signature means the user declined.
type Signer interface {
	Sign(ctx context.Context, message string) (string, error)
}

// LocalSigner signs with an in-process ECDSA key. Used by tests and CLI
// tooling; real deployments bridge to a wallet provider instead.
type LocalSigner struct {
	key *ecdsa.PrivateKey
}

func NewLocalSigner(key *ecdsa.PrivateKey) *LocalSigner {
	return &LocalSigner{
		key: key,
	}
}

// Address returns the checksummed address of the signing key.
func (s *LocalSigner) Address() string {
	return crypto.PubkeyToAddress(s.key.PublicKey).Hex()
}

func (s *LocalSigner) Sign(ctx context.Context, message string) (string, error) {
	return challenge.Sign(message, s.key)
}
