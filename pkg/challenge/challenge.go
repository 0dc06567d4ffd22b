// Package challenge builds and verifies the sign-in message a wallet signs to
// prove address ownership. The message carries a fixed application tag, the
// wallet address, a random nonce and a millisecond timestamp, giving domain
// separation, replay resistance and freshness in one string.
package challenge

import (
	"crypto/ecdsa"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	errorvalues "github.com/galacticx/engagement/internal/error_values"
)

const (
	AppTag    = "GalacticX Sign-In"
	nonceSize = 16
)

type Challenge struct {
	Address  string
	Nonce    string
	IssuedAt time.Time
}

// Build constructs a fresh sign-in message for address. Nonces come from
// crypto/rand, so two calls within the same millisecond still differ.
func Build(address string) (string, error) {
	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", errors.New("generating nonce error: " + err.Error())
	}
	return fmt.Sprintf("%s\nAddress: %s\nNonce: %s\nIssued-At: %d",
		AppTag,
		address,
		hex.EncodeToString(nonce),
		time.Now().UnixMilli(),
	), nil
}

// Parse validates the message layout and extracts its fields.
func Parse(message string) (*Challenge, error) {
	lines := strings.Split(message, "\n")
	if len(lines) != 4 || lines[0] != AppTag {
		return nil, errorvalues.ErrChallengeMalformed
	}
	address, ok := strings.CutPrefix(lines[1], "Address: ")
	if !ok || address == "" {
		return nil, errorvalues.ErrChallengeMalformed
	}
	nonce, ok := strings.CutPrefix(lines[2], "Nonce: ")
	if !ok || len(nonce) != nonceSize*2 {
		return nil, errorvalues.ErrChallengeMalformed
	}
	if _, err := hex.DecodeString(nonce); err != nil {
		return nil, errorvalues.ErrChallengeMalformed
	}
	issuedAtStr, ok := strings.CutPrefix(lines[3], "Issued-At: ")
	if !ok {
		return nil, errorvalues.ErrChallengeMalformed
	}
	millis, err := strconv.ParseInt(issuedAtStr, 10, 64)
	if err != nil {
		return nil, errorvalues.ErrChallengeMalformed
	}
	return &Challenge{
		Address:  address,
		Nonce:    nonce,
		IssuedAt: time.UnixMilli(millis),
	}, nil
}

// Digest hashes message the way personal_sign does:
// keccak256("\x19Ethereum Signed Message:\n" + len(msg) + msg).
func Digest(message string) []byte {
	prefixed := fmt.Sprintf("\x19Ethereum Signed Message:\n%d%s", len(message), message)
	return crypto.Keccak256([]byte(prefixed))
}

// Sign produces a hex personal_sign signature over message with the V value
// adjusted to the Ethereum 27/28 convention.
func Sign(message string, key *ecdsa.PrivateKey) (string, error) {
	sig, err := crypto.Sign(Digest(message), key)
	if err != nil {
		return "", errors.New("signing message error: " + err.Error())
	}
	if sig[64] < 27 {
		sig[64] += 27
	}
	return "0x" + hex.EncodeToString(sig), nil
}

// RecoverAddress returns the checksummed address that produced signatureHex
// over message.
func RecoverAddress(message, signatureHex string) (string, error) {
	sig, err := hex.DecodeString(strings.TrimPrefix(signatureHex, "0x"))
	if err != nil || len(sig) != 65 {
		return "", errorvalues.ErrSignatureInvalid
	}
	if sig[64] >= 27 {
		sig[64] -= 27
	}
	pub, err := crypto.SigToPub(Digest(message), sig)
	if err != nil {
		return "", errorvalues.ErrSignatureInvalid
	}
	return crypto.PubkeyToAddress(*pub).Hex(), nil
}
