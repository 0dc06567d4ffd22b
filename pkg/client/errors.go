package client

import "errors"

var (
	// Sign-in attempted without a connected wallet
	ErrNoWalletConnected = errors.New("no wallet connected")
	// The wallet declined to sign the challenge
	ErrSignatureRejected = errors.New("wallet declined to sign the challenge")
	// The wallet changed or disconnected while the sign-in was in flight;
	// the late result was discarded
	ErrStaleSignIn = errors.New("wallet changed during sign-in")
)

// ExchangeError is a network or backend-side rejection of the signed
// challenge. Recoverable: the caller may retry.
type ExchangeError struct {
	StatusCode int
	Reason     string
}

func (e *ExchangeError) Error() string {
	return "sign-in exchange failed: " + e.Reason
}

// ClaimError is the backend refusing a claim (already claimed, window closed,
// not authenticated). Never retried automatically.
type ClaimError struct {
	StatusCode int
	Reason     string
}

func (e *ClaimError) Error() string {
	return "claim rejected: " + e.Reason
}
