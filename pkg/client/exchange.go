package client

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
)

var (
	exchangeTimeout = 15 * time.Second
)

// Exchange submits signed challenges to the backend verification endpoint.
// The backend is the sole authority on signature validity and user
// provisioning; the exchange only validates the response shape.
type Exchange struct {
	baseURL    string
	httpClient *http.Client
}

func NewExchange(baseURL string) *Exchange {
	return &Exchange{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: exchangeTimeout,
		},
	}
}

type signInPayload struct {
	WalletAddress string `json:"walletAddress"`
	Signature     string `json:"signature"`
	Message       string `json:"message"`
}

type signInResponse struct {
	Success       bool   `json:"success"`
	UserID        string `json:"user_id"`
	WalletAddress string `json:"wallet_address"`
	Role          string `json:"role"`
	AccessToken   string `json:"access_token"`
	ExpiresIn     int64  `json:"expires_in"`
	Error         string `json:"error"`
}

// SignIn POSTs the signed challenge and returns the minted session. Network
// errors, non-2xx statuses and malformed bodies all surface as ExchangeError.
func (e *Exchange) SignIn(ctx context.Context, walletAddress, signature, message string) (*Session, error) {
	body, err := sonic.ConfigDefault.Marshal(signInPayload{
		WalletAddress: walletAddress,
		Signature:     signature,
		Message:       message,
	})
	if err != nil {
		return nil, errors.New("encoding sign-in payload error: " + err.Error())
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/api/v1/auth/signin", bytes.NewReader(body))
	if err != nil {
		return nil, errors.New("building sign-in request error: " + err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, &ExchangeError{
			Reason: err.Error(),
		}
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ExchangeError{
			StatusCode: resp.StatusCode,
			Reason:     "reading response error: " + err.Error(),
		}
	}
	var decoded signInResponse
	if err := sonic.ConfigDefault.Unmarshal(raw, &decoded); err != nil {
		return nil, &ExchangeError{
			StatusCode: resp.StatusCode,
			Reason:     "malformed response body",
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		reason := decoded.Error
		if reason == "" {
			reason = "unexpected status " + resp.Status
		}
		return nil, &ExchangeError{
			StatusCode: resp.StatusCode,
			Reason:     reason,
		}
	}
	// Validate the shape before trusting any field
	if !decoded.Success || decoded.AccessToken == "" || decoded.UserID == "" || decoded.ExpiresIn <= 0 {
		return nil, &ExchangeError{
			StatusCode: resp.StatusCode,
			Reason:     "incomplete sign-in response",
		}
	}
	return &Session{
		WalletAddress: decoded.WalletAddress,
		UserID:        decoded.UserID,
		Role:          decoded.Role,
		BearerToken:   decoded.AccessToken,
		ExpiresAt:     time.Now().Add(time.Duration(decoded.ExpiresIn) * time.Second),
	}, nil
}
