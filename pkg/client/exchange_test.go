package client_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/galacticx/engagement/pkg/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExchangeSignInSuccess(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/auth/signin", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var payload map[string]string
		require.NoError(t, sonic.ConfigDefault.Unmarshal(raw, &payload))
		assert.Equal(t, "0x8ba1f109551bD432803012645Ac136ddd64DBA72", payload["walletAddress"])
		assert.Equal(t, "0xsig", payload["signature"])
		assert.NotEmpty(t, payload["message"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"success": true,
			"user_id": "2f7a0e26-2f3c-4b1e-9f2a-0a4f2f9b9c01",
			"wallet_address": "0x8ba1f109551bD432803012645Ac136ddd64DBA72",
			"role": "user",
			"access_token": "minted-token",
			"expires_in": 3600
		}`))
	}))
	defer server.Close()

	before := time.Now()
	session, err := client.NewExchange(server.URL).SignIn(
		context.Background(),
		"0x8ba1f109551bD432803012645Ac136ddd64DBA72",
		"0xsig",
		"challenge message",
	)
	require.NoError(t, err)
	assert.Equal(t, "0x8ba1f109551bD432803012645Ac136ddd64DBA72", session.WalletAddress)
	assert.Equal(t, "2f7a0e26-2f3c-4b1e-9f2a-0a4f2f9b9c01", session.UserID)
	assert.Equal(t, "user", session.Role)
	assert.Equal(t, "minted-token", session.BearerToken)
	assert.WithinDuration(t, before.Add(time.Hour), session.ExpiresAt, 5*time.Second)
}

func TestExchangeSignInRejected(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "invalid signature"}`))
	}))
	defer server.Close()

	session, err := client.NewExchange(server.URL).SignIn(context.Background(), "0xabc", "0xsig", "msg")
	assert.Nil(t, session)
	var exchangeErr *client.ExchangeError
	require.ErrorAs(t, err, &exchangeErr)
	assert.Equal(t, http.StatusUnauthorized, exchangeErr.StatusCode)
	assert.Equal(t, "invalid signature", exchangeErr.Reason)
}

func TestExchangeSignInIncompleteResponse(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Desc string
		Body string
	}{
		{
			Desc: "missing token",
			Body: `{"success": true, "user_id": "u1", "expires_in": 3600}`,
		},
		{
			Desc: "zero expiry",
			Body: `{"success": true, "user_id": "u1", "access_token": "tok", "expires_in": 0}`,
		},
		{
			Desc: "success false with 200",
			Body: `{"success": false, "user_id": "u1", "access_token": "tok", "expires_in": 3600}`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tc.Body))
			}))
			defer server.Close()

			session, err := client.NewExchange(server.URL).SignIn(context.Background(), "0xabc", "0xsig", "msg")
			assert.Nil(t, session)
			var exchangeErr *client.ExchangeError
			require.ErrorAs(t, err, &exchangeErr)
			assert.Equal(t, "incomplete sign-in response", exchangeErr.Reason)
		})
	}
}

func TestExchangeSignInNetworkError(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	session, err := client.NewExchange(server.URL).SignIn(context.Background(), "0xabc", "0xsig", "msg")
	assert.Nil(t, session)
	var exchangeErr *client.ExchangeError
	assert.ErrorAs(t, err, &exchangeErr)
}
