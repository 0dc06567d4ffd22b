package client

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/galacticx/engagement/pkg/entity"
	"github.com/galacticx/engagement/pkg/streak"
)

// TokenSource provides the bearer token for authorized calls; the Controller
// implements it. An empty token means anonymous.
type TokenSource interface {
	Token() string
}

// StreakClient reads the week record and submits claims. The backend is the
// single source of truth: after a successful claim the caller refetches the
// week instead of patching local state.
type StreakClient struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

func NewStreakClient(baseURL string, tokens TokenSource) *StreakClient {
	return &StreakClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: exchangeTimeout,
		},
		tokens: tokens,
	}
}

type weekStreakEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Data    struct {
		WeekStreak *entity.WeekStreak `json:"weekStreak"`
	} `json:"data"`
}

type claimEnvelope struct {
	Success bool               `json:"success"`
	Error   string             `json:"error"`
	Message string             `json:"message"`
	Data    entity.ClaimResult `json:"data"`
}

// FetchWeek returns the current week record, nil when the user hasn't claimed
// anything this week yet.
func (sc *StreakClient) FetchWeek(ctx context.Context) (*entity.WeekStreak, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sc.baseURL+"/api/v1/streaks/week", nil)
	if err != nil {
		return nil, errors.New("building week request error: " + err.Error())
	}
	sc.authorize(req)
	resp, err := sc.httpClient.Do(req)
	if err != nil {
		return nil, errors.New("fetching week error: " + err.Error())
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.New("reading week response error: " + err.Error())
	}
	var decoded weekStreakEnvelope
	if err := sonic.ConfigDefault.Unmarshal(raw, &decoded); err != nil {
		return nil, errors.New("parsing week response error: " + err.Error())
	}
	if resp.StatusCode != http.StatusOK || !decoded.Success {
		reason := decoded.Error
		if reason == "" {
			reason = "unexpected status " + resp.Status
		}
		return nil, errors.New("fetching week failed: " + reason)
	}
	return decoded.Data.WeekStreak, nil
}

// ClaimDay submits a claim for day. The caller is expected to have checked
// claimability via WeekView first; a backend disagreement (claimed from
// another session, window closed) comes back as ClaimError and is never
// retried here.
func (sc *StreakClient) ClaimDay(ctx context.Context, day string) (*entity.ClaimResult, error) {
	body, err := sonic.ConfigDefault.Marshal(map[string]string{"day": day})
	if err != nil {
		return nil, errors.New("encoding claim payload error: " + err.Error())
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sc.baseURL+"/api/v1/streaks/claim", bytes.NewReader(body))
	if err != nil {
		return nil, errors.New("building claim request error: " + err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	sc.authorize(req)
	resp, err := sc.httpClient.Do(req)
	if err != nil {
		return nil, errors.New("submitting claim error: " + err.Error())
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.New("reading claim response error: " + err.Error())
	}
	var decoded claimEnvelope
	if err := sonic.ConfigDefault.Unmarshal(raw, &decoded); err != nil {
		return nil, errors.New("parsing claim response error: " + err.Error())
	}
	if resp.StatusCode != http.StatusOK || !decoded.Success {
		reason := decoded.Error
		if reason == "" {
			reason = "unexpected status " + resp.Status
		}
		return nil, &ClaimError{
			StatusCode: resp.StatusCode,
			Reason:     reason,
		}
	}
	return &decoded.Data, nil
}

func (sc *StreakClient) authorize(req *http.Request) {
	if sc.tokens == nil {
		return
	}
	if token := sc.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// WeekView derives the display state of the week and whether today is
// claimable. Record may be nil. Per-day points on already-claimed days are a
// best-effort reconstruction; TotalPoints on the record is authoritative.
func WeekView(record *entity.WeekStreak, now time.Time) ([]streak.DayState, bool) {
	var claims map[string]bool
	if record != nil {
		claims = record.Claims
	}
	states := streak.DayStates(claims, now)
	canClaimToday := false
	for _, st := range states {
		if st.IsToday && st.Status == streak.StatusAvailable {
			canClaimToday = true
			break
		}
	}
	return states, canClaimToday
}
