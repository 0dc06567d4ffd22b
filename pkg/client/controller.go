package client

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/galacticx/engagement/pkg/challenge"
)

type State int

const (
	StateSignedOut State = iota
	StateAuthenticating
	StateAuthenticated
	StateError
)

func (s State) String() string {
	switch s {
	case StateSignedOut:
		return "signed_out"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	case StateError:
		return "error"
	}
	return "unknown"
}

// AuthExchange is the backend sign-in endpoint seam.
type AuthExchange interface {
	SignIn(ctx context.Context, walletAddress, signature, message string) (*Session, error)
}

// Controller owns the single authentication state derived from the connected
// wallet and the persisted session. All session and auth-header mutation
// funnels through it; consumers read state through the accessors only.
//
// Wallet changes arrive as explicit SetWallet events, so the machine doesn't
// depend on any UI framework's reactivity. Sign-in is safe to invoke
// concurrently: the last committed attempt wins, and a result arriving for a
// wallet that's no longer connected is discarded at commit time.
type Controller struct {
	mu       sync.Mutex
	store    Store
	exchange AuthExchange
	signer   Signer

	state   State
	session *Session
	lastErr error
	wallet  string

	attempt   uint64
	committed uint64
	// Attempts at or below revoked were started before a sign-out or wallet
	// change and must never commit
	revoked uint64
}

func NewController(store Store, exchange AuthExchange, signer Signer) *Controller {
	return &Controller{
		store:    store,
		exchange: exchange,
		signer:   signer,
		state:    StateSignedOut,
	}
}

// Start restores the persisted session against the currently connected wallet
// ("" when none). An expired or wallet-mismatched session is cleared and
// treated as signed out, never as an error; with a wallet present and no
// valid session, an automatic sign-in attempt follows.
func (c *Controller) Start(ctx context.Context, walletAddress string) {
	c.mu.Lock()
	c.wallet = walletAddress
	stored, err := c.store.Load()
	if err != nil {
		slog.Error("loading persisted session failed", slog.String("error", err.Error()))
		stored = nil
	}
	if stored.Valid(time.Now()) && walletAddress != "" && strings.EqualFold(stored.WalletAddress, walletAddress) {
		c.session = stored
		c.state = StateAuthenticated
		c.mu.Unlock()
		return
	}
	if err := c.store.Clear(); err != nil {
		slog.Error("clearing persisted session failed", slog.String("error", err.Error()))
	}
	c.session = nil
	c.state = StateSignedOut
	c.mu.Unlock()
	if walletAddress != "" {
		c.autoSignIn(ctx)
	}
}

// SetWallet handles wallet connect, disconnect ("") and address change. The
// old session is cleared synchronously before any new attempt can start, so
// a quick reconnect can't observe stale credentials.
func (c *Controller) SetWallet(ctx context.Context, walletAddress string) {
	c.mu.Lock()
	if strings.EqualFold(c.wallet, walletAddress) {
		c.mu.Unlock()
		return
	}
	c.wallet = walletAddress
	c.revoked = c.attempt
	c.session = nil
	c.lastErr = nil
	c.state = StateSignedOut
	if err := c.store.Clear(); err != nil {
		slog.Error("clearing persisted session failed", slog.String("error", err.Error()))
	}
	c.mu.Unlock()
	if walletAddress != "" {
		c.autoSignIn(ctx)
	}
}

func (c *Controller) autoSignIn(ctx context.Context) {
	if err := c.SignIn(ctx); err != nil {
		// Automatic flows downgrade to state, they never escape upward
		slog.Info("auto sign-in failed", slog.String("error", err.Error()))
	}
}

// SignIn builds a fresh challenge, has the wallet sign it and exchanges the
// result for a session. Overlapping calls are tolerated: a result only
// commits while its wallet is still the connected one, and a failure
// resolving after a later success doesn't downgrade the state.
func (c *Controller) SignIn(ctx context.Context) error {
	c.mu.Lock()
	addr := c.wallet
	if addr == "" {
		c.mu.Unlock()
		return ErrNoWalletConnected
	}
	c.attempt++
	gen := c.attempt
	c.state = StateAuthenticating
	c.lastErr = nil
	c.mu.Unlock()

	message, err := challenge.Build(addr)
	if err != nil {
		return c.fail(gen, err)
	}
	signature, err := c.signer.Sign(ctx, message)
	if err != nil {
		return c.fail(gen, errors.Join(ErrSignatureRejected, err))
	}
	if signature == "" {
		return c.fail(gen, ErrSignatureRejected)
	}
	session, err := c.exchange.SignIn(ctx, addr, signature, message)
	if err != nil {
		return c.fail(gen, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen <= c.revoked || !strings.EqualFold(c.wallet, addr) {
		return ErrStaleSignIn
	}
	if gen < c.committed {
		// A newer attempt already authenticated
		return nil
	}
	c.committed = gen
	c.session = session
	c.state = StateAuthenticated
	c.lastErr = nil
	if err := c.store.Save(session); err != nil {
		slog.Error("persisting session failed", slog.String("error", err.Error()))
	}
	return nil
}

func (c *Controller) fail(gen uint64, err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen <= c.revoked || c.state == StateAuthenticated {
		return err
	}
	c.state = StateError
	c.lastErr = err
	return err
}

// SignOut always succeeds and is idempotent: the persisted session is cleared
// and the auth header source goes back to anonymous.
func (c *Controller) SignOut() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.revoked = c.attempt
	c.session = nil
	c.lastErr = nil
	c.state = StateSignedOut
	if err := c.store.Clear(); err != nil {
		slog.Error("clearing persisted session failed", slog.String("error", err.Error()))
	}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

func (c *Controller) IsAuthenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StateAuthenticated && c.session.Valid(time.Now())
}

// Session returns a copy of the current session, nil when signed out.
func (c *Controller) Session() *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return nil
	}
	copied := *c.session
	return &copied
}

// Token implements TokenSource for downstream API clients. Empty while not
// authenticated, so those clients fall back to anonymous calls.
func (c *Controller) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateAuthenticated || !c.session.Valid(time.Now()) {
		return ""
	}
	return c.session.BearerToken
}
