package client

import (
	"errors"
	"os"
	"sync"
	"time"

	"github.com/bytedance/sonic"
)

// Session is the persisted outcome of a successful sign-in exchange. All
// fields are cleared together on sign-out or wallet/session mismatch.
type Session struct {
	WalletAddress string    `json:"wallet_address"`
	UserID        string    `json:"user_id"`
	Role          string    `json:"role"`
	BearerToken   string    `json:"bearer_token"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// Valid reports whether the session still authorizes calls at now.
func (s *Session) Valid(now time.Time) bool {
	return s != nil && s.BearerToken != "" && now.Before(s.ExpiresAt)
}

// Store persists exactly one session. Load returns nil without error when
// nothing is stored.
type Store interface {
	Load() (*Session, error)
	Save(session *Session) error
	Clear() error
}

type MemoryStore struct {
	mu      sync.Mutex
	session *Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (ms *MemoryStore) Load() (*Session, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if ms.session == nil {
		return nil, nil
	}
	copied := *ms.session
	return &copied, nil
}

func (ms *MemoryStore) Save(session *Session) error {
	if session == nil {
		return errors.New("session is nil")
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()
	copied := *session
	ms.session = &copied
	return nil
}

func (ms *MemoryStore) Clear() error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.session = nil
	return nil
}

// FileStore keeps the session as a JSON file, for CLI tools living across
// process restarts.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{
		path: path,
	}
}

func (fs *FileStore) Load() (*Session, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	data, err := os.ReadFile(fs.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.New("reading session file error: " + err.Error())
	}
	var session Session
	if err := sonic.ConfigDefault.Unmarshal(data, &session); err != nil {
		return nil, errors.New("parsing session file error: " + err.Error())
	}
	return &session, nil
}

func (fs *FileStore) Save(session *Session) error {
	if session == nil {
		return errors.New("session is nil")
	}
	data, err := sonic.ConfigDefault.Marshal(session)
	if err != nil {
		return errors.New("encoding session error: " + err.Error())
	}
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if err := os.WriteFile(fs.path, data, 0o600); err != nil {
		return errors.New("writing session file error: " + err.Error())
	}
	return nil
}

func (fs *FileStore) Clear() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	err := os.Remove(fs.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.New("removing session file error: " + err.Error())
	}
	return nil
}
