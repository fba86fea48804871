// Package session holds the client's current authenticated account and its
// persisted representation. Authentication here is deliberately mock-mode:
// accounts are matched by email only and no credential is ever verified.
package session

import (
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"luxurydrives/internal/models"
	"luxurydrives/internal/store"
)

// TokenSource synthesizes the opaque token string persisted alongside the
// session blob.
type TokenSource interface {
	Token(acc models.Account) (string, error)
}

type Manager struct {
	store  *store.Store
	local  *FileStore
	tokens TokenSource
	delay  time.Duration
	logger zerolog.Logger

	mu      sync.RWMutex
	current *models.Account
	loading bool
}

// NewManager restores any persisted session synchronously before returning,
// so Loading is already false for every caller that sees the manager.
func NewManager(st *store.Store, local *FileStore, tokens TokenSource, delay time.Duration, logger zerolog.Logger) *Manager {
	m := &Manager{
		store:   st,
		local:   local,
		tokens:  tokens,
		delay:   delay,
		logger:  logger,
		loading: true,
	}
	m.restore()
	m.mu.Lock()
	m.loading = false
	m.mu.Unlock()
	return m
}

func (m *Manager) restore() {
	raw, ok := m.local.Get(sessionKey)
	if !ok {
		return
	}
	var acc models.Account
	if err := json.Unmarshal([]byte(raw), &acc); err != nil {
		m.logger.Warn().Err(err).Msg("Discarding unreadable persisted session")
		return
	}
	m.mu.Lock()
	m.current = &acc
	m.mu.Unlock()
	m.logger.Info().Str("account_id", acc.ID).Msg("Session restored from local storage")
}

// Login establishes a session for the account with the given email. The
// password is accepted as-is: mock mode performs no credential check. A
// miss reports false and leaves any prior session untouched.
func (m *Manager) Login(email, _ string) bool {
	time.Sleep(m.delay)

	acc, ok := m.store.AccountByEmail(email)
	if !ok {
		m.logger.Warn().Str("email", email).Msg("Login failed, unknown email")
		return false
	}

	m.establish(acc)
	m.logger.Info().Str("account_id", acc.ID).Str("email", acc.Email).Msg("Login succeeded")
	return true
}

// Register creates a new user account and establishes it as the session.
// A duplicate email reports false with no state change.
func (m *Manager) Register(name, email, password string) bool {
	time.Sleep(m.delay)

	if _, exists := m.store.AccountByEmail(email); exists {
		m.logger.Warn().Str("email", email).Msg("Registration failed, email already taken")
		return false
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		m.logger.Error().Err(err).Msg("Password hashing failed")
		return false
	}

	acc := models.Account{
		ID:           strconv.FormatInt(time.Now().UnixMilli(), 10),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
		CreatedAt:    time.Now().Format("2006-01-02"),
	}
	if err := m.store.CreateAccount(acc); err != nil {
		m.logger.Warn().Err(err).Str("email", email).Msg("Registration failed")
		return false
	}

	m.establish(acc)
	m.logger.Info().Str("account_id", acc.ID).Str("email", acc.Email).Msg("Account registered")
	return true
}

// Logout clears the in-memory session and removes both persisted keys.
func (m *Manager) Logout() {
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()

	if err := m.local.Delete(sessionKey, tokenKey); err != nil {
		m.logger.Error().Err(err).Msg("Failed to clear persisted session")
	}
	m.logger.Info().Msg("Session cleared")
}

func (m *Manager) establish(acc models.Account) {
	token, err := m.tokens.Token(acc)
	if err != nil {
		m.logger.Error().Err(err).Msg("Token synthesis failed")
	}

	m.mu.Lock()
	a := acc
	m.current = &a
	m.mu.Unlock()

	blob, err := json.Marshal(acc)
	if err != nil {
		m.logger.Error().Err(err).Msg("Failed to serialize session")
		return
	}
	if err := m.local.Set(sessionKey, string(blob)); err != nil {
		m.logger.Error().Err(err).Msg("Failed to persist session")
	}
	if err := m.local.Set(tokenKey, token); err != nil {
		m.logger.Error().Err(err).Msg("Failed to persist token")
	}
}

// Current returns a copy of the session account, if any.
func (m *Manager) Current() (models.Account, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return models.Account{}, false
	}
	return *m.current, true
}

func (m *Manager) IsAuthenticated() bool {
	_, ok := m.Current()
	return ok
}

func (m *Manager) IsAdmin() bool {
	acc, ok := m.Current()
	return ok && acc.Role == models.RoleAdmin
}

// Loading reports whether the startup restore is still in progress.
func (m *Manager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

// Token returns the persisted token for the current session.
func (m *Manager) Token() (string, bool) {
	return m.local.Get(tokenKey)
}
