package session

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luxurydrives/internal/models"
	"luxurydrives/internal/store"
)

type staticTokens struct{}

func (staticTokens) Token(acc models.Account) (string, error) {
	return "token-" + acc.ID, nil
}

func newTestManager(t *testing.T) (*Manager, *FileStore) {
	t.Helper()
	local, err := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	return NewManager(store.New(), local, staticTokens{}, 0, zerolog.Nop()), local
}

func TestLoginKnownEmail(t *testing.T) {
	m, local := newTestManager(t)

	require.True(t, m.Login("john@example.com", "whatever"))

	acc, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, "1", acc.ID)
	assert.True(t, m.IsAuthenticated())
	assert.False(t, m.IsAdmin())

	_, ok = local.Get(sessionKey)
	assert.True(t, ok)
	token, ok := local.Get(tokenKey)
	require.True(t, ok)
	assert.Equal(t, "token-1", token)
}

func TestLoginIgnoresPassword(t *testing.T) {
	m, _ := newTestManager(t)

	assert.True(t, m.Login("sarah@example.com", ""))
	assert.True(t, m.IsAuthenticated())
}

func TestLoginUnknownEmailKeepsPriorSession(t *testing.T) {
	m, _ := newTestManager(t)
	require.True(t, m.Login("john@example.com", "x"))

	assert.False(t, m.Login("nobody@example.com", "x"))

	acc, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, "1", acc.ID)
}

func TestLoginAdminAccount(t *testing.T) {
	m, _ := newTestManager(t)

	require.True(t, m.Login("admin@luxurydrives.com", "x"))
	assert.True(t, m.IsAdmin())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	st := store.New()
	local, err := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	m := NewManager(st, local, staticTokens{}, 0, zerolog.Nop())
	before := len(st.Accounts())

	assert.False(t, m.Register("Dup", "john@example.com", "Secret123"))
	assert.False(t, m.IsAuthenticated())
	assert.Len(t, st.Accounts(), before)
}

func TestRegisterFreshEmail(t *testing.T) {
	st := store.New()
	local, err := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	m := NewManager(st, local, staticTokens{}, 0, zerolog.Nop())
	before := len(st.Accounts())

	require.True(t, m.Register("New User", "new@example.com", "Secret123"))

	assert.Len(t, st.Accounts(), before+1)
	acc, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, models.RoleUser, acc.Role)
	assert.Equal(t, "new@example.com", acc.Email)
	assert.NotEmpty(t, acc.ID)
	assert.NotEmpty(t, acc.PasswordHash)

	stored, ok := st.AccountByEmail("new@example.com")
	require.True(t, ok)
	assert.Equal(t, acc.ID, stored.ID)
}

func TestLogoutClearsEverything(t *testing.T) {
	m, local := newTestManager(t)
	require.True(t, m.Login("john@example.com", "x"))

	m.Logout()

	assert.False(t, m.IsAuthenticated())
	_, ok := local.Get(sessionKey)
	assert.False(t, ok)
	_, ok = local.Get(tokenKey)
	assert.False(t, ok)
}

func TestRestoreFromLocalStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	local, err := NewFileStore(path)
	require.NoError(t, err)
	first := NewManager(store.New(), local, staticTokens{}, 0, zerolog.Nop())
	require.True(t, first.Login("sarah@example.com", "x"))

	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	second := NewManager(store.New(), reopened, staticTokens{}, 0, zerolog.Nop())

	assert.False(t, second.Loading())
	acc, ok := second.Current()
	require.True(t, ok)
	assert.Equal(t, "2", acc.ID)
}

func TestRestoreWithoutPersistedSession(t *testing.T) {
	m, _ := newTestManager(t)

	assert.False(t, m.Loading())
	assert.False(t, m.IsAuthenticated())
}

func TestSerializedSessionOmitsPasswordHash(t *testing.T) {
	st := store.New()
	local, err := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	m := NewManager(st, local, staticTokens{}, 0, zerolog.Nop())
	require.True(t, m.Register("New User", "new@example.com", "Secret123"))

	blob, ok := local.Get(sessionKey)
	require.True(t, ok)
	assert.NotContains(t, blob, "Secret123")
	assert.NotContains(t, blob, "password")
}
