package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (s *memStore) Get(key string) ([]byte, bool, error) {
	raw, ok := s.data[key]
	return raw, ok, nil
}

func (s *memStore) Put(key string, value []byte) error {
	s.data[key] = value
	return nil
}

func (s *memStore) Delete(key string) error {
	delete(s.data, key)
	return nil
}

func TestSignupEstablishesSession(t *testing.T) {
	mgr := NewManager(newMemStore())

	require.True(t, mgr.Signup("Alice", "alice@example.com", "secret123"))
	assert.True(t, mgr.Authenticated())

	rec, ok := mgr.Current()
	require.True(t, ok)
	assert.Equal(t, "Alice", rec.Name)
	assert.Equal(t, "alice@example.com", rec.Email)
}

func TestSignupRejectsEmptyFields(t *testing.T) {
	mgr := NewManager(newMemStore())

	assert.False(t, mgr.Signup("", "alice@example.com", "secret123"))
	assert.False(t, mgr.Signup("Alice", "", "secret123"))
	assert.False(t, mgr.Signup("Alice", "alice@example.com", ""))
	assert.False(t, mgr.Authenticated())
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	store := newMemStore()
	mgr := NewManager(store)

	require.True(t, mgr.Signup("Alice", "alice@example.com", "secret123"))
	mgr.Logout()

	assert.False(t, mgr.Signup("Someone Else", "alice@example.com", "other456"))
	assert.False(t, mgr.Authenticated())

	// The original account still works.
	assert.True(t, mgr.Login("alice@example.com", "secret123"))
}

func TestLoginVerifiesCredentials(t *testing.T) {
	mgr := NewManager(newMemStore())
	require.True(t, mgr.Signup("Alice", "alice@example.com", "secret123"))
	mgr.Logout()

	assert.False(t, mgr.Login("alice@example.com", "wrong"))
	assert.False(t, mgr.Login("nobody@example.com", "secret123"))
	assert.False(t, mgr.Authenticated())

	require.True(t, mgr.Login("alice@example.com", "secret123"))
	rec, ok := mgr.Current()
	require.True(t, ok)
	assert.Equal(t, "Alice", rec.Name)
}

func TestLoginFailureKeepsExistingSession(t *testing.T) {
	mgr := NewManager(newMemStore())
	require.True(t, mgr.Signup("Alice", "alice@example.com", "secret123"))

	assert.False(t, mgr.Login("alice@example.com", "wrong"))

	rec, ok := mgr.Current()
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", rec.Email)
}

func TestPasswordsAreNotStoredInPlaintext(t *testing.T) {
	store := newMemStore()
	mgr := NewManager(store)
	require.True(t, mgr.Signup("Alice", "alice@example.com", "secret123"))

	raw := store.data["registered-identities"]
	assert.NotContains(t, string(raw), "secret123")
}

func TestLogoutIsIdempotent(t *testing.T) {
	mgr := NewManager(newMemStore())
	require.True(t, mgr.Signup("Alice", "alice@example.com", "secret123"))

	mgr.Logout()
	assert.False(t, mgr.Authenticated())

	// Logging out again must not fail or change anything.
	mgr.Logout()
	assert.False(t, mgr.Authenticated())
}

func TestSessionSurvivesRestart(t *testing.T) {
	store := newMemStore()
	mgr := NewManager(store)
	require.True(t, mgr.Signup("Alice", "alice@example.com", "secret123"))

	restarted := NewManager(store)
	assert.True(t, restarted.Authenticated())
	rec, ok := restarted.Current()
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", rec.Email)
}

func TestLogoutSurvivesRestart(t *testing.T) {
	store := newMemStore()
	mgr := NewManager(store)
	require.True(t, mgr.Signup("Alice", "alice@example.com", "secret123"))
	mgr.Logout()

	restarted := NewManager(store)
	assert.False(t, restarted.Authenticated())
}

func TestMalformedStorageMeansSignedOut(t *testing.T) {
	store := newMemStore()
	store.data["session-identity"] = []byte("{not json")

	mgr := NewManager(store)
	assert.False(t, mgr.Authenticated())
}

func TestMalformedIdentityListAllowsFreshSignup(t *testing.T) {
	store := newMemStore()
	store.data["registered-identities"] = []byte("{{{{")

	mgr := NewManager(store)
	assert.False(t, mgr.Login("alice@example.com", "secret123"))
	assert.True(t, mgr.Signup("Alice", "alice@example.com", "secret123"))
}
