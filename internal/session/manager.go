// Package session owns the application's authentication state: a registry of
// identities and at most one current signed-in identity, both persisted in a
// durable key/value store. This is demo-grade auth — there is no token, no
// expiry, and a stored session record is trusted as-is on restart.
package session

import (
	"encoding/json"
	"sync"

	"triptrove/internal/logger"
	"triptrove/internal/models"

	"golang.org/x/crypto/bcrypt"
)

const (
	sessionKey    = "session-identity"
	identitiesKey = "registered-identities"
)

// Store is the durable key/value dependency. database.StateStore satisfies
// it in production; tests use an in-memory map.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	Delete(key string) error
}

// Manager gates access to the application behind a single logical identity.
type Manager struct {
	store Store

	mu      sync.RWMutex
	current *models.SessionRecord
}

// NewManager restores the session from the store. A missing or malformed
// record means "not signed in"; it is never an error — the app must always
// start.
func NewManager(store Store) *Manager {
	m := &Manager{store: store}

	raw, ok, err := store.Get(sessionKey)
	if err != nil {
		logger.Warn("Failed to read session record", "error", err)
		return m
	}
	if !ok {
		return m
	}

	var rec models.SessionRecord
	if err := json.Unmarshal(raw, &rec); err != nil || rec.Email == "" {
		logger.Warn("Discarding malformed session record")
		return m
	}

	m.current = &rec
	return m
}

// Authenticated reports whether an identity is signed in.
func (m *Manager) Authenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current != nil
}

// Current returns the signed-in identity's display subset.
func (m *Manager) Current() (models.SessionRecord, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return models.SessionRecord{}, false
	}
	return *m.current, true
}

// Signup registers a new identity and signs it in. It returns false when any
// field is empty or when an identity with the same email already exists.
// The store is only mutated on success: first the identity list, then the
// session record.
func (m *Manager) Signup(name, email, password string) bool {
	if name == "" || email == "" || password == "" {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	identities := m.loadIdentities()
	for _, id := range identities {
		if id.Email == email {
			return false
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash password", "error", err)
		return false
	}

	identities = append(identities, models.Identity{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	})

	if !m.saveIdentities(identities) {
		return false
	}

	m.establish(models.SessionRecord{Name: name, Email: email})
	return true
}

// Login signs in an existing identity. Wrong email and wrong password are
// indistinguishable to the caller; on failure the session is unchanged.
func (m *Manager) Login(email, password string) bool {
	if email == "" || password == "" {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, id := range m.loadIdentities() {
		if id.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(id.PasswordHash), []byte(password)) != nil {
			return false
		}
		m.establish(models.SessionRecord{Name: id.Name, Email: id.Email})
		return true
	}
	return false
}

// Logout clears the session. Idempotent: it clears storage whether or not
// anyone is signed in.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Delete(sessionKey); err != nil {
		logger.Warn("Failed to clear session record", "error", err)
	}
	m.current = nil
}

func (m *Manager) establish(rec models.SessionRecord) {
	raw, err := json.Marshal(rec)
	if err == nil {
		if err := m.store.Put(sessionKey, raw); err != nil {
			logger.Warn("Failed to persist session record", "email", rec.Email, "error", err)
		}
	}
	m.current = &rec
}

func (m *Manager) loadIdentities() []models.Identity {
	raw, ok, err := m.store.Get(identitiesKey)
	if err != nil {
		logger.Warn("Failed to read identity list", "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	var identities []models.Identity
	if err := json.Unmarshal(raw, &identities); err != nil {
		logger.Warn("Discarding malformed identity list")
		return nil
	}
	return identities
}

func (m *Manager) saveIdentities(identities []models.Identity) bool {
	raw, err := json.Marshal(identities)
	if err != nil {
		return false
	}
	if err := m.store.Put(identitiesKey, raw); err != nil {
		logger.Error("Failed to persist identity list", "error", err)
		return false
	}
	return true
}
