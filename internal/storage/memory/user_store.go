package memory

import (
	"context"
	"sync"

	"github.com/sheikh-saqib/statement-ledger-service/internal/interfaces"
	"github.com/sheikh-saqib/statement-ledger-service/internal/models"
)

// MemoryUserStore is an in-memory implementation of interfaces.UserStore.
type MemoryUserStore struct {
	mu      sync.Mutex
	users   map[string]models.User // keyed by user id
	byEmail map[string]string      // email -> user id, enforces uniqueness
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		users:   make(map[string]models.User),
		byEmail: make(map[string]string),
	}
}

func (m *MemoryUserStore) SaveUser(ctx context.Context, user models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byEmail[user.Email]; exists {
		return models.ErrEmailTaken
	}
	m.users[user.ID] = user
	m.byEmail[user.Email] = user.ID
	return nil
}

func (m *MemoryUserStore) GetUserByID(ctx context.Context, id string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, exists := m.users[id]
	if !exists {
		return models.User{}, models.ErrUserNotFound
	}
	return user, nil
}

func (m *MemoryUserStore) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id, exists := m.byEmail[email]
	if !exists {
		return models.User{}, models.ErrUserNotFound
	}
	return m.users[id], nil
}

// Compile-time check: ensure MemoryUserStore implements UserStore
var _ interfaces.UserStore = (*MemoryUserStore)(nil)
