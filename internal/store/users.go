package store

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/glowstudio/landing-builder/internal/httperr"
	"github.com/glowstudio/landing-builder/internal/models"
)

// Users holds account records. Email is the unique key; lookups by id serve
// the identity middleware.
type Users struct {
	mu      sync.RWMutex
	byID    map[string]*models.User
	byEmail map[string]*models.User
	backend UserBackend
}

func NewUsers(backend UserBackend) *Users {
	return &Users{
		byID:    make(map[string]*models.User),
		byEmail: make(map[string]*models.User),
		backend: backend,
	}
}

// NormalizeEmail applies the canonical email form used as the storage key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Create stores a new account. Registration is an explicit operation, so the
// durable write completes before Create returns.
func (u *Users) Create(ctx context.Context, user *models.User) error {
	email := NormalizeEmail(user.Email)
	user.Email = email

	u.mu.Lock()
	defer u.mu.Unlock()

	if _, ok := u.byEmail[email]; ok {
		return httperr.ErrBusiness(httperr.CodeEmailTaken)
	}

	if u.backend != nil {
		if _, found, err := u.backend.LoadUserByEmail(ctx, email); err != nil {
			log.Printf("lookup user %s failed: %v", email, err)
			return httperr.ErrBusiness(httperr.CodeStorageFailure)
		} else if found {
			return httperr.ErrBusiness(httperr.CodeEmailTaken)
		}

		if err := u.backend.SaveUser(ctx, user); err != nil {
			log.Printf("save user %s failed: %v", email, err)
			return httperr.ErrBusiness(httperr.CodeStorageFailure)
		}
	}

	u.byID[user.ID] = user
	u.byEmail[email] = user
	return nil
}

func (u *Users) GetByEmail(ctx context.Context, email string) (*models.User, bool, error) {
	email = NormalizeEmail(email)

	u.mu.RLock()
	user, ok := u.byEmail[email]
	u.mu.RUnlock()
	if ok {
		return user, true, nil
	}

	if u.backend == nil {
		return nil, false, nil
	}

	user, found, err := u.backend.LoadUserByEmail(ctx, email)
	if err != nil {
		log.Printf("lookup user %s failed: %v", email, err)
		return nil, false, httperr.ErrBusiness(httperr.CodeStorageFailure)
	}
	if found {
		u.remember(user)
	}
	return user, found, nil
}

func (u *Users) GetByID(ctx context.Context, id string) (*models.User, bool, error) {
	u.mu.RLock()
	user, ok := u.byID[id]
	u.mu.RUnlock()
	if ok {
		return user, true, nil
	}

	if u.backend == nil {
		return nil, false, nil
	}

	user, found, err := u.backend.LoadUserByID(ctx, id)
	if err != nil {
		log.Printf("lookup user id %s failed: %v", id, err)
		return nil, false, httperr.ErrBusiness(httperr.CodeStorageFailure)
	}
	if found {
		u.remember(user)
	}
	return user, found, nil
}

func (u *Users) remember(user *models.User) {
	u.mu.Lock()
	u.byID[user.ID] = user
	u.byEmail[user.Email] = user
	u.mu.Unlock()
}
