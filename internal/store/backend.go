// Package store keeps one site document per account behind a pluggable
// persistence strategy. The in-memory map is the source of truth for reads;
// every mutation goes through Put/Reset which replace the value wholesale.
package store

import (
	"context"

	"github.com/glowstudio/landing-builder/internal/models"
)

// DocumentBackend persists site documents keyed by user id.
type DocumentBackend interface {
	LoadDocument(ctx context.Context, userID string) (*models.LandingPageData, bool, error)
	SaveDocument(ctx context.Context, userID string, doc *models.LandingPageData) error
}

// UserBackend persists account records keyed by email.
type UserBackend interface {
	LoadUserByEmail(ctx context.Context, email string) (*models.User, bool, error)
	LoadUserByID(ctx context.Context, id string) (*models.User, bool, error)
	SaveUser(ctx context.Context, user *models.User) error
}

// Backend is what the configured storage driver provides.
type Backend interface {
	DocumentBackend
	UserBackend
}

// Snapshotter is implemented by backends that can copy their data files
// aside for backups.
type Snapshotter interface {
	Snapshot(dir string) error
}
