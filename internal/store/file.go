package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/glowstudio/landing-builder/internal/models"
)

const (
	documentsFile = "documents.json"
	usersFile     = "users.json"
)

// FileBackend keeps all state in two flat JSON files: user id → document and
// email → user. Each file is rewritten wholesale on every mutation.
type FileBackend struct {
	mu  sync.Mutex
	dir string

	docs  map[string]*models.LandingPageData
	users map[string]*models.User
}

func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	b := &FileBackend{
		dir:   dir,
		docs:  make(map[string]*models.LandingPageData),
		users: make(map[string]*models.User),
	}

	if err := readJSONFile(b.path(documentsFile), &b.docs); err != nil {
		return nil, err
	}
	if err := readJSONFile(b.path(usersFile), &b.users); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *FileBackend) path(name string) string {
	return filepath.Join(b.dir, name)
}

func (b *FileBackend) LoadDocument(ctx context.Context, userID string) (*models.LandingPageData, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	doc, ok := b.docs[userID]
	if !ok {
		return nil, false, nil
	}
	return doc.Clone(), true, nil
}

func (b *FileBackend) SaveDocument(ctx context.Context, userID string, doc *models.LandingPageData) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.docs[userID] = doc.Clone()
	return writeJSONFile(b.path(documentsFile), b.docs)
}

func (b *FileBackend) LoadUserByEmail(ctx context.Context, email string) (*models.User, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	user, ok := b.users[email]
	if !ok {
		return nil, false, nil
	}
	copied := *user
	return &copied, true, nil
}

func (b *FileBackend) LoadUserByID(ctx context.Context, id string) (*models.User, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, user := range b.users {
		if user.ID == id {
			copied := *user
			return &copied, true, nil
		}
	}
	return nil, false, nil
}

func (b *FileBackend) SaveUser(ctx context.Context, user *models.User) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	copied := *user
	b.users[user.Email] = &copied
	return writeJSONFile(b.path(usersFile), b.users)
}

// Snapshot copies both data files into dir with a timestamp suffix.
func (b *FileBackend) Snapshot(dir string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create backup dir: %w", err)
	}

	stamp := time.Now().UTC().Format("20060102-150405")
	if err := writeJSONFile(filepath.Join(dir, stamp+"-"+documentsFile), b.docs); err != nil {
		return err
	}
	return writeJSONFile(filepath.Join(dir, stamp+"-"+usersFile), b.users)
}

func readJSONFile(path string, out interface{}) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// writeJSONFile replaces the target atomically so a crash mid-write never
// leaves a truncated data file.
func writeJSONFile(path string, in interface{}) error {
	raw, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
