package store

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/glowstudio/landing-builder/internal/defaults"
	"github.com/glowstudio/landing-builder/internal/models"
)

func TestFileBackendSurvivesRestart(t *testing.T) {
	dir := t.TempDir()

	backend, err := NewFileBackend(dir)
	if err != nil {
		t.Fatalf("NewFileBackend: %v", err)
	}

	doc := defaults.Document(fixedNow)
	doc.Hero.Title = "Сохранено на диск"
	if err := backend.SaveDocument(context.Background(), "u1", doc); err != nil {
		t.Fatalf("SaveDocument: %v", err)
	}

	user := &models.User{ID: "u1", Email: "a@x.com", Salt: "s", HashedPassword: "h"}
	if err := backend.SaveUser(context.Background(), user); err != nil {
		t.Fatalf("SaveUser: %v", err)
	}

	// Fresh backend over the same directory sees everything.
	reopened, err := NewFileBackend(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}

	got, found, err := reopened.LoadDocument(context.Background(), "u1")
	if err != nil || !found {
		t.Fatalf("LoadDocument: found=%v err=%v", found, err)
	}
	if !reflect.DeepEqual(doc, got) {
		t.Errorf("document changed across restart")
	}

	byEmail, found, err := reopened.LoadUserByEmail(context.Background(), "a@x.com")
	if err != nil || !found {
		t.Fatalf("LoadUserByEmail: found=%v err=%v", found, err)
	}
	if byEmail.Salt != "s" || byEmail.HashedPassword != "h" {
		t.Errorf("credential fields lost in persistence: %+v", byEmail)
	}

	byID, found, err := reopened.LoadUserByID(context.Background(), "u1")
	if err != nil || !found {
		t.Fatalf("LoadUserByID: found=%v err=%v", found, err)
	}
	if byID.Email != "a@x.com" {
		t.Errorf("LoadUserByID email = %q", byID.Email)
	}
}

func TestFileBackendMissingKeys(t *testing.T) {
	backend, err := NewFileBackend(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileBackend: %v", err)
	}

	if _, found, err := backend.LoadDocument(context.Background(), "nobody"); err != nil || found {
		t.Errorf("LoadDocument: found=%v err=%v, want miss", found, err)
	}
	if _, found, err := backend.LoadUserByEmail(context.Background(), "nobody@x.com"); err != nil || found {
		t.Errorf("LoadUserByEmail: found=%v err=%v, want miss", found, err)
	}
}

func TestFileBackendSnapshot(t *testing.T) {
	dir := t.TempDir()
	backupDir := t.TempDir()

	backend, err := NewFileBackend(dir)
	if err != nil {
		t.Fatalf("NewFileBackend: %v", err)
	}
	if err := backend.SaveDocument(context.Background(), "u1", defaults.Document(fixedNow)); err != nil {
		t.Fatalf("SaveDocument: %v", err)
	}

	if err := backend.Snapshot(backupDir); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	entries, err := os.ReadDir(backupDir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}

	var docsCopy string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), documentsFile) {
			docsCopy = filepath.Join(backupDir, e.Name())
		}
	}
	if docsCopy == "" {
		t.Fatalf("no documents snapshot written, entries: %v", entries)
	}

	raw, err := os.ReadFile(docsCopy)
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	if !strings.Contains(string(raw), "u1") {
		t.Errorf("snapshot missing document key")
	}
}

func TestDocumentsWithFileBackendPersistAcrossStores(t *testing.T) {
	dir := t.TempDir()

	backend, err := NewFileBackend(dir)
	if err != nil {
		t.Fatalf("NewFileBackend: %v", err)
	}
	docs := NewDocuments(backend, defaults.Document, fixedClock)

	doc := defaults.Document(fixedNow)
	doc.Hero.Title = "Переживёт перезапуск"
	if err := docs.Put(context.Background(), "u1", doc); err != nil {
		t.Fatalf("Put: %v", err)
	}

	backend2, err := NewFileBackend(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	docs2 := NewDocuments(backend2, defaults.Document, fixedClock)

	got, err := docs2.Get(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Hero.Title != "Переживёт перезапуск" {
		t.Errorf("stored document not reloaded, hero title = %q", got.Hero.Title)
	}
}
