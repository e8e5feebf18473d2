package store

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/glowstudio/landing-builder/internal/httperr"
	"github.com/glowstudio/landing-builder/internal/models"
)

// Documents holds site documents keyed by user id. A nil backend means
// memory-only operation.
type Documents struct {
	mu      sync.RWMutex
	cache   map[string]*models.LandingPageData
	backend DocumentBackend
	fresh   func(now time.Time) *models.LandingPageData
	now     func() time.Time
	queue   *writeQueue
}

func NewDocuments(
	backend DocumentBackend,
	fresh func(now time.Time) *models.LandingPageData,
	now func() time.Time,
) *Documents {
	if now == nil {
		now = time.Now
	}

	d := &Documents{
		cache:   make(map[string]*models.LandingPageData),
		backend: backend,
		fresh:   fresh,
		now:     now,
	}

	if backend != nil {
		d.queue = newWriteQueue()
	}
	return d
}

// Get returns the document for userID, provisioning a fresh default on first
// use. The provisioning write is best-effort: a backend failure here is logged
// and the in-memory value is still returned.
func (d *Documents) Get(ctx context.Context, userID string) (*models.LandingPageData, error) {
	d.mu.RLock()
	doc, ok := d.cache[userID]
	d.mu.RUnlock()
	if ok {
		return doc.Clone(), nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	// Re-check: another request may have provisioned while we waited.
	if doc, ok := d.cache[userID]; ok {
		return doc.Clone(), nil
	}

	if d.backend != nil {
		stored, found, err := d.backend.LoadDocument(ctx, userID)
		if err != nil {
			log.Printf("load document for %s failed, provisioning default: %v", userID, err)
		} else if found {
			d.cache[userID] = stored
			return stored.Clone(), nil
		}
	}

	doc = d.fresh(d.now())
	d.cache[userID] = doc
	d.enqueueSave(userID, doc.Clone())

	return doc.Clone(), nil
}

// Put validates minimal structure and replaces the stored document wholesale.
// The durable write completes before Put returns.
func (d *Documents) Put(ctx context.Context, userID string, doc *models.LandingPageData) error {
	if doc == nil || doc.Hero == nil || doc.Services == nil {
		return httperr.ErrBusiness(httperr.CodeInvalidDocument)
	}

	stored := doc.Clone()

	d.mu.Lock()
	d.cache[userID] = stored
	d.mu.Unlock()

	return d.persist(ctx, userID, stored)
}

// Reset overwrites the stored document with a fresh default and returns it.
func (d *Documents) Reset(ctx context.Context, userID string) (*models.LandingPageData, error) {
	doc := d.fresh(d.now())

	d.mu.Lock()
	d.cache[userID] = doc
	d.mu.Unlock()

	if err := d.persist(ctx, userID, doc); err != nil {
		return nil, err
	}
	return doc.Clone(), nil
}

// Provision stores a fresh default for a brand-new account with a synchronous
// durable write, unlike the implicit path in Get.
func (d *Documents) Provision(ctx context.Context, userID string) (*models.LandingPageData, error) {
	return d.Reset(ctx, userID)
}

func (d *Documents) persist(ctx context.Context, userID string, doc *models.LandingPageData) error {
	if d.backend == nil {
		return nil
	}
	if err := d.backend.SaveDocument(ctx, userID, doc); err != nil {
		log.Printf("save document for %s failed: %v", userID, err)
		return httperr.ErrBusiness(httperr.CodeStorageFailure)
	}
	return nil
}

func (d *Documents) enqueueSave(userID string, doc *models.LandingPageData) {
	if d.backend == nil {
		return
	}
	d.queue.Enqueue(writeTask{
		userID: userID,
		save: func(ctx context.Context) error {
			return d.backend.SaveDocument(ctx, userID, doc)
		},
	})
}
