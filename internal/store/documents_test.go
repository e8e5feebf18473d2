package store

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/glowstudio/landing-builder/internal/defaults"
	"github.com/glowstudio/landing-builder/internal/httperr"
	"github.com/glowstudio/landing-builder/internal/models"
)

var fixedNow = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func newMemoryDocuments() *Documents {
	return NewDocuments(nil, defaults.Document, fixedClock)
}

func TestGetProvisionsDefaultOnFirstUse(t *testing.T) {
	docs := newMemoryDocuments()

	doc, err := docs.Get(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	if len(doc.Services) != 4 {
		t.Errorf("services length = %d, want 4", len(doc.Services))
	}
	if len(doc.Testimonials) != 3 {
		t.Errorf("testimonials length = %d, want 3", len(doc.Testimonials))
	}

	again, err := docs.Get(context.Background(), "u1")
	if err != nil {
		t.Fatalf("second Get: %v", err)
	}
	if !reflect.DeepEqual(doc, again) {
		t.Errorf("second Get returned a different document")
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	docs := newMemoryDocuments()

	doc := defaults.Document(fixedNow)
	doc.Hero.Title = "Новое имя студии"
	doc.Services = doc.Services[:2]

	if err := docs.Put(context.Background(), "u1", doc); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := docs.Get(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !reflect.DeepEqual(doc, got) {
		t.Errorf("round-trip mismatch:\nput: %+v\ngot: %+v", doc, got)
	}
}

func TestPutRejectsStructurallyInvalidDocument(t *testing.T) {
	docs := newMemoryDocuments()

	original, err := docs.Get(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	missingHero := defaults.Document(fixedNow)
	missingHero.Hero = nil

	missingServices := defaults.Document(fixedNow)
	missingServices.Services = nil

	for name, doc := range map[string]*models.LandingPageData{
		"nil document":     nil,
		"missing hero":     missingHero,
		"missing services": missingServices,
	} {
		if err := docs.Put(context.Background(), "u1", doc); !httperr.IsBusiness(err, httperr.CodeInvalidDocument) {
			t.Errorf("%s: err = %v, want invalid_document", name, err)
		}
	}

	// The previously stored document must be untouched.
	got, err := docs.Get(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Get after rejected Put: %v", err)
	}
	if !reflect.DeepEqual(original, got) {
		t.Errorf("rejected Put modified the stored document")
	}
}

func TestResetIsIdempotentUnderFixedClock(t *testing.T) {
	docs := newMemoryDocuments()

	custom := defaults.Document(fixedNow)
	custom.Hero.Title = "Изменено"
	if err := docs.Put(context.Background(), "u1", custom); err != nil {
		t.Fatalf("Put: %v", err)
	}

	first, err := docs.Reset(context.Background(), "u1")
	if err != nil {
		t.Fatalf("first Reset: %v", err)
	}
	second, err := docs.Reset(context.Background(), "u1")
	if err != nil {
		t.Fatalf("second Reset: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("consecutive resets differ")
	}
	if first.Hero.Title == "Изменено" {
		t.Errorf("reset did not replace the stored document")
	}
}

func TestGetReturnsCopies(t *testing.T) {
	docs := newMemoryDocuments()

	doc, err := docs.Get(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	doc.Hero.Title = "локальная правка"
	doc.Services[0].Name = "другая услуга"

	stored, err := docs.Get(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.Hero.Title == "локальная правка" || stored.Services[0].Name == "другая услуга" {
		t.Errorf("caller mutation leaked into the store")
	}
}

func TestDocumentsAreIsolatedPerUser(t *testing.T) {
	docs := newMemoryDocuments()

	a := defaults.Document(fixedNow)
	a.Hero.Title = "Сайт А"
	if err := docs.Put(context.Background(), "a", a); err != nil {
		t.Fatalf("Put: %v", err)
	}

	b, err := docs.Get(context.Background(), "b")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if b.Hero.Title == "Сайт А" {
		t.Errorf("user b sees user a's document")
	}
}
