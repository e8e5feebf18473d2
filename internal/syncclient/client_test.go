package syncclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/glowstudio/landing-builder/internal/defaults"
	"github.com/glowstudio/landing-builder/internal/middleware"
	"github.com/glowstudio/landing-builder/internal/models"
)

var testNow = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

type fakeServer struct {
	mu       sync.Mutex
	puts     int
	lastDoc  *models.LandingPageData
	failGET  bool
	failPUT  bool
	lastUser string
}

func (f *fakeServer) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/data", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		f.lastUser = r.Header.Get(middleware.HeaderUserID)

		switch r.Method {
		case http.MethodGet:
			if f.failGET {
				http.Error(w, "boom", http.StatusInternalServerError)
				return
			}
			json.NewEncoder(w).Encode(defaults.Document(testNow))

		case http.MethodPut:
			if f.failPUT {
				http.Error(w, "boom", http.StatusInternalServerError)
				return
			}
			var doc models.LandingPageData
			if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
				http.Error(w, "bad body", http.StatusBadRequest)
				return
			}
			f.puts++
			f.lastDoc = &doc
			json.NewEncoder(w).Encode(map[string]string{"message": "Data updated successfully"})
		}
	})
	return mux
}

func (f *fakeServer) putCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.puts
}

func TestLoadFetchesDocument(t *testing.T) {
	fake := &fakeServer{}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL, UserID: "u1"})
	defer c.Close()

	doc := c.Load(context.Background())
	if len(doc.Services) != 4 {
		t.Errorf("loaded services length = %d, want 4", len(doc.Services))
	}

	fake.mu.Lock()
	user := fake.lastUser
	fake.mu.Unlock()
	if user != "u1" {
		t.Errorf("identity header = %q, want u1", user)
	}
}

func TestLoadFailureFallsBackToDefault(t *testing.T) {
	fake := &fakeServer{failGET: true}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	var reported error
	c := New(Options{
		BaseURL: srv.URL,
		UserID:  "u1",
		OnError: func(err error) { reported = err },
	})
	defer c.Close()

	doc := c.Load(context.Background())
	if doc == nil {
		t.Fatal("Load returned nil on failure")
	}
	if len(doc.Services) != 4 {
		t.Errorf("fallback services length = %d, want 4", len(doc.Services))
	}
	if reported == nil {
		t.Error("load failure was not reported")
	}
}

func TestUpdateDebouncesSaves(t *testing.T) {
	fake := &fakeServer{}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL, UserID: "u1", Debounce: 50 * time.Millisecond})
	defer c.Close()

	c.Load(context.Background())

	// A burst of edits inside the debounce window collapses to one save.
	for i := 0; i < 5; i++ {
		doc := c.Document()
		doc.Hero.Title = "правка"
		c.Update(doc)
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(200 * time.Millisecond)

	if got := fake.putCount(); got != 1 {
		t.Errorf("put count = %d, want 1", got)
	}

	fake.mu.Lock()
	title := fake.lastDoc.Hero.Title
	fake.mu.Unlock()
	if title != "правка" {
		t.Errorf("saved hero title = %q", title)
	}
}

func TestUpdateAfterQuietPeriodSavesAgain(t *testing.T) {
	fake := &fakeServer{}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL, UserID: "u1", Debounce: 30 * time.Millisecond})
	defer c.Close()

	c.Load(context.Background())

	doc := c.Document()
	doc.Hero.Title = "первая"
	c.Update(doc)
	time.Sleep(150 * time.Millisecond)

	doc.Hero.Title = "вторая"
	c.Update(doc)
	time.Sleep(150 * time.Millisecond)

	if got := fake.putCount(); got != 2 {
		t.Errorf("put count = %d, want 2", got)
	}
}

func TestSaveFailureKeepsLocalDocument(t *testing.T) {
	fake := &fakeServer{failPUT: true}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	var mu sync.Mutex
	var reported []error
	c := New(Options{
		BaseURL:  srv.URL,
		UserID:   "u1",
		Debounce: 20 * time.Millisecond,
		OnError: func(err error) {
			mu.Lock()
			reported = append(reported, err)
			mu.Unlock()
		},
	})
	defer c.Close()

	c.Load(context.Background())

	doc := c.Document()
	doc.Hero.Title = "локально важное"
	c.Update(doc)

	time.Sleep(150 * time.Millisecond)

	mu.Lock()
	failures := len(reported)
	mu.Unlock()
	if failures == 0 {
		t.Error("save failure was not reported")
	}

	if got := c.Document().Hero.Title; got != "локально важное" {
		t.Errorf("local document rolled back, hero title = %q", got)
	}
}

func TestFlushSavesImmediately(t *testing.T) {
	fake := &fakeServer{}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL, UserID: "u1", Debounce: time.Hour})
	defer c.Close()

	c.Load(context.Background())

	doc := c.Document()
	doc.Hero.Title = "сразу"
	c.Update(doc)

	if err := c.Flush(context.Background()); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	if got := fake.putCount(); got != 1 {
		t.Errorf("put count = %d, want 1", got)
	}
}
