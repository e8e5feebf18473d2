// Package syncclient is the editor-side half of the persistence contract: it
// keeps the working document in memory, debounces background saves, and falls
// back to the built-in default when the initial load fails. Local state is
// the source of truth between saves; the server catches up eventually.
package syncclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/glowstudio/landing-builder/internal/defaults"
	"github.com/glowstudio/landing-builder/internal/middleware"
	"github.com/glowstudio/landing-builder/internal/models"
)

const DefaultDebounce = time.Second

type Options struct {
	BaseURL string
	UserID  string

	// Debounce is the quiet period before a mutation is saved. Defaults to
	// DefaultDebounce.
	Debounce time.Duration

	HTTPClient *http.Client

	// OnError receives load/save failures. Failures never roll back the
	// local document.
	OnError func(err error)
}

type Client struct {
	baseURL  string
	userID   string
	debounce time.Duration
	http     *http.Client
	onError  func(error)

	mu     sync.Mutex
	doc    *models.LandingPageData
	timer  *time.Timer
	closed bool
}

func New(opts Options) *Client {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: 15 * time.Second}
	}
	if opts.OnError == nil {
		opts.OnError = func(error) {}
	}

	return &Client{
		baseURL:  strings.TrimRight(opts.BaseURL, "/"),
		userID:   opts.UserID,
		debounce: opts.Debounce,
		http:     opts.HTTPClient,
		onError:  opts.OnError,
	}
}

// Load fetches the document from the server. On failure it reports the error
// and substitutes the built-in default so the editor stays usable.
func (c *Client) Load(ctx context.Context) *models.LandingPageData {
	doc, err := c.fetch(ctx)
	if err != nil {
		c.onError(err)
		doc = defaults.Document(time.Now())
	}

	c.mu.Lock()
	c.doc = doc
	c.mu.Unlock()

	return doc.Clone()
}

// Document returns a copy of the current local document.
func (c *Client) Document() *models.LandingPageData {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.doc.Clone()
}

// Update replaces the local document and schedules a save after the debounce
// window. A further update within the window restarts the timer, so at most
// one save runs per quiescent period.
func (c *Client) Update(doc *models.LandingPageData) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.doc = doc.Clone()

	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.debounce, func() {
		c.save(context.Background())
	})
}

// Flush cancels any pending timer and saves immediately.
func (c *Client) Flush(ctx context.Context) error {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.mu.Unlock()

	return c.save(ctx)
}

// Close stops the debounce timer. Pending changes are not saved; call Flush
// first to keep them.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.closed = true
}

func (c *Client) fetch(ctx context.Context) (*models.LandingPageData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/data", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set(middleware.HeaderUserID, c.userID)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("load document: server returned %d", resp.StatusCode)
	}

	var doc models.LandingPageData
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return &doc, nil
}

func (c *Client) save(ctx context.Context) error {
	c.mu.Lock()
	doc := c.doc.Clone()
	c.mu.Unlock()

	if doc == nil {
		return nil
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		err = fmt.Errorf("encode document: %w", err)
		c.onError(err)
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/api/data", bytes.NewReader(payload))
	if err != nil {
		err = fmt.Errorf("create request: %w", err)
		c.onError(err)
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.HeaderUserID, c.userID)

	resp, err := c.http.Do(req)
	if err != nil {
		err = fmt.Errorf("save document: %w", err)
		c.onError(err)
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("save document: server returned %d", resp.StatusCode)
		c.onError(err)
		return err
	}
	return nil
}
