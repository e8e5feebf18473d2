package models

import (
	"encoding/json"
	"time"
)

// LandingPageData is the whole site document for one account. It is replaced
// wholesale on every save; the server never merges individual fields.
type LandingPageData struct {
	Hero         *HeroData        `json:"hero"`
	About        AboutData        `json:"about"`
	Services     []Service        `json:"services"`
	Portfolio    []PortfolioImage `json:"portfolio"`
	Theme        Theme            `json:"theme"`
	Appointments []Appointment    `json:"appointments"`
	Clients      []Client         `json:"clients"`
	Contact      ContactData      `json:"contact"`
	Socials      SocialData       `json:"socials"`
	Testimonials []Testimonial    `json:"testimonials"`
}

type HeroData struct {
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	CTA             string `json:"cta"`
	BackgroundImage string `json:"backgroundImage"`
}

type AboutData struct {
	Text     string `json:"text"`
	ImageURL string `json:"imageUrl"`
}

type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"` // minutes
}

type PortfolioImage struct {
	ID  string `json:"id"`
	URL string `json:"url"` // may be a data-URL
	Alt string `json:"alt"`
}

type Theme struct {
	Primary    string `json:"primary"`
	Background string `json:"background"`
	Text       string `json:"text"`
	Card       string `json:"card"`
}

// Appointment is immutable once created except by deletion. ServiceName is a
// snapshot of the service's display name at booking time, not a foreign key.
type Appointment struct {
	ID          string `json:"id"`
	ClientName  string `json:"clientName"`
	ServiceName string `json:"serviceName"`
	Date        string `json:"date"` // YYYY-MM-DD
	Time        string `json:"time"` // HH:mm
}

// Client identity for booking reconciliation is the case-insensitive, trimmed
// name, not the id.
type Client struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Phone        string      `json:"phone"`
	Email        string      `json:"email"`
	Notes        string      `json:"notes"`
	VisitHistory []time.Time `json:"visitHistory"`
}

type ContactData struct {
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

type SocialData struct {
	Instagram string `json:"instagram"`
	Telegram  string `json:"telegram"`
	VK        string `json:"vk"`
}

type Testimonial struct {
	ID         string `json:"id"`
	ClientName string `json:"clientName"`
	Text       string `json:"text"`
	Rating     int    `json:"rating"` // 1 to 5
}

// Clone returns a deep copy. The store hands out and accepts copies so callers
// never share slices with the in-memory document.
func (d *LandingPageData) Clone() *LandingPageData {
	if d == nil {
		return nil
	}
	raw, err := json.Marshal(d)
	if err != nil {
		return nil
	}
	var out LandingPageData
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return &out
}
