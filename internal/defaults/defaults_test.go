package defaults

import (
	"reflect"
	"testing"
	"time"
)

var fixedNow = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

func TestDocumentIsDeterministicUnderFixedClock(t *testing.T) {
	a := Document(fixedNow)
	b := Document(fixedNow)

	if !reflect.DeepEqual(a, b) {
		t.Error("two documents from the same clock differ")
	}
}

func TestDocumentShape(t *testing.T) {
	doc := Document(fixedNow)

	if doc.Hero == nil {
		t.Fatal("default document has no hero")
	}
	if len(doc.Services) != 4 {
		t.Errorf("services length = %d, want 4", len(doc.Services))
	}
	if len(doc.Portfolio) != 4 {
		t.Errorf("portfolio length = %d, want 4", len(doc.Portfolio))
	}
	if len(doc.Testimonials) != 3 {
		t.Errorf("testimonials length = %d, want 3", len(doc.Testimonials))
	}
	if len(doc.Clients) != 2 || len(doc.Appointments) != 2 {
		t.Errorf("clients/appointments = %d/%d, want 2/2", len(doc.Clients), len(doc.Appointments))
	}
}

func TestDocumentIDsUniqueAndRatingsInRange(t *testing.T) {
	doc := Document(fixedNow)

	for name, ids := range map[string][]string{
		"services":     collect(len(doc.Services), func(i int) string { return doc.Services[i].ID }),
		"portfolio":    collect(len(doc.Portfolio), func(i int) string { return doc.Portfolio[i].ID }),
		"appointments": collect(len(doc.Appointments), func(i int) string { return doc.Appointments[i].ID }),
		"clients":      collect(len(doc.Clients), func(i int) string { return doc.Clients[i].ID }),
		"testimonials": collect(len(doc.Testimonials), func(i int) string { return doc.Testimonials[i].ID }),
	} {
		seen := make(map[string]bool)
		for _, id := range ids {
			if id == "" {
				t.Errorf("%s: empty id", name)
			}
			if seen[id] {
				t.Errorf("%s: duplicate id %q", name, id)
			}
			seen[id] = true
		}
	}

	for _, tm := range doc.Testimonials {
		if tm.Rating < 1 || tm.Rating > 5 {
			t.Errorf("testimonial %s rating %d out of range", tm.ID, tm.Rating)
		}
	}
}

func TestAppointmentDatesDeriveFromClock(t *testing.T) {
	doc := Document(fixedNow)

	if doc.Appointments[0].Date != "2024-01-10" {
		t.Errorf("first appointment date = %q, want 2024-01-10", doc.Appointments[0].Date)
	}
	if doc.Appointments[1].Date != "2024-01-11" {
		t.Errorf("second appointment date = %q, want 2024-01-11", doc.Appointments[1].Date)
	}
}

func collect(n int, get func(i int) string) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = get(i)
	}
	return out
}
