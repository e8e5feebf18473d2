package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/glowstudio/landing-builder/internal/domain/booking"
	"github.com/glowstudio/landing-builder/internal/models"
	"github.com/glowstudio/landing-builder/internal/store"
)

// Notifier pushes the updated document to live-preview sessions.
type Notifier interface {
	DocumentUpdated(userID string, doc *models.LandingPageData)
}

type CreateBooking struct {
	docs   *store.Documents
	notify Notifier
	newID  func() string
	loc    *time.Location
}

func NewCreateBooking(
	docs *store.Documents,
	notify Notifier,
	newID func() string,
	loc *time.Location,
) *CreateBooking {
	if newID == nil {
		newID = uuid.NewString
	}
	if loc == nil {
		loc = time.UTC
	}

	return &CreateBooking{
		docs:   docs,
		notify: notify,
		newID:  newID,
		loc:    loc,
	}
}

// Execute loads the caller's document, merges the booking into it and persists
// the result. The caller's document grows by exactly one appointment and
// exactly one client record is touched or created.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	userID string,
	in domain.Input,
) (*models.Appointment, error) {

	doc, err := uc.docs.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	res, err := domain.Reconcile(in, doc.Clients, doc.Appointments, uc.newID, uc.loc)
	if err != nil {
		return nil, err
	}

	doc.Appointments = res.Appointments
	doc.Clients = res.Clients

	if err := uc.docs.Put(ctx, userID, doc); err != nil {
		return nil, err
	}

	if uc.notify != nil {
		uc.notify.DocumentUpdated(userID, doc)
	}

	return &res.Appointment, nil
}
