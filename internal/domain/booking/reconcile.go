// Package booking merges a booked appointment into the document's clients and
// appointments collections.
package booking

import (
	"strings"
	"time"

	"github.com/glowstudio/landing-builder/internal/httperr"
	"github.com/glowstudio/landing-builder/internal/models"
)

const dateLayout = "2006-01-02"

// AutoClientNote marks clients created from the public booking form.
const AutoClientNote = "Создан автоматически через форму записи."

type Input struct {
	Name        string
	ServiceName string
	Date        string // YYYY-MM-DD
	Time        string // HH:mm
}

type Result struct {
	Appointment  models.Appointment
	Appointments []models.Appointment
	Clients      []models.Client
}

// Reconcile appends one appointment and touches exactly one client record:
// an existing client whose trimmed, case-folded name matches the booking name
// gets the booking date appended to its visit history; otherwise a new client
// is created. Matching by name rather than id is the intended business rule —
// two bookings under "Anna " and "anna" belong to the same client.
//
// The function is pure apart from id generation; inputs are not mutated.
func Reconcile(
	in Input,
	clients []models.Client,
	appointments []models.Appointment,
	newID func() string,
	loc *time.Location,
) (*Result, error) {

	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.ServiceName) == "" ||
		strings.TrimSpace(in.Date) == "" ||
		strings.TrimSpace(in.Time) == "" {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidBooking)
	}

	visitDate, err := time.ParseInLocation(dateLayout, in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidBooking)
	}

	ap := models.Appointment{
		ID:          newID(),
		ClientName:  in.Name,
		ServiceName: in.ServiceName,
		Date:        in.Date,
		Time:        in.Time,
	}

	wanted := normalizeName(in.Name)

	updatedClients := make([]models.Client, len(clients))
	copy(updatedClients, clients)

	matched := -1
	for i, client := range updatedClients {
		if normalizeName(client.Name) == wanted {
			matched = i
			break
		}
	}

	if matched >= 0 {
		existing := updatedClients[matched]
		history := make([]time.Time, len(existing.VisitHistory), len(existing.VisitHistory)+1)
		copy(history, existing.VisitHistory)
		existing.VisitHistory = append(history, visitDate)
		updatedClients[matched] = existing
	} else {
		updatedClients = append(updatedClients, models.Client{
			ID:           newID(),
			Name:         strings.TrimSpace(in.Name),
			Phone:        "",
			Email:        "",
			Notes:        AutoClientNote,
			VisitHistory: []time.Time{visitDate},
		})
	}

	updatedAppointments := make([]models.Appointment, len(appointments), len(appointments)+1)
	copy(updatedAppointments, appointments)
	updatedAppointments = append(updatedAppointments, ap)

	return &Result{
		Appointment:  ap,
		Appointments: updatedAppointments,
		Clients:      updatedClients,
	}, nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
