package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/glowstudio/landing-builder/internal/domain/booking"
	"github.com/glowstudio/landing-builder/internal/httperr"
	"github.com/glowstudio/landing-builder/internal/httpresp"
	"github.com/glowstudio/landing-builder/internal/middleware"
	ucbooking "github.com/glowstudio/landing-builder/internal/usecase/booking"
)

type BookingHandler struct {
	create *ucbooking.CreateBooking
}

func NewBookingHandler(create *ucbooking.CreateBooking) *BookingHandler {
	return &BookingHandler{create: create}
}

type BookingRequest struct {
	Name        string `json:"name"`
	ServiceName string `json:"serviceName"`
	Date        string `json:"date"` // YYYY-MM-DD
	Time        string `json:"time"` // HH:mm
}

// Book appends an appointment to the caller's document and merges the booked
// name into the client list.
func (h *BookingHandler) Book(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidBooking, "Все поля записи обязательны.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), userID, domain.Input{
		Name:        req.Name,
		ServiceName: req.ServiceName,
		Date:        req.Date,
		Time:        req.Time,
	})
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeInvalidBooking) {
			httperr.BadRequest(c, httperr.CodeInvalidBooking, "Все поля записи обязательны.")
			return
		}
		httperr.Internal(c, httperr.CodeStorageFailure, "Не удалось создать запись.")
		return
	}

	httpresp.Created(c, ap)
}
