package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/glowstudio/landing-builder/internal/defaults"
	"github.com/glowstudio/landing-builder/internal/httperr"
	"github.com/glowstudio/landing-builder/internal/httpresp"
	"github.com/glowstudio/landing-builder/internal/middleware"
	"github.com/glowstudio/landing-builder/internal/models"
	"github.com/glowstudio/landing-builder/internal/store"
	"github.com/glowstudio/landing-builder/internal/timezone"
	ucbooking "github.com/glowstudio/landing-builder/internal/usecase/booking"
)

type DataHandler struct {
	docs   *store.Documents
	notify ucbooking.Notifier
	tz     string
}

func NewDataHandler(docs *store.Documents, notify ucbooking.Notifier, tz string) *DataHandler {
	return &DataHandler{docs: docs, notify: notify, tz: tz}
}

// GetData returns the caller's document, provisioning a default on first use.
func (h *DataHandler) GetData(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	doc, err := h.docs.Get(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, httperr.CodeStorageFailure, "Не удалось загрузить данные.")
		return
	}

	httpresp.OK(c, doc)
}

// PutData replaces the caller's document wholesale.
func (h *DataHandler) PutData(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var doc models.LandingPageData
	if err := c.ShouldBindJSON(&doc); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidDocument, "Invalid data format provided.")
		return
	}

	if err := h.docs.Put(c.Request.Context(), userID, &doc); err != nil {
		if httperr.IsBusiness(err, httperr.CodeInvalidDocument) {
			httperr.BadRequest(c, httperr.CodeInvalidDocument, "Invalid data format provided.")
			return
		}
		httperr.Internal(c, httperr.CodeStorageFailure, "Не удалось сохранить данные.")
		return
	}

	if h.notify != nil {
		h.notify.DocumentUpdated(userID, &doc)
	}

	httpresp.Message(c, "Data updated successfully")
}

// Reset overwrites the caller's document with the built-in default.
func (h *DataHandler) Reset(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	doc, err := h.docs.Reset(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, httperr.CodeStorageFailure, "Не удалось сбросить данные.")
		return
	}

	if h.notify != nil {
		h.notify.DocumentUpdated(userID, doc)
	}

	httpresp.OK(c, doc)
}

// InitialData serves the default document without auth, for editors that want
// a starting point before an account exists.
func (h *DataHandler) InitialData(c *gin.Context) {
	httpresp.OK(c, defaults.Document(timezone.NowIn(h.tz)))
}
