package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/glowstudio/landing-builder/internal/assist"
	"github.com/glowstudio/landing-builder/internal/httperr"
	"github.com/glowstudio/landing-builder/internal/httpresp"
)

type AssistHandler struct {
	improver assist.Improver
}

func NewAssistHandler(improver assist.Improver) *AssistHandler {
	return &AssistHandler{improver: improver}
}

type ImproveAboutRequest struct {
	Text string `json:"text"`
}

type DescribeServiceRequest struct {
	ServiceName string `json:"serviceName" binding:"required"`
}

// ImproveAbout rewrites the "about me" text through the assist service.
func (h *AssistHandler) ImproveAbout(c *gin.Context) {
	var req ImproveAboutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Некорректный запрос.")
		return
	}

	h.improve(c, assist.AboutPrompt(req.Text))
}

// DescribeService generates a short description for a named service.
func (h *AssistHandler) DescribeService(c *gin.Context) {
	var req DescribeServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Название услуги обязательно.")
		return
	}

	h.improve(c, assist.ServicePrompt(req.ServiceName))
}

func (h *AssistHandler) improve(c *gin.Context, prompt string) {
	if !h.improver.Enabled() {
		httperr.Unavailable(c, httperr.CodeAssistUnavailable, "AI сервис не доступен.")
		return
	}

	text, err := h.improver.Improve(c.Request.Context(), prompt)
	if err != nil {
		httperr.Unavailable(c, httperr.CodeAssistUnavailable, "Не удалось сгенерировать текст.")
		return
	}

	httpresp.OK(c, gin.H{"text": text})
}
