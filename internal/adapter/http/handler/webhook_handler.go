package handler

import (
	"net/http"

	"tipbot/internal/adapter/http/dto"
	"tipbot/internal/adapter/http/middleware"
	"tipbot/internal/core/ports"
	"tipbot/pkg/apperror"
	"tipbot/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// WebhookHandler receives comment events from the messaging platform.
type WebhookHandler struct {
	processor ports.TipProcessor
	platform  ports.PlatformClient
	log       zerolog.Logger
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(processor ports.TipProcessor, platform ports.PlatformClient, log zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{processor: processor, platform: platform, log: log}
}

// HandleComment handles POST /webhooks/comments. Non-command comments
// are acknowledged without action; tip commands always produce exactly
// one reply in the thread.
func (h *WebhookHandler) HandleComment(c *gin.Context) {
	var req dto.CommentEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.InvalidArgument(err.Error()))
		return
	}

	deliveryID, _ := c.Get(middleware.CtxDelivery)

	ev := ports.CommentEvent{
		DeliveryID:   deliveryID.(string),
		ThreadRef:    req.ThreadRef,
		Body:         req.Body,
		SenderID:     req.SenderID,
		SenderHandle: req.SenderHandle,
	}

	reply, handled := h.processor.HandleComment(c.Request.Context(), ev)
	if !handled {
		c.Status(http.StatusNoContent)
		return
	}

	if err := h.platform.PostReply(c.Request.Context(), req.ThreadRef, reply); err != nil {
		h.log.Error().Err(err).Str("thread_ref", req.ThreadRef).Msg("failed to post tip reply")
	}

	c.Status(http.StatusNoContent)
}
