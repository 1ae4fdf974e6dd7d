package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-billing-service/internal/metrics"
	"github.com/jeffleon2/draftea-billing-service/internal/models"
	"github.com/jeffleon2/draftea-billing-service/internal/models/dto"
	"github.com/sirupsen/logrus"
)

type NotificationService interface {
	ProcessNotification(ctx context.Context, key string, event *dto.BitPayEvent) (models.Result, error)
}

type BitPayHandler struct {
	Service NotificationService
}

func NewBitPayHandler(s NotificationService) *BitPayHandler {
	return &BitPayHandler{Service: s}
}

// POST /bitpay/ipn?key=<webhook key>
//
// BitPay only ever sees 400 for bad keys, malformed bodies and forged
// invoices, and 500 when it should retry. Everything else is acknowledged.
func (h *BitPayHandler) PostIPN(c *gin.Context) {
	var body dto.BitPayEvent
	event := &body
	if err := c.ShouldBindJSON(&body); err != nil {
		event = nil
	}

	result, err := h.Service.ProcessNotification(c.Request.Context(), c.Query("key"), event)
	if err != nil {
		logrus.Errorf("Error processing BitPay notification: %s", err.Error())
		metrics.NotificationsTotal.WithLabelValues("failed", "error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "notification could not be processed"})
		return
	}

	metrics.NotificationsTotal.WithLabelValues(string(result.Outcome), result.Reason).Inc()

	if result.Outcome == models.OutcomeRejected {
		c.JSON(http.StatusBadRequest, gin.H{"error": result.Reason})
		return
	}

	c.JSON(http.StatusOK, gin.H{"outcome": result.Outcome, "reason": result.Reason})
}

// GET /health
func (h *BitPayHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
