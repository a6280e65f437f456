package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/SIRETECH254/sire-payment-tracker/internal/models"
	"github.com/SIRETECH254/sire-payment-tracker/internal/models/dto"
	"github.com/SIRETECH254/sire-payment-tracker/internal/tracker"
)

type TrackingService interface {
	Start(paymentID string, method models.PaymentMethod, checkoutID string) (*tracker.Session, error)
	Get(sessionID string) (*tracker.Session, bool)
	Stop(sessionID string) bool
}

type HistoryReader interface {
	GetBy(ctx context.Context, key string, value interface{}) (*[]models.TrackingRecord, error)
}

type StatusReader interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
}

type TrackingHandler struct {
	Service TrackingService
	History HistoryReader
	Status  StatusReader
}

func NewTrackingHandler(s TrackingService, history HistoryReader, status StatusReader) *TrackingHandler {
	return &TrackingHandler{Service: s, History: history, Status: status}
}

// POST /tracking
func (h *TrackingHandler) StartTracking(c *gin.Context) {
	var req dto.TrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	req.Sanitize()
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.Service.Start(req.PaymentID, models.PaymentMethod(req.Method), req.CheckoutID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, session.Snapshot())
}

// GET /tracking/:id
func (h *TrackingHandler) GetTracking(c *gin.Context) {
	session, ok := h.Service.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "tracking session not found"})
		return
	}

	c.JSON(http.StatusOK, session.Snapshot())
}

// DELETE /tracking/:id
func (h *TrackingHandler) StopTracking(c *gin.Context) {
	h.Service.Stop(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// GET /payments/:paymentId/status
//
// Reads the cached terminal outcome for a payment, for consumers arriving
// after the tracking session was deleted.
func (h *TrackingHandler) GetResolvedStatus(c *gin.Context) {
	if h.Status == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "status cache not configured"})
		return
	}

	var record models.TrackingRecord
	found, err := h.Status.Get(c.Request.Context(), c.Param("paymentId"), &record)
	if err != nil {
		logrus.Errorf("error reading status cache %s", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error reading status cache"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "no resolved status for payment"})
		return
	}

	c.JSON(http.StatusOK, record)
}

// GET /payments/:paymentId/history
func (h *TrackingHandler) GetPaymentHistory(c *gin.Context) {
	if h.History == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "history store not configured"})
		return
	}

	records, err := h.History.GetBy(c.Request.Context(), "payment_id", c.Param("paymentId"))
	if err != nil {
		logrus.Errorf("error reading tracking history %s", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error reading tracking history"})
		return
	}

	c.JSON(http.StatusOK, records)
}

// GET /health
func (h *TrackingHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
