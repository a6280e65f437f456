package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/SIRETECH254/sire-payment-tracker/internal/handlers"
	"github.com/SIRETECH254/sire-payment-tracker/internal/tracker"
	"github.com/SIRETECH254/sire-payment-tracker/internal/tracker/mocks"
)

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockQueryClient, *mocks.MockRealtimeChannel) {
	gin.SetMode(gin.TestMode)

	mockQuery := mocks.NewMockQueryClient(t)
	mockChannel := mocks.NewMockRealtimeChannel(t)
	tr := tracker.NewTracker(mockQuery, mockChannel, nil, nil, nil, tracker.Options{
		FallbackTimeout: time.Hour,
	})
	h := handlers.NewTrackingHandler(tr, nil, nil)

	router := gin.New()
	router.GET("/health", h.Health)
	tracking := router.Group("/tracking")
	tracking.POST("", h.StartTracking)
	tracking.GET("/:id", h.GetTracking)
	tracking.DELETE("/:id", h.StopTracking)
	payments := router.Group("/payments")
	payments.GET("/:paymentId/status", h.GetResolvedStatus)
	payments.GET("/:paymentId/history", h.GetPaymentHistory)

	return router, mockQuery, mockChannel
}

func allowBackgroundCalls(t *testing.T, mockQuery *mocks.MockQueryClient, mockChannel *mocks.MockRealtimeChannel) {
	mockQuery.EXPECT().
		GetPayment(mock.Anything, mock.Anything).
		Return(nil, errors.New("payment not found")).
		Maybe()

	mockSub := mocks.NewMockSubscription(t)
	mockSub.EXPECT().Unsubscribe().Maybe()
	mockChannel.EXPECT().
		Subscribe(mock.Anything, mock.Anything).
		Return(mockSub, nil).
		Maybe()
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestStartTracking_Created(t *testing.T) {
	router, mockQuery, mockChannel := newTestRouter(t)
	allowBackgroundCalls(t, mockQuery, mockChannel)

	recorder := doRequest(router, http.MethodPost, "/tracking",
		`{"payment_id":"p1","method":"MPESA","checkout_id":"chk1"}`)

	assert.Equal(t, http.StatusCreated, recorder.Code)

	var snapshot tracker.Snapshot
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &snapshot))
	assert.NotEmpty(t, snapshot.SessionID)
	assert.Equal(t, "p1", snapshot.PaymentID)
	assert.Equal(t, "pending", string(snapshot.Status))
	assert.True(t, snapshot.FallbackArmed)
}

func TestStartTracking_InvalidBody(t *testing.T) {
	router, _, _ := newTestRouter(t)

	recorder := doRequest(router, http.MethodPost, "/tracking", `{"payment_id":`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestStartTracking_MissingPaymentID(t *testing.T) {
	router, _, _ := newTestRouter(t)

	recorder := doRequest(router, http.MethodPost, "/tracking", `{"method":"mpesa"}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "payment ID is required")
}

func TestStartTracking_UnknownMethod(t *testing.T) {
	router, _, _ := newTestRouter(t)

	recorder := doRequest(router, http.MethodPost, "/tracking",
		`{"payment_id":"p1","method":"cheque"}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "invalid payment method")
}

func TestGetTracking_NotFound(t *testing.T) {
	router, _, _ := newTestRouter(t)

	recorder := doRequest(router, http.MethodGet, "/tracking/unknown", "")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestTrackingLifecycle(t *testing.T) {
	router, mockQuery, mockChannel := newTestRouter(t)
	allowBackgroundCalls(t, mockQuery, mockChannel)

	created := doRequest(router, http.MethodPost, "/tracking",
		`{"payment_id":"p1","method":"paystack"}`)
	assert.Equal(t, http.StatusCreated, created.Code)

	var snapshot tracker.Snapshot
	assert.NoError(t, json.Unmarshal(created.Body.Bytes(), &snapshot))

	fetched := doRequest(router, http.MethodGet, "/tracking/"+snapshot.SessionID, "")
	assert.Equal(t, http.StatusOK, fetched.Code)

	deleted := doRequest(router, http.MethodDelete, "/tracking/"+snapshot.SessionID, "")
	assert.Equal(t, http.StatusNoContent, deleted.Code)

	// Deleting again is a no-op.
	deleted = doRequest(router, http.MethodDelete, "/tracking/"+snapshot.SessionID, "")
	assert.Equal(t, http.StatusNoContent, deleted.Code)

	gone := doRequest(router, http.MethodGet, "/tracking/"+snapshot.SessionID, "")
	assert.Equal(t, http.StatusNotFound, gone.Code)
}

func TestGetResolvedStatus_CacheNotConfigured(t *testing.T) {
	router, _, _ := newTestRouter(t)

	recorder := doRequest(router, http.MethodGet, "/payments/p1/status", "")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestGetPaymentHistory_StoreNotConfigured(t *testing.T) {
	router, _, _ := newTestRouter(t)

	recorder := doRequest(router, http.MethodGet, "/payments/p1/history", "")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHealth(t *testing.T) {
	router, _, _ := newTestRouter(t)

	recorder := doRequest(router, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
}
