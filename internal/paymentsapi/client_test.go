package paymentsapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SIRETECH254/sire-payment-tracker/internal/paymentsapi"
	"github.com/stretchr/testify/assert"
)

func newTestServer(t *testing.T, path string, status int, body string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, path, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return server
}

func TestGetPayment_TopLevel(t *testing.T) {
	server := newTestServer(t, "/payments/p1", http.StatusOK,
		`{"_id":"p1","status":"processing","paymentMethod":"mpesa","amount":1500}`)
	client := paymentsapi.NewClient(server.URL, time.Second)

	payment, err := client.GetPayment(context.Background(), "p1")

	assert.NoError(t, err)
	assert.Equal(t, "p1", payment.ID)
	assert.Equal(t, "processing", payment.Status)
	assert.Equal(t, 1500.0, payment.Amount)
}

func TestGetPayment_NestedUnderData(t *testing.T) {
	server := newTestServer(t, "/payments/p1", http.StatusOK,
		`{"data":{"_id":"p1","status":"pending","paymentMethod":"paystack"}}`)
	client := paymentsapi.NewClient(server.URL, time.Second)

	payment, err := client.GetPayment(context.Background(), "p1")

	assert.NoError(t, err)
	assert.Equal(t, "pending", payment.Status)
}

func TestGetPayment_NestedUnderDataPayment(t *testing.T) {
	server := newTestServer(t, "/payments/p1", http.StatusOK,
		`{"data":{"payment":{"_id":"p1","status":"completed","transactionReference":"TX99"}}}`)
	client := paymentsapi.NewClient(server.URL, time.Second)

	payment, err := client.GetPayment(context.Background(), "p1")

	assert.NoError(t, err)
	assert.Equal(t, "completed", payment.Status)
	assert.Equal(t, "TX99", payment.TransactionReference)
}

func TestGetPayment_EmptyBodyFallsBackToRequestedID(t *testing.T) {
	server := newTestServer(t, "/payments/p1", http.StatusOK, `{}`)
	client := paymentsapi.NewClient(server.URL, time.Second)

	payment, err := client.GetPayment(context.Background(), "p1")

	assert.NoError(t, err)
	assert.Equal(t, "p1", payment.ID)
	assert.Empty(t, payment.Status)
}

func TestGetPayment_ServerError(t *testing.T) {
	server := newTestServer(t, "/payments/p1", http.StatusInternalServerError, `{"error":"boom"}`)
	client := paymentsapi.NewClient(server.URL, time.Second)

	payment, err := client.GetPayment(context.Background(), "p1")

	assert.Error(t, err)
	assert.Nil(t, payment)
	assert.Contains(t, err.Error(), "500")
}

func TestQueryMpesaStatus_NumericStringCode(t *testing.T) {
	server := newTestServer(t, "/payments/mpesa-status/chk1", http.StatusOK,
		`{"resultCode":"0","resultDesc":"The service request is processed successfully."}`)
	client := paymentsapi.NewClient(server.URL, time.Second)

	result, err := client.QueryMpesaStatus(context.Background(), "chk1")

	assert.NoError(t, err)
	assert.NotNil(t, result.Code)
	assert.Equal(t, 0, *result.Code)
	assert.Equal(t, "The service request is processed successfully.", result.Description)
}

func TestQueryMpesaStatus_RawResultCode(t *testing.T) {
	server := newTestServer(t, "/payments/mpesa-status/chk1", http.StatusOK,
		`{"raw":{"ResultCode":1032,"ResultDesc":"Request cancelled by user"}}`)
	client := paymentsapi.NewClient(server.URL, time.Second)

	result, err := client.QueryMpesaStatus(context.Background(), "chk1")

	assert.NoError(t, err)
	assert.NotNil(t, result.Code)
	assert.Equal(t, 1032, *result.Code)
	assert.Equal(t, "Request cancelled by user", result.Description)
}

func TestQueryMpesaStatus_UppercaseCodeWrappedInData(t *testing.T) {
	server := newTestServer(t, "/payments/mpesa-status/chk1", http.StatusOK,
		`{"data":{"CODE":"1037","message":"DS timeout"}}`)
	client := paymentsapi.NewClient(server.URL, time.Second)

	result, err := client.QueryMpesaStatus(context.Background(), "chk1")

	assert.NoError(t, err)
	assert.NotNil(t, result.Code)
	assert.Equal(t, 1037, *result.Code)
	assert.Equal(t, "DS timeout", result.Description)
}

func TestQueryMpesaStatus_MissingCode(t *testing.T) {
	server := newTestServer(t, "/payments/mpesa-status/chk1", http.StatusOK,
		`{"resultDesc":"Payment status unknown"}`)
	client := paymentsapi.NewClient(server.URL, time.Second)

	result, err := client.QueryMpesaStatus(context.Background(), "chk1")

	assert.NoError(t, err)
	assert.Nil(t, result.Code)
	assert.Equal(t, "Payment status unknown", result.Description)
}

func TestQueryMpesaStatus_TransportError(t *testing.T) {
	client := paymentsapi.NewClient("http://127.0.0.1:1", 100*time.Millisecond)

	result, err := client.QueryMpesaStatus(context.Background(), "chk1")

	assert.Error(t, err)
	assert.Nil(t, result)
}
