package mpesa_test

import (
	"encoding/json"
	"testing"

	"github.com/SIRETECH254/sire-payment-tracker/internal/models"
	"github.com/SIRETECH254/sire-payment-tracker/internal/mpesa"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int {
	return &v
}

func TestResolve_KnownCodes(t *testing.T) {
	tests := []struct {
		code    int
		status  models.PaymentStatus
		message string
	}{
		{0, models.StatusCompleted, ""},
		{1, models.StatusFailed, "Insufficient balance"},
		{1032, models.StatusCancelled, "Cancelled by user"},
		{1037, models.StatusFailed, "Timeout reaching phone"},
		{2001, models.StatusFailed, "Wrong PIN entered"},
		{1001, models.StatusFailed, "Unable to complete transaction"},
		{1019, models.StatusFailed, "Transaction expired"},
		{1025, models.StatusFailed, "Invalid phone number"},
		{1026, models.StatusFailed, "System error"},
		{1036, models.StatusFailed, "Internal error"},
		{1050, models.StatusFailed, "Too many attempts"},
		{9999, models.StatusProcessing, ""},
	}

	for _, tc := range tests {
		resolution := mpesa.Resolve(intPtr(tc.code), "")
		assert.Equal(t, tc.status, resolution.Status, "code %d", tc.code)
		assert.Equal(t, tc.message, resolution.Message, "code %d", tc.code)
	}
}

func TestResolve_UnknownCodeUsesPayloadMessage(t *testing.T) {
	resolution := mpesa.Resolve(intPtr(4242), "Request rejected by gateway")

	assert.Equal(t, models.StatusFailed, resolution.Status)
	assert.Equal(t, "Request rejected by gateway", resolution.Message)
}

func TestResolve_UnknownCodeGenericMessage(t *testing.T) {
	resolution := mpesa.Resolve(intPtr(4242), "")

	assert.Equal(t, models.StatusFailed, resolution.Status)
	assert.Equal(t, "Transaction failed with code 4242", resolution.Message)
}

func TestResolve_NegativeCode(t *testing.T) {
	resolution := mpesa.Resolve(intPtr(-1), "")

	assert.Equal(t, models.StatusFailed, resolution.Status)
	assert.Equal(t, "Transaction failed with code -1", resolution.Message)
}

func TestResolve_MissingCode(t *testing.T) {
	resolution := mpesa.Resolve(nil, "")

	assert.Equal(t, models.StatusFailed, resolution.Status)
	assert.Equal(t, "Transaction failed with unknown result code", resolution.Message)
}

func TestResolve_MissingCodeWithMessage(t *testing.T) {
	resolution := mpesa.Resolve(nil, "Payment processing completed")

	assert.Equal(t, models.StatusFailed, resolution.Status)
	assert.Equal(t, "Payment processing completed", resolution.Message)
}

func TestCodeFromJSON_Number(t *testing.T) {
	code := mpesa.CodeFromJSON(json.RawMessage(`1032`))

	assert.NotNil(t, code)
	assert.Equal(t, 1032, *code)
}

func TestCodeFromJSON_NumericString(t *testing.T) {
	code := mpesa.CodeFromJSON(json.RawMessage(`"0"`))

	assert.NotNil(t, code)
	assert.Equal(t, 0, *code)
}

func TestCodeFromJSON_PaddedString(t *testing.T) {
	code := mpesa.CodeFromJSON(json.RawMessage(`" 1037 "`))

	assert.NotNil(t, code)
	assert.Equal(t, 1037, *code)
}

func TestCodeFromJSON_FirstCandidateWins(t *testing.T) {
	code := mpesa.CodeFromJSON(json.RawMessage(`"1"`), json.RawMessage(`2`))

	assert.NotNil(t, code)
	assert.Equal(t, 1, *code)
}

func TestCodeFromJSON_SkipsUndecodableCandidates(t *testing.T) {
	code := mpesa.CodeFromJSON(nil, json.RawMessage(`null`), json.RawMessage(`"abc"`), json.RawMessage(`9999`))

	assert.NotNil(t, code)
	assert.Equal(t, 9999, *code)
}

func TestCodeFromJSON_NothingUsable(t *testing.T) {
	assert.Nil(t, mpesa.CodeFromJSON())
	assert.Nil(t, mpesa.CodeFromJSON(nil, json.RawMessage(`null`), json.RawMessage(`"not-a-code"`), json.RawMessage(`{"nested":true}`)))
}
