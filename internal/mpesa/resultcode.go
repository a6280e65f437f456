// Package mpesa maps Daraja gateway result codes onto payment statuses.
//
// Result codes reach us from two sources with different shapes: realtime
// callback events and the synchronous status-query endpoint. Both are pushed
// through CodeFromJSON first so the decision table only ever sees an
// integer-or-nil.
package mpesa

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/SIRETECH254/sire-payment-tracker/internal/models"
)

// Resolution is the outcome of mapping one result code.
type Resolution struct {
	Status  models.PaymentStatus
	Message string
}

type tableEntry struct {
	status  models.PaymentStatus
	message string
}

var resultTable = map[int]tableEntry{
	0:    {models.StatusCompleted, ""},
	1:    {models.StatusFailed, "Insufficient balance"},
	1032: {models.StatusCancelled, "Cancelled by user"},
	1037: {models.StatusFailed, "Timeout reaching phone"},
	2001: {models.StatusFailed, "Wrong PIN entered"},
	1001: {models.StatusFailed, "Unable to complete transaction"},
	1019: {models.StatusFailed, "Transaction expired"},
	1025: {models.StatusFailed, "Invalid phone number"},
	1026: {models.StatusFailed, "System error"},
	1036: {models.StatusFailed, "Internal error"},
	1050: {models.StatusFailed, "Too many attempts"},
	9999: {models.StatusProcessing, ""},
}

// Resolve maps a normalized result code to a status and message. It is total:
// any code not in the table, including nil, resolves to failed with the
// payload message or a generic description. 9999 means the gateway is still
// waiting on the subscriber and stays non-terminal.
func Resolve(code *int, payloadMessage string) Resolution {
	if code != nil {
		if entry, ok := resultTable[*code]; ok {
			return Resolution{Status: entry.status, Message: entry.message}
		}
	}

	message := strings.TrimSpace(payloadMessage)
	if message == "" {
		if code != nil {
			message = fmt.Sprintf("Transaction failed with code %d", *code)
		} else {
			message = "Transaction failed with unknown result code"
		}
	}

	return Resolution{Status: models.StatusFailed, Message: message}
}

// CodeFromJSON coerces the first decodable candidate field to an integer.
// Gateway payloads carry the code as a JSON number ("CODE": 0), a numeric
// string ("code": "1032"), or not at all; nil means no usable code was found.
func CodeFromJSON(candidates ...json.RawMessage) *int {
	for _, raw := range candidates {
		if len(raw) == 0 || string(raw) == "null" {
			continue
		}

		var asNumber float64
		if err := json.Unmarshal(raw, &asNumber); err == nil {
			code := int(asNumber)
			return &code
		}

		var asString string
		if err := json.Unmarshal(raw, &asString); err == nil {
			if code, err := strconv.Atoi(strings.TrimSpace(asString)); err == nil {
				return &code
			}
		}
	}

	return nil
}
