package client

import (
	"encoding/json"
	"fmt"
)

// CodeValidation is the backend error code signalling a field-level
// validation failure. Its details map one message per offending field.
const CodeValidation = "VALIDATION_ERROR"

// FieldDetail is one entry of a validation error's details list.
type FieldDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError is the backend's structured error payload. ShouldRefresh is the
// server's hint that the rejected access token can be exchanged via the
// refresh endpoint.
type APIError struct {
	StatusCode    int           `json:"-"`
	Code          string        `json:"code"`
	Message       string        `json:"message"`
	Details       []FieldDetail `json:"details"`
	ShouldRefresh bool          `json:"shouldRefresh"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error (status %d)", e.StatusCode)
}

// parseAPIError decodes an error response body. Bodies that are not the
// expected shape degrade to a bare status error.
func parseAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}
	if len(body) > 0 {
		_ = json.Unmarshal(body, apiErr)
	}
	return apiErr
}
