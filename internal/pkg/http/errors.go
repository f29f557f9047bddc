package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
)

// APIError is an error response from the finance API. Rejections of mutating
// calls come back as a field-keyed body ({"field": ["message", ...]}), which
// is kept so forms can map server errors onto the same display as local
// validation. Non-field messages ("detail", "error") end up in Detail.
type APIError struct {
	StatusCode  int
	Detail      string
	FieldErrors map[string]string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Detail)
	}
	if len(e.FieldErrors) > 0 {
		return fmt.Sprintf("API error %d: %d field error(s)", e.StatusCode, len(e.FieldErrors))
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// HasFieldErrors reports whether the rejection body was field-keyed.
func (e *APIError) HasFieldErrors() bool {
	return len(e.FieldErrors) > 0
}

// AsAPIError unwraps err into an *APIError if it carries one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func decodeAPIError(resp *nethttp.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return apiErr
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return apiErr
	}

	for key, raw := range payload {
		msg := firstMessage(raw)
		if msg == "" {
			continue
		}
		switch key {
		case "detail", "error", "non_field_errors":
			apiErr.Detail = msg
		default:
			if apiErr.FieldErrors == nil {
				apiErr.FieldErrors = make(map[string]string)
			}
			apiErr.FieldErrors[key] = msg
		}
	}

	return apiErr
}

// firstMessage extracts a display message from a DRF error value, which may
// be a string or a list of strings.
func firstMessage(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
		return list[0]
	}
	return ""
}
