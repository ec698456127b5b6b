package apiclient

import (
	"encoding/json"
	"fmt"
	"strings"
)

// NetworkError wraps a failure where no response reached the server.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error on %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Message returns the fixed user-facing fallback for transport failures,
// distinct from any server-produced message.
func (e *NetworkError) Message() string {
	return "the server could not be reached"
}

// ServerError carries a failure response received from the API. Message is
// the normalized human-readable text extracted from the error payload.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error (status %d): %s", e.StatusCode, e.Message)
}

// errorPayload is the backend's error body shape. Either field may be set.
type errorPayload struct {
	Message      string `json:"message"`
	ErrorMessage string `json:"errorMessage"`
}

// newServerError extracts the error message in fixed precedence order:
// structured message field, then errorMessage field, then the raw payload
// text, then a generic fallback.
func newServerError(status int, body []byte) *ServerError {
	var payload errorPayload
	if err := json.Unmarshal(body, &payload); err == nil {
		if m := strings.TrimSpace(payload.Message); m != "" {
			return &ServerError{StatusCode: status, Message: m}
		}
		if m := strings.TrimSpace(payload.ErrorMessage); m != "" {
			return &ServerError{StatusCode: status, Message: m}
		}
	}
	if m := strings.TrimSpace(string(body)); m != "" {
		return &ServerError{StatusCode: status, Message: m}
	}
	return &ServerError{StatusCode: status, Message: fmt.Sprintf("request failed with status %d", status)}
}

// UserMessage maps any gateway error to the text shown in feedback.
func UserMessage(err error) string {
	switch e := err.(type) {
	case *ServerError:
		return e.Message
	case *NetworkError:
		return e.Message()
	default:
		if err == nil {
			return ""
		}
		return err.Error()
	}
}
