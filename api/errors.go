package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error is a server-reported failure. The backend answers errors with a
// "message" field holding either a plain string or a list of
// {message: ...} field errors; both collapse into this one type.
type Error struct {
	Status   int
	Message  string
	Messages []string // populated for validation failures
}

func (e *Error) Error() string {
	if len(e.Messages) > 0 {
		return fmt.Sprintf("api: %s (%d)", e.Messages[0], e.Status)
	}
	if e.Message != "" {
		return fmt.Sprintf("api: %s (%d)", e.Message, e.Status)
	}
	return fmt.Sprintf("api: %s", http.StatusText(e.Status))
}

// Lines returns the user-facing message line(s).
func (e *Error) Lines() []string {
	if len(e.Messages) > 0 {
		return e.Messages
	}
	if e.Message != "" {
		return []string{e.Message}
	}
	return []string{http.StatusText(e.Status)}
}

type errorBody struct {
	Message json.RawMessage `json:"message"`
}

func parseError(status int, body []byte) *Error {
	apiErr := &Error{Status: status}

	var wire errorBody
	if err := json.Unmarshal(body, &wire); err != nil || len(wire.Message) == 0 {
		return apiErr
	}

	var plain string
	if err := json.Unmarshal(wire.Message, &plain); err == nil {
		apiErr.Message = plain
		return apiErr
	}

	var fields []struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(wire.Message, &fields); err == nil {
		for _, f := range fields {
			if f.Message != "" {
				apiErr.Messages = append(apiErr.Messages, f.Message)
			}
		}
	}
	return apiErr
}

// UserLines extracts displayable lines from any error coming out of the
// client: server-reported messages when available, otherwise the plain
// error text (transport failures).
func UserLines(err error) []string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Lines()
	}
	return []string{err.Error()}
}
