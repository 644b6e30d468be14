package statsapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var ErrNotFound = errors.New("not found")

// APIError is a non-2xx answer from the stats API. Detail holds FastAPI's
// {"detail": ...} message when the body carries one.
type APIError struct {
	Status int
	Body   string
	Detail string
}

func (e *APIError) Error() string {
	msg := e.Detail
	if msg == "" {
		msg = e.Body
	}
	return fmt.Sprintf("stats api status %d: %s", e.Status, msg)
}

// Is makes errors.Is(err, ErrNotFound) hold for 404s.
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}

func newAPIError(status int, body []byte) *APIError {
	e := &APIError{Status: status, Body: strings.TrimSpace(string(body))}
	var d struct {
		Detail any `json:"detail"`
	}
	if json.Unmarshal(body, &d) == nil {
		if s, ok := d.Detail.(string); ok {
			e.Detail = s
		}
	}
	return e
}
