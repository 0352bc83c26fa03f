package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Artexxx/HR-Console/internal/dto"
)

// ResponseError is returned for every non-2xx backend response. The body is kept
// untouched; Detail holds the server's human-readable message when it sent one.
type ResponseError struct {
	StatusCode int
	Method     string
	Path       string
	Body       []byte
	Detail     string
}

func (e *ResponseError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Detail)
	}

	return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
}

// Unwrap lets callers match a 404 with errors.Is(err, dto.ErrNotFound).
func (e *ResponseError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return dto.ErrNotFound
	}

	return nil
}

// Detail returns the server-provided detail carried by err, if any.
func Detail(err error) string {
	var re *ResponseError
	if errors.As(err, &re) {
		return re.Detail
	}

	return ""
}

// Message returns Detail(err), or fallback when the server did not explain itself.
func Message(err error, fallback string) string {
	if d := Detail(err); d != "" {
		return d
	}

	return fallback
}

// StatusCode returns the HTTP status carried by err, 0 for transport failures.
func StatusCode(err error) int {
	var re *ResponseError
	if errors.As(err, &re) {
		return re.StatusCode
	}

	return 0
}

// parseDetail understands {"detail": "..."} and the validation form
// {"detail": [{"loc": [...], "msg": "..."}]}.
func parseDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}

	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(envelope.Detail, &text); err == nil {
		return text
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(envelope.Detail, &items); err == nil && len(items) > 0 {
		return items[0].Msg
	}

	return ""
}
