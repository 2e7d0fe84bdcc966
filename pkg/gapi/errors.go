package gapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// errorReply is Google's standard error envelope.
type errorReply struct {
	Error *ErrorBody `json:"error"`
}

// ErrorBody is the `error` object services return on non-2xx
// responses.
type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// APIError is returned for every non-2xx response. Body holds the
// decoded error envelope when the service sent one; Raw always holds
// the response body for troubleshooting responses that do not follow
// the envelope format.
type APIError struct {
	StatusCode int
	Body       ErrorBody
	Raw        []byte
}

func newAPIError(statusCode int, reply *errorReply, raw []byte) *APIError {
	e := &APIError{StatusCode: statusCode, Raw: raw}
	if reply != nil && reply.Error != nil {
		e.Body = *reply.Error
	}
	if e.Body.Message == "" && len(raw) > 0 {
		e.Body.Message = strings.TrimSpace(string(raw))
	}
	return e
}

func (e *APIError) Error() string {
	return fmt.Sprintf("googleapi error: status=%d code=%d status_text=%q message=%q",
		e.StatusCode, e.Body.Code, e.Body.Status, e.Body.Message)
}

// IsNotFound reports whether err is an APIError for HTTP 404.
func IsNotFound(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.StatusCode == http.StatusNotFound
}

// IsPermissionDenied reports whether err is an APIError for HTTP 403.
func IsPermissionDenied(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.StatusCode == http.StatusForbidden
}
