package strike

import (
	"encoding/json"
	"errors"
	"fmt"
)

// TransportError indicates no HTTP response was obtained: the request could
// not be built, or the transport failed (DNS, TLS, connection reset, timeout).
type TransportError struct {
	Message string `json:"message"`
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("strike: transport error: %s", e.Message)
}

// HTTPResponseError indicates a response was received with a status code other
// than the one expected for the verb. Body is the raw response text, or empty
// if it could not be read.
type HTTPResponseError struct {
	Status int    `json:"status"`
	Body   string `json:"body"`
}

func (e *HTTPResponseError) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("strike: unexpected http status %d", e.Status)
	}
	return fmt.Sprintf("strike: unexpected http status %d: %s", e.Status, e.Body)
}

// SerializationError indicates a payload could not be encoded or decoded: a
// request body could not be produced, or a response with the expected status
// did not match the target shape.
type SerializationError struct {
	Message string `json:"message"`
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("strike: serialization error: %s", e.Message)
}

// DomainError is a business error reported by the API, such as an invalid
// amount or an unknown account handle.
type DomainError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *DomainError) Error() string {
	if len(e.Code) == 0 {
		return fmt.Sprintf("strike: %s", e.Message)
	}
	return fmt.Sprintf("strike: %s: %s", e.Code, e.Message)
}

// errorEnvelope is the error payload returned by the API alongside non-success
// status codes.
type errorEnvelope struct {
	TraceID string `json:"traceId"`
	Data    *struct {
		Status  int    `json:"status"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"data"`
}

// AsDomainError extracts the business error carried by an HTTPResponseError
// body. It returns false when err is not an HTTPResponseError or the body is
// not a recognizable API error payload.
func AsDomainError(err error) (*DomainError, bool) {
	var responseErr *HTTPResponseError
	if !errors.As(err, &responseErr) {
		return nil, false
	}

	var envelope errorEnvelope
	if err := json.Unmarshal([]byte(responseErr.Body), &envelope); err != nil {
		return nil, false
	}
	if envelope.Data == nil || len(envelope.Data.Code) == 0 {
		return nil, false
	}

	status := envelope.Data.Status
	if status == 0 {
		status = responseErr.Status
	}

	return &DomainError{
		Status:  status,
		Code:    envelope.Data.Code,
		Message: envelope.Data.Message,
	}, true
}

// IsTransportError reports whether err is, or wraps, a TransportError.
func IsTransportError(err error) bool {
	var target *TransportError
	return errors.As(err, &target)
}

// IsSerializationError reports whether err is, or wraps, a SerializationError.
func IsSerializationError(err error) bool {
	var target *SerializationError
	return errors.As(err, &target)
}

// ResponseStatus returns the status code of an HTTPResponseError, or zero for
// any other error.
func ResponseStatus(err error) int {
	var target *HTTPResponseError
	if errors.As(err, &target) {
		return target.Status
	}
	return 0
}
