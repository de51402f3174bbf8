package v1

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorData is a single entry of the API error envelope.
type ErrorData struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// APIError is returned when the server answered with a well-formed error
// envelope. It always carries the complete batch of reported errors.
type APIError struct {
	Errors []ErrorData
}

func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return "api error"
	}
	parts := make([]string, len(e.Errors))
	for i, d := range e.Errors {
		parts[i] = fmt.Sprintf("%s (code %d)", d.Message, d.Code)
	}
	return "api error: " + strings.Join(parts, "; ")
}

// DecodeError is returned when the body was valid JSON but matched neither
// the error envelope nor the expected payload shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ErrUnexpectedResponse reports a response whose shape violated a
// caller-side postcondition (for example a single-employee, single-date
// query answered with zero or several entries).
var ErrUnexpectedResponse = errors.New("unexpected daily-workings shape")
