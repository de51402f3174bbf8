package v1

import "encoding/json"

// decode matches a response body against the two envelope variants. There is
// no discriminant field on the wire: the error shape is trial-parsed first,
// then the body is read as the expected payload type.
func decode[D any](body []byte) (D, error) {
	var out D

	var envelope struct {
		Errors []ErrorData `json:"errors"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Errors != nil {
		return out, &APIError{Errors: envelope.Errors}
	}

	if err := json.Unmarshal(body, &out); err != nil {
		return out, &DecodeError{Err: err}
	}
	return out, nil
}
