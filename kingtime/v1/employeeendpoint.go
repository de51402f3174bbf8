package v1

import (
	"context"
	"net/url"
)

type EmployeeDTO struct {
	LastName  string `json:"lastName"`
	FirstName string `json:"firstName"`
	Key       string `json:"key"`
}

type EmployeeEndpoint struct {
	transport *Transport
}

// Get resolves a human-assigned employee code into the opaque key the
// daily-workings endpoints require.
func (e *EmployeeEndpoint) Get(ctx context.Context, token, code string) (*EmployeeDTO, error) {
	body, err := e.transport.Get(ctx, token, "/employees/"+url.PathEscape(code))
	if err != nil {
		return nil, err
	}

	dto, err := decode[EmployeeDTO](body)
	if err != nil {
		return nil, err
	}
	return &dto, nil
}
