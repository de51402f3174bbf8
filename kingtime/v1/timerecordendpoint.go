package v1

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/kintai-tools/kingtime-go/kingtime/v1/common"
)

// TimeRecordDTO is a single punch: an instant and its code. Entries are not
// guaranteed to arrive time-ordered; sorting is the caller's concern.
type TimeRecordDTO struct {
	Time common.JSTTime `json:"time"`
	Code common.Code    `json:"code"`
}

// TimeRecordRequest is the body of a punch submission.
type TimeRecordRequest struct {
	Date common.DateOnly `json:"date"`
	Time common.JSTTime  `json:"time"`
	Code common.Code     `json:"code"`
}

type TimeRecordEndpoint struct {
	transport *Transport
}

// Get lists time records for the given employee keys between start and end
// (both inclusive calendar dates).
func (e *TimeRecordEndpoint) Get(ctx context.Context, token string, employeeKeys []string, start, end common.DateOnly) ([]DailyWorkingsDTO, error) {
	query := map[string]string{
		"employeeKeys": strings.Join(employeeKeys, ","),
		"start":        start.String(),
		"end":          end.String(),
	}

	body, err := e.transport.GetWithQuery(ctx, token, "/daily-workings/timerecord", query)
	if err != nil {
		return nil, err
	}
	return decode[[]DailyWorkingsDTO](body)
}

// GetForEmployee fetches the punches of one employee on one date. A
// single-key, single-date query must come back as exactly one date group
// holding exactly one daily working whose date and employeeKey echo the
// query; anything else is reported as ErrUnexpectedResponse.
func (e *TimeRecordEndpoint) GetForEmployee(ctx context.Context, token, employeeKey string, date common.DateOnly) ([]TimeRecordDTO, error) {
	groups, err := e.Get(ctx, token, []string{employeeKey}, date, date)
	if err != nil {
		return nil, err
	}

	if len(groups) != 1 {
		return nil, fmt.Errorf("%w: got %d date groups, want 1", ErrUnexpectedResponse, len(groups))
	}
	workings := groups[0].DailyWorkings
	if len(workings) != 1 {
		return nil, fmt.Errorf("%w: got %d daily workings, want 1", ErrUnexpectedResponse, len(workings))
	}
	dw := workings[0]
	if !dw.Date.Equal(date) {
		return nil, fmt.Errorf("%w: date %s does not match query %s", ErrUnexpectedResponse, dw.Date, date)
	}
	if dw.EmployeeKey != employeeKey {
		return nil, fmt.Errorf("%w: employeeKey %s does not match query", ErrUnexpectedResponse, dw.EmployeeKey)
	}
	return dw.TimeRecord, nil
}

// Post submits one punch for the employee identified by key. The API
// answers an empty object on success.
func (e *TimeRecordEndpoint) Post(ctx context.Context, token, employeeKey string, req *TimeRecordRequest) error {
	body, err := e.transport.Post(ctx, token, "/daily-workings/timerecord/"+url.PathEscape(employeeKey), req)
	if err != nil {
		return err
	}

	if _, err := decode[struct{}](body); err != nil {
		return err
	}
	return nil
}
