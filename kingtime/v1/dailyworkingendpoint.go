package v1

import (
	"context"

	"github.com/kintai-tools/kingtime-go/kingtime/v1/common"
)

// DailyWorkingsDTO groups the daily workings of every visible employee for
// one calendar date.
type DailyWorkingsDTO struct {
	Date          common.DateOnly   `json:"date"`
	DailyWorkings []DailyWorkingDTO `json:"dailyWorkings"`
}

// DailyWorkingDTO is the server's aggregated view of one employee's
// attendance for one date. The timeRecord list is only populated by the
// timerecord listing endpoint.
type DailyWorkingDTO struct {
	Date                  common.DateOnly         `json:"date"`
	EmployeeKey           string                  `json:"employeeKey"`
	CurrentDateEmployee   *CurrentDateEmployeeDTO `json:"currentDateEmployee,omitempty"`
	WorkPlaceDivisionCode string                  `json:"workPlaceDivisionCode,omitempty"`
	WorkPlaceDivisionName string                  `json:"workPlaceDivisionName,omitempty"`
	IsClosing             bool                    `json:"isClosing,omitempty"`
	IsHelp                bool                    `json:"isHelp,omitempty"`
	IsError               bool                    `json:"isError,omitempty"`
	WorkdayTypeName       string                  `json:"workdayTypeName,omitempty"`
	Assigned              int                     `json:"assigned,omitempty"` // minutes
	Unassigned            int                     `json:"unassigned,omitempty"`
	Overtime              int                     `json:"overtime,omitempty"`
	LateNight             int                     `json:"lateNight,omitempty"`
	BreakTime             int                     `json:"breakTime,omitempty"`
	Late                  int                     `json:"late,omitempty"`
	EarlyLeave            int                     `json:"earlyLeave,omitempty"`
	TotalWork             int                     `json:"totalWork,omitempty"`
	TimeRecord            []TimeRecordDTO         `json:"timeRecord,omitempty"`
}

type CurrentDateEmployeeDTO struct {
	DivisionCode   string             `json:"divisionCode"`
	DivisionName   string             `json:"divisionName"`
	Gender         string             `json:"gender"`
	TypeCode       string             `json:"typeCode"`
	TypeName       string             `json:"typeName"`
	Code           string             `json:"code"`
	LastName       string             `json:"lastName"`
	FirstName      string             `json:"firstName"`
	EmployeeGroups []EmployeeGroupDTO `json:"employeeGroups,omitempty"`
}

type EmployeeGroupDTO struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type DailyWorkingEndpoint struct {
	transport *Transport
}

// Get lists the daily-working summaries for the full range the server
// exposes. There are no query parameters on this endpoint.
func (e *DailyWorkingEndpoint) Get(ctx context.Context, token string) ([]DailyWorkingsDTO, error) {
	body, err := e.transport.Get(ctx, token, "/daily-workings")
	if err != nil {
		return nil, err
	}
	return decode[[]DailyWorkingsDTO](body)
}
