package v1

// KingtimeClient is a typed client for the KingTime attendance API.
type KingtimeClient struct {
	Transport     *Transport
	Employees     *EmployeeEndpoint
	DailyWorkings *DailyWorkingEndpoint
	TimeRecords   *TimeRecordEndpoint
}

// NewKingtimeClient initializes the API client. Pass an empty baseURL for
// the production API.
func NewKingtimeClient(baseURL string) *KingtimeClient {
	t := NewTransport(baseURL)
	return &KingtimeClient{
		Transport:     t,
		Employees:     &EmployeeEndpoint{transport: t},
		DailyWorkings: &DailyWorkingEndpoint{transport: t},
		TimeRecords:   &TimeRecordEndpoint{transport: t},
	}
}
