package v1

type HrmsClient struct {
	Transport  *Transport
	Employees  *EmployeeEndpoint
	Attendance *AttendanceEndpoint
}

// NewHrmsClient initializes the API client
func NewHrmsClient(baseURL string, token string) *HrmsClient {
	t := NewTransport(baseURL, token)
	return &HrmsClient{
		Transport:  t,
		Employees:  &EmployeeEndpoint{transport: t},
		Attendance: &AttendanceEndpoint{transport: t},
	}
}
