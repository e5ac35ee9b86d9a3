package request

// CreatePayload carries the submission form. status is accepted as-is when
// present; the clients never send it and get the 'Pending' default.
type CreatePayload struct {
	Name       string `json:"name"`
	EmployeeID string `json:"employeeId"`
	Email      string `json:"email"`
	Project    string `json:"project"`
	Manager    string `json:"manager"`
	Location   string `json:"location"`
	FromDate   string `json:"fromDate"`
	ToDate     string `json:"toDate"`
	Reason     string `json:"reason"`
	Status     string `json:"status"`
}

type UpdateStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

// Response mirrors the persisted row: snake_case column names, calendar
// dates as YYYY-MM-DD, the submission timestamp as RFC 3339.
type Response struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	EmployeeID  string  `json:"employee_id"`
	Email       string  `json:"email"`
	Project     string  `json:"project"`
	Manager     string  `json:"manager"`
	Location    string  `json:"location"`
	FromDate    string  `json:"from_date"`
	ToDate      string  `json:"to_date"`
	Reason      string  `json:"reason"`
	Status      string  `json:"status"`
	SubmittedAt *string `json:"submitted_at"`
}
