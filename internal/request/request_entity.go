package request

import "time"

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// Request is one leave/travel submission. Rows are never deleted; only the
// status changes after creation.
type Request struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Name       string `gorm:"type:varchar(255);not null"`
	EmployeeID string `gorm:"column:employee_id;type:varchar(50);not null;index:idx_requests_employee_dates"`
	Email      string `gorm:"type:varchar(255);not null"`
	Project    string `gorm:"type:varchar(255);not null"`
	Manager    string `gorm:"type:varchar(255);not null"`
	Location   string `gorm:"type:varchar(255);not null"`

	FromDate time.Time `gorm:"type:date;not null;index:idx_requests_employee_dates"`
	ToDate   time.Time `gorm:"type:date;not null;index:idx_requests_employee_dates"`
	Reason   string    `gorm:"type:text;not null"`

	Status      string     `gorm:"type:varchar(50);not null;default:'Pending'"`
	SubmittedAt *time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP"`
}

func (Request) TableName() string {
	return "requests"
}
