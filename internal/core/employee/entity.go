package employee

import "time"

// Status は社員の在籍状態を表します。
type Status string

const (
	StatusActive     Status = "Active"
	StatusOnLeave    Status = "On-Leave"
	StatusTerminated Status = "Terminated"
)

// EmploymentType は雇用形態を表します。
type EmploymentType string

const (
	EmploymentFullTime EmploymentType = "Full-Time"
	EmploymentPartTime EmploymentType = "Part-Time"
	EmploymentContract EmploymentType = "Contract"
)

// Employee は社員エンティティです。
type Employee struct {
	ID                    int64
	Name                  string
	Email                 string
	DepartmentID          int64
	PhoneNumber           *string
	Address               *string
	DateOfBirth           *time.Time
	Position              *string
	HireDate              *time.Time
	EmergencyContact      *string
	EmergencyContactPhone *string
	EmploymentType        EmploymentType
	Status                Status
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
