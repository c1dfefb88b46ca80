package candidate

import "time"

// Status は応募者の選考状態を表します。
type Status string

const (
	StatusApplied     Status = "Applied"
	StatusInterviewed Status = "Interviewed"
	StatusHired       Status = "Hired"
	StatusRejected    Status = "Rejected"
)

// Candidate は応募者エンティティです。
type Candidate struct {
	ID                  int64
	Name                string
	Email               string
	Phone               string
	AppliedPosition     string
	AppliedDepartmentID *int64
	Resume              *string
	Status              Status
	ApplicationDate     time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IsTerminal は Hired / Rejected のように遷移先を持たない状態か判定します。
func (s Status) IsTerminal() bool {
	return s == StatusHired || s == StatusRejected
}

// IsActive は選考中 (Applied / Interviewed) か判定します。
func (s Status) IsActive() bool {
	return s == StatusApplied || s == StatusInterviewed
}

// CanTransition は選考状態の遷移可否を返します。同一状態への遷移は常に許可します。
//
//	Applied -> Interviewed -> {Hired, Rejected}
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	switch from {
	case StatusApplied:
		return to == StatusInterviewed
	case StatusInterviewed:
		return to == StatusHired || to == StatusRejected
	default:
		return false
	}
}

// IsValidStatus は既知の状態か判定します。
func IsValidStatus(status Status) bool {
	switch status {
	case StatusApplied, StatusInterviewed, StatusHired, StatusRejected:
		return true
	default:
		return false
	}
}
