package hiring

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCandidate は応募者が指定されていない場合に返されます。
	ErrMissingCandidate = errors.New("hiring: candidate is required")
	// ErrMissingDepartment は応募者に応募部署が設定されていない場合に返されます。
	ErrMissingDepartment = errors.New("hiring: candidate has no applied department")
	// ErrMissingPosition は役職が決定できない場合に返されます。
	ErrMissingPosition = errors.New("hiring: position is required")
	// ErrCandidateNotInterviewed は面接済みでない応募者を採用しようとした場合に返されます。
	ErrCandidateNotInterviewed = errors.New("hiring: candidate has not been interviewed")
	// ErrInvalidCandidateID は応募者 ID が不正な場合に返されます。
	ErrInvalidCandidateID = errors.New("hiring: invalid candidate id")
)

// Step は採用フローの各段階を表します。
type Step string

const (
	StepLoadCandidate         Step = "load_candidate"
	StepCreateEmployee        Step = "create_employee"
	StepCreateSalary          Step = "create_salary"
	StepUpdateCandidateStatus Step = "update_candidate_status"
)

// ValidationError は永続化前の入力検証エラーです。ストアは一切呼ばれていません。
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("hiring: invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// StoreOperationError は何も作成されないまま失敗したストア操作を表します。
type StoreOperationError struct {
	Step Step
	Err  error
}

func (e *StoreOperationError) Error() string {
	return fmt.Sprintf("hiring: %s failed: %v", e.Step, e.Err)
}

func (e *StoreOperationError) Unwrap() error {
	return e.Err
}

// PartialFailureError は社員作成後に後続の段階が失敗したことを表します。
// 作成済みの社員はロールバックされません。
type PartialFailureError struct {
	Step       Step
	EmployeeID int64
	Err        error
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("hiring: employee %d created but %s failed: %v", e.EmployeeID, e.Step, e.Err)
}

func (e *PartialFailureError) Unwrap() error {
	return e.Err
}
