package employee

import "errors"

var (
	ErrInvalidID             = errors.New("employee: invalid id")
	ErrInvalidName           = errors.New("employee: invalid name")
	ErrInvalidEmail          = errors.New("employee: invalid email")
	ErrInvalidDepartmentID   = errors.New("employee: invalid department id")
	ErrInvalidStatus         = errors.New("employee: invalid status")
	ErrInvalidEmploymentType = errors.New("employee: invalid employment type")
	ErrInvalidPageSize       = errors.New("employee: invalid page size")
	ErrInvalidPageToken      = errors.New("employee: invalid page token")
	ErrInvalidDateOfBirth    = errors.New("employee: date of birth must precede hire date")
	ErrEmployeeNotFound      = errors.New("employee: not found")
	ErrDepartmentNotFound    = errors.New("employee: department not found")
	ErrEmailAlreadyExists    = errors.New("employee: email already exists")
	ErrAlreadyTerminated     = errors.New("employee: already terminated")
	ErrNotTerminated         = errors.New("employee: not terminated")
)
