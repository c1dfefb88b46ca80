package salary

import "errors"

var (
	ErrInvalidID               = errors.New("salary: invalid id")
	ErrInvalidEmployeeID       = errors.New("salary: invalid employee id")
	ErrInvalidBaseAmount       = errors.New("salary: base amount must be a finite number >= 0")
	ErrInvalidBonus            = errors.New("salary: bonus must be a finite number >= 0")
	ErrInvalidPaymentFrequency = errors.New("salary: invalid payment frequency")
	ErrInvalidAdjustmentType   = errors.New("salary: invalid adjustment type")
	ErrInvalidPageSize         = errors.New("salary: invalid page size")
	ErrInvalidPageToken        = errors.New("salary: invalid page token")
	ErrSalaryNotFound          = errors.New("salary: not found")
	ErrEmployeeNotFound        = errors.New("salary: employee not found")
)
