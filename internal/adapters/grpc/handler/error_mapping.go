package handler

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/candidate"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/department"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/employee"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/hiring"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/salary"
)

var invalidArgumentErrors = []error{
	department.ErrInvalidID,
	department.ErrInvalidName,
	department.ErrInvalidLocation,
	department.ErrInvalidBudget,
	department.ErrInvalidManagerID,
	department.ErrInvalidPageSize,
	department.ErrInvalidPageToken,
	employee.ErrInvalidID,
	employee.ErrInvalidName,
	employee.ErrInvalidEmail,
	employee.ErrInvalidDepartmentID,
	employee.ErrInvalidStatus,
	employee.ErrInvalidEmploymentType,
	employee.ErrInvalidDateOfBirth,
	employee.ErrInvalidPageSize,
	employee.ErrInvalidPageToken,
	candidate.ErrInvalidID,
	candidate.ErrInvalidName,
	candidate.ErrInvalidEmail,
	candidate.ErrInvalidPosition,
	candidate.ErrInvalidDepartmentID,
	candidate.ErrInvalidStatus,
	candidate.ErrInvalidPageSize,
	candidate.ErrInvalidPageToken,
	salary.ErrInvalidID,
	salary.ErrInvalidEmployeeID,
	salary.ErrInvalidBaseAmount,
	salary.ErrInvalidBonus,
	salary.ErrInvalidPaymentFrequency,
	salary.ErrInvalidAdjustmentType,
	salary.ErrInvalidPageSize,
	salary.ErrInvalidPageToken,
	hiring.ErrInvalidCandidateID,
}

var notFoundErrors = []error{
	department.ErrDepartmentNotFound,
	employee.ErrEmployeeNotFound,
	employee.ErrDepartmentNotFound,
	candidate.ErrCandidateNotFound,
	candidate.ErrDepartmentNotFound,
	salary.ErrSalaryNotFound,
	salary.ErrEmployeeNotFound,
}

var alreadyExistsErrors = []error{
	department.ErrNameAlreadyExists,
	employee.ErrEmailAlreadyExists,
}

var failedPreconditionErrors = []error{
	department.ErrDepartmentInUse,
	employee.ErrAlreadyTerminated,
	employee.ErrNotTerminated,
	candidate.ErrInvalidTransition,
}

func toStatusError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var validationErr *hiring.ValidationError
	var partialErr *hiring.PartialFailureError

	switch {
	case errors.As(err, &partialErr):
		return status.Error(codes.Aborted, err.Error())
	case errors.As(err, &validationErr):
		if errors.Is(err, hiring.ErrCandidateNotInterviewed) {
			return status.Error(codes.FailedPrecondition, err.Error())
		}
		return status.Error(codes.InvalidArgument, err.Error())
	case matchesAny(err, invalidArgumentErrors):
		return status.Error(codes.InvalidArgument, err.Error())
	case matchesAny(err, notFoundErrors):
		return status.Error(codes.NotFound, err.Error())
	case matchesAny(err, alreadyExistsErrors):
		return status.Error(codes.AlreadyExists, err.Error())
	case matchesAny(err, failedPreconditionErrors):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func matchesAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
