package handler

import (
	"context"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ogurasousui/codex-hr-clean-arch/internal/adapters/grpc/hrv1"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/candidate"
)

type stubCandidateUseCase struct {
	createInput candidate.CreateCandidateInput
	updateInput candidate.UpdateCandidateInput
	statusInput candidate.UpdateCandidateStatusInput
	listInput   candidate.ListCandidatesInput

	out     *candidate.Candidate
	listOut *candidate.ListCandidatesResult
	err     error
}

func (s *stubCandidateUseCase) CreateCandidate(ctx context.Context, in candidate.CreateCandidateInput) (*candidate.Candidate, error) {
	s.createInput = in
	return s.out, s.err
}

func (s *stubCandidateUseCase) GetCandidate(ctx context.Context, in candidate.GetCandidateInput) (*candidate.Candidate, error) {
	return s.out, s.err
}

func (s *stubCandidateUseCase) ListCandidates(ctx context.Context, in candidate.ListCandidatesInput) (*candidate.ListCandidatesResult, error) {
	s.listInput = in
	return s.listOut, s.err
}

func (s *stubCandidateUseCase) UpdateCandidate(ctx context.Context, in candidate.UpdateCandidateInput) (*candidate.Candidate, error) {
	s.updateInput = in
	return s.out, s.err
}

func (s *stubCandidateUseCase) UpdateCandidateStatus(ctx context.Context, in candidate.UpdateCandidateStatusInput) (*candidate.Candidate, error) {
	s.statusInput = in
	return s.out, s.err
}

func (s *stubCandidateUseCase) DeleteCandidate(ctx context.Context, in candidate.DeleteCandidateInput) error {
	return s.err
}

func TestCandidateGrpcHandler_CreateCandidate(t *testing.T) {
	t.Parallel()

	applied := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	stub := &stubCandidateUseCase{out: &candidate.Candidate{
		ID:                  1,
		Name:                "Sarah Wilson",
		Email:               "sarah.wilson@email.com",
		AppliedPosition:     "Software Engineer",
		AppliedDepartmentID: int64Ptr(2),
		Status:              candidate.StatusApplied,
		ApplicationDate:     applied,
	}}
	handler := NewCandidateGrpcHandler(stub)

	resp, err := handler.CreateCandidate(context.Background(), &hrv1.CreateCandidateRequest{
		Name:                "Sarah Wilson",
		Email:               "sarah.wilson@email.com",
		AppliedPosition:     "Software Engineer",
		AppliedDepartmentID: int64Ptr(2),
		ApplicationDate:     &applied,
	})
	if err != nil {
		t.Fatalf("CreateCandidate returned error: %v", err)
	}

	if stub.createInput.Status != nil {
		t.Fatalf("expected status to default in the use case")
	}
	if stub.createInput.ApplicationDate == nil || !stub.createInput.ApplicationDate.Equal(applied) {
		t.Fatalf("expected application date to pass through")
	}
	if resp.Candidate.Status != "Applied" || *resp.Candidate.AppliedDepartmentID != 2 {
		t.Fatalf("unexpected response: %+v", resp.Candidate)
	}
}

func TestCandidateGrpcHandler_UpdateCandidate_ClearDepartment(t *testing.T) {
	t.Parallel()

	stub := &stubCandidateUseCase{out: &candidate.Candidate{ID: 1}}
	handler := NewCandidateGrpcHandler(stub)

	if _, err := handler.UpdateCandidate(context.Background(), &hrv1.UpdateCandidateRequest{ID: 1, ClearAppliedDepartment: true}); err != nil {
		t.Fatalf("UpdateCandidate returned error: %v", err)
	}

	if !stub.updateInput.AppliedDepartmentIDSet || stub.updateInput.AppliedDepartmentID != nil {
		t.Fatalf("expected applied department to be cleared, got %+v", stub.updateInput)
	}
}

func TestCandidateGrpcHandler_UpdateCandidateStatus_InvalidTransition(t *testing.T) {
	t.Parallel()

	stub := &stubCandidateUseCase{err: candidate.ErrInvalidTransition}
	handler := NewCandidateGrpcHandler(stub)

	_, err := handler.UpdateCandidateStatus(context.Background(), &hrv1.UpdateCandidateStatusRequest{ID: 3, Status: "Applied"})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("expected failed precondition, got %v", status.Code(err))
	}
	if stub.statusInput.Status != candidate.StatusApplied {
		t.Fatalf("expected status to be converted, got %q", stub.statusInput.Status)
	}
}

func TestCandidateGrpcHandler_ListCandidates_Filters(t *testing.T) {
	t.Parallel()

	stub := &stubCandidateUseCase{listOut: &candidate.ListCandidatesResult{}}
	handler := NewCandidateGrpcHandler(stub)

	resp, err := handler.ListCandidates(context.Background(), &hrv1.ListCandidatesRequest{Status: "Interviewed", Search: "wilson"})
	if err != nil {
		t.Fatalf("ListCandidates returned error: %v", err)
	}

	if stub.listInput.Status == nil || *stub.listInput.Status != candidate.StatusInterviewed {
		t.Fatalf("expected status filter to be converted")
	}
	if resp.Candidates == nil {
		t.Fatalf("expected empty slice rather than nil")
	}
}

func TestCandidateGrpcHandler_GetCandidate_NotFound(t *testing.T) {
	t.Parallel()

	handler := NewCandidateGrpcHandler(&stubCandidateUseCase{err: candidate.ErrCandidateNotFound})

	_, err := handler.GetCandidate(context.Background(), &hrv1.IDRequest{ID: 99})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected not found, got %v", status.Code(err))
	}
}
