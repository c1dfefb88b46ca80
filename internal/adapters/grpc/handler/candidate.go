package handler

import (
	"context"

	"github.com/ogurasousui/codex-hr-clean-arch/internal/adapters/grpc/hrv1"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/candidate"
)

// CandidateGrpcHandler は CandidateService の gRPC 実装です。
type CandidateGrpcHandler struct {
	svc candidate.UseCase
}

// NewCandidateGrpcHandler は CandidateGrpcHandler を生成します。
func NewCandidateGrpcHandler(svc candidate.UseCase) *CandidateGrpcHandler {
	return &CandidateGrpcHandler{svc: svc}
}

var _ hrv1.CandidateServiceServer = (*CandidateGrpcHandler)(nil)

// CreateCandidate は応募者を登録します。
func (h *CandidateGrpcHandler) CreateCandidate(ctx context.Context, req *hrv1.CreateCandidateRequest) (*hrv1.CandidateResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}

	created, err := h.svc.CreateCandidate(ctx, candidate.CreateCandidateInput{
		Name:                req.Name,
		Email:               req.Email,
		Phone:               req.Phone,
		AppliedPosition:     req.AppliedPosition,
		AppliedDepartmentID: req.AppliedDepartmentID,
		Resume:              req.Resume,
		Status:              stringEnumOptional[candidate.Status](req.Status),
		ApplicationDate:     req.ApplicationDate,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &hrv1.CandidateResponse{Candidate: toProtoCandidate(created)}, nil
}

// GetCandidate は応募者を取得します。
func (h *CandidateGrpcHandler) GetCandidate(ctx context.Context, req *hrv1.IDRequest) (*hrv1.CandidateResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}

	found, err := h.svc.GetCandidate(ctx, candidate.GetCandidateInput{ID: req.ID})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &hrv1.CandidateResponse{Candidate: toProtoCandidate(found)}, nil
}

// ListCandidates は応募者の一覧を取得します。
func (h *CandidateGrpcHandler) ListCandidates(ctx context.Context, req *hrv1.ListCandidatesRequest) (*hrv1.ListCandidatesResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}

	result, err := h.svc.ListCandidates(ctx, candidate.ListCandidatesInput{
		DepartmentID: req.DepartmentID,
		Status:       stringEnumOptional[candidate.Status](req.Status),
		Search:       req.Search,
		PageSize:     int(req.PageSize),
		PageToken:    req.PageToken,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	out := make([]*hrv1.Candidate, 0, len(result.Candidates))
	for _, c := range result.Candidates {
		out = append(out, toProtoCandidate(c))
	}

	return &hrv1.ListCandidatesResponse{Candidates: out, NextPageToken: result.NextPageToken}, nil
}

// UpdateCandidate は応募者情報を更新します。
func (h *CandidateGrpcHandler) UpdateCandidate(ctx context.Context, req *hrv1.UpdateCandidateRequest) (*hrv1.CandidateResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}

	departmentID := req.AppliedDepartmentID
	if req.ClearAppliedDepartment {
		departmentID = nil
	}

	updated, err := h.svc.UpdateCandidate(ctx, candidate.UpdateCandidateInput{
		ID:                     req.ID,
		Name:                   req.Name,
		Email:                  req.Email,
		Phone:                  req.Phone,
		AppliedPosition:        req.AppliedPosition,
		AppliedDepartmentID:    departmentID,
		AppliedDepartmentIDSet: req.AppliedDepartmentID != nil || req.ClearAppliedDepartment,
		Resume:                 req.Resume,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &hrv1.CandidateResponse{Candidate: toProtoCandidate(updated)}, nil
}

// UpdateCandidateStatus は応募者の選考状態を遷移させます。
func (h *CandidateGrpcHandler) UpdateCandidateStatus(ctx context.Context, req *hrv1.UpdateCandidateStatusRequest) (*hrv1.CandidateResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}

	updated, err := h.svc.UpdateCandidateStatus(ctx, candidate.UpdateCandidateStatusInput{
		ID:     req.ID,
		Status: candidate.Status(req.Status),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &hrv1.CandidateResponse{Candidate: toProtoCandidate(updated)}, nil
}

// DeleteCandidate は応募者を削除します。
func (h *CandidateGrpcHandler) DeleteCandidate(ctx context.Context, req *hrv1.IDRequest) (*hrv1.Empty, error) {
	if req == nil {
		return nil, errRequestRequired
	}

	if err := h.svc.DeleteCandidate(ctx, candidate.DeleteCandidateInput{ID: req.ID}); err != nil {
		return nil, toStatusError(err)
	}

	return &hrv1.Empty{}, nil
}

func toProtoCandidate(c *candidate.Candidate) *hrv1.Candidate {
	if c == nil {
		return nil
	}

	return &hrv1.Candidate{
		ID:                  c.ID,
		Name:                c.Name,
		Email:               c.Email,
		Phone:               c.Phone,
		AppliedPosition:     c.AppliedPosition,
		AppliedDepartmentID: c.AppliedDepartmentID,
		Resume:              c.Resume,
		Status:              string(c.Status),
		ApplicationDate:     c.ApplicationDate,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}
