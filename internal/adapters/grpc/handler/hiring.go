package handler

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/ogurasousui/codex-hr-clean-arch/internal/adapters/grpc/hrv1"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/hiring"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/salary"
)

// HiringGrpcHandler は HiringService の gRPC 実装です。
type HiringGrpcHandler struct {
	svc    hiring.UseCase
	logger *zap.Logger
}

// NewHiringGrpcHandler は HiringGrpcHandler を生成します。
func NewHiringGrpcHandler(svc hiring.UseCase, logger *zap.Logger) *HiringGrpcHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HiringGrpcHandler{svc: svc, logger: logger}
}

var _ hrv1.HiringServiceServer = (*HiringGrpcHandler)(nil)

// HireCandidate は応募者を社員として採用します。
//
// 給与作成に失敗した場合は Aborted を返し、作成済みの社員 ID を詳細に含めます。
// 応募者状態の更新のみ失敗した場合は成功として扱い、Outcome と StatusError に反映します。
func (h *HiringGrpcHandler) HireCandidate(ctx context.Context, req *hrv1.HireCandidateRequest) (*hrv1.HireCandidateResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}

	effective, err := parseDateValue(req.EffectiveDate)
	if err != nil {
		return nil, invalidArgument("effective_date", err)
	}

	dateOfBirth, err := parseDateValue(req.DateOfBirth)
	if err != nil {
		return nil, invalidArgument("date_of_birth", err)
	}

	result, err := h.svc.HireCandidateByID(ctx, req.CandidateID, hiring.HireInput{
		Position: req.Position,
		Salary: hiring.SalarySeed{
			BaseAmount:       req.BaseAmount,
			Bonus:            req.Bonus,
			PaymentFrequency: salary.PaymentFrequency(req.PaymentFrequency),
			EffectiveDate:    effective,
			Notes:            req.Notes,
		},
		Personal: hiring.PersonalDetails{
			DateOfBirth:           dateOfBirth,
			Address:               req.Address,
			EmergencyContact:      req.EmergencyContact,
			EmergencyContactPhone: req.EmergencyContactPhone,
		},
	})
	if err != nil {
		var partial *hiring.PartialFailureError
		if errors.As(err, &partial) {
			return nil, h.partialFailureStatus(result, partial)
		}
		return nil, toStatusError(err)
	}

	return toProtoHireResult(result), nil
}

func (h *HiringGrpcHandler) partialFailureStatus(result *hiring.HireResult, partial *hiring.PartialFailureError) error {
	fields := map[string]any{
		"step":        string(partial.Step),
		"employee_id": float64(partial.EmployeeID),
	}
	if result != nil {
		fields["workflow_id"] = result.WorkflowID
		fields["outcome"] = string(result.Outcome)
	}

	st := status.New(codes.Aborted, partial.Error())

	detail, err := structpb.NewStruct(fields)
	if err != nil {
		h.logger.Warn("build partial failure detail", zap.Error(err))
		return st.Err()
	}

	withDetails, err := st.WithDetails(protoadapt.MessageV1Of(detail))
	if err != nil {
		h.logger.Warn("attach partial failure detail", zap.Error(err))
		return st.Err()
	}

	return withDetails.Err()
}

func toProtoHireResult(result *hiring.HireResult) *hrv1.HireCandidateResponse {
	if result == nil {
		return nil
	}

	resp := &hrv1.HireCandidateResponse{
		WorkflowID: result.WorkflowID,
		Outcome:    string(result.Outcome),
		Employee:   toProtoEmployee(result.Employee),
		Salary:     toProtoSalary(result.Salary),
		Candidate:  toProtoCandidate(result.Candidate),
	}
	if result.StatusErr != nil {
		resp.StatusError = result.StatusErr.Error()
	}
	return resp
}
