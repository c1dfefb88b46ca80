package handler

import (
	"context"

	"github.com/ogurasousui/codex-hr-clean-arch/internal/adapters/grpc/hrv1"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/salary"
)

// SalaryGrpcHandler は SalaryService の gRPC 実装です。
type SalaryGrpcHandler struct {
	svc salary.UseCase
}

// NewSalaryGrpcHandler は SalaryGrpcHandler を生成します。
func NewSalaryGrpcHandler(svc salary.UseCase) *SalaryGrpcHandler {
	return &SalaryGrpcHandler{svc: svc}
}

var _ hrv1.SalaryServiceServer = (*SalaryGrpcHandler)(nil)

// CalculateSalary は基本給と賞与から総支給額・税控除額・手取り額を計算します。
// 計算自体は入力をそのまま扱うため、負数と非有限値はここで拒否します。
func (h *SalaryGrpcHandler) CalculateSalary(_ context.Context, req *hrv1.CalculateSalaryRequest) (*hrv1.CalculateSalaryResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}

	if err := salary.ValidateAmounts(req.BaseAmount, req.Bonus); err != nil {
		return nil, toStatusError(err)
	}

	amounts := salary.DeriveAmounts(req.BaseAmount, req.Bonus)
	return &hrv1.CalculateSalaryResponse{
		GrossAmount:   amounts.GrossAmount,
		TaxDeductions: amounts.TaxDeductions,
		NetAmount:     amounts.NetAmount,
		TaxRate:       salary.TaxRate,
	}, nil
}

// CreateSalary は給与レコードを作成します。
func (h *SalaryGrpcHandler) CreateSalary(ctx context.Context, req *hrv1.CreateSalaryRequest) (*hrv1.SalaryResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}

	effective, err := parseDateValue(req.EffectiveDate)
	if err != nil {
		return nil, invalidArgument("effective_date", err)
	}

	created, err := h.svc.CreateSalary(ctx, salary.CreateSalaryInput{
		EmployeeID:       req.EmployeeID,
		BaseAmount:       req.BaseAmount,
		Bonus:            req.Bonus,
		PaymentFrequency: salary.PaymentFrequency(req.PaymentFrequency),
		EffectiveDate:    effective,
		PreviousSalaryID: req.PreviousSalaryID,
		AdjustmentType:   stringEnumPtr[salary.AdjustmentType](req.AdjustmentType),
		Notes:            req.Notes,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &hrv1.SalaryResponse{Salary: toProtoSalary(created)}, nil
}

// GetSalary は給与レコードを取得します。
func (h *SalaryGrpcHandler) GetSalary(ctx context.Context, req *hrv1.IDRequest) (*hrv1.SalaryResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}

	found, err := h.svc.GetSalary(ctx, salary.GetSalaryInput{ID: req.ID})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &hrv1.SalaryResponse{Salary: toProtoSalary(found)}, nil
}

// ListSalaries は給与レコードの一覧を取得します。
func (h *SalaryGrpcHandler) ListSalaries(ctx context.Context, req *hrv1.ListSalariesRequest) (*hrv1.ListSalariesResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}

	result, err := h.svc.ListSalaries(ctx, salary.ListSalariesInput{
		EmployeeID: req.EmployeeID,
		Search:     req.Search,
		PageSize:   int(req.PageSize),
		PageToken:  req.PageToken,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &hrv1.ListSalariesResponse{Salaries: toProtoSalaries(result.Salaries), NextPageToken: result.NextPageToken}, nil
}

// ListSalaryHistory は社員の給与履歴を発効日の新しい順に返します。
func (h *SalaryGrpcHandler) ListSalaryHistory(ctx context.Context, req *hrv1.EmployeeIDRequest) (*hrv1.ListSalariesResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}

	history, err := h.svc.ListSalariesByEmployee(ctx, req.EmployeeID)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &hrv1.ListSalariesResponse{Salaries: toProtoSalaries(history)}, nil
}

// GetCurrentSalary は社員の現行給与を返します。
func (h *SalaryGrpcHandler) GetCurrentSalary(ctx context.Context, req *hrv1.EmployeeIDRequest) (*hrv1.SalaryResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}

	current, err := h.svc.GetCurrentSalaryForEmployee(ctx, req.EmployeeID)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &hrv1.SalaryResponse{Salary: toProtoSalary(current)}, nil
}

// UpdateSalary は給与レコードを更新します。
func (h *SalaryGrpcHandler) UpdateSalary(ctx context.Context, req *hrv1.UpdateSalaryRequest) (*hrv1.SalaryResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}

	effective, err := parseDateValue(req.EffectiveDate)
	if err != nil {
		return nil, invalidArgument("effective_date", err)
	}

	updated, err := h.svc.UpdateSalary(ctx, salary.UpdateSalaryInput{
		ID:               req.ID,
		BaseAmount:       req.BaseAmount,
		Bonus:            req.Bonus,
		PaymentFrequency: stringEnumPtr[salary.PaymentFrequency](req.PaymentFrequency),
		EffectiveDate:    effective,
		AdjustmentType:   stringEnumPtr[salary.AdjustmentType](req.AdjustmentType),
		Notes:            req.Notes,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &hrv1.SalaryResponse{Salary: toProtoSalary(updated)}, nil
}

// AdjustSalary は現行給与を起点に新しい給与レコードを追加します。
func (h *SalaryGrpcHandler) AdjustSalary(ctx context.Context, req *hrv1.AdjustSalaryRequest) (*hrv1.SalaryResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}

	effective, err := parseDateValue(req.EffectiveDate)
	if err != nil {
		return nil, invalidArgument("effective_date", err)
	}

	created, err := h.svc.AdjustSalary(ctx, salary.AdjustSalaryInput{
		EmployeeID:       req.EmployeeID,
		BaseAmount:       req.BaseAmount,
		Bonus:            req.Bonus,
		PaymentFrequency: stringEnumPtr[salary.PaymentFrequency](req.PaymentFrequency),
		EffectiveDate:    effective,
		AdjustmentType:   salary.AdjustmentType(req.AdjustmentType),
		Notes:            req.Notes,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &hrv1.SalaryResponse{Salary: toProtoSalary(created)}, nil
}

// DeleteSalary は給与レコードを削除します。
func (h *SalaryGrpcHandler) DeleteSalary(ctx context.Context, req *hrv1.IDRequest) (*hrv1.Empty, error) {
	if req == nil {
		return nil, errRequestRequired
	}

	if err := h.svc.DeleteSalary(ctx, salary.DeleteSalaryInput{ID: req.ID}); err != nil {
		return nil, toStatusError(err)
	}

	return &hrv1.Empty{}, nil
}

func toProtoSalaries(records []*salary.Salary) []*hrv1.Salary {
	out := make([]*hrv1.Salary, 0, len(records))
	for _, rec := range records {
		out = append(out, toProtoSalary(rec))
	}
	return out
}

func toProtoSalary(s *salary.Salary) *hrv1.Salary {
	if s == nil {
		return nil
	}

	var adjustment string
	if s.AdjustmentType != nil {
		adjustment = string(*s.AdjustmentType)
	}

	return &hrv1.Salary{
		ID:               s.ID,
		EmployeeID:       s.EmployeeID,
		BaseAmount:       s.BaseAmount,
		Bonus:            s.Bonus,
		GrossAmount:      s.GrossAmount,
		TaxDeductions:    s.TaxDeductions,
		NetAmount:        s.NetAmount,
		PaymentFrequency: string(s.PaymentFrequency),
		EffectiveDate:    formatDate(&s.EffectiveDate),
		PreviousSalaryID: s.PreviousSalaryID,
		AdjustmentType:   adjustment,
		Notes:            s.Notes,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}
