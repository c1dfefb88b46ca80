package hiring

import (
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/candidate"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/employee"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/salary"
)

// Outcome は採用フローの完了状態です。
type Outcome string

const (
	// OutcomeCompleted は社員・給与・応募者状態のすべてが反映された状態です。
	OutcomeCompleted Outcome = "completed"
	// OutcomeSalaryMissing は社員のみ作成され、給与レコードが未作成の状態です。
	OutcomeSalaryMissing Outcome = "salary_missing"
	// OutcomeCandidateStatusPending は社員と給与は作成済みで、応募者状態の更新に失敗した状態です。
	OutcomeCandidateStatusPending Outcome = "candidate_status_pending"
)

// HireResult は採用フローの結果です。
type HireResult struct {
	WorkflowID string
	Employee   *employee.Employee
	Salary     *salary.Salary
	Candidate  *candidate.Candidate
	Outcome    Outcome
	// StatusErr は応募者状態の更新に失敗した場合のみ設定されます。
	StatusErr error
}

// Partial は一部の段階が未完了かを返します。
func (r *HireResult) Partial() bool {
	if r == nil {
		return false
	}
	return r.Outcome == OutcomeSalaryMissing || r.Outcome == OutcomeCandidateStatusPending
}
