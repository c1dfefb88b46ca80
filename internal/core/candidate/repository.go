package candidate

import "context"

// Repository は応募者エンティティの永続化を行うインターフェースです。
type Repository interface {
	Create(ctx context.Context, candidate *Candidate) (*Candidate, error)
	Update(ctx context.Context, candidate *Candidate) (*Candidate, error)
	UpdateStatus(ctx context.Context, id int64, status Status) (*Candidate, error)
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*Candidate, error)
	// FindByIDForUpdate は FindByID と同じですが、トランザクション内では行をロックします。
	FindByIDForUpdate(ctx context.Context, id int64) (*Candidate, error)
	List(ctx context.Context, filter ListCandidatesFilter) ([]*Candidate, string, error)
}

// ListCandidatesFilter は一覧取得時の検索条件を表します。
// Search は氏名・応募職種・メールアドレスに対する部分一致 (大文字小文字を区別しない) です。
type ListCandidatesFilter struct {
	DepartmentID *int64
	Status       *Status
	Search       string
	Limit        int
	Offset       int
}
