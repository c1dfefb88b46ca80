package salary

import "context"

// Repository は給与レコード永続化の抽象です。
// 実装は返却前に Normalize を適用し、派生フィールドの整合性を保証します。
type Repository interface {
	Create(ctx context.Context, salary *Salary) (*Salary, error)
	Update(ctx context.Context, salary *Salary) (*Salary, error)
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*Salary, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]*Salary, error)
	List(ctx context.Context, filter ListSalariesFilter) ([]*Salary, string, error)
}

// ListSalariesFilter は一覧取得用フィルタです。
// Search は支払頻度・調整種別・メモに対する部分一致です。
type ListSalariesFilter struct {
	EmployeeID *int64
	Search     string
	Limit      int
	Offset     int
}
