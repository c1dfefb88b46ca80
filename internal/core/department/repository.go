package department

import "context"

// Repository は部署エンティティの永続化を行うインターフェースです。
type Repository interface {
	Create(ctx context.Context, department *Department) (*Department, error)
	Update(ctx context.Context, department *Department) (*Department, error)
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*Department, error)
	FindByName(ctx context.Context, name string) (*Department, error)
	List(ctx context.Context, filter ListDepartmentsFilter) ([]*Department, string, error)
}

// ListDepartmentsFilter は一覧取得時の検索条件を表します。
type ListDepartmentsFilter struct {
	Limit  int
	Offset int
}

// ManagerDirectory は責任者 (社員) の氏名を引くための参照口です。
type ManagerDirectory interface {
	ManagerNames(ctx context.Context, ids []int64) (map[int64]string, error)
}
