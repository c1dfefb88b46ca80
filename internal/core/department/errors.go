package department

import "errors"

var (
	// ErrDepartmentNotFound は部署が存在しない場合に返却されます。
	ErrDepartmentNotFound = errors.New("department: not found")
	// ErrNameAlreadyExists は部署名が重複した場合に返却されます。
	ErrNameAlreadyExists = errors.New("department: name already exists")
	// ErrDepartmentInUse は所属社員がいる部署を削除しようとした場合に返却されます。
	ErrDepartmentInUse = errors.New("department: still referenced by employees")
	// ErrInvalidName は部署名が不正な場合に返却されます。
	ErrInvalidName = errors.New("department: invalid name")
	// ErrInvalidLocation は所在地が不正な場合に返却されます。
	ErrInvalidLocation = errors.New("department: invalid location")
	// ErrInvalidBudget は予算が負数または非有限値の場合に返却されます。
	ErrInvalidBudget = errors.New("department: invalid budget")
	// ErrInvalidManagerID は責任者 ID が不正な場合に返却されます。
	ErrInvalidManagerID = errors.New("department: invalid manager id")
	// ErrInvalidID は ID が不正な場合に返却されます。
	ErrInvalidID = errors.New("department: invalid id")
	// ErrInvalidPageSize は一覧取得時のページサイズが不正な場合に返却されます。
	ErrInvalidPageSize = errors.New("department: invalid page size")
	// ErrInvalidPageToken は一覧取得時のページトークンが不正な場合に返却されます。
	ErrInvalidPageToken = errors.New("department: invalid page token")
)
