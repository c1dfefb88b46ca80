package candidate

import "errors"

var (
	// ErrCandidateNotFound は応募者が存在しない場合に返却されます。
	ErrCandidateNotFound = errors.New("candidate: not found")
	// ErrDepartmentNotFound は応募先部署が存在しない場合に返却されます。
	ErrDepartmentNotFound = errors.New("candidate: department not found")
	// ErrInvalidID は ID が不正な場合に返却されます。
	ErrInvalidID = errors.New("candidate: invalid id")
	// ErrInvalidName は氏名が不正な場合に返却されます。
	ErrInvalidName = errors.New("candidate: invalid name")
	// ErrInvalidEmail はメールアドレスが不正な場合に返却されます。
	ErrInvalidEmail = errors.New("candidate: invalid email")
	// ErrInvalidPosition は応募職種が不正な場合に返却されます。
	ErrInvalidPosition = errors.New("candidate: invalid applied position")
	// ErrInvalidDepartmentID は応募先部署 ID が不正な場合に返却されます。
	ErrInvalidDepartmentID = errors.New("candidate: invalid department id")
	// ErrInvalidStatus はステータスが不正な場合に返却されます。
	ErrInvalidStatus = errors.New("candidate: invalid status")
	// ErrInvalidTransition は許可されていない状態遷移の場合に返却されます。
	ErrInvalidTransition = errors.New("candidate: status transition not allowed")
	// ErrInvalidPageSize は一覧取得時のページサイズが不正な場合に返却されます。
	ErrInvalidPageSize = errors.New("candidate: invalid page size")
	// ErrInvalidPageToken は一覧取得時のページトークンが不正な場合に返却されます。
	ErrInvalidPageToken = errors.New("candidate: invalid page token")
)
