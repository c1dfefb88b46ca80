package department

import "time"

// Department は部署エンティティです。
type Department struct {
	ID          int64
	Name        string
	Location    string
	Budget      float64
	ManagerID   *int64
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// WithManager は部署と責任者名の組です。
type WithManager struct {
	Department  *Department
	ManagerName string
}

// UnassignedManagerName は責任者が未設定または見つからない場合の表示名です。
const UnassignedManagerName = "Not assigned"
