// Package hrv1 は hr.v1 gRPC サービスのメッセージとサービス定義です。
//
// 日付は "YYYY-MM-DD" 形式の文字列、タイムスタンプは RFC3339 で表現します。
// 更新リクエストの省略可能な項目は nil で「変更なし」を表します。
package hrv1

import "time"

// Empty は本文を持たないレスポンスです。
type Empty struct{}

// IDRequest は単一 ID を指定するリクエストです。
type IDRequest struct {
	ID int64 `json:"id"`
}

// EmployeeIDRequest は社員 ID を指定するリクエストです。
type EmployeeIDRequest struct {
	EmployeeID int64 `json:"employee_id"`
}

// ---- Department ----

// Department は部署の表現です。
type Department struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Budget      float64   `json:"budget"`
	ManagerID   *int64    `json:"manager_id,omitempty"`
	ManagerName string    `json:"manager_name,omitempty"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateDepartmentRequest struct {
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Budget      *float64 `json:"budget,omitempty"`
	ManagerID   *int64   `json:"manager_id,omitempty"`
	Description *string  `json:"description,omitempty"`
}

// UpdateDepartmentRequest は部署更新リクエストです。ClearManager が true の場合は責任者を外します。
type UpdateDepartmentRequest struct {
	ID           int64    `json:"id"`
	Name         *string  `json:"name,omitempty"`
	Location     *string  `json:"location,omitempty"`
	Budget       *float64 `json:"budget,omitempty"`
	ManagerID    *int64   `json:"manager_id,omitempty"`
	ClearManager bool     `json:"clear_manager,omitempty"`
	Description  *string  `json:"description,omitempty"`
}

// ListDepartmentsRequest は部署一覧リクエストです。WithManagers が true の場合は責任者名を解決します。
type ListDepartmentsRequest struct {
	PageSize     int32  `json:"page_size,omitempty"`
	PageToken    string `json:"page_token,omitempty"`
	WithManagers bool   `json:"with_managers,omitempty"`
}

type DepartmentResponse struct {
	Department *Department `json:"department"`
}

type ListDepartmentsResponse struct {
	Departments   []*Department `json:"departments"`
	NextPageToken string        `json:"next_page_token,omitempty"`
}

// ---- Employee ----

// Employee は社員の表現です。
type Employee struct {
	ID                    int64     `json:"id"`
	Name                  string    `json:"name"`
	Email                 string    `json:"email"`
	DepartmentID          int64     `json:"department_id"`
	PhoneNumber           *string   `json:"phone_number,omitempty"`
	Address               *string   `json:"address,omitempty"`
	DateOfBirth           string    `json:"date_of_birth,omitempty"`
	Position              *string   `json:"position,omitempty"`
	HireDate              string    `json:"hire_date,omitempty"`
	EmergencyContact      *string   `json:"emergency_contact,omitempty"`
	EmergencyContactPhone *string   `json:"emergency_contact_phone,omitempty"`
	EmploymentType        string    `json:"employment_type"`
	Status                string    `json:"status"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

type CreateEmployeeRequest struct {
	Name                  string  `json:"name"`
	Email                 string  `json:"email"`
	DepartmentID          int64   `json:"department_id"`
	PhoneNumber           *string `json:"phone_number,omitempty"`
	Address               *string `json:"address,omitempty"`
	DateOfBirth           *string `json:"date_of_birth,omitempty"`
	Position              *string `json:"position,omitempty"`
	HireDate              *string `json:"hire_date,omitempty"`
	EmergencyContact      *string `json:"emergency_contact,omitempty"`
	EmergencyContactPhone *string `json:"emergency_contact_phone,omitempty"`
	EmploymentType        string  `json:"employment_type,omitempty"`
	Status                string  `json:"status,omitempty"`
}

// UpdateEmployeeRequest は社員更新リクエストです。
// DateOfBirth と HireDate は空文字を指定すると値を消去します。
type UpdateEmployeeRequest struct {
	ID                    int64   `json:"id"`
	Name                  *string `json:"name,omitempty"`
	Email                 *string `json:"email,omitempty"`
	DepartmentID          *int64  `json:"department_id,omitempty"`
	PhoneNumber           *string `json:"phone_number,omitempty"`
	Address               *string `json:"address,omitempty"`
	DateOfBirth           *string `json:"date_of_birth,omitempty"`
	Position              *string `json:"position,omitempty"`
	HireDate              *string `json:"hire_date,omitempty"`
	EmergencyContact      *string `json:"emergency_contact,omitempty"`
	EmergencyContactPhone *string `json:"emergency_contact_phone,omitempty"`
	EmploymentType        *string `json:"employment_type,omitempty"`
	Status                *string `json:"status,omitempty"`
}

type ListEmployeesRequest struct {
	DepartmentID *int64 `json:"department_id,omitempty"`
	Status       string `json:"status,omitempty"`
	Search       string `json:"search,omitempty"`
	PageSize     int32  `json:"page_size,omitempty"`
	PageToken    string `json:"page_token,omitempty"`
}

type EmployeeResponse struct {
	Employee *Employee `json:"employee"`
}

type ListEmployeesResponse struct {
	Employees     []*Employee `json:"employees"`
	NextPageToken string      `json:"next_page_token,omitempty"`
}

// ---- Candidate ----

// Candidate は応募者の表現です。
type Candidate struct {
	ID                  int64     `json:"id"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	Phone               string    `json:"phone"`
	AppliedPosition     string    `json:"applied_position"`
	AppliedDepartmentID *int64    `json:"applied_department_id,omitempty"`
	Resume              *string   `json:"resume,omitempty"`
	Status              string    `json:"status"`
	ApplicationDate     time.Time `json:"application_date"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type CreateCandidateRequest struct {
	Name                string     `json:"name"`
	Email               string     `json:"email"`
	Phone               string     `json:"phone"`
	AppliedPosition     string     `json:"applied_position"`
	AppliedDepartmentID *int64     `json:"applied_department_id,omitempty"`
	Resume              *string    `json:"resume,omitempty"`
	Status              string     `json:"status,omitempty"`
	ApplicationDate     *time.Time `json:"application_date,omitempty"`
}

// UpdateCandidateRequest は応募者更新リクエストです。状態の変更は UpdateCandidateStatus を使います。
type UpdateCandidateRequest struct {
	ID                     int64   `json:"id"`
	Name                   *string `json:"name,omitempty"`
	Email                  *string `json:"email,omitempty"`
	Phone                  *string `json:"phone,omitempty"`
	AppliedPosition        *string `json:"applied_position,omitempty"`
	AppliedDepartmentID    *int64  `json:"applied_department_id,omitempty"`
	ClearAppliedDepartment bool    `json:"clear_applied_department,omitempty"`
	Resume                 *string `json:"resume,omitempty"`
}

type UpdateCandidateStatusRequest struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

type ListCandidatesRequest struct {
	DepartmentID *int64 `json:"department_id,omitempty"`
	Status       string `json:"status,omitempty"`
	Search       string `json:"search,omitempty"`
	PageSize     int32  `json:"page_size,omitempty"`
	PageToken    string `json:"page_token,omitempty"`
}

type CandidateResponse struct {
	Candidate *Candidate `json:"candidate"`
}

type ListCandidatesResponse struct {
	Candidates    []*Candidate `json:"candidates"`
	NextPageToken string       `json:"next_page_token,omitempty"`
}

// ---- Salary ----

// Salary は給与レコードの表現です。
type Salary struct {
	ID               int64     `json:"id"`
	EmployeeID       int64     `json:"employee_id"`
	BaseAmount       float64   `json:"base_amount"`
	Bonus            float64   `json:"bonus"`
	GrossAmount      float64   `json:"gross_amount"`
	TaxDeductions    float64   `json:"tax_deductions"`
	NetAmount        float64   `json:"net_amount"`
	PaymentFrequency string    `json:"payment_frequency"`
	EffectiveDate    string    `json:"effective_date"`
	PreviousSalaryID *int64    `json:"previous_salary_id,omitempty"`
	AdjustmentType   string    `json:"adjustment_type,omitempty"`
	Notes            *string   `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type CalculateSalaryRequest struct {
	BaseAmount float64 `json:"base_amount"`
	Bonus      float64 `json:"bonus"`
}

type CalculateSalaryResponse struct {
	GrossAmount   float64 `json:"gross_amount"`
	TaxDeductions float64 `json:"tax_deductions"`
	NetAmount     float64 `json:"net_amount"`
	TaxRate       float64 `json:"tax_rate"`
}

type CreateSalaryRequest struct {
	EmployeeID       int64    `json:"employee_id"`
	BaseAmount       float64  `json:"base_amount"`
	Bonus            *float64 `json:"bonus,omitempty"`
	PaymentFrequency string   `json:"payment_frequency"`
	EffectiveDate    *string  `json:"effective_date,omitempty"`
	PreviousSalaryID *int64   `json:"previous_salary_id,omitempty"`
	AdjustmentType   *string  `json:"adjustment_type,omitempty"`
	Notes            *string  `json:"notes,omitempty"`
}

type UpdateSalaryRequest struct {
	ID               int64    `json:"id"`
	BaseAmount       *float64 `json:"base_amount,omitempty"`
	Bonus            *float64 `json:"bonus,omitempty"`
	PaymentFrequency *string  `json:"payment_frequency,omitempty"`
	EffectiveDate    *string  `json:"effective_date,omitempty"`
	AdjustmentType   *string  `json:"adjustment_type,omitempty"`
	Notes            *string  `json:"notes,omitempty"`
}

// AdjustSalaryRequest は現行給与を起点に新しい給与レコードを追加するリクエストです。
type AdjustSalaryRequest struct {
	EmployeeID       int64    `json:"employee_id"`
	BaseAmount       *float64 `json:"base_amount,omitempty"`
	Bonus            *float64 `json:"bonus,omitempty"`
	PaymentFrequency *string  `json:"payment_frequency,omitempty"`
	EffectiveDate    *string  `json:"effective_date,omitempty"`
	AdjustmentType   string   `json:"adjustment_type"`
	Notes            *string  `json:"notes,omitempty"`
}

type ListSalariesRequest struct {
	EmployeeID *int64 `json:"employee_id,omitempty"`
	Search     string `json:"search,omitempty"`
	PageSize   int32  `json:"page_size,omitempty"`
	PageToken  string `json:"page_token,omitempty"`
}

type SalaryResponse struct {
	Salary *Salary `json:"salary"`
}

type ListSalariesResponse struct {
	Salaries      []*Salary `json:"salaries"`
	NextPageToken string    `json:"next_page_token,omitempty"`
}

// ---- Hiring ----

// HireCandidateRequest は採用リクエストです。Position を省略すると応募職種を使います。
type HireCandidateRequest struct {
	CandidateID           int64    `json:"candidate_id"`
	Position              *string  `json:"position,omitempty"`
	BaseAmount            float64  `json:"base_amount"`
	Bonus                 *float64 `json:"bonus,omitempty"`
	PaymentFrequency      string   `json:"payment_frequency"`
	EffectiveDate         *string  `json:"effective_date,omitempty"`
	Notes                 *string  `json:"notes,omitempty"`
	DateOfBirth           *string  `json:"date_of_birth,omitempty"`
	Address               *string  `json:"address,omitempty"`
	EmergencyContact      *string  `json:"emergency_contact,omitempty"`
	EmergencyContactPhone *string  `json:"emergency_contact_phone,omitempty"`
}

// HireCandidateResponse は採用フローの結果です。
// Outcome が candidate_status_pending の場合、StatusError に失敗理由が入ります。
type HireCandidateResponse struct {
	WorkflowID  string     `json:"workflow_id"`
	Outcome     string     `json:"outcome"`
	Employee    *Employee  `json:"employee,omitempty"`
	Salary      *Salary    `json:"salary,omitempty"`
	Candidate   *Candidate `json:"candidate,omitempty"`
	StatusError string     `json:"status_error,omitempty"`
}

// ---- Dashboard ----

type DepartmentStat struct {
	DepartmentID int64   `json:"department_id"`
	Name         string  `json:"name"`
	Count        int     `json:"count"`
	Budget       float64 `json:"budget"`
}

type Anniversary struct {
	Employee  *Employee `json:"employee"`
	Date      string    `json:"date"`
	DaysUntil int       `json:"days_until"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// DashboardSummary はダッシュボード集計です。
type DashboardSummary struct {
	TotalEmployees        int              `json:"total_employees"`
	TotalDepartments      int              `json:"total_departments"`
	TotalCandidates       int              `json:"total_candidates"`
	ActiveCandidates      int              `json:"active_candidates"`
	TotalPayroll          float64          `json:"total_payroll"`
	AverageSalary         float64          `json:"average_salary"`
	DepartmentStats       []DepartmentStat `json:"department_stats"`
	RecentHires           []*Employee      `json:"recent_hires"`
	UpcomingAnniversaries []Anniversary    `json:"upcoming_anniversaries"`
	CandidateStatus       []StatusCount    `json:"candidate_status"`
	GeneratedAt           time.Time        `json:"generated_at"`
}
