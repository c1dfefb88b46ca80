package memory

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/candidate"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/department"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/employee"
	"github.com/ogurasousui/codex-hr-clean-arch/internal/core/salary"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

const dateLayout = "2006-01-02"

type fixtureFile struct {
	Departments []struct {
		ID          int64   `yaml:"id"`
		Name        string  `yaml:"name"`
		Location    string  `yaml:"location"`
		Budget      float64 `yaml:"budget"`
		ManagerID   *int64  `yaml:"manager_id"`
		Description string  `yaml:"description"`
	} `yaml:"departments"`
	Employees []struct {
		ID                    int64   `yaml:"id"`
		Name                  string  `yaml:"name"`
		Email                 string  `yaml:"email"`
		DepartmentID          int64   `yaml:"department_id"`
		Position              *string `yaml:"position"`
		HireDate              string  `yaml:"hire_date"`
		PhoneNumber           *string `yaml:"phone_number"`
		Address               *string `yaml:"address"`
		DateOfBirth           string  `yaml:"date_of_birth"`
		EmploymentType        string  `yaml:"employment_type"`
		Status                string  `yaml:"status"`
		EmergencyContact      *string `yaml:"emergency_contact"`
		EmergencyContactPhone *string `yaml:"emergency_contact_phone"`
	} `yaml:"employees"`
	Candidates []struct {
		ID                  int64   `yaml:"id"`
		Name                string  `yaml:"name"`
		Email               string  `yaml:"email"`
		Phone               string  `yaml:"phone"`
		AppliedPosition     string  `yaml:"applied_position"`
		AppliedDepartmentID *int64  `yaml:"applied_department_id"`
		Status              string  `yaml:"status"`
		ApplicationDate     string  `yaml:"application_date"`
		Resume              *string `yaml:"resume"`
	} `yaml:"candidates"`
	Salaries []struct {
		ID               int64   `yaml:"id"`
		EmployeeID       int64   `yaml:"employee_id"`
		BaseAmount       float64 `yaml:"base_amount"`
		Bonus            float64 `yaml:"bonus"`
		PaymentFrequency string  `yaml:"payment_frequency"`
		EffectiveDate    string  `yaml:"effective_date"`
		PreviousSalaryID *int64  `yaml:"previous_salary_id"`
		AdjustmentType   *string `yaml:"adjustment_type"`
		Notes            *string `yaml:"notes"`
	} `yaml:"salaries"`
}

// NewSeededStore は組み込みのサンプルデータを読み込んだ Store を生成します。
func NewSeededStore() (*Store, error) {
	s := NewStore()
	if err := s.Load(defaultFixtures); err != nil {
		return nil, err
	}
	return s, nil
}

// Load は YAML 形式のデータを Store に追加します。ID はデータ中の値をそのまま使い、
// 以降の採番はコレクションごとの最大 ID + 1 から始まります。
func (s *Store) Load(data []byte) error {
	var f fixtureFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("memory: decode fixtures: %w", err)
	}

	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range f.Departments {
		s.departments[d.ID] = &department.Department{
			ID:          d.ID,
			Name:        d.Name,
			Location:    d.Location,
			Budget:      d.Budget,
			ManagerID:   d.ManagerID,
			Description: d.Description,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		s.lastDepartmentID = max(s.lastDepartmentID, d.ID)
	}

	for _, e := range f.Employees {
		hireDate, err := parseOptionalDate(e.HireDate)
		if err != nil {
			return fmt.Errorf("memory: employee %d hire_date: %w", e.ID, err)
		}
		dateOfBirth, err := parseOptionalDate(e.DateOfBirth)
		if err != nil {
			return fmt.Errorf("memory: employee %d date_of_birth: %w", e.ID, err)
		}
		s.employees[e.ID] = &employee.Employee{
			ID:                    e.ID,
			Name:                  e.Name,
			Email:                 e.Email,
			DepartmentID:          e.DepartmentID,
			PhoneNumber:           e.PhoneNumber,
			Address:               e.Address,
			DateOfBirth:           dateOfBirth,
			Position:              e.Position,
			HireDate:              hireDate,
			EmergencyContact:      e.EmergencyContact,
			EmergencyContactPhone: e.EmergencyContactPhone,
			EmploymentType:        employee.EmploymentType(e.EmploymentType),
			Status:                employee.Status(e.Status),
			CreatedAt:             now,
			UpdatedAt:             now,
		}
		s.lastEmployeeID = max(s.lastEmployeeID, e.ID)
	}

	for _, c := range f.Candidates {
		applied, err := time.Parse(dateLayout, c.ApplicationDate)
		if err != nil {
			return fmt.Errorf("memory: candidate %d application_date: %w", c.ID, err)
		}
		s.candidates[c.ID] = &candidate.Candidate{
			ID:                  c.ID,
			Name:                c.Name,
			Email:               c.Email,
			Phone:               c.Phone,
			AppliedPosition:     c.AppliedPosition,
			AppliedDepartmentID: c.AppliedDepartmentID,
			Resume:              c.Resume,
			Status:              candidate.Status(c.Status),
			ApplicationDate:     applied,
			CreatedAt:           now,
			UpdatedAt:           now,
		}
		s.lastCandidateID = max(s.lastCandidateID, c.ID)
	}

	for _, sal := range f.Salaries {
		effective, err := time.Parse(dateLayout, sal.EffectiveDate)
		if err != nil {
			return fmt.Errorf("memory: salary %d effective_date: %w", sal.ID, err)
		}
		var adjustment *salary.AdjustmentType
		if sal.AdjustmentType != nil {
			a := salary.AdjustmentType(*sal.AdjustmentType)
			adjustment = &a
		}
		s.salaries[sal.ID] = salary.Normalize(&salary.Salary{
			ID:               sal.ID,
			EmployeeID:       sal.EmployeeID,
			BaseAmount:       sal.BaseAmount,
			Bonus:            sal.Bonus,
			PaymentFrequency: salary.PaymentFrequency(sal.PaymentFrequency),
			EffectiveDate:    effective,
			PreviousSalaryID: sal.PreviousSalaryID,
			AdjustmentType:   adjustment,
			Notes:            sal.Notes,
			CreatedAt:        now,
			UpdatedAt:        now,
		})
		s.lastSalaryID = max(s.lastSalaryID, sal.ID)
	}

	return nil
}

func parseOptionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
