package salary

import "time"

// PaymentFrequency は給与の支払い頻度です。
type PaymentFrequency string

const (
	FrequencyMonthly  PaymentFrequency = "Monthly"
	FrequencyBiWeekly PaymentFrequency = "Bi-Weekly"
	FrequencyWeekly   PaymentFrequency = "Weekly"
)

// AdjustmentType は給与改定の種別です。
type AdjustmentType string

const (
	AdjustmentRaise        AdjustmentType = "raise"
	AdjustmentBonus        AdjustmentType = "bonus"
	AdjustmentCorrection   AdjustmentType = "correction"
	AdjustmentPromotion    AdjustmentType = "promotion"
	AdjustmentCostOfLiving AdjustmentType = "cost-of-living"
	AdjustmentPerformance  AdjustmentType = "performance"
)

// Salary は給与レコードです。GrossAmount / TaxDeductions / NetAmount は派生値で、
// 常に BaseAmount と Bonus から再計算されます。
type Salary struct {
	ID               int64
	EmployeeID       int64
	BaseAmount       float64
	Bonus            float64
	GrossAmount      float64
	TaxDeductions    float64
	NetAmount        float64
	PaymentFrequency PaymentFrequency
	EffectiveDate    time.Time
	PreviousSalaryID *int64
	AdjustmentType   *AdjustmentType
	Notes            *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsValidFrequency は支払い頻度が既知の値か判定します。
func IsValidFrequency(f PaymentFrequency) bool {
	switch f {
	case FrequencyMonthly, FrequencyBiWeekly, FrequencyWeekly:
		return true
	default:
		return false
	}
}

// IsValidAdjustmentType は改定種別が既知の値か判定します。
func IsValidAdjustmentType(t AdjustmentType) bool {
	switch t {
	case AdjustmentRaise, AdjustmentBonus, AdjustmentCorrection,
		AdjustmentPromotion, AdjustmentCostOfLiving, AdjustmentPerformance:
		return true
	default:
		return false
	}
}
