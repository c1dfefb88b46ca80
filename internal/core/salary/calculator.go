package salary

import "math"

// TaxRate は総支給額に対する一律の控除率です。
const TaxRate = 0.20

// Amounts は基本給と賞与から導出される金額です。
type Amounts struct {
	GrossAmount   float64
	TaxDeductions float64
	NetAmount     float64
}

// DeriveAmounts は総支給額・税控除額・手取り額を計算します。
// 入力の検証は行いません。NaN や Inf はそのまま伝播します。
func DeriveAmounts(baseAmount, bonus float64) Amounts {
	gross := baseAmount + bonus
	tax := gross * TaxRate
	return Amounts{
		GrossAmount:   gross,
		TaxDeductions: tax,
		NetAmount:     gross - tax,
	}
}

// Normalize は派生フィールドを BaseAmount と Bonus から上書きします。
func Normalize(s *Salary) *Salary {
	if s == nil {
		return nil
	}
	amounts := DeriveAmounts(s.BaseAmount, s.Bonus)
	s.GrossAmount = amounts.GrossAmount
	s.TaxDeductions = amounts.TaxDeductions
	s.NetAmount = amounts.NetAmount
	return s
}

// ValidateAmounts は負数・非有限値を拒否します。
func ValidateAmounts(baseAmount, bonus float64) error {
	if !isNonNegativeFinite(baseAmount) {
		return ErrInvalidBaseAmount
	}
	if !isNonNegativeFinite(bonus) {
		return ErrInvalidBonus
	}
	return nil
}

func isNonNegativeFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
