package deduction

import "github.com/shopspring/decimal"

// DefaultPensionRate is the mandatory pension contribution rate.
var DefaultPensionRate = decimal.NewFromFloat(0.06)

// MandatoryPension deducts a flat-rate pension contribution.
type MandatoryPension struct {
	rate decimal.Decimal
}

// NewMandatoryPension builds the rule with the default rate.
func NewMandatoryPension() MandatoryPension {
	return NewMandatoryPensionWithRate(DefaultPensionRate)
}

// NewMandatoryPensionWithRate builds the rule with a custom rate.
func NewMandatoryPensionWithRate(rate decimal.Decimal) MandatoryPension {
	return MandatoryPension{rate: rate}
}

// Name implements Rule.
func (MandatoryPension) Name() string {
	return "Mandatory pension savings"
}

// Calculate implements Rule.
func (r MandatoryPension) Calculate(grossSalary decimal.Decimal) decimal.Decimal {
	return grossSalary.Mul(r.rate)
}
