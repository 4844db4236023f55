package deduction

import (
	"github.com/shopspring/decimal"

	"netsalary/core/bracket"
)

// DefaultNationalInsuranceTable is the canonical two-tier national
// insurance schedule.
var DefaultNationalInsuranceTable = bracket.MustTable([]bracket.Bracket{
	{UpperBound: decimal.NewFromInt(6331), Rate: decimal.NewFromFloat(0.004)},
	{Rate: decimal.NewFromFloat(0.07)},
})

// DefaultHealthInsuranceTable is the canonical two-tier health
// insurance schedule.
var DefaultHealthInsuranceTable = bracket.MustTable([]bracket.Bracket{
	{UpperBound: decimal.NewFromInt(6331), Rate: decimal.NewFromFloat(0.031)},
	{Rate: decimal.NewFromFloat(0.05)},
})

// NationalInsurance deducts progressive national insurance.
type NationalInsurance struct {
	table bracket.Table
}

// NewNationalInsurance builds the rule over the default schedule.
func NewNationalInsurance() NationalInsurance {
	return NewNationalInsuranceWithTable(DefaultNationalInsuranceTable)
}

// NewNationalInsuranceWithTable builds the rule over a custom schedule.
func NewNationalInsuranceWithTable(table bracket.Table) NationalInsurance {
	return NationalInsurance{table: table}
}

// Name implements Rule.
func (NationalInsurance) Name() string {
	return "National insurance"
}

// Calculate implements Rule.
func (r NationalInsurance) Calculate(grossSalary decimal.Decimal) decimal.Decimal {
	return r.table.Apply(grossSalary)
}

// HealthInsurance deducts progressive health insurance.
type HealthInsurance struct {
	table bracket.Table
}

// NewHealthInsurance builds the rule over the default schedule.
func NewHealthInsurance() HealthInsurance {
	return NewHealthInsuranceWithTable(DefaultHealthInsuranceTable)
}

// NewHealthInsuranceWithTable builds the rule over a custom schedule.
func NewHealthInsuranceWithTable(table bracket.Table) HealthInsurance {
	return HealthInsurance{table: table}
}

// Name implements Rule.
func (HealthInsurance) Name() string {
	return "Health insurance"
}

// Calculate implements Rule.
func (r HealthInsurance) Calculate(grossSalary decimal.Decimal) decimal.Decimal {
	return r.table.Apply(grossSalary)
}
