package deduction

import (
	"github.com/shopspring/decimal"

	"netsalary/core/bracket"
)

// TaxPointValue is the monetary credit per tax point.
var TaxPointValue = decimal.NewFromInt(223)

// DefaultIncomeTaxTable is the canonical seven-tier income tax schedule.
var DefaultIncomeTaxTable = bracket.MustTable([]bracket.Bracket{
	{UpperBound: decimal.NewFromInt(6450), Rate: decimal.NewFromFloat(0.10)},
	{UpperBound: decimal.NewFromInt(9240), Rate: decimal.NewFromFloat(0.14)},
	{UpperBound: decimal.NewFromInt(14840), Rate: decimal.NewFromFloat(0.20)},
	{UpperBound: decimal.NewFromInt(20620), Rate: decimal.NewFromFloat(0.31)},
	{UpperBound: decimal.NewFromInt(42910), Rate: decimal.NewFromFloat(0.35)},
	{UpperBound: decimal.NewFromInt(55270), Rate: decimal.NewFromFloat(0.47)},
	{Rate: decimal.NewFromFloat(0.50)},
})

// IncomeTax deducts progressive income tax less the tax-point credit.
type IncomeTax struct {
	taxPoints decimal.Decimal
	table     bracket.Table
}

// NewIncomeTax builds an income tax rule over the default schedule.
func NewIncomeTax(taxPoints decimal.Decimal) IncomeTax {
	return NewIncomeTaxWithTable(taxPoints, DefaultIncomeTaxTable)
}

// NewIncomeTaxWithTable builds an income tax rule over a custom schedule.
func NewIncomeTaxWithTable(taxPoints decimal.Decimal, table bracket.Table) IncomeTax {
	return IncomeTax{taxPoints: taxPoints, table: table}
}

// Name implements Rule.
func (IncomeTax) Name() string {
	return "Income tax"
}

// Calculate implements Rule. The result is not clamped at zero: when
// the tax-point credit exceeds the computed tax, the negative amount
// flows through and raises the net salary.
func (r IncomeTax) Calculate(grossSalary decimal.Decimal) decimal.Decimal {
	return r.table.Apply(grossSalary).Sub(TaxPointValue.Mul(r.taxPoints))
}
