// Package deduction defines the salary deduction rules applied to a
// gross salary: progressive income tax with tax-point credits,
// national insurance, health insurance, and the mandatory pension
// contribution.
package deduction

import "github.com/shopspring/decimal"

// Rule is a single deduction applied against a gross salary.
// Implementations are immutable after construction, hold no hidden
// state, and are safe for concurrent use.
type Rule interface {
	// Name is the label used in the deduction trace.
	Name() string

	// Calculate returns the amount this rule deducts from grossSalary.
	// A negative amount is a credit and increases the net salary.
	Calculate(grossSalary decimal.Decimal) decimal.Decimal
}
