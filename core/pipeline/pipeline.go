// Package pipeline composes deduction rules into a single net salary
// calculation with a per-rule diagnostic trace.
package pipeline

import (
	"fmt"

	"github.com/shopspring/decimal"

	"netsalary/core/deduction"
	"netsalary/internal/logging"
)

// Breakdown is one rule's contribution to the total deduction.
type Breakdown struct {
	Rule   string
	Amount decimal.Decimal
}

// Result is the outcome of a net salary calculation. Amounts carry
// full precision; callers round at the output boundary.
type Result struct {
	Gross      decimal.Decimal
	Deductions []Breakdown
	Total      decimal.Decimal
	Net        decimal.Decimal
}

// Pipeline applies an ordered sequence of deduction rules to a gross
// salary. Rule order does not affect the total but fixes the trace
// and breakdown order.
type Pipeline struct {
	rules []deduction.Rule
}

// New builds a pipeline over the given rules.
func New(rules ...deduction.Rule) *Pipeline {
	return &Pipeline{rules: rules}
}

// Calculate invokes every rule against grossSalary, logs each
// deduction at debug level, and returns the summed result.
func (p *Pipeline) Calculate(grossSalary decimal.Decimal) Result {
	total := decimal.Zero
	deductions := make([]Breakdown, 0, len(p.rules))

	for _, rule := range p.rules {
		amount := rule.Calculate(grossSalary)
		total = total.Add(amount)
		deductions = append(deductions, Breakdown{Rule: rule.Name(), Amount: amount})
		logging.Debug(fmt.Sprintf("%s: %s", rule.Name(), amount.StringFixed(2)))
	}

	return Result{
		Gross:      grossSalary,
		Deductions: deductions,
		Total:      total,
		Net:        grossSalary.Sub(total),
	}
}
