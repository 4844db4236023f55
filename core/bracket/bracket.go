// Package bracket implements progressive deduction schedules.
// A schedule is an ordered list of tiers; income inside a tier is
// deducted at that tier's rate, so the deduction is piecewise linear
// and continuous across tier boundaries.
package bracket

import (
	"github.com/shopspring/decimal"

	"netsalary/internal/errors"
)

// Bracket is a single tier of a progressive schedule.
type Bracket struct {
	// UpperBound is the inclusive income ceiling for the tier.
	// A zero bound marks the open final tier (no ceiling).
	UpperBound decimal.Decimal

	// Rate is the deduction rate applied to income inside the tier.
	Rate decimal.Decimal
}

// Open reports whether the tier has no income ceiling.
func (b Bracket) Open() bool {
	return b.UpperBound.IsZero()
}

// Table is a validated progressive schedule. Tables are immutable
// after construction and safe to share across rules and goroutines.
type Table struct {
	brackets []Bracket
}

// NewTable validates and builds a Table. Bounds must ascend strictly,
// rates must lie in [0,1], and only the last tier may be open.
func NewTable(brackets []Bracket) (Table, error) {
	if len(brackets) == 0 {
		return Table{}, errors.Config("bracket table must contain at least one tier")
	}

	one := decimal.NewFromInt(1)
	threshold := decimal.Zero
	for i, br := range brackets {
		if br.Rate.Sign() < 0 || br.Rate.Cmp(one) > 0 {
			return Table{}, errors.Configf("tier %d: rate %s outside [0,1]", i, br.Rate)
		}
		if br.Open() {
			if i != len(brackets)-1 {
				return Table{}, errors.Configf("tier %d: open tier must be last", i)
			}
			continue
		}
		if br.UpperBound.Cmp(threshold) <= 0 {
			return Table{}, errors.Configf("tier %d: bound %s does not ascend past %s", i, br.UpperBound, threshold)
		}
		threshold = br.UpperBound
	}

	table := Table{brackets: make([]Bracket, len(brackets))}
	copy(table.brackets, brackets)
	return table, nil
}

// MustTable builds a Table and panics on validation failure.
// Intended for package-level default schedules.
func MustTable(brackets []Bracket) Table {
	table, err := NewTable(brackets)
	if err != nil {
		panic(err)
	}
	return table
}

// Apply computes the cumulative progressive deduction for grossSalary.
// Each tier deducts its rate on the slice of income between the
// previous tier's ceiling and its own; the open tier takes the
// remainder. Non-positive income deducts nothing. The result carries
// full precision; rounding is a presentation concern.
func (t Table) Apply(grossSalary decimal.Decimal) decimal.Decimal {
	deduction := decimal.Zero
	if grossSalary.Sign() <= 0 {
		return deduction
	}

	threshold := decimal.Zero
	for _, br := range t.brackets {
		ceiling := grossSalary
		if !br.Open() && br.UpperBound.Cmp(ceiling) < 0 {
			ceiling = br.UpperBound
		}

		taxable := ceiling.Sub(threshold)
		if taxable.Sign() <= 0 {
			break
		}
		deduction = deduction.Add(taxable.Mul(br.Rate))

		// Income fully covered; later tiers would contribute zero.
		if br.Open() || grossSalary.Cmp(br.UpperBound) <= 0 {
			break
		}
		threshold = br.UpperBound
	}

	return deduction
}
