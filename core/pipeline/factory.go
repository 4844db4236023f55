package pipeline

import (
	"github.com/shopspring/decimal"

	"netsalary/core/bracket"
	"netsalary/core/deduction"
	"netsalary/internal/config"
	"netsalary/internal/errors"
)

// NewDefault builds the canonical four-rule pipeline: income tax,
// national insurance, health insurance, mandatory pension savings.
// Only the income tax rule consumes taxPoints.
func NewDefault(taxPoints decimal.Decimal) *Pipeline {
	return New(
		deduction.NewIncomeTax(taxPoints),
		deduction.NewNationalInsurance(),
		deduction.NewHealthInsurance(),
		deduction.NewMandatoryPension(),
	)
}

// FromConfig builds the canonical pipeline, substituting any bracket
// tables or pension rate overridden in cfg. A malformed override
// table fails construction.
func FromConfig(cfg *config.Config, taxPoints decimal.Decimal) (*Pipeline, error) {
	incomeTax := deduction.NewIncomeTax(taxPoints)
	if len(cfg.Rules.IncomeTax) > 0 {
		table, err := tableFromConfig("income_tax", cfg.Rules.IncomeTax)
		if err != nil {
			return nil, err
		}
		incomeTax = deduction.NewIncomeTaxWithTable(taxPoints, table)
	}

	nationalInsurance := deduction.NewNationalInsurance()
	if len(cfg.Rules.NationalInsurance) > 0 {
		table, err := tableFromConfig("national_insurance", cfg.Rules.NationalInsurance)
		if err != nil {
			return nil, err
		}
		nationalInsurance = deduction.NewNationalInsuranceWithTable(table)
	}

	healthInsurance := deduction.NewHealthInsurance()
	if len(cfg.Rules.HealthInsurance) > 0 {
		table, err := tableFromConfig("health_insurance", cfg.Rules.HealthInsurance)
		if err != nil {
			return nil, err
		}
		healthInsurance = deduction.NewHealthInsuranceWithTable(table)
	}

	pension := deduction.NewMandatoryPensionWithRate(decimal.NewFromFloat(cfg.Calculation.PensionRate))

	return New(incomeTax, nationalInsurance, healthInsurance, pension), nil
}

func tableFromConfig(name string, tiers []config.BracketConfig) (bracket.Table, error) {
	brackets := make([]bracket.Bracket, len(tiers))
	for i, tier := range tiers {
		brackets[i] = bracket.Bracket{
			UpperBound: decimal.NewFromFloat(tier.UpperBound),
			Rate:       decimal.NewFromFloat(tier.Rate),
		}
	}
	table, err := bracket.NewTable(brackets)
	if err != nil {
		return bracket.Table{}, errors.Wrap(errors.TypeConfig, "invalid "+name+" table override", err)
	}
	return table, nil
}
