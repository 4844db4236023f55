// Package pipeline - pipeline and factory tests
package pipeline

import (
	"testing"

	"github.com/shopspring/decimal"

	"netsalary/core/deduction"
	"netsalary/internal/config"
	"netsalary/internal/errors"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

func TestDefaultPipelineScenario(t *testing.T) {
	pipe := NewDefault(dec(t, "2.25"))

	result := pipe.Calculate(decimal.NewFromInt(10000))

	wantTotal := dec(t, "1947.715")
	if !result.Total.Equal(wantTotal) {
		t.Errorf("total deductions = %s, want %s", result.Total, wantTotal)
	}
	wantNet := dec(t, "8052.285")
	if !result.Net.Equal(wantNet) {
		t.Errorf("net salary = %s, want %s", result.Net, wantNet)
	}

	wantBreakdown := []struct {
		rule   string
		amount string
	}{
		{"Income tax", "685.85"},
		{"National insurance", "282.154"},
		{"Health insurance", "379.711"},
		{"Mandatory pension savings", "600"},
	}
	if len(result.Deductions) != len(wantBreakdown) {
		t.Fatalf("breakdown has %d entries, want %d", len(result.Deductions), len(wantBreakdown))
	}
	for i, want := range wantBreakdown {
		got := result.Deductions[i]
		if got.Rule != want.rule {
			t.Errorf("breakdown[%d].Rule = %q, want %q", i, got.Rule, want.rule)
		}
		if !got.Amount.Equal(dec(t, want.amount)) {
			t.Errorf("breakdown[%d].Amount = %s, want %s", i, got.Amount, want.amount)
		}
	}
}

func TestBreakdownFollowsRuleOrder(t *testing.T) {
	pipe := New(
		deduction.NewMandatoryPension(),
		deduction.NewHealthInsurance(),
		deduction.NewNationalInsurance(),
		deduction.NewIncomeTax(decimal.Zero),
	)

	result := pipe.Calculate(decimal.NewFromInt(10000))

	wantOrder := []string{
		"Mandatory pension savings",
		"Health insurance",
		"National insurance",
		"Income tax",
	}
	for i, want := range wantOrder {
		if result.Deductions[i].Rule != want {
			t.Errorf("breakdown[%d].Rule = %q, want %q", i, result.Deductions[i].Rule, want)
		}
	}
}

func TestTotalIndependentOfRuleOrder(t *testing.T) {
	gross := decimal.NewFromInt(10000)
	points := dec(t, "2.25")

	forward := NewDefault(points).Calculate(gross)
	reversed := New(
		deduction.NewMandatoryPension(),
		deduction.NewHealthInsurance(),
		deduction.NewNationalInsurance(),
		deduction.NewIncomeTax(points),
	).Calculate(gross)

	if !forward.Total.Equal(reversed.Total) {
		t.Errorf("totals differ by order: %s vs %s", forward.Total, reversed.Total)
	}
	if !forward.Net.Equal(reversed.Net) {
		t.Errorf("nets differ by order: %s vs %s", forward.Net, reversed.Net)
	}
}

func TestZeroGrossSalary(t *testing.T) {
	result := NewDefault(decimal.Zero).Calculate(decimal.Zero)

	if !result.Total.IsZero() {
		t.Errorf("total deductions on 0 = %s, want 0", result.Total)
	}
	if !result.Net.IsZero() {
		t.Errorf("net salary on 0 = %s, want 0", result.Net)
	}
}

func TestFromConfigAppliesOverrides(t *testing.T) {
	cfg := config.Default()
	cfg.Rules.IncomeTax = []config.BracketConfig{{Rate: 0.1}}
	cfg.Calculation.PensionRate = 0.1

	pipe, err := FromConfig(cfg, decimal.Zero)
	if err != nil {
		t.Fatalf("FromConfig failed: %v", err)
	}

	result := pipe.Calculate(decimal.NewFromInt(1000))

	// flat 0.1 income tax + default insurances + 0.1 pension
	if !result.Deductions[0].Amount.Equal(dec(t, "100")) {
		t.Errorf("overridden income tax = %s, want 100", result.Deductions[0].Amount)
	}
	if !result.Deductions[3].Amount.Equal(dec(t, "100")) {
		t.Errorf("overridden pension = %s, want 100", result.Deductions[3].Amount)
	}
}

func TestFromConfigRejectsMalformedOverride(t *testing.T) {
	cfg := config.Default()
	cfg.Rules.HealthInsurance = []config.BracketConfig{
		{UpperBound: 9240, Rate: 0.14},
		{UpperBound: 6450, Rate: 0.10},
	}

	_, err := FromConfig(cfg, decimal.Zero)
	if err == nil {
		t.Fatal("FromConfig accepted a non-ascending override table")
	}
	if !errors.IsType(err, errors.TypeConfig) {
		t.Errorf("error type = %v, want %v", err, errors.TypeConfig)
	}
}
