package payroll

import "github.com/shopspring/decimal"

// Statutory parameters for monthly Indian payroll. PF and ESI are the
// employee-side shares only.
var (
	pfRate         = decimal.NewFromFloat(0.12)
	pfCeiling      = decimal.NewFromInt(1800) // cap on the employee PF share
	esiRate        = decimal.NewFromFloat(0.0075)
	esiWageCeiling = decimal.NewFromInt(21000) // gross above this loses ESI entirely
	ptThreshold    = decimal.NewFromInt(15000)
	ptFlat         = decimal.NewFromInt(200)
	tdsExemption   = decimal.NewFromInt(41667) // monthly slice of the annual exemption
	tdsRate        = decimal.NewFromFloat(0.10)
)

// DeductionBreakdown holds the statutory deductions derived from one
// employee's salary structure for one month.
type DeductionBreakdown struct {
	PFEmployee      decimal.Decimal
	ESIEmployee     decimal.Decimal
	ProfessionalTax decimal.Decimal
	TDS             decimal.Decimal
	OtherDeductions decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
}

// ComputeDeductions derives the employee-side statutory deductions from gross
// and basic salary:
//
//   - PF: 12% of basic capped at 1800, only when opted in.
//   - ESI: 0.75% of gross, only while gross is within the 21000 wage ceiling.
//     Crossing the ceiling removes the deduction entirely, it is not prorated.
//   - Professional tax: flat 200 once gross exceeds 15000.
//   - TDS: 10% of the gross above the 41667 monthly exemption. A flat marginal
//     rate, not a slab table.
func ComputeDeductions(gross, basic decimal.Decimal, pfOptIn, esiApplicable bool) DeductionBreakdown {
	b := DeductionBreakdown{
		PFEmployee:      decimal.Zero,
		ESIEmployee:     decimal.Zero,
		ProfessionalTax: decimal.Zero,
		TDS:             decimal.Zero,
		OtherDeductions: decimal.Zero,
	}

	if pfOptIn {
		pf := basic.Mul(pfRate)
		if pf.GreaterThan(pfCeiling) {
			pf = pfCeiling
		}
		b.PFEmployee = pf
	}

	if esiApplicable && gross.LessThanOrEqual(esiWageCeiling) {
		b.ESIEmployee = gross.Mul(esiRate)
	}

	if gross.GreaterThan(ptThreshold) {
		b.ProfessionalTax = ptFlat
	}

	if gross.GreaterThan(tdsExemption) {
		b.TDS = gross.Sub(tdsExemption).Mul(tdsRate)
	}

	b.TotalDeductions = b.PFEmployee.Add(b.ESIEmployee).Add(b.ProfessionalTax).Add(b.TDS).Add(b.OtherDeductions)
	b.NetPay = gross.Sub(b.TotalDeductions)
	return b
}
