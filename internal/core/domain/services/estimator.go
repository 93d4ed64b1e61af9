package services

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultMaterial is used for the density of unknown materials.
const DefaultMaterial = "PEBD"

func getDensities() map[string]int64 {
	// kg/m³, typical values used for estimates
	return map[string]int64{
		"PEBD": 920,
		"PEAD": 950,
		"PE":   930,
		"PP":   905,
		"BOPP": 905,
		"PET":  1380,
		"PVC":  1380,
		"PA":   1140,
		"EVOH": 1200,
	}
}

func getMaterialAliases() map[string]string {
	return map[string]string{
		"LDPE":              "PEBD",
		"HDPE":              "PEAD",
		"POLIETILENO BAIXA": "PEBD",
		"POLIETILENO ALTA":  "PEAD",
		"POLIPROPILENO":     "PP",
		"NYLON":             "PA",
	}
}

var (
	micrometresPerMetre      = decimal.NewFromInt(1_000_000)
	squareMillimetresPerArea = decimal.NewFromInt(1_000_000)
	hundred                  = decimal.NewFromInt(100)
)

// FilmDimensions describe one package for mass estimation. Negative values
// count as zero.
type FilmDimensions struct {
	Material    string
	ThicknessUm decimal.Decimal
	WidthMm     decimal.Decimal
	HeightMm    decimal.Decimal
	GussetMm    decimal.Decimal
	ExtraFactor decimal.Decimal
}

// Estimator computes production estimates for plastic film packages.
type Estimator struct{}

func NewEstimator() Estimator {
	return Estimator{}
}

// Density returns the density in kg/m³ of material, resolving common
// synonyms and falling back to DefaultMaterial.
func (e Estimator) Density(material string) decimal.Decimal {
	key := strings.ToUpper(strings.TrimSpace(material))
	densities := getDensities()
	if _, ok := densities[key]; !ok {
		if alias, found := getMaterialAliases()[key]; found {
			key = alias
		}
	}
	density, ok := densities[key]
	if !ok {
		density = densities[DefaultMaterial]
	}
	return decimal.NewFromInt(density)
}

// UnitMassKg is area times thickness times density, the effective width
// counting the gusset twice, increased by ExtraFactor (0.1 = 10%).
func (e Estimator) UnitMassKg(d FilmDimensions) decimal.Decimal {
	thickness := clampZero(d.ThicknessUm)
	width := clampZero(d.WidthMm)
	height := clampZero(d.HeightMm)
	gusset := clampZero(d.GussetMm)
	extra := clampZero(d.ExtraFactor)

	effectiveWidth := width.Add(gusset.Mul(decimal.NewFromInt(2)))
	areaM2 := effectiveWidth.Mul(height).Div(squareMillimetresPerArea)
	thicknessM := thickness.Div(micrometresPerMetre)

	mass := areaM2.Mul(thicknessM).Mul(e.Density(d.Material))
	return mass.Mul(decimal.NewFromInt(1).Add(extra))
}

// UnitsFromWeight estimates how many units a net weight holds. A non-positive
// unit mass yields zero.
func (e Estimator) UnitsFromWeight(weightKg, unitMassKg decimal.Decimal) decimal.Decimal {
	if !unitMassKg.IsPositive() {
		return decimal.Zero
	}
	return clampZero(weightKg).Div(unitMassKg)
}

// MinimumUnits is the least accepted delivery for a requested quantity under
// tolerancePercent, clamped to [0, 100] and rounded to whole units.
func (e Estimator) MinimumUnits(requested int64, tolerancePercent decimal.Decimal) int64 {
	if requested < 0 {
		requested = 0
	}
	tolerance := decimal.Min(decimal.Max(tolerancePercent, decimal.Zero), hundred)

	factor := decimal.NewFromInt(1).Sub(tolerance.Div(hundred))
	minimum := decimal.NewFromInt(requested).Mul(factor).RoundBank(0)
	if minimum.IsNegative() {
		return 0
	}
	return minimum.IntPart()
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
