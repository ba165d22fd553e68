package pricing

import "github.com/printquote/printquote/internal/model"

// MaterialCost converts the used mass from grams to kilograms and applies
// the per-kilogram material rate.
func MaterialCost(input model.CostInput) float64 {
	return (input.MaterialWeightUsed / 1000) * input.MaterialCostPerKg
}

// MachineCost is machine time plus electricity over the print duration,
// reported as a single figure.
func MachineCost(input model.CostInput) float64 {
	printHours := input.PrintTimeMinutes / 60
	return printHours*input.MachineHourlyRate + printHours*input.ElectricityCostPerHour
}

// LaborCost prices design, setup and post-processing time at the hourly
// labor rate. On wholesale orders, setup and post-processing time shrink by
// the batch efficiency factor; design time is a one-time per-design cost and
// never scales with run size.
func LaborCost(input model.CostInput) float64 {
	input = input.Normalized()

	efficiency := 1.0
	if input.IsWholesale {
		efficiency = BatchEfficiencyFactor(input.Quantity)
	}

	designHours := input.DesignTimeMinutes / 60
	setupHours := (input.SetupTimeMinutes / 60) * efficiency
	postProcessingHours := (input.PostProcessingTimeMinutes / 60) * efficiency

	return (designHours + setupHours + postProcessingHours) * input.HourlyLaborRate
}

// AccessoriesCost sums quantity times unit cost over the enabled
// accessories. Disabled rows contribute nothing regardless of their values.
func AccessoriesCost(input model.CostInput) float64 {
	var total float64
	for _, a := range input.Accessories {
		if a.Enabled {
			total += float64(a.Quantity) * a.UnitCost
		}
	}
	return total
}

// PackagingCost passes the entered packaging cost through unchanged.
// Wholesale orders get no bulk packaging discount; this is the shipped
// behavior of the application this engine replaces.
func PackagingCost(input model.CostInput) float64 {
	return input.PackagingCost
}

// OverheadCost applies the whole-number overhead percentage to the base cost.
func OverheadCost(baseCost, overheadPercentage float64) float64 {
	return baseCost * (overheadPercentage / 100)
}

// WasteAllowance applies the whole-number failure/waste percentage to the
// base cost.
func WasteAllowance(baseCost, wasteRate float64) float64 {
	return baseCost * (wasteRate / 100)
}

// EffectiveProfitMargin resolves the margin actually used for pricing.
// Retail orders use the desired margin as-is. Wholesale orders discount it
// by the volume tier, floored at MinWholesaleMargin percentage points.
func EffectiveProfitMargin(input model.CostInput) float64 {
	input = input.Normalized()

	if !input.IsWholesale {
		return input.DesiredProfitMargin
	}

	discounted := input.DesiredProfitMargin * (1 - VolumeDiscount(input.Quantity))
	if discounted < MinWholesaleMargin {
		return MinWholesaleMargin
	}
	return discounted
}

// SellingPrice derives the price that yields the given margin over total
// cost. The margin must be below 100; callers validate that upstream, the
// division here is performed as-is.
func SellingPrice(totalCost, profitMargin float64) float64 {
	return totalCost / (1 - profitMargin/100)
}

// Calculate runs the full pricing pipeline for one product and returns the
// per-unit breakdown. It is pure and deterministic: no I/O, no shared state,
// safe to call concurrently.
func Calculate(input model.CostInput) model.CalculationResult {
	input = input.Normalized()

	materialCost := MaterialCost(input)
	machineCost := MachineCost(input)
	laborCost := LaborCost(input)
	accessoriesCost := AccessoriesCost(input)
	packagingCost := PackagingCost(input)

	baseCost := materialCost + machineCost + laborCost + accessoriesCost + packagingCost

	overheadCost := OverheadCost(baseCost, input.OverheadPercentage)
	wasteAllowance := WasteAllowance(baseCost, input.FailureWasteRate)
	totalCost := baseCost + overheadCost + wasteAllowance

	margin := EffectiveProfitMargin(input)
	sellingPrice := SellingPrice(totalCost, margin)
	profitAmount := sellingPrice - totalCost

	return model.CalculationResult{
		MaterialCost:    materialCost,
		MachineCost:     machineCost,
		LaborCost:       laborCost,
		AccessoriesCost: accessoriesCost,
		BaseCost:        baseCost,
		OverheadCost:    overheadCost,
		WasteAllowance:  wasteAllowance,
		TotalCost:       totalCost,
		SellingPrice:    sellingPrice,
		ProfitAmount:    profitAmount,
	}
}
