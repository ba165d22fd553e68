package pricing

import (
	"math"
	"testing"

	"github.com/printquote/printquote/internal/model"
)

// scenarioInput is the standard retail product used across the end-to-end
// tests: 10g of 1000/kg filament, 150min print, small setup/design/post
// times, 50 packaging, 5% overhead, 8% waste, 40% desired margin.
func scenarioInput() model.CostInput {
	return model.CostInput{
		ProductName:               "Test Widget",
		FilamentType:              model.FilamentPLA,
		MaterialCostPerKg:         1000,
		MaterialWeightUsed:        10,
		PackagingCost:             50,
		PrintTimeMinutes:          150,
		MachineHourlyRate:         50,
		ElectricityCostPerHour:    10,
		SetupTimeMinutes:          10,
		DesignTimeMinutes:         5,
		PostProcessingTimeMinutes: 5,
		HourlyLaborRate:           100,
		OverheadPercentage:        5,
		FailureWasteRate:          8,
		DesiredProfitMargin:       40,
		Quantity:                  1,
		IsWholesale:               false,
	}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

func TestCalculateRetailScenario(t *testing.T) {
	result := Calculate(scenarioInput())

	if result.MaterialCost != 10 {
		t.Errorf("material cost: expected 10, got %.4f", result.MaterialCost)
	}
	// 2.5h * 50 + 2.5h * 10
	if result.MachineCost != 150 {
		t.Errorf("machine cost: expected 150, got %.4f", result.MachineCost)
	}
	// (5 + 10 + 5) minutes at 100/h
	if !approxEqual(result.LaborCost, 33.3333) {
		t.Errorf("labor cost: expected 33.33, got %.4f", result.LaborCost)
	}
	if result.AccessoriesCost != 0 {
		t.Errorf("accessories cost: expected 0, got %.4f", result.AccessoriesCost)
	}
	if !approxEqual(result.BaseCost, 243.3333) {
		t.Errorf("base cost: expected 243.33, got %.4f", result.BaseCost)
	}
	if !approxEqual(result.OverheadCost, 12.1667) {
		t.Errorf("overhead cost: expected 12.17, got %.4f", result.OverheadCost)
	}
	if !approxEqual(result.WasteAllowance, 19.4667) {
		t.Errorf("waste allowance: expected 19.47, got %.4f", result.WasteAllowance)
	}
	if !approxEqual(result.TotalCost, 274.9667) {
		t.Errorf("total cost: expected 274.97, got %.4f", result.TotalCost)
	}
	// totalCost / (1 - 0.40)
	if !approxEqual(result.SellingPrice, 458.2778) {
		t.Errorf("selling price: expected 458.28, got %.4f", result.SellingPrice)
	}
	if !approxEqual(result.ProfitAmount, 183.3111) {
		t.Errorf("profit amount: expected 183.31, got %.4f", result.ProfitAmount)
	}
}

func TestCalculateWholesaleScenario(t *testing.T) {
	input := scenarioInput()
	input.IsWholesale = true
	input.Quantity = 10

	result := Calculate(input)

	// Batch efficiency 0.6 applies to setup and post-processing only:
	// design 5min + setup 6min + post 3min = 14min at 100/h.
	if !approxEqual(result.LaborCost, 23.3333) {
		t.Errorf("labor cost: expected 23.33, got %.4f", result.LaborCost)
	}

	// Volume discount 20%: max(15, 40*0.8) = 32.
	margin := EffectiveProfitMargin(input)
	if margin != 32 {
		t.Errorf("effective margin: expected 32, got %.4f", margin)
	}

	// A 32% margin means a lower price-to-cost ratio than retail's 40%.
	retail := Calculate(scenarioInput())
	retailRatio := retail.SellingPrice / retail.TotalCost
	wholesaleRatio := result.SellingPrice / result.TotalCost
	if wholesaleRatio >= retailRatio {
		t.Errorf("wholesale ratio %.4f should be below retail ratio %.4f", wholesaleRatio, retailRatio)
	}
}

func TestMaterialCostLinearity(t *testing.T) {
	input := scenarioInput()
	input.MaterialWeightUsed = 50
	input.MaterialCostPerKg = 1000
	if got := MaterialCost(input); got != 50 {
		t.Errorf("expected 50 for 50g at 1000/kg, got %.4f", got)
	}

	input.MaterialWeightUsed = 100
	if got := MaterialCost(input); got != 100 {
		t.Errorf("doubling mass should double cost, got %.4f", got)
	}

	input.MaterialCostPerKg = 2000
	if got := MaterialCost(input); got != 200 {
		t.Errorf("doubling rate should double cost, got %.4f", got)
	}
}

func TestDisabledAccessoriesExcluded(t *testing.T) {
	input := scenarioInput()
	input.Accessories = []model.Accessory{
		{Kind: model.AccessoryKeychain, Quantity: 3, UnitCost: 5, Enabled: true},
		{Kind: model.AccessoryMagnet, Quantity: 100, UnitCost: 999, Enabled: false},
	}

	if got := AccessoriesCost(input); got != 15 {
		t.Errorf("expected 15 from the enabled accessory only, got %.4f", got)
	}

	// Changing a disabled row must not change the total.
	input.Accessories[1].Quantity = 5000
	input.Accessories[1].UnitCost = 12345
	if got := AccessoriesCost(input); got != 15 {
		t.Errorf("disabled accessory leaked into cost: got %.4f", got)
	}
}

func TestRetailMarginPassthrough(t *testing.T) {
	input := scenarioInput()
	for _, qty := range []int{1, 9, 10, 50, 500} {
		input.Quantity = qty
		if got := EffectiveProfitMargin(input); got != input.DesiredProfitMargin {
			t.Errorf("qty %d: retail margin should pass through unchanged, got %.4f", qty, got)
		}
	}
}

func TestWholesaleMarginFloor(t *testing.T) {
	input := scenarioInput()
	input.IsWholesale = true

	for _, tc := range []struct {
		margin float64
		qty    int
	}{
		{margin: 10, qty: 10},
		{margin: 15, qty: 50},
		{margin: 18, qty: 100},
		{margin: 0, qty: 25},
		{margin: 40, qty: 199},
	} {
		input.DesiredProfitMargin = tc.margin
		input.Quantity = tc.qty
		if got := EffectiveProfitMargin(input); got < MinWholesaleMargin {
			t.Errorf("margin %.0f qty %d: effective margin %.4f below floor %.0f",
				tc.margin, tc.qty, got, MinWholesaleMargin)
		}
	}
}

func TestProfitIsPriceMinusCost(t *testing.T) {
	inputs := []model.CostInput{scenarioInput()}

	wholesale := scenarioInput()
	wholesale.IsWholesale = true
	wholesale.Quantity = 75
	inputs = append(inputs, wholesale)

	zero := model.CostInput{Quantity: 1}
	inputs = append(inputs, zero)

	for i, input := range inputs {
		result := Calculate(input)
		if result.ProfitAmount != result.SellingPrice-result.TotalCost {
			t.Errorf("input %d: profit %.6f != price %.6f - cost %.6f",
				i, result.ProfitAmount, result.SellingPrice, result.TotalCost)
		}
	}
}

func TestCalculateIsIdempotent(t *testing.T) {
	input := scenarioInput()
	input.IsWholesale = true
	input.Quantity = 50

	first := Calculate(input)
	second := Calculate(input)
	if first != second {
		t.Errorf("repeated calls diverged:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestCalculateNeverPanicsOnOddInput(t *testing.T) {
	// Garbage in, garbage out: negative and zero inputs propagate
	// arithmetically but must not panic.
	inputs := []model.CostInput{
		{},
		{MaterialWeightUsed: -50, PrintTimeMinutes: -10, Quantity: -3},
		{DesiredProfitMargin: 99.9, Quantity: 1},
		{OverheadPercentage: 100, FailureWasteRate: 100, Quantity: 10000, IsWholesale: true},
	}
	for i, input := range inputs {
		result := Calculate(input)
		_ = result
		if math.IsNaN(result.BaseCost) {
			t.Errorf("input %d: base cost is NaN for finite input", i)
		}
	}
}

func TestQuantityDefaultsToOne(t *testing.T) {
	input := scenarioInput()
	input.Quantity = 0

	if got := Calculate(input); got != Calculate(scenarioInput()) {
		t.Error("zero quantity should price identically to quantity 1")
	}
}
