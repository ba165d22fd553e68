package model

// CalculationResult is the full per-unit cost and price breakdown produced
// by the pricing engine. All figures are currency amounts for a single unit;
// multiplying by the order quantity is the caller's job.
type CalculationResult struct {
	MaterialCost    float64 `json:"materialCost"`
	MachineCost     float64 `json:"machineCost"` // machine time + electricity
	LaborCost       float64 `json:"laborCost"`
	AccessoriesCost float64 `json:"accessoriesCost"`
	BaseCost        float64 `json:"baseCost"`
	OverheadCost    float64 `json:"overheadCost"`
	WasteAllowance  float64 `json:"wasteAllowance"`
	TotalCost       float64 `json:"totalCost"`
	SellingPrice    float64 `json:"sellingPrice"`
	ProfitAmount    float64 `json:"profitAmount"`
}
