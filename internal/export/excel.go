// Package export renders saved calculations to spreadsheet and printable
// PDF formats.
package export

import (
	"fmt"
	"io"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/printquote/printquote/internal/model"
	"github.com/printquote/printquote/internal/pricing"
)

const sheetName = "Product Cost Breakdown"

// row is one spreadsheet line: a field label plus one value per product.
type row struct {
	field  string
	values []any
}

// WriteHistoryXLSX writes the history as a workbook in the vertical layout:
// column A holds field names and each product occupies its own column.
// Results are re-derived from the stored inputs so the sheet always matches
// the engine. The selling-price row is emphasized.
func WriteHistoryXLSX(w io.Writer, records []model.HistoryRecord) error {
	if len(records) == 0 {
		return fmt.Errorf("no records to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	rows := buildRows(records)

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, r.field); err != nil {
			return err
		}
		for j, v := range r.values {
			cell, err := excelize.CoordinatesToCellName(j+2, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.SetColWidth(sheetName, "A", "A", 28); err != nil {
		return err
	}
	lastCol, err := excelize.ColumnNumberToName(len(records) + 1)
	if err != nil {
		return err
	}
	if err := f.SetColWidth(sheetName, "B", lastCol, 16); err != nil {
		return err
	}

	if err := styleRows(f, rows, len(records)); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// buildRows assembles the vertical field-by-product layout.
func buildRows(records []model.HistoryRecord) []row {
	results := make([]model.CalculationResult, len(records))
	for i, r := range records {
		results[i] = pricing.Calculate(r.Input)
	}

	blank := make([]any, len(records))
	for i := range blank {
		blank[i] = ""
	}

	inputVal := func(get func(model.CostInput) any) []any {
		values := make([]any, len(records))
		for i, r := range records {
			values[i] = get(r.Input)
		}
		return values
	}
	resultVal := func(get func(model.CalculationResult) float64) []any {
		values := make([]any, len(records))
		for i, res := range results {
			values[i] = round2(get(res))
		}
		return values
	}

	return []row{
		{"Product Name", inputVal(func(c model.CostInput) any { return c.ProductName })},

		{"--- PRODUCT INFORMATION ---", blank},
		{"Filament Type", inputVal(func(c model.CostInput) any { return string(c.FilamentType) })},
		{"Quantity", inputVal(func(c model.CostInput) any { return c.Normalized().Quantity })},
		{"Is Wholesale", inputVal(func(c model.CostInput) any { return yesNo(c.IsWholesale) })},
		{"Created Date", createdDates(records)},

		{"", blank},
		{"--- MATERIAL COSTS ---", blank},
		{"Material Cost (₹/kg)", inputVal(func(c model.CostInput) any { return c.MaterialCostPerKg })},
		{"Weight Used (g)", inputVal(func(c model.CostInput) any { return c.MaterialWeightUsed })},
		{"Calculated Material Cost (₹)", resultVal(func(r model.CalculationResult) float64 { return r.MaterialCost })},
		{"Packaging Cost (₹)", inputVal(func(c model.CostInput) any { return c.PackagingCost })},

		{"", blank},
		{"--- TIME & MACHINE COSTS ---", blank},
		{"Print Time (min)", inputVal(func(c model.CostInput) any { return c.PrintTimeMinutes })},
		{"Machine Rate (₹/hr)", inputVal(func(c model.CostInput) any { return c.MachineHourlyRate })},
		{"Electricity Cost (₹/hr)", inputVal(func(c model.CostInput) any { return c.ElectricityCostPerHour })},
		{"Setup Time (min)", inputVal(func(c model.CostInput) any { return c.SetupTimeMinutes })},
		{"Calculated Machine Cost (₹)", resultVal(func(r model.CalculationResult) float64 { return r.MachineCost })},

		{"", blank},
		{"--- LABOR COSTS ---", blank},
		{"Design Time (min)", inputVal(func(c model.CostInput) any { return c.DesignTimeMinutes })},
		{"Post Processing Time (min)", inputVal(func(c model.CostInput) any { return c.PostProcessingTimeMinutes })},
		{"Labor Rate (₹/hr)", inputVal(func(c model.CostInput) any { return c.HourlyLaborRate })},
		{"Calculated Labor Cost (₹)", resultVal(func(r model.CalculationResult) float64 { return r.LaborCost })},

		{"", blank},
		{"--- ACCESSORIES ---", blank},
		{"Accessories Cost (₹)", resultVal(func(r model.CalculationResult) float64 { return r.AccessoriesCost })},

		{"", blank},
		{"--- BUSINESS COSTS ---", blank},
		{"Overhead Percentage (%)", inputVal(func(c model.CostInput) any { return c.OverheadPercentage })},
		{"Calculated Overhead Cost (₹)", resultVal(func(r model.CalculationResult) float64 { return r.OverheadCost })},
		{"Failure/Waste Rate (%)", inputVal(func(c model.CostInput) any { return c.FailureWasteRate })},
		{"Calculated Waste Allowance (₹)", resultVal(func(r model.CalculationResult) float64 { return r.WasteAllowance })},
		{"Desired Profit Margin (%)", inputVal(func(c model.CostInput) any { return c.DesiredProfitMargin })},

		{"", blank},
		{"--- FINAL CALCULATIONS ---", blank},
		{"Base Cost (₹)", resultVal(func(r model.CalculationResult) float64 { return r.BaseCost })},
		{"Total Cost (₹)", resultVal(func(r model.CalculationResult) float64 { return r.TotalCost })},
		{"SELLING PRICE (₹)", resultVal(func(r model.CalculationResult) float64 { return r.SellingPrice })},
		{"Profit Amount (₹)", resultVal(func(r model.CalculationResult) float64 { return r.ProfitAmount })},
	}
}

// styleRows bolds the section headers and highlights the selling-price row.
func styleRows(f *excelize.File, rows []row, productCount int) error {
	sectionStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6E6E6"}, Pattern: 1},
	})
	if err != nil {
		return err
	}
	priceStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"FFFFE0"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	lastCol, err := excelize.ColumnNumberToName(productCount + 1)
	if err != nil {
		return err
	}

	for i, r := range rows {
		rowNum := i + 1
		switch {
		case r.field == "SELLING PRICE (₹)":
			err = f.SetCellStyle(sheetName,
				fmt.Sprintf("A%d", rowNum), fmt.Sprintf("%s%d", lastCol, rowNum), priceStyle)
		case isSectionHeader(r.field):
			err = f.SetCellStyle(sheetName,
				fmt.Sprintf("A%d", rowNum), fmt.Sprintf("A%d", rowNum), sectionStyle)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func isSectionHeader(field string) bool {
	return len(field) > 6 && field[:3] == "---" && field[len(field)-3:] == "---"
}

func createdDates(records []model.HistoryRecord) []any {
	values := make([]any, len(records))
	for i, r := range records {
		values[i] = r.CreatedAt.Format("02/01/2006 15:04")
	}
	return values
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
