// Package importer provides CSV and Excel import of cost-input rows for
// batch quoting. It supports automatic delimiter detection, flexible column
// mapping, and case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/printquote/printquote/internal/model"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Inputs   []model.CostInput
	Errors   []string
	Warnings []string
}

// Column roles recognized in headers. Name, weight, material cost and print
// time are required; everything else falls back to the form defaults.
const (
	colName        = "name"
	colWeight      = "weight"
	colCostPerKg   = "cost_per_kg"
	colPrintTime   = "print_time"
	colMachineRate = "machine_rate"
	colElectricity = "electricity"
	colSetupTime   = "setup_time"
	colDesignTime  = "design_time"
	colPostTime    = "post_time"
	colLaborRate   = "labor_rate"
	colPackaging   = "packaging"
	colOverhead    = "overhead"
	colWaste       = "waste"
	colMargin      = "margin"
	colQuantity    = "quantity"
	colWholesale   = "wholesale"
	colFilament    = "filament"
)

// headerAliases maps column roles to their accepted header spellings (all
// lowercase).
var headerAliases = map[string][]string{
	colName:        {"name", "product", "product name", "item", "label", "description"},
	colWeight:      {"weight", "weight (g)", "grams", "material weight", "mass", "g"},
	colCostPerKg:   {"cost per kg", "cost/kg", "material cost", "material cost per kg", "filament cost", "kg cost"},
	colPrintTime:   {"print time", "print time (min)", "print minutes", "print", "duration"},
	colMachineRate: {"machine rate", "machine hourly rate", "machine cost/hr", "machine/hr"},
	colElectricity: {"electricity", "electricity cost", "electricity/hr", "power cost"},
	colSetupTime:   {"setup time", "setup", "setup (min)"},
	colDesignTime:  {"design time", "design", "design (min)"},
	colPostTime:    {"post processing", "post processing time", "post time", "finishing"},
	colLaborRate:   {"labor rate", "labour rate", "hourly labor rate", "labor/hr"},
	colPackaging:   {"packaging", "packaging cost", "pack cost"},
	colOverhead:    {"overhead", "overhead %", "overhead percentage"},
	colWaste:       {"waste", "waste %", "failure rate", "waste rate"},
	colMargin:      {"margin", "margin %", "profit margin", "desired margin"},
	colQuantity:    {"quantity", "qty", "count", "units", "pcs"},
	colWholesale:   {"wholesale", "is wholesale", "bulk"},
	colFilament:    {"filament", "filament type", "material type"},
}

// DetectCSVDelimiter reads the file content and determines the most likely
// CSV delimiter. It tries comma, semicolon, tab, and pipe; the delimiter
// producing the most consistent column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a role-to-index mapping
// and whether a header was recognized at all. Roles missing from the header
// are absent from the map.
func DetectColumns(row []string) (map[string]int, bool) {
	mapping := make(map[string]int)

	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					if _, taken := mapping[role]; !taken {
						mapping[role] = i
					}
				}
			}
		}
	}

	return mapping, len(mapping) > 0
}

// getCell safely retrieves a trimmed cell value by column index; a missing
// role maps to -1 and yields an empty string.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func roleIndex(mapping map[string]int, role string) int {
	if idx, ok := mapping[role]; ok {
		return idx
	}
	return -1
}

// parseRow extracts a CostInput from a row using the given column mapping.
// Optional columns keep the form defaults. Returns the input, an error
// message, and a warning message (either may be empty).
func parseRow(row []string, mapping map[string]int, rowLabel string, inputCount int) (model.CostInput, string, string) {
	input := model.DefaultCostInput()
	input.Accessories = nil
	var warning string

	name := getCell(row, roleIndex(mapping, colName))
	if name == "" {
		name = fmt.Sprintf("Product %d", inputCount+1)
	}
	input.ProductName = name

	weightStr := getCell(row, roleIndex(mapping, colWeight))
	if weightStr == "" {
		return model.CostInput{}, fmt.Sprintf("%s: Missing material weight", rowLabel), ""
	}
	weight, err := strconv.ParseFloat(weightStr, 64)
	if err != nil || weight <= 0 {
		return model.CostInput{}, fmt.Sprintf("%s: Invalid material weight '%s'", rowLabel, weightStr), ""
	}
	input.MaterialWeightUsed = weight

	costStr := getCell(row, roleIndex(mapping, colCostPerKg))
	if costStr == "" {
		return model.CostInput{}, fmt.Sprintf("%s: Missing material cost per kg", rowLabel), ""
	}
	costPerKg, err := strconv.ParseFloat(costStr, 64)
	if err != nil || costPerKg < 0 {
		return model.CostInput{}, fmt.Sprintf("%s: Invalid material cost '%s'", rowLabel, costStr), ""
	}
	input.MaterialCostPerKg = costPerKg

	printStr := getCell(row, roleIndex(mapping, colPrintTime))
	if printStr == "" {
		return model.CostInput{}, fmt.Sprintf("%s: Missing print time", rowLabel), ""
	}
	printTime, err := strconv.ParseFloat(printStr, 64)
	if err != nil || printTime <= 0 {
		return model.CostInput{}, fmt.Sprintf("%s: Invalid print time '%s'", rowLabel, printStr), ""
	}
	input.PrintTimeMinutes = printTime

	// Optional numeric overrides
	optional := []struct {
		role   string
		target *float64
	}{
		{colMachineRate, &input.MachineHourlyRate},
		{colElectricity, &input.ElectricityCostPerHour},
		{colSetupTime, &input.SetupTimeMinutes},
		{colDesignTime, &input.DesignTimeMinutes},
		{colPostTime, &input.PostProcessingTimeMinutes},
		{colLaborRate, &input.HourlyLaborRate},
		{colPackaging, &input.PackagingCost},
		{colOverhead, &input.OverheadPercentage},
		{colWaste, &input.FailureWasteRate},
		{colMargin, &input.DesiredProfitMargin},
	}
	for _, opt := range optional {
		raw := getCell(row, roleIndex(mapping, opt.role))
		if raw == "" {
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			warning = fmt.Sprintf("%s: Invalid %s '%s', using default", rowLabel, opt.role, raw)
			continue
		}
		*opt.target = value
	}

	if qtyStr := getCell(row, roleIndex(mapping, colQuantity)); qtyStr != "" {
		qty, err := strconv.Atoi(qtyStr)
		if err != nil || qty <= 0 {
			warning = fmt.Sprintf("%s: Invalid quantity '%s', using 1", rowLabel, qtyStr)
		} else {
			input.Quantity = qty
		}
	}

	if wholesaleStr := getCell(row, roleIndex(mapping, colWholesale)); wholesaleStr != "" {
		input.IsWholesale = parseBool(wholesaleStr)
	}

	if filamentStr := getCell(row, roleIndex(mapping, colFilament)); filamentStr != "" {
		filament, ok := parseFilament(filamentStr)
		if ok {
			input.FilamentType = filament
		} else {
			warning = fmt.Sprintf("%s: Unknown filament type '%s', defaulting to PLA", rowLabel, filamentStr)
		}
	}

	return input, "", warning
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true", "1":
		return true
	default:
		return false
	}
}

// parseFilament converts a filament string to a model.FilamentType value and
// reports whether the string was recognized.
func parseFilament(s string) (model.FilamentType, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for _, ft := range model.FilamentTypes {
		if normalized == string(ft) {
			return ft, true
		}
	}
	return model.FilamentPLA, false
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports cost inputs from a CSV file. It automatically detects
// the delimiter and maps columns by header names.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", result.Warnings)
}

// ImportCSVFromReader imports cost inputs from a CSV reader with a known
// delimiter. Useful for testing and streamed uploads.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports cost inputs from an Excel (.xlsx) file. Reads the
// first sheet and auto-detects column mapping from headers.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// importFromRows is the shared import logic for both CSV and Excel data.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	if !hasHeader {
		result.Errors = append(result.Errors, "No recognizable header row found; expected columns like Name, Weight, Cost per kg, Print time")
		return result
	}
	result.Warnings = append(result.Warnings, "Detected header row, skipping")

	missing := []string{}
	for role, display := range map[string]string{
		colWeight:    "Weight",
		colCostPerKg: "Cost per kg",
		colPrintTime: "Print time",
	} {
		if _, ok := mapping[role]; !ok {
			missing = append(missing, display)
		}
	}
	if len(missing) > 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
		return result
	}

	for i := 1; i < len(rows); i++ {
		row := rows[i]
		lineNum := i + 1

		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, lineNum)
		input, errMsg, warning := parseRow(row, mapping, rowLabel, len(result.Inputs))

		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}

		result.Inputs = append(result.Inputs, input)
	}

	return result
}
