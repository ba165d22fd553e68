// printquote — 3D print pricing calculator
//
// Prices 3D-printed products from a JSON cost input or a CSV/Excel batch
// file, printing the full cost breakdown or exporting it to xlsx/PDF.
//
// Build:
//   go build -o printquote ./cmd/printquote
//
// Usage:
//   printquote -input vase.json
//   printquote -input vase.json -pdf vase-quote.pdf
//   printquote -import products.csv -out history.xlsx
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/printquote/printquote/internal/export"
	"github.com/printquote/printquote/internal/format"
	"github.com/printquote/printquote/internal/importer"
	"github.com/printquote/printquote/internal/model"
	"github.com/printquote/printquote/internal/pricing"
	"github.com/printquote/printquote/internal/project"
	"github.com/printquote/printquote/internal/validate"
)

func main() {
	inputPath := flag.String("input", "", "price a single product from a JSON cost input file")
	importPath := flag.String("import", "", "price a batch of products from a CSV or Excel file")
	outPath := flag.String("out", "", "write the batch results to an xlsx file")
	pdfPath := flag.String("pdf", "", "write the single-product quote to a PDF file")
	flag.Parse()

	switch {
	case *inputPath != "":
		if err := runSingle(*inputPath, *pdfPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	case *importPath != "":
		if err := runBatch(*importPath, *outPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func runSingle(path, pdfPath string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read input file: %w", err)
	}

	input := model.DefaultCostInput()
	input.Accessories = nil
	if cfg, err := project.LoadAppConfig(project.DefaultConfigPath()); err == nil {
		cfg.ApplyToInput(&input)
	}
	if err := json.Unmarshal(data, &input); err != nil {
		return fmt.Errorf("parse input file: %w", err)
	}

	if errs := validate.Validate(input); len(errs) > 0 {
		var messages []string
		for _, e := range errs {
			messages = append(messages, e.Error())
		}
		return fmt.Errorf("invalid input:\n  %s", strings.Join(messages, "\n  "))
	}

	result := pricing.Calculate(input)
	printBreakdown(input.Normalized(), result)

	if pdfPath != "" {
		record := model.NewHistoryRecord("local", input, result)
		f, err := os.Create(pdfPath)
		if err != nil {
			return fmt.Errorf("create pdf file: %w", err)
		}
		defer f.Close()
		if err := export.WriteQuotePDF(f, record); err != nil {
			return fmt.Errorf("write quote pdf: %w", err)
		}
		fmt.Printf("\nQuote written to %s\n", pdfPath)
	}

	return nil
}

func runBatch(path, outPath string) error {
	var result importer.ImportResult
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		result = importer.ImportCSV(path)
	case ".xlsx":
		result = importer.ImportExcel(path)
	default:
		return fmt.Errorf("unsupported import format %q, want .csv or .xlsx", filepath.Ext(path))
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
	}
	for _, msg := range result.Errors {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	}
	if len(result.Inputs) == 0 {
		return fmt.Errorf("no importable rows in %s", path)
	}

	records := make([]model.HistoryRecord, 0, len(result.Inputs))
	for _, input := range result.Inputs {
		calc := pricing.Calculate(input)
		records = append(records, model.NewHistoryRecord("local", input, calc))
		fmt.Printf("%-30s %s\n", input.ProductName, format.Currency(calc.SellingPrice))
	}

	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		if err := export.WriteHistoryXLSX(f, records); err != nil {
			return fmt.Errorf("write xlsx: %w", err)
		}
		fmt.Printf("\n%d products written to %s\n", len(records), outPath)
	}

	return nil
}

func printBreakdown(input model.CostInput, result model.CalculationResult) {
	name := input.ProductName
	if name == "" {
		name = "Product"
	}

	fmt.Printf("%s  (%s, qty %d, %s)\n", name, input.FilamentType, input.Quantity, orderType(input))
	fmt.Printf("  Print time          %s\n", format.Time(input.PrintTimeMinutes))
	fmt.Printf("  Material            %s\n", format.Weight(input.MaterialWeightUsed))
	fmt.Println()
	fmt.Printf("  Material cost       %s\n", format.Currency(result.MaterialCost))
	fmt.Printf("  Machine cost        %s\n", format.Currency(result.MachineCost))
	fmt.Printf("  Labor cost          %s\n", format.Currency(result.LaborCost))
	fmt.Printf("  Accessories         %s\n", format.Currency(result.AccessoriesCost))
	fmt.Printf("  Packaging           %s\n", format.Currency(input.PackagingCost))
	fmt.Printf("  Base cost           %s\n", format.Currency(result.BaseCost))
	fmt.Printf("  Overhead (%s)      %s\n", format.Percent(input.OverheadPercentage), format.Currency(result.OverheadCost))
	fmt.Printf("  Waste (%s)         %s\n", format.Percent(input.FailureWasteRate), format.Currency(result.WasteAllowance))
	fmt.Printf("  Total cost          %s\n", format.Currency(result.TotalCost))
	fmt.Println()
	fmt.Printf("  Margin              %s\n", format.Percent(pricing.EffectiveProfitMargin(input)))
	if label := pricing.VolumeDiscountLabel(input.Quantity); input.IsWholesale && label != "" {
		fmt.Printf("  Volume tier         %s\n", label)
	}
	fmt.Printf("  Profit              %s\n", format.Currency(result.ProfitAmount))
	fmt.Printf("  SELLING PRICE       %s\n", format.Currency(result.SellingPrice))
}

func orderType(input model.CostInput) string {
	if input.IsWholesale {
		return "wholesale"
	}
	return "retail"
}
