package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/printquote/printquote/internal/format"
	"github.com/printquote/printquote/internal/model"
	"github.com/printquote/printquote/internal/pricing"
)

// Page layout constants (A4 portrait in mm).
const (
	quotePageWidth = 210.0
	quoteMargin    = 18.0
	quoteQRSize    = 28.0
	lineHeight     = 7.0
)

// quoteStamp is the data encoded into the QR code on a printed quote, enough
// to look the record up again and sanity-check the headline figures.
type quoteStamp struct {
	ID           string  `json:"id"`
	ProductName  string  `json:"product_name"`
	TotalCost    float64 `json:"total_cost"`
	SellingPrice float64 `json:"selling_price"`
}

// WriteQuotePDF renders one saved calculation as a printable A4 quote sheet:
// product details, the full cost breakdown, the emphasized selling price and
// a QR code encoding the record id and headline figures.
func WriteQuotePDF(w io.Writer, record model.HistoryRecord) error {
	result := pricing.Calculate(record.Input)
	input := record.Input.Normalized()

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, quoteMargin)
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(quoteMargin, quoteMargin)
	pdf.CellFormat(quotePageWidth-2*quoteMargin-quoteQRSize, 10, "Product Quote", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetX(quoteMargin)
	meta := fmt.Sprintf("Quote %s  |  %s", record.ID, record.CreatedAt.Format("2 Jan 2006 15:04"))
	pdf.CellFormat(0, 5, meta, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	if err := drawQuoteQR(pdf, record, result); err != nil {
		return err
	}

	// Product details
	pdf.SetY(quoteMargin + 22)
	drawSectionTitle(pdf, "Product")
	drawDetailLine(pdf, "Product name", input.ProductName)
	drawDetailLine(pdf, "Filament", string(input.FilamentType))
	drawDetailLine(pdf, "Quantity", fmt.Sprintf("%d", input.Quantity))
	drawDetailLine(pdf, "Order type", orderType(input))
	drawDetailLine(pdf, "Print time", format.Time(input.PrintTimeMinutes))
	drawDetailLine(pdf, "Material used", format.Weight(input.MaterialWeightUsed))

	// Cost breakdown
	pdf.Ln(4)
	drawSectionTitle(pdf, "Cost Breakdown (per unit)")
	drawCostLine(pdf, "Material", result.MaterialCost, false)
	drawCostLine(pdf, "Machine & electricity", result.MachineCost, false)
	drawCostLine(pdf, "Labor", result.LaborCost, false)
	drawCostLine(pdf, "Accessories", result.AccessoriesCost, false)
	drawCostLine(pdf, "Packaging", input.PackagingCost, false)
	drawCostLine(pdf, "Base cost", result.BaseCost, true)
	drawCostLine(pdf, fmt.Sprintf("Overhead (%s)", format.Percent(input.OverheadPercentage)), result.OverheadCost, false)
	drawCostLine(pdf, fmt.Sprintf("Waste allowance (%s)", format.Percent(input.FailureWasteRate)), result.WasteAllowance, false)
	drawCostLine(pdf, "Total cost", result.TotalCost, true)

	// Pricing
	pdf.Ln(4)
	drawSectionTitle(pdf, "Pricing")
	margin := pricing.EffectiveProfitMargin(input)
	drawDetailLine(pdf, "Effective profit margin", format.Percent(margin))
	if label := pricing.VolumeDiscountLabel(input.Quantity); input.IsWholesale && label != "" {
		drawDetailLine(pdf, "Volume tier", label)
	}
	drawCostLine(pdf, "Profit", result.ProfitAmount, false)

	// Selling price banner
	pdf.Ln(3)
	pdf.SetFillColor(255, 255, 224)
	pdf.SetDrawColor(180, 180, 140)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetX(quoteMargin)
	banner := fmt.Sprintf("Selling price: %s", pdfMoney(result.SellingPrice))
	pdf.CellFormat(quotePageWidth-2*quoteMargin, 12, banner, "1", 1, "C", true, 0, "")

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render quote pdf: %w", err)
	}
	return pdf.Output(w)
}

// drawQuoteQR places the record QR code in the top-right corner.
func drawQuoteQR(pdf *fpdf.Fpdf, record model.HistoryRecord, result model.CalculationResult) error {
	stamp := quoteStamp{
		ID:           record.ID,
		ProductName:  record.Input.ProductName,
		TotalCost:    round2(result.TotalCost),
		SellingPrice: round2(result.SellingPrice),
	}
	data, err := json.Marshal(stamp)
	if err != nil {
		return fmt.Errorf("marshal quote stamp: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(data), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("generate QR code: %w", err)
	}

	imgName := "qr_" + record.ID
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	pdf.ImageOptions(imgName, quotePageWidth-quoteMargin-quoteQRSize, quoteMargin-4,
		quoteQRSize, quoteQRSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	return nil
}

func drawSectionTitle(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetX(quoteMargin)
	pdf.CellFormat(0, lineHeight, title, "", 1, "L", false, 0, "")
	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(quoteMargin, pdf.GetY(), quotePageWidth-quoteMargin, pdf.GetY())
	pdf.Ln(1)
}

func drawDetailLine(pdf *fpdf.Fpdf, label, value string) {
	pdf.SetX(quoteMargin)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(60, 6, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}

func drawCostLine(pdf *fpdf.Fpdf, label string, amount float64, emphasized bool) {
	style := ""
	if emphasized {
		style = "B"
	}
	pdf.SetX(quoteMargin)
	pdf.SetFont("Helvetica", style, 10)
	pdf.CellFormat(100, 6, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(quotePageWidth-2*quoteMargin-100, 6, pdfMoney(amount), "", 1, "R", false, 0, "")
}

// pdfMoney formats an amount for the PDF's latin-1 core fonts, which cannot
// render the rupee sign.
func pdfMoney(amount float64) string {
	return "Rs " + strings.TrimPrefix(format.Currency(amount), format.CurrencySymbol)
}

func orderType(input model.CostInput) string {
	if input.IsWholesale {
		return "Wholesale"
	}
	return "Retail"
}
