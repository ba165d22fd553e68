// Package validate holds the boundary validation rules for cost inputs.
// The pricing engine itself is a total function and accepts anything; these
// checks run in the handlers and CLI before an input reaches the engine.
package validate

import (
	"fmt"

	"github.com/printquote/printquote/internal/model"
	"github.com/printquote/printquote/internal/pricing"
)

// Error describes one failed field check.
type Error struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Field limits.
const (
	MaxProductNameLength = 100
	MaxMaterialWeight    = 10000 // grams
	MaxPrintTimeMinutes  = 10080 // one week
	MaxProfitMargin      = 200   // field-level cap; effective margin must still be < 100
	MaxWholesaleQuantity = 10000
)

// ProductName requires a non-empty name of at most 100 characters.
func ProductName(name string) *Error {
	if name == "" {
		return &Error{Field: "productName", Message: "Product name is required"}
	}
	if len(name) > MaxProductNameLength {
		return &Error{Field: "productName", Message: "Product name must be less than 100 characters"}
	}
	return nil
}

// MaterialWeight requires a positive mass no larger than 10kg.
func MaterialWeight(grams float64) *Error {
	if grams <= 0 {
		return &Error{Field: "materialWeightUsed", Message: "Material weight must be greater than 0"}
	}
	if grams > MaxMaterialWeight {
		return &Error{Field: "materialWeightUsed", Message: "Material weight seems unusually high"}
	}
	return nil
}

// PrintTime requires a positive duration of at most one week.
func PrintTime(minutes float64) *Error {
	if minutes <= 0 {
		return &Error{Field: "printTimeMinutes", Message: "Print time must be greater than 0"}
	}
	if minutes > MaxPrintTimeMinutes {
		return &Error{Field: "printTimeMinutes", Message: "Print time seems unusually long"}
	}
	return nil
}

// Percentage requires a value in [0, max].
func Percentage(value float64, field string, max float64) *Error {
	if value < 0 {
		return &Error{Field: field, Message: fmt.Sprintf("%s cannot be negative", field)}
	}
	if value > max {
		return &Error{Field: field, Message: fmt.Sprintf("%s cannot exceed %.0f%%", field, max)}
	}
	return nil
}

// Quantity requires a positive order size of at most 10000 units.
func Quantity(quantity int) *Error {
	if quantity <= 0 {
		return &Error{Field: "quantity", Message: "Quantity must be a positive integer"}
	}
	if quantity > MaxWholesaleQuantity {
		return &Error{Field: "quantity", Message: "Quantity seems unusually high"}
	}
	return nil
}

// Margin rejects inputs whose effective profit margin would reach 100%,
// which would divide by zero or flip the selling price negative. The engine
// never guards this itself.
func Margin(input model.CostInput) *Error {
	if pricing.EffectiveProfitMargin(input) >= 100 {
		return &Error{Field: "desiredProfitMargin", Message: "Effective profit margin must be below 100%"}
	}
	return nil
}

// Validate runs every field rule against the input and returns all failures.
// A nil slice means the input is safe to hand to the pricing engine.
func Validate(input model.CostInput) []Error {
	var errs []Error

	appendErr := func(e *Error) {
		if e != nil {
			errs = append(errs, *e)
		}
	}

	appendErr(ProductName(input.ProductName))
	appendErr(MaterialWeight(input.MaterialWeightUsed))
	appendErr(PrintTime(input.PrintTimeMinutes))
	appendErr(Percentage(input.OverheadPercentage, "overheadPercentage", 100))
	appendErr(Percentage(input.FailureWasteRate, "failureWasteRate", 100))
	appendErr(Percentage(input.DesiredProfitMargin, "desiredProfitMargin", MaxProfitMargin))
	appendErr(Margin(input))

	if input.IsWholesale {
		appendErr(Quantity(input.Quantity))
	}

	return errs
}
