// Package pricing implements the cost and selling-price calculation for a
// fabricated product: component cost breakdown, overhead and waste
// surcharges, and the wholesale margin/labor adjustments.
package pricing

// DiscountTier is one quantity range with its associated factor. A zero
// MaxQuantity means the range is open-ended upward.
type DiscountTier struct {
	MinQuantity int     `json:"min_quantity"`
	MaxQuantity int     `json:"max_quantity,omitempty"`
	Factor      float64 `json:"factor"`
	Label       string  `json:"label"`
}

// Wholesale pricing constants.
const (
	// MinWholesaleQuantity is the smallest order treated as wholesale.
	MinWholesaleQuantity = 10
	// MinWholesaleMargin is the floor, in percentage points, below which the
	// volume discount never pushes the effective profit margin.
	MinWholesaleMargin = 15.0
)

// VolumeDiscountTiers maps order quantity to the fractional discount applied
// to the desired profit margin on wholesale orders. Ranges form a strict
// partition of the quantity axis, so declaration order does not affect lookup.
var VolumeDiscountTiers = []DiscountTier{
	{MinQuantity: 50, MaxQuantity: 199, Factor: 0.3, Label: "Medium wholesale (50-199 units)"},
	{MinQuantity: 10, MaxQuantity: 49, Factor: 0.2, Label: "Small wholesale (10-49 units)"},
}

// BatchEfficiencyTiers maps order quantity to the multiplier applied to
// per-unit setup and post-processing time on wholesale orders. A factor of
// 0.6 means a 40% time reduction.
var BatchEfficiencyTiers = []DiscountTier{
	{MinQuantity: 50, MaxQuantity: 99, Factor: 0.4, Label: "Medium batch efficiency (50-99 units)"},
	{MinQuantity: 10, MaxQuantity: 49, Factor: 0.6, Label: "Small batch efficiency (10-49 units)"},
}

// lookupTier scans the table in declared order and returns the factor of the
// first tier whose range contains quantity, or fallback if none matches.
func lookupTier(table []DiscountTier, quantity int, fallback float64) float64 {
	for _, tier := range table {
		if quantity >= tier.MinQuantity && (tier.MaxQuantity == 0 || quantity <= tier.MaxQuantity) {
			return tier.Factor
		}
	}
	return fallback
}

// VolumeDiscount returns the fractional margin discount for a wholesale
// order of the given quantity. Quantities below every tier get 0.
func VolumeDiscount(quantity int) float64 {
	return lookupTier(VolumeDiscountTiers, quantity, 0)
}

// BatchEfficiencyFactor returns the setup/post-processing time multiplier
// for a wholesale order of the given quantity. Quantities below every tier
// get 1 (no reduction).
func BatchEfficiencyFactor(quantity int) float64 {
	return lookupTier(BatchEfficiencyTiers, quantity, 1)
}

// VolumeDiscountLabel returns the display label of the matching volume tier,
// or an empty string when no tier applies.
func VolumeDiscountLabel(quantity int) string {
	for _, tier := range VolumeDiscountTiers {
		if quantity >= tier.MinQuantity && (tier.MaxQuantity == 0 || quantity <= tier.MaxQuantity) {
			return tier.Label
		}
	}
	return ""
}
