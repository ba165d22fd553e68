package model

// FilamentType identifies the print material family for a product.
type FilamentType string

const (
	FilamentPLA  FilamentType = "PLA"
	FilamentABS  FilamentType = "ABS"
	FilamentPETG FilamentType = "PETG"
	FilamentTPU  FilamentType = "TPU"
)

// FilamentTypes lists all supported filament types in display order.
var FilamentTypes = []FilamentType{FilamentPLA, FilamentABS, FilamentPETG, FilamentTPU}

// AccessoryKind identifies an add-on that can ship with a product.
type AccessoryKind string

const (
	AccessoryKeychain AccessoryKind = "keychain"
	AccessoryMagnet   AccessoryKind = "magnet"
	AccessoryBolt     AccessoryKind = "bolt"
)

// Accessory is one add-on line item on a product. Disabled accessories are
// kept on the form but contribute nothing to the cost.
type Accessory struct {
	Kind     AccessoryKind `json:"kind"`
	Quantity int           `json:"quantity"`
	UnitCost float64       `json:"unitCost"`
	Enabled  bool          `json:"enabled"`
}

// AccessoryConfig describes an accessory kind available in the catalog.
type AccessoryConfig struct {
	Kind        AccessoryKind `json:"kind"`
	Name        string        `json:"name"`
	DefaultCost float64       `json:"defaultCost"`
	Description string        `json:"description"`
}

// AccessoryCatalog lists the accessory kinds offered, in display order.
var AccessoryCatalog = []AccessoryConfig{
	{Kind: AccessoryKeychain, Name: "Keychain", DefaultCost: 5, Description: "Small keychain attachment"},
	{Kind: AccessoryMagnet, Name: "Magnet", DefaultCost: 8, Description: "Magnetic attachment"},
	{Kind: AccessoryBolt, Name: "Bolt", DefaultCost: 5, Description: "Bolt hardware attachment"},
}

// DefaultAccessories returns one disabled accessory per catalog entry with
// quantity 1 and the catalog default unit cost.
func DefaultAccessories() []Accessory {
	accessories := make([]Accessory, 0, len(AccessoryCatalog))
	for _, cfg := range AccessoryCatalog {
		accessories = append(accessories, Accessory{
			Kind:     cfg.Kind,
			Quantity: 1,
			UnitCost: cfg.DefaultCost,
			Enabled:  false,
		})
	}
	return accessories
}

// CostInput holds every user-entered figure needed to price one product.
// Monetary fields are in the shop currency; masses are grams; times are
// minutes; percentages are whole numbers (15 means 15%).
type CostInput struct {
	ProductName  string       `json:"productName"`
	FilamentType FilamentType `json:"filamentType"`

	// Material costs
	MaterialCostPerKg  float64 `json:"materialCostPerKg"`  // currency per kilogram
	MaterialWeightUsed float64 `json:"materialWeightUsed"` // grams
	PackagingCost      float64 `json:"packagingCost"`

	// Time & machine costs
	PrintTimeMinutes       float64 `json:"printTimeMinutes"`
	MachineHourlyRate      float64 `json:"machineHourlyRate"`
	ElectricityCostPerHour float64 `json:"electricityCostPerHour"`
	SetupTimeMinutes       float64 `json:"setupTimeMinutes"`

	// Labor costs
	DesignTimeMinutes         float64 `json:"designTimeMinutes"`
	PostProcessingTimeMinutes float64 `json:"postProcessingTimeMinutes"`
	HourlyLaborRate           float64 `json:"hourlyLaborRate"`

	Accessories []Accessory `json:"accessories,omitempty"`

	// Business costs
	OverheadPercentage  float64 `json:"overheadPercentage"`
	FailureWasteRate    float64 `json:"failureWasteRate"`
	DesiredProfitMargin float64 `json:"desiredProfitMargin"`

	// Wholesale
	Quantity    int  `json:"quantity"`
	IsWholesale bool `json:"isWholesale"`
}

// DefaultCostInput returns a CostInput pre-filled with the standard form
// defaults for a new retail product.
func DefaultCostInput() CostInput {
	return CostInput{
		ProductName:               "",
		FilamentType:              FilamentPLA,
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
		Accessories:               DefaultAccessories(),
		OverheadPercentage:        5,
		FailureWasteRate:          8,
		DesiredProfitMargin:       40,
		Quantity:                  1,
		IsWholesale:               false,
	}
}

// Normalized returns a copy of the input with defaultable fields resolved:
// a missing or non-positive quantity becomes 1. The pricing engine assumes
// it only ever sees normalized input.
func (c CostInput) Normalized() CostInput {
	if c.Quantity < 1 {
		c.Quantity = 1
	}
	return c
}

// EnabledAccessories returns only the accessories that are switched on.
// Used when persisting a record so disabled form rows are not stored.
func (c CostInput) EnabledAccessories() []Accessory {
	var enabled []Accessory
	for _, a := range c.Accessories {
		if a.Enabled {
			enabled = append(enabled, a)
		}
	}
	return enabled
}
