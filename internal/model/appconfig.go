package model

// AppConfig holds application-wide preferences and default business settings.
type AppConfig struct {
	// Default business figures applied to new cost inputs
	DefaultMaterialCostPerKg  float64 `json:"default_material_cost_per_kg"`
	DefaultMachineHourlyRate  float64 `json:"default_machine_hourly_rate"`
	DefaultElectricityPerHour float64 `json:"default_electricity_per_hour"`
	DefaultHourlyLaborRate    float64 `json:"default_hourly_labor_rate"`
	DefaultOverheadPercentage float64 `json:"default_overhead_percentage"`
	DefaultFailureWasteRate   float64 `json:"default_failure_waste_rate"`
	DefaultProfitMargin       float64 `json:"default_profit_margin"`
	DefaultPackagingCost      float64 `json:"default_packaging_cost"`

	// Application preferences
	CurrencySymbol string   `json:"currency_symbol"`
	DataDir        string   `json:"data_dir"` // override for the quote database location, "" = default
	RecentProducts []string `json:"recent_products"`
	Theme          string   `json:"theme"` // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig populated with the same defaults a
// fresh cost input form starts from.
func DefaultAppConfig() AppConfig {
	defaults := DefaultCostInput()
	return AppConfig{
		DefaultMaterialCostPerKg:  defaults.MaterialCostPerKg,
		DefaultMachineHourlyRate:  defaults.MachineHourlyRate,
		DefaultElectricityPerHour: defaults.ElectricityCostPerHour,
		DefaultHourlyLaborRate:    defaults.HourlyLaborRate,
		DefaultOverheadPercentage: defaults.OverheadPercentage,
		DefaultFailureWasteRate:   defaults.FailureWasteRate,
		DefaultProfitMargin:       defaults.DesiredProfitMargin,
		DefaultPackagingCost:      defaults.PackagingCost,
		CurrencySymbol:            "₹",
		DataDir:                   "",
		RecentProducts:            []string{},
		Theme:                     "system",
	}
}

// ApplyToInput copies the configured business defaults into a CostInput.
// Used when starting a new quote so it inherits the user's saved rates.
func (c AppConfig) ApplyToInput(input *CostInput) {
	input.MaterialCostPerKg = c.DefaultMaterialCostPerKg
	input.MachineHourlyRate = c.DefaultMachineHourlyRate
	input.ElectricityCostPerHour = c.DefaultElectricityPerHour
	input.HourlyLaborRate = c.DefaultHourlyLaborRate
	input.OverheadPercentage = c.DefaultOverheadPercentage
	input.FailureWasteRate = c.DefaultFailureWasteRate
	input.DesiredProfitMargin = c.DefaultProfitMargin
	input.PackagingCost = c.DefaultPackagingCost
}
