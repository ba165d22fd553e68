package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printquote/printquote/internal/model"
)

func TestDetectCSVDelimiter(t *testing.T) {
	cases := []struct {
		name string
		data string
		want rune
	}{
		{"comma", "name,weight,cost per kg,print time\nVase,10,1000,150\n", ','},
		{"semicolon", "name;weight;cost per kg;print time\nVase;10;1000;150\n", ';'},
		{"tab", "name\tweight\tcost per kg\tprint time\nVase\t10\t1000\t150\n", '\t'},
		{"pipe", "name|weight|cost per kg|print time\nVase|10|1000|150\n", '|'},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectCSVDelimiter([]byte(tc.data)))
		})
	}
}

func TestImportCSVBasic(t *testing.T) {
	csv := strings.NewReader(
		"Name,Weight,Cost per kg,Print time,Qty,Wholesale\n" +
			"Vase,25,1200,180,1,no\n" +
			"Hook,5,800,30,50,yes\n")

	result := ImportCSVFromReader(csv, ',')
	require.Empty(t, result.Errors)
	require.Len(t, result.Inputs, 2)

	vase := result.Inputs[0]
	assert.Equal(t, "Vase", vase.ProductName)
	assert.Equal(t, 25.0, vase.MaterialWeightUsed)
	assert.Equal(t, 1200.0, vase.MaterialCostPerKg)
	assert.Equal(t, 180.0, vase.PrintTimeMinutes)
	assert.False(t, vase.IsWholesale)

	hook := result.Inputs[1]
	assert.Equal(t, 50, hook.Quantity)
	assert.True(t, hook.IsWholesale)
}

func TestImportOptionalColumnsDefault(t *testing.T) {
	csv := strings.NewReader(
		"Name,Weight,Cost per kg,Print time\n" +
			"Vase,25,1200,180\n")

	result := ImportCSVFromReader(csv, ',')
	require.Empty(t, result.Errors)
	require.Len(t, result.Inputs, 1)

	defaults := model.DefaultCostInput()
	got := result.Inputs[0]
	assert.Equal(t, defaults.MachineHourlyRate, got.MachineHourlyRate)
	assert.Equal(t, defaults.OverheadPercentage, got.OverheadPercentage)
	assert.Equal(t, defaults.DesiredProfitMargin, got.DesiredProfitMargin)
	assert.Equal(t, 1, got.Quantity)
	assert.Empty(t, got.Accessories)
}

func TestImportCollectsRowErrors(t *testing.T) {
	csv := strings.NewReader(
		"Name,Weight,Cost per kg,Print time\n" +
			"Good,25,1200,180\n" +
			"BadWeight,zero,1200,180\n" +
			"MissingPrint,25,1200,\n")

	result := ImportCSVFromReader(csv, ',')
	assert.Len(t, result.Inputs, 1)
	assert.Len(t, result.Errors, 2)
}

func TestImportUnknownFilamentWarns(t *testing.T) {
	csv := strings.NewReader(
		"Name,Weight,Cost per kg,Print time,Filament\n" +
			"Vase,25,1200,180,WOOD\n")

	result := ImportCSVFromReader(csv, ',')
	require.Len(t, result.Inputs, 1)
	assert.Equal(t, model.FilamentPLA, result.Inputs[0].FilamentType)

	foundWarning := false
	for _, warning := range result.Warnings {
		if strings.Contains(warning, "WOOD") {
			foundWarning = true
		}
	}
	assert.True(t, foundWarning, "expected a warning about the unknown filament")
}

func TestImportRequiresHeaderColumns(t *testing.T) {
	csv := strings.NewReader(
		"Name,Weight\n" +
			"Vase,25\n")

	result := ImportCSVFromReader(csv, ',')
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "Required columns not found")
	assert.Empty(t, result.Inputs)
}

func TestImportSkipsEmptyRows(t *testing.T) {
	csv := strings.NewReader(
		"Name,Weight,Cost per kg,Print time\n" +
			"Vase,25,1200,180\n" +
			",,,\n" +
			"Hook,5,800,30\n")

	result := ImportCSVFromReader(csv, ',')
	require.Empty(t, result.Errors)
	assert.Len(t, result.Inputs, 2)
}

func TestImportNamelessRowsGetPlaceholder(t *testing.T) {
	csv := strings.NewReader(
		"Name,Weight,Cost per kg,Print time\n" +
			",25,1200,180\n")

	result := ImportCSVFromReader(csv, ',')
	require.Len(t, result.Inputs, 1)
	assert.Equal(t, "Product 1", result.Inputs[0].ProductName)
}
