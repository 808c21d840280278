package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenscore-dev/greenscore/internal/model"
)

func TestReadMCCTable(t *testing.T) {
	input := `mcc_code,status,name,description
4111,green,Transit,Local commuter transport
5541,not green,Service Stations,Fuel
5411,green,Grocery Stores,
`
	entries, excluded, err := ReadMCCTable(strings.NewReader(input), "mcc.csv")
	require.NoError(t, err)
	assert.Equal(t, 0, excluded)
	require.Len(t, entries, 3)

	assert.Equal(t, 4111, entries[0].Code)
	assert.Equal(t, model.StatusGreen, entries[0].Status)
	assert.Equal(t, "Transit", entries[0].Name)
	assert.Equal(t, "Local commuter transport", entries[0].Description)

	assert.Equal(t, model.StatusNotGreen, entries[1].Status)
	assert.Equal(t, model.StatusGreen, entries[2].Status)
}

func TestReadMCCTable_SynonymColumns(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"mcc and green_status", "mcc,green_status\n4111,green\n"},
		{"mcc_cd and is_green", "mcc_cd,is_green\n4111,true\n"},
		{"mcc_code and color", "mcc_code,color\n4111,green\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, _, err := ReadMCCTable(strings.NewReader(tt.input), "mcc.csv")
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, 4111, entries[0].Code)
			assert.Equal(t, model.StatusGreen, entries[0].Status)
		})
	}
}

func TestReadMCCTable_NoStatusColumn(t *testing.T) {
	input := `mcc_code,name
4111,Transit
5541,Fuel
`
	entries, _, err := ReadMCCTable(strings.NewReader(input), "mcc.csv")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, model.StatusNotGreen, e.Status)
	}
}

func TestReadMCCTable_MissingCodeColumn(t *testing.T) {
	input := `status,name
green,Transit
`
	_, _, err := ReadMCCTable(strings.NewReader(input), "mcc.csv")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingColumn)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "mcc_code", loadErr.Column)
}

func TestReadMCCTable_BadRowsExcluded(t *testing.T) {
	input := `mcc_code,status
4111,green
abc,green
5541,chartreuse
5411,not green
`
	entries, excluded, err := ReadMCCTable(strings.NewReader(input), "mcc.csv")
	require.NoError(t, err)
	assert.Equal(t, 2, excluded)
	require.Len(t, entries, 2)
	assert.Equal(t, 4111, entries[0].Code)
	assert.Equal(t, 5411, entries[1].Code)
}

func TestReadMCCTable_EmptyStatusDefaultsNotGreen(t *testing.T) {
	input := `mcc_code,status
4111,
`
	entries, excluded, err := ReadMCCTable(strings.NewReader(input), "mcc.csv")
	require.NoError(t, err)
	assert.Equal(t, 0, excluded)
	require.Len(t, entries, 1)
	assert.Equal(t, model.StatusNotGreen, entries[0].Status)
}

func TestReadMCCTable_EmptyFile(t *testing.T) {
	_, _, err := ReadMCCTable(strings.NewReader(""), "mcc.csv")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyTable)
}
