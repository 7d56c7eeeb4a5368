package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testFile2019 = "data/input/Unfallorte2019_LinRef.csv"
	testFile2020 = "data/input/Unfallorte2020_LinRef.csv"
	testFile2022 = "data/input/Unfallorte2022_LinRef.csv"
)

func sourceTable(rows ...[]string) Table {
	return Table{
		Columns: []string{"OBJECTID", "UJAHR", "IstRad", "IstFuss", "XGCSWGS84", "YGCSWGS84"},
		Rows:    rows,
	}
}

func TestSelectYearFiles(t *testing.T) {
	paths := []string{testFile2019, testFile2020, testFile2022}

	selected, missing := SelectYearFiles(paths, []int{2019, 2020, 2021, 2022, 2023})

	want := []YearFile{
		{Year: 2019, Path: testFile2019},
		{Year: 2020, Path: testFile2020},
		{Year: 2022, Path: testFile2022},
	}
	if diff := cmp.Diff(want, selected); diff != "" {
		t.Fatalf("selected mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []int{2021, 2023}, missing)
}

func TestSelectYearFiles_FirstMatchWins(t *testing.T) {
	paths := []string{
		"in/Unfallorte2021_EPSG25832_LinRef.csv",
		"in/Unfallorte2021_LinRef.csv",
	}

	selected, missing := SelectYearFiles(paths, []int{2021})

	require.Len(t, selected, 1)
	assert.Equal(t, "in/Unfallorte2021_EPSG25832_LinRef.csv", selected[0].Path)
	assert.Empty(t, missing)
}

func TestSelectYearFiles_MatchesBaseNameOnly(t *testing.T) {
	selected, missing := SelectYearFiles([]string{"archive2019/Unfallorte_LinRef.csv"}, []int{2019})

	assert.Empty(t, selected)
	assert.Equal(t, []int{2019}, missing)
}

func TestExtractPedestrianRecords(t *testing.T) {
	table := sourceTable(
		[]string{"1", "2019", "0", "1", "13,38862", "52,51627"},
		[]string{"2", "2019", "1", "0", "13,40000", "52,50000"},
		[]string{"3", "2019", "0", "1", "9,99368", "53,55108"},
		[]string{"4", "2019", "0", "", "8,68", "50,11"},
	)

	records, err := ExtractPedestrianRecords(table, 2019)
	require.NoError(t, err)

	want := []AccidentRecord{
		{Year: 2019, Longitude: "13,38862", Latitude: "52,51627"},
		{Year: 2019, Longitude: "9,99368", Latitude: "53,55108"},
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractPedestrianRecords_OnlyFlaggedRowsSurvive(t *testing.T) {
	flags := []string{"1", "0", "1.0", "true", "TRUE", "false", "2", " 1 ", "x"}
	rows := make([][]string, 0, len(flags))
	for _, f := range flags {
		rows = append(rows, []string{"1", "2020", "0", f, "1,0", "2,0"})
	}

	records, err := ExtractPedestrianRecords(sourceTable(rows...), 2020)
	require.NoError(t, err)

	expected := 0
	for _, f := range flags {
		if IsPedestrian(f) {
			expected++
		}
	}
	assert.Equal(t, 5, expected)
	assert.Len(t, records, expected)
}

func TestExtractPedestrianRecords_YearFallback(t *testing.T) {
	table := sourceTable([]string{"1", "n/a", "0", "1", "13,4", "52,5"})

	records, err := ExtractPedestrianRecords(table, 2021)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 2021, records[0].Year)
}

func TestExtractPedestrianRecords_ShortRow(t *testing.T) {
	table := sourceTable([]string{"1", "2022", "0", "1", "13,4"})

	records, err := ExtractPedestrianRecords(table, 2022)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].Latitude)
}

func TestExtractPedestrianRecords_MissingColumn(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		missing string
	}{
		{"no pedestrian flag", []string{"UJAHR", "XGCSWGS84", "YGCSWGS84"}, ColumnPedestrian},
		{"no year", []string{"IstFuss", "XGCSWGS84", "YGCSWGS84"}, ColumnYear},
		{"no longitude", []string{"UJAHR", "IstFuss", "YGCSWGS84"}, ColumnLongitude},
		{"no latitude", []string{"UJAHR", "IstFuss", "XGCSWGS84"}, ColumnLatitude},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractPedestrianRecords(Table{Columns: tt.columns}, 2019)
			require.ErrorIs(t, err, ErrMissingColumn)
			assert.Contains(t, err.Error(), tt.missing)
		})
	}
}

func TestIsPedestrian(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"1", true},
		{"1.0", true},
		{"true", true},
		{" True ", true},
		{"0", false},
		{"", false},
		{"yes", false},
		{"10", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsPedestrian(tt.value))
		})
	}
}
