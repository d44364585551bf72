package eta

import (
	"testing"

	"shiptrack/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeKnownDestinations(t *testing.T) {
	calc := NewCalculator(DefaultLeadTimes())

	cases := []struct {
		destination string
		etd         string
		want        string
	}{
		{"Miri", "2024-01-01", "2024-01-02"},
		{"Bintulu", "2024-01-01", "2024-01-03"},
		{"Kuching", "2024-01-01", "2024-01-08"},
		{"Sibu", "2024-01-01", "2024-01-05"},
		{"Kota Kinabalu", "2024-01-01", "2024-01-08"},
		{"Sandakan", "2024-03-01", "2024-03-15"},
		{"Brunei", "2024-01-01", "2024-01-06"},
		{"Labuan", "2024-01-01", "2024-01-06"},
		{"Self Collect", "2024-01-01", "2024-01-02"},
	}

	for _, tc := range cases {
		got, err := calc.Compute(tc.etd, tc.destination)
		require.NoError(t, err, tc.destination)
		assert.Equal(t, tc.want, got, tc.destination)
	}
}

func TestComputeUnknownDestinationFallsBackToETD(t *testing.T) {
	calc := NewCalculator(DefaultLeadTimes())

	got, err := calc.Compute("2024-06-15", "Unknown City")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-15", got)
}

func TestComputeCrossesMonthBoundary(t *testing.T) {
	calc := NewCalculator(DefaultLeadTimes())

	got, err := calc.Compute("2024-12-30", "Kuching")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-06", got)
}

func TestComputeBadDateIsFormatError(t *testing.T) {
	calc := NewCalculator(DefaultLeadTimes())

	_, err := calc.Compute("15/06/2024", "Miri")
	require.Error(t, err)
	assert.True(t, domain.IsFormat(err))

	_, err = calc.Compute("", "Miri")
	require.Error(t, err)
	assert.True(t, domain.IsFormat(err))
}

func TestCalculatorCopiesItsTable(t *testing.T) {
	table := LeadTimes{"Testville": 3}
	calc := NewCalculator(table)
	table["Testville"] = 99

	got, err := calc.Compute("2024-01-01", "Testville")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-04", got)
}
