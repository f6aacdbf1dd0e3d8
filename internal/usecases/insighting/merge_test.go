package insighting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

func TestMergeRowsSumsByDimensionKey(t *testing.T) {
	rows := []*domain.InsightRow{
		{Age: "25-34", Gender: "male", Impressions: "10", Reach: "8", Clicks: "2", Spend: "1.50"},
		{Age: "25-34", Gender: "male", Impressions: "5", Reach: "4", Clicks: "1", Spend: "0.25"},
		{Age: "25-34", Gender: "female", Impressions: "7", Reach: "6", Clicks: "3", Spend: "2.00"},
	}

	merged := mergeRows(rows, []string{"age", "gender"})

	require.Len(t, merged, 2)
	assert.Equal(t, domain.DemographicRow{
		Age: "25-34", Gender: "female",
		Impressions: 7, Reach: 6, Clicks: 3, Spend: 2.00,
	}, merged[0])
	assert.Equal(t, domain.DemographicRow{
		Age: "25-34", Gender: "male",
		Impressions: 15, Reach: 12, Clicks: 3, Spend: 1.75,
	}, merged[1])
}

func TestMergeRowsMalformedMetricsCountAsZero(t *testing.T) {
	rows := []*domain.InsightRow{
		{Country: "BR", Impressions: "100", Reach: "", Clicks: "not-a-number", Spend: "9.99"},
		{Country: "BR", Impressions: "", Reach: "50", Clicks: "1", Spend: ""},
	}

	merged := mergeRows(rows, []string{"country"})

	require.Len(t, merged, 1)
	assert.Equal(t, domain.DemographicRow{
		Country:     "BR",
		Impressions: 100,
		Reach:       50,
		Clicks:      1,
		Spend:       9.99,
	}, merged[0])
}

func TestMergeRowsIgnoresDimensionsOutsideGroup(t *testing.T) {
	rows := []*domain.InsightRow{
		{Country: "BR", Region: "Sao Paulo", Impressions: "1"},
		{Country: "BR", Region: "Bahia", Impressions: "2"},
	}

	merged := mergeRows(rows, []string{"country"})

	require.Len(t, merged, 1)
	assert.Equal(t, 3, merged[0].Impressions)
	assert.Empty(t, merged[0].Region)
}

func TestMergeSeriesSortedAscendingByDate(t *testing.T) {
	rows := []*domain.InsightRow{
		{DateStart: "2025-06-03", Age: "18-24", Gender: "male", Impressions: "3"},
		{DateStart: "2025-06-01", Age: "18-24", Gender: "male", Impressions: "1"},
		{DateStart: "2025-06-02", Age: "18-24", Gender: "male", Impressions: "2"},
		{DateStart: "2025-06-01", Age: "18-24", Gender: "male", Clicks: "4", Impressions: "10"},
	}

	series := mergeSeries(rows, []string{"age", "gender"})

	require.Len(t, series, 3)
	assert.Equal(t, "2025-06-01", series[0].Date)
	assert.Equal(t, 11, series[0].Impressions)
	assert.Equal(t, 4, series[0].Clicks)
	assert.Equal(t, "2025-06-02", series[1].Date)
	assert.Equal(t, "2025-06-03", series[2].Date)
}

func TestMergeRowsEmptyInput(t *testing.T) {
	assert.Empty(t, mergeRows(nil, []string{"age"}))
	assert.Empty(t, mergeSeries(nil, []string{"age", "gender"}))
}

func TestMergeRowsRoundsSpend(t *testing.T) {
	rows := []*domain.InsightRow{
		{Age: "35-44", Spend: "0.1"},
		{Age: "35-44", Spend: "0.2"},
	}

	merged := mergeRows(rows, []string{"age"})

	require.Len(t, merged, 1)
	assert.Equal(t, 0.3, merged[0].Spend)
}
