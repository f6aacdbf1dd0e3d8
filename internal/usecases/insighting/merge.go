package insighting

import (
	"sort"
	"strings"

	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

// mergeRows groups raw insight rows by the given dimension values and sums
// their metrics. Metric parsing treats missing or malformed values as zero.
// Output is sorted by grouping key for determinism.
func mergeRows(rows []*domain.InsightRow, dims []string) []domain.DemographicRow {
	grouped := make(map[string]*domain.DemographicRow)
	keys := make([]string, 0)

	for _, row := range rows {
		key := rowKey(row, dims)

		agg, ok := grouped[key]
		if !ok {
			agg = &domain.DemographicRow{}
			for _, dim := range dims {
				switch dim {
				case dimAge:
					agg.Age = row.Age
				case dimGender:
					agg.Gender = row.Gender
				case dimCountry:
					agg.Country = row.Country
				case dimRegion:
					agg.Region = row.Region
				}
			}
			grouped[key] = agg
			keys = append(keys, key)
		}

		agg.Impressions += utils.ParseInt(row.Impressions)
		agg.Reach += utils.ParseInt(row.Reach)
		agg.Clicks += utils.ParseInt(row.Clicks)
		agg.Spend += utils.ParseFloat(row.Spend)
	}

	sort.Strings(keys)

	merged := make([]domain.DemographicRow, 0, len(keys))
	for _, key := range keys {
		agg := grouped[key]
		agg.Spend = utils.RoundWithTwoDecimalPlace(agg.Spend)
		merged = append(merged, *agg)
	}

	return merged
}

// mergeSeries is mergeRows with the row's start date added to the grouping
// key, producing one row per (date, dimensions). Output is sorted ascending
// by date, then by dimension key.
func mergeSeries(rows []*domain.InsightRow, dims []string) []domain.DemographicSeriesRow {
	grouped := make(map[string]*domain.DemographicSeriesRow)
	keys := make([]string, 0)

	for _, row := range rows {
		key := row.DateStart + "|" + rowKey(row, dims)

		agg, ok := grouped[key]
		if !ok {
			agg = &domain.DemographicSeriesRow{Date: row.DateStart}
			for _, dim := range dims {
				switch dim {
				case dimAge:
					agg.Age = row.Age
				case dimGender:
					agg.Gender = row.Gender
				}
			}
			grouped[key] = agg
			keys = append(keys, key)
		}

		agg.Impressions += utils.ParseInt(row.Impressions)
		agg.Reach += utils.ParseInt(row.Reach)
		agg.Clicks += utils.ParseInt(row.Clicks)
		agg.Spend += utils.ParseFloat(row.Spend)
	}

	sort.Strings(keys)

	merged := make([]domain.DemographicSeriesRow, 0, len(keys))
	for _, key := range keys {
		agg := grouped[key]
		agg.Spend = utils.RoundWithTwoDecimalPlace(agg.Spend)
		merged = append(merged, *agg)
	}

	return merged
}

func rowKey(row *domain.InsightRow, dims []string) string {
	parts := make([]string, 0, len(dims))
	for _, dim := range dims {
		switch dim {
		case dimAge:
			parts = append(parts, row.Age)
		case dimGender:
			parts = append(parts, row.Gender)
		case dimCountry:
			parts = append(parts, row.Country)
		case dimRegion:
			parts = append(parts, row.Region)
		}
	}
	return strings.Join(parts, "|")
}
