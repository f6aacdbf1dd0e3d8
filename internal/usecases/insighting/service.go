package insighting

import (
	"context"
	"sync"

	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

// Demographer runs demographic insight queries, splitting combinations the
// API rejects into separate calls and merging the results.
type Demographer interface {
	FetchDemographics(ctx context.Context, query *domain.DemographicsQuery) (*domain.DemographicsResponse, error)
}

type Service struct {
	meta meta.Integrator
}

func NewService(metaService meta.Integrator) Demographer {
	return &Service{meta: metaService}
}

// branchResult carries one fan-out branch's outcome back to the merge step.
type branchResult struct {
	operation string
	dims      []string
	rows      []*domain.InsightRow
	err       error
}

// FetchDemographics plans the breakdown decomposition and runs every selected
// branch concurrently. Branches fail independently: a failed branch
// contributes an empty result set and an entry in the response's Errors, and
// never cancels its siblings.
func (s *Service) FetchDemographics(ctx context.Context, query *domain.DemographicsQuery) (*domain.DemographicsResponse, error) {
	plan := planBreakdowns(query.Breakdowns)

	response := &domain.DemographicsResponse{
		AgeGender:         make([]domain.DemographicRow, 0),
		Country:           make([]domain.DemographicRow, 0),
		Region:            make([]domain.DemographicRow, 0),
		AgeGenderSeries:   make([]domain.DemographicSeriesRow, 0),
		SkippedBreakdowns: plan.Skipped,
	}

	if plan.empty() {
		return response, nil
	}

	type branch struct {
		operation     string
		dims          []string
		timeIncrement int
	}

	branches := make([]branch, 0, 4)
	if len(plan.AgeGenderDims) > 0 {
		branches = append(branches,
			branch{operation: "insights.age_gender", dims: plan.AgeGenderDims},
			branch{operation: "insights.age_gender_series", dims: plan.AgeGenderDims, timeIncrement: 1},
		)
	}
	if plan.Country {
		branches = append(branches, branch{operation: "insights.country", dims: []string{dimCountry}})
	}
	if plan.Region {
		branches = append(branches, branch{operation: "insights.region", dims: []string{dimRegion}})
	}

	scope := domain.NormalizeAccountID(query.AccountID)
	results := make([]branchResult, len(branches))

	var wg sync.WaitGroup
	for i, b := range branches {
		wg.Add(1)
		go func(i int, b branch) {
			defer wg.Done()

			rows, err := s.meta.FetchInsights(ctx, &domain.InsightsRequest{
				AccountID:     scope,
				StartDate:     query.StartDate,
				EndDate:       query.EndDate,
				Breakdowns:    b.dims,
				TimeIncrement: b.timeIncrement,
				CampaignIDs:   query.CampaignIDs,
				AllCampaigns:  query.AllCampaigns,
				AdIDs:         query.AdIDs,
				AllAds:        query.AllAds,
			})

			results[i] = branchResult{
				operation: b.operation,
				dims:      b.dims,
				rows:      rows,
				err:       err,
			}
		}(i, b)
	}
	wg.Wait()

	for _, res := range results {
		if res.err != nil {
			log.ForContext(ctx).WithFields(log.Fields{
				"account_id": scope,
				"operation":  res.operation,
				"error":      res.err.Error(),
			}).Error("insighting: breakdown branch failed")

			response.Errors = append(response.Errors, domain.FetchError{
				Scope:       scope,
				Operation:   res.operation,
				Message:     res.err.Error(),
				RateLimited: metadomain.IsRateLimitError(res.err),
			})
			continue
		}

		switch res.operation {
		case "insights.age_gender":
			response.AgeGender = mergeRows(res.rows, res.dims)
		case "insights.age_gender_series":
			response.AgeGenderSeries = mergeSeries(res.rows, res.dims)
		case "insights.country":
			response.Country = mergeRows(res.rows, res.dims)
		case "insights.region":
			response.Region = mergeRows(res.rows, res.dims)
		}
	}

	return response, nil
}
