package insighting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanBreakdownsAllowedCombinations(t *testing.T) {
	tests := []struct {
		name      string
		requested []string
		expected  breakdownPlan
	}{
		{
			name:      "age alone",
			requested: []string{"age"},
			expected:  breakdownPlan{AgeGenderDims: []string{"age"}},
		},
		{
			name:      "gender alone",
			requested: []string{"gender"},
			expected:  breakdownPlan{AgeGenderDims: []string{"gender"}},
		},
		{
			name:      "age and gender combined",
			requested: []string{"gender", "age"},
			expected:  breakdownPlan{AgeGenderDims: []string{"age", "gender"}},
		},
		{
			name:      "country alone",
			requested: []string{"country"},
			expected:  breakdownPlan{Country: true},
		},
		{
			name:      "region alone",
			requested: []string{"region"},
			expected:  breakdownPlan{Region: true},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, planBreakdowns(tc.requested))
		})
	}
}

func TestPlanBreakdownsInvalidTripleDecomposes(t *testing.T) {
	plan := planBreakdowns([]string{"age", "gender", "country"})

	assert.Equal(t, []string{"age", "gender"}, plan.AgeGenderDims)
	assert.True(t, plan.Country)
	assert.False(t, plan.Region)
	assert.Equal(t, []string{"age,gender,country"}, plan.Skipped)
}

func TestPlanBreakdownsInvalidPairDecomposes(t *testing.T) {
	plan := planBreakdowns([]string{"age", "country"})

	assert.Equal(t, []string{"age", "gender"}, plan.AgeGenderDims)
	assert.True(t, plan.Country)
	assert.Equal(t, []string{"age,country"}, plan.Skipped)
}

func TestPlanBreakdownsUnlistedCombinationDecomposes(t *testing.T) {
	plan := planBreakdowns([]string{"country", "region"})

	assert.Empty(t, plan.AgeGenderDims)
	assert.True(t, plan.Country)
	assert.True(t, plan.Region)
	assert.Empty(t, plan.Skipped)
}

func TestPlanBreakdownsNormalization(t *testing.T) {
	plan := planBreakdowns([]string{" Age ", "AGE", "gender", "clicks_by_moon_phase"})

	assert.Equal(t, breakdownPlan{AgeGenderDims: []string{"age", "gender"}}, plan)
}

func TestPlanBreakdownsEmptyAfterNormalization(t *testing.T) {
	assert.True(t, planBreakdowns([]string{"placement", ""}).empty())
	assert.True(t, planBreakdowns(nil).empty())
}
