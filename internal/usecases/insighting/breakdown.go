package insighting

import "strings"

const (
	dimAge     = "age"
	dimGender  = "gender"
	dimCountry = "country"
	dimRegion  = "region"
)

// dimensionOrder fixes the canonical ordering used for set keys and for the
// dimensions passed to the API.
var dimensionOrder = []string{dimAge, dimGender, dimCountry, dimRegion}

// Combinations the API accepts as-is. Exact-set matches only, keyed by the
// canonical comma-joined form.
var allowedCombinations = map[string]struct{}{
	"age":        {},
	"gender":     {},
	"age,gender": {},
	"country":    {},
	"region":     {},
}

// Combinations the API rejects outright. Anything not listed in either table
// is treated the same way and decomposed.
var invalidCombinations = map[string]struct{}{
	"age,country":        {},
	"gender,country":     {},
	"age,gender,country": {},
}

// breakdownPlan is the set of remote calls a demographic query decomposes
// into. AgeGenderDims holds the breakdown dimensions of the age/gender call
// (empty means no such call); Country and Region each select one extra call.
type breakdownPlan struct {
	AgeGenderDims []string
	Country       bool
	Region        bool

	// Skipped records combinations that were never sent because the API
	// would reject them. Diagnostics only.
	Skipped []string
}

func (p breakdownPlan) empty() bool {
	return len(p.AgeGenderDims) == 0 && !p.Country && !p.Region
}

// planBreakdowns classifies the requested dimensions and decides which remote
// calls to issue. Allowed combinations pass through as a single call; any
// rejected combination is split into disjoint dimension groups, never sent
// as-is.
func planBreakdowns(requested []string) breakdownPlan {
	set := normalizeDimensions(requested)
	if len(set) == 0 {
		return breakdownPlan{}
	}

	key := setKey(set)

	if _, ok := allowedCombinations[key]; ok {
		plan := breakdownPlan{}
		if set[dimCountry] {
			plan.Country = true
		}
		if set[dimRegion] {
			plan.Region = true
		}
		for _, dim := range []string{dimAge, dimGender} {
			if set[dim] {
				plan.AgeGenderDims = append(plan.AgeGenderDims, dim)
			}
		}
		return plan
	}

	// Rejected or unlisted combination: request each dimension group
	// independently instead. Age and gender collapse into the one combined
	// call the API does accept. Known-rejected sets are recorded for
	// diagnostics.
	plan := breakdownPlan{}
	if _, known := invalidCombinations[key]; known {
		plan.Skipped = []string{key}
	}
	if set[dimAge] || set[dimGender] {
		plan.AgeGenderDims = []string{dimAge, dimGender}
	}
	plan.Country = set[dimCountry]
	plan.Region = set[dimRegion]

	return plan
}

// normalizeDimensions lowercases, trims and deduplicates the input, dropping
// anything outside the known vocabulary.
func normalizeDimensions(requested []string) map[string]bool {
	set := make(map[string]bool, len(requested))
	for _, dim := range requested {
		dim = strings.ToLower(strings.TrimSpace(dim))
		switch dim {
		case dimAge, dimGender, dimCountry, dimRegion:
			set[dim] = true
		}
	}
	return set
}

func setKey(set map[string]bool) string {
	parts := make([]string, 0, len(set))
	for _, dim := range dimensionOrder {
		if set[dim] {
			parts = append(parts, dim)
		}
	}
	return strings.Join(parts, ",")
}
