package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const refYear = 2026

func TestScoreFamilySUVScenario(t *testing.T) {
	v := Vehicle{
		VIN: "VIN100", Year: refYear, Price: 28000, Mileage: 5000,
		BodyStyle: "SUV", Status: StatusAvailable,
	}
	c := SearchCriteria{BudgetMax: 30000, BodyStyle: BodySUV, FamilyFriendly: true}

	// 10 available + 5 family/SUV + 2 recent year.
	assert.InDelta(t, 17.0, Score(v, c, refYear), 1e-9)
}

func TestScoreComponentsStack(t *testing.T) {
	v := Vehicle{
		VIN: "VIN101", Year: refYear - 1, Price: 25000, Mileage: 20000,
		BodyStyle: "Sedan", FuelType: "Hybrid", Features: "Advanced Safety Package",
		Status: StatusAvailable,
	}
	c := SearchCriteria{FamilyFriendly: true, Economical: true}

	// 10 + 5 (family/sedan) + 3 (safety) + 3 (price<30000) + 4 (hybrid) + 2 (recent).
	assert.InDelta(t, 27.0, Score(v, c, refYear), 1e-9)
}

func TestScoreHighMileagePenalty(t *testing.T) {
	v := Vehicle{VIN: "VIN102", Year: refYear - 10, Mileage: 150000, Status: StatusAvailable}
	assert.InDelta(t, 8.0, Score(v, SearchCriteria{}, refYear), 1e-9)
}

func TestScoreRecentYearBoundary(t *testing.T) {
	old := Vehicle{VIN: "VIN103", Year: refYear - 3, Status: StatusAvailable}
	edge := Vehicle{VIN: "VIN104", Year: refYear - 2, Status: StatusAvailable}

	assert.InDelta(t, 10.0, Score(old, SearchCriteria{}, refYear), 1e-9)
	assert.InDelta(t, 12.0, Score(edge, SearchCriteria{}, refYear), 1e-9)
}

func TestScoreMonotonicInMatchingFlags(t *testing.T) {
	v := Vehicle{
		VIN: "VIN105", Year: refYear, Price: 22000, Mileage: 10000,
		BodyStyle: "SUV", FuelType: "Hybrid", Features: "safety suite",
		Status: StatusAvailable,
	}

	base := Score(v, SearchCriteria{}, refYear)
	withFamily := Score(v, SearchCriteria{FamilyFriendly: true}, refYear)
	withBoth := Score(v, SearchCriteria{FamilyFriendly: true, Economical: true}, refYear)

	assert.GreaterOrEqual(t, withFamily, base)
	assert.GreaterOrEqual(t, withBoth, withFamily)
}

func TestRankOrdersByScoreDescending(t *testing.T) {
	catalog := []Vehicle{
		{VIN: "OLD", Year: refYear - 10, Mileage: 150000, Status: StatusAvailable},
		{VIN: "NEW", Year: refYear, Mileage: 1000, Status: StatusAvailable},
	}

	got := Rank(catalog, SearchCriteria{}, refYear, 10)
	assert.Equal(t, []string{"NEW", "OLD"}, vins(got))
}

func TestRankTiesKeepCatalogOrder(t *testing.T) {
	catalog := []Vehicle{
		{VIN: "A", Year: refYear, Status: StatusAvailable},
		{VIN: "B", Year: refYear, Status: StatusAvailable},
		{VIN: "C", Year: refYear, Status: StatusAvailable},
	}

	got := Rank(catalog, SearchCriteria{}, refYear, 10)
	assert.Equal(t, []string{"A", "B", "C"}, vins(got))
}

func TestRankTruncatesToMax(t *testing.T) {
	catalog := testCatalog()
	got := Rank(catalog, SearchCriteria{}, refYear, 2)
	assert.Len(t, got, 2)
}
