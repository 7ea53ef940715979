package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []Vehicle {
	return []Vehicle{
		{VIN: "VIN001", Make: "Toyota", Model: "RAV4", Year: 2024, Price: 28000, Mileage: 12000, Color: "Rojo Metálico", BodyStyle: "SUV", FuelType: "Gasoline", Status: StatusAvailable},
		{VIN: "VIN002", Make: "Honda", Model: "Civic", Year: 2022, Price: 24000, Mileage: 30000, Color: "Azul", BodyStyle: "Sedan", FuelType: "Hybrid", Status: StatusAvailable},
		{VIN: "VIN003", Make: "Ford", Model: "F-150", Year: 2021, Price: 45000, Mileage: 60000, Color: "Negro", BodyStyle: "Truck", FuelType: "Gasoline", Status: StatusReserved},
		{VIN: "VIN004", Make: "Mazda", Model: "3", Year: 2019, Price: 18000, Mileage: 110000, Color: "Blanco", BodyStyle: "Hatchback", FuelType: "Gasoline", Status: StatusAvailable},
	}
}

func vins(vehicles []Vehicle) []string {
	out := make([]string, len(vehicles))
	for i, v := range vehicles {
		out[i] = v.VIN
	}
	return out
}

func TestFilterEmptyCriteriaKeepsAvailableSubset(t *testing.T) {
	got := Filter(testCatalog(), SearchCriteria{})

	// Only the availability rule applies; catalog order is preserved.
	assert.Equal(t, []string{"VIN001", "VIN002", "VIN004"}, vins(got))
}

func TestFilterBudgetCeiling(t *testing.T) {
	got := Filter(testCatalog(), SearchCriteria{BudgetMax: 24000})
	assert.Equal(t, []string{"VIN002", "VIN004"}, vins(got))
}

func TestFilterBodyStyleCaseInsensitive(t *testing.T) {
	// Catalog stores "Sedan", criteria carries canonical "SEDAN".
	got := Filter(testCatalog(), SearchCriteria{BodyStyle: BodySedan})
	require.Len(t, got, 1)
	assert.Equal(t, "VIN002", got[0].VIN)
}

func TestFilterColorSubstringMatch(t *testing.T) {
	// "Rojo Metálico" must match criterion "Rojo".
	got := Filter(testCatalog(), SearchCriteria{Color: "Rojo"})
	require.Len(t, got, 1)
	assert.Equal(t, "VIN001", got[0].VIN)
}

func TestFilterAvailabilityAlwaysEnforced(t *testing.T) {
	// VIN003 matches every explicit criterion but is Reserved.
	got := Filter(testCatalog(), SearchCriteria{BudgetMax: 50000, BodyStyle: BodyTruck, Color: "Negro"})
	assert.Empty(t, got)
}

func TestFilterCriteriaAreANDCombined(t *testing.T) {
	got := Filter(testCatalog(), SearchCriteria{BudgetMax: 30000, BodyStyle: BodySUV})
	require.Len(t, got, 1)
	assert.Equal(t, "VIN001", got[0].VIN)

	got = Filter(testCatalog(), SearchCriteria{BudgetMax: 20000, BodyStyle: BodySUV})
	assert.Empty(t, got)
}
