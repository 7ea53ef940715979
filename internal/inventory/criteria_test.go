package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCriteriaEmptyQuery(t *testing.T) {
	assert.True(t, ExtractCriteria("").IsEmpty())
	assert.True(t, ExtractCriteria("quiero algo bonito").IsEmpty())
}

func TestExtractCriteriaFamilySUVWithBudget(t *testing.T) {
	c := ExtractCriteria("SUV para familia hasta 30000")

	assert.Equal(t, 30000, c.BudgetMax)
	assert.Equal(t, BodySUV, c.BodyStyle)
	assert.True(t, c.FamilyFriendly)
	assert.False(t, c.Economical)
	assert.False(t, c.Luxury)
}

func TestExtractCriteriaBudgetPatternPriority(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  int
	}{
		{
			name:  "hasta beats maximo regardless of textual order",
			query: "máximo 50000 pero hasta 40000 estaría bien",
			want:  40000,
		},
		{
			name:  "bajo beats hasta",
			query: "hasta 40000, idealmente bajo 20000",
			want:  20000,
		},
		{
			name:  "presupuesto is the last resort",
			query: "mi presupuesto 35000",
			want:  35000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractCriteria(tt.query).BudgetMax)
		})
	}
}

func TestExtractCriteriaBodyStyleDeclarationOrderWins(t *testing.T) {
	// "deportivo" selects COUPE and "camioneta" selects SUV; SUV is declared
	// first so it wins even though "deportivo" appears first in the text.
	c := ExtractCriteria("un deportivo o una camioneta")
	assert.Equal(t, BodySUV, c.BodyStyle)
}

func TestExtractCriteriaColorDeclarationOrderWins(t *testing.T) {
	c := ExtractCriteria("azul o rojo, no sé todavía")
	assert.Equal(t, "Rojo", c.Color)

	c = ExtractCriteria("sedan silver")
	assert.Equal(t, "Plata", c.Color)
}

func TestExtractCriteriaFlagsAreIndependent(t *testing.T) {
	c := ExtractCriteria("algo económico y de lujo para la familia")

	assert.True(t, c.FamilyFriendly)
	assert.True(t, c.Economical)
	assert.True(t, c.Luxury)
}

func TestExtractCriteriaHybridImpliesEconomical(t *testing.T) {
	c := ExtractCriteria("vehículo híbrido")
	assert.True(t, c.Economical)
	assert.False(t, c.FamilyFriendly)
}

func TestExtractCriteriaMixedLanguageKeywords(t *testing.T) {
	c := ExtractCriteria("pickup black con luxury package")

	assert.Equal(t, BodyTruck, c.BodyStyle)
	assert.Equal(t, "Negro", c.Color)
	assert.True(t, c.Luxury)
}
