package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeInputThousandsSuffixes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"mil suffix", "Busco un SUV para mi familia, máximo 40 mil pesos", "hasta $40,000"},
		{"k suffix", "Quiero un sedan seguro hasta 50k", "hasta $50,000"},
		{"plain amount", "hasta 35000 estaría bien", "hasta $35,000"},
		{"presupuesto phrase", "Busco pickup para carretera, presupuesto 60 mil", "hasta $60,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AnalyzeInput(tt.input).BudgetRange)
		})
	}
}

func TestAnalyzeInputPreferencesAndNeeds(t *testing.T) {
	a := AnalyzeInput("Necesito algo económico para trabajar en la ciudad")

	assert.Empty(t, a.Preferences)
	assert.Equal(t, []string{"uso urbano", "eficiencia combustible"}, a.Needs)
}

func TestAnalyzeInputCollectsAllVehicleMentions(t *testing.T) {
	a := AnalyzeInput("no sé si un suv, una camioneta o un deportivo")
	assert.Equal(t, []string{"suv", "camioneta", "deportivo"}, a.Preferences)
}

func TestAnalyzeInputEmpty(t *testing.T) {
	assert.True(t, AnalyzeInput("hola, buenos días").IsEmpty())
}

func TestProfileApplyMergesWithoutDuplicates(t *testing.T) {
	p := NewProfile()
	p.Apply(AnalyzeInput("busco un suv para la familia"))
	p.Apply(AnalyzeInput("sí, un suv seguro para la familia"))

	assert.Equal(t, []string{"suv"}, p.Interests)
	assert.Equal(t, []string{"uso familiar", "prioridad en seguridad"}, p.Needs)
	assert.True(t, p.SafetyPriority)
}

func TestProfileStageLifecycle(t *testing.T) {
	p := NewProfile()
	require.Equal(t, StageGreeting, p.Stage)

	prev := p.UpdateStage(StageDiscovery)
	assert.Equal(t, StageGreeting, prev)
	assert.Equal(t, StageDiscovery, p.Stage)
	assert.Equal(t, 30, p.Stage.Progress())
}

func TestParseStage(t *testing.T) {
	s, ok := ParseStage("closing")
	require.True(t, ok)
	assert.Equal(t, StageClosing, s)

	_, ok = ParseStage("bargaining")
	assert.False(t, ok)
}

func TestStageMetadataCoversAllStages(t *testing.T) {
	for _, s := range Stages {
		assert.NotEmpty(t, s.Description(), string(s))
		assert.NotZero(t, s.Progress(), string(s))
		assert.NotEmpty(t, s.NextSteps(), string(s))
	}
}
