package expertise

import (
	"fmt"
	"sort"
	"strings"
)

// BrandProfile is the canned knowledge the dealership keeps per brand.
type BrandProfile struct {
	Strengths       []string
	Weaknesses      []string
	Reliability     float64 // 0..10
	FuelEconomy     string
	MaintenanceCost string
	Specialty       string
}

var brandData = map[string]BrandProfile{
	"audi": {
		Strengths:       []string{"quattro tech", "premium interior", "advanced electronics"},
		Weaknesses:      []string{"high maintenance", "rapid depreciation"},
		Reliability:     6.5,
		FuelEconomy:     "average-poor",
		MaintenanceCost: "very high",
		Specialty:       "luxury performance",
	},
	"toyota": {
		Strengths:       []string{"legendary reliability", "low maintenance", "hybrid leadership"},
		Weaknesses:      []string{"conservative design", "road noise"},
		Reliability:     9.2,
		FuelEconomy:     "excellent",
		MaintenanceCost: "very low",
		Specialty:       "practical reliability",
	},
	"bmw": {
		Strengths:       []string{"driving dynamics", "engine tech", "luxury features"},
		Weaknesses:      []string{"expensive repairs", "complex electronics"},
		Reliability:     6.8,
		FuelEconomy:     "good",
		MaintenanceCost: "high",
		Specialty:       "ultimate driving",
	},
	"honda": {
		Strengths:       []string{"reliability", "efficient engines", "practical design"},
		Weaknesses:      []string{"cvt transmissions", "road noise"},
		Reliability:     8.7,
		FuelEconomy:     "excellent",
		MaintenanceCost: "low",
		Specialty:       "practical engineering",
	},
	"mercedes": {
		Strengths:       []string{"luxury comfort", "safety tech", "build quality"},
		Weaknesses:      []string{"very expensive maintenance", "depreciation"},
		Reliability:     6.2,
		FuelEconomy:     "average",
		MaintenanceCost: "very high",
		Specialty:       "luxury comfort",
	},
	"mazda": {
		Strengths:       []string{"driving feel", "skyactiv engines", "design"},
		Weaknesses:      []string{"road noise", "rear seat space"},
		Reliability:     8.1,
		FuelEconomy:     "very good",
		MaintenanceCost: "low",
		Specialty:       "driving pleasure",
	},
}

// Comparison weighting and the ordinal score tables behind it.
const (
	weightReliability = 0.4
	weightFuelEconomy = 0.3
	weightMaintenance = 0.3
)

var fuelScores = map[string]float64{
	"excellent": 10, "very good": 8, "good": 6, "average": 4, "poor": 2, "average-poor": 3,
}

var costScores = map[string]float64{
	"very low": 10, "low": 8, "medium": 6, "high": 4, "very high": 2,
}

var professionalRecommendations = map[string]string{
	"toyota":   "Para máxima confiabilidad y economía operativa a largo plazo",
	"audi":     "Si priorizas tecnología avanzada y prestige, acepta costos superiores",
	"bmw":      "Para experiencia de manejo superior, budget premium de mantenimiento",
	"honda":    "Equilibrio óptimo entre confiabilidad, eficiencia y valor",
	"mercedes": "Para máximo lujo y confort, presupuesto premium esencial",
	"mazda":    "Para conductor entusiasta que busca valor y placer de manejo",
}

// Brands returns the known brand names, sorted.
func Brands() []string {
	out := make([]string, 0, len(brandData))
	for name := range brandData {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Lookup returns the profile for a brand, case-insensitively.
func Lookup(brand string) (BrandProfile, bool) {
	p, ok := brandData[strings.ToLower(brand)]
	return p, ok
}

// overallScore collapses a profile into one weighted number. Unknown ordinal
// labels fall back to middling scores rather than failing.
func overallScore(p BrandProfile) float64 {
	fuel, ok := fuelScores[p.FuelEconomy]
	if !ok {
		fuel = 4
	}
	cost, ok := costScores[p.MaintenanceCost]
	if !ok {
		cost = 6
	}
	return p.Reliability*weightReliability + fuel*weightFuelEconomy + cost*weightMaintenance
}

// CompareBrands renders a Spanish comparison of two brands for the given
// focus ("reliability", "fuel_economy" or "overall"). Unknown focus values
// fall back to the overall comparison.
func CompareBrands(brand1, brand2, focus string) string {
	b1 := strings.ToLower(brand1)
	b2 := strings.ToLower(brand2)

	p1, ok1 := brandData[b1]
	p2, ok2 := brandData[b2]
	if !ok1 || !ok2 {
		return fmt.Sprintf("Datos insuficientes para comparar %s vs %s", title(brand1), title(brand2))
	}

	s1 := overallScore(p1)
	s2 := overallScore(p2)
	winner := b1
	if s2 > s1 {
		winner = b2
	}
	diff := s1 - s2
	if diff < 0 {
		diff = -diff
	}

	switch focus {
	case "reliability":
		leader := b1
		if p2.Reliability > p1.Reliability {
			leader = b2
		}
		return fmt.Sprintf(`ANALISIS DE CONFIABILIDAD:
• %s: %.1f/10 - %s
• %s: %.1f/10 - %s
GANADOR: %s es más confiable`,
			title(b1), p1.Reliability, p1.Specialty,
			title(b2), p2.Reliability, p2.Specialty,
			title(leader))

	case "fuel_economy":
		leader := b1
		if fuelScores[p2.FuelEconomy] > fuelScores[p1.FuelEconomy] {
			leader = b2
		}
		return fmt.Sprintf(`CONSUMO DE COMBUSTIBLE:
• %s: %s - %s
• %s: %s - %s
GANADOR: %s es más eficiente`,
			title(b1), p1.FuelEconomy, strings.Join(p1.Strengths[:2], ", "),
			title(b2), p2.FuelEconomy, strings.Join(p2.Strengths[:2], ", "),
			title(leader))
	}

	margin := "(ventaja ligera)"
	if diff > 2 {
		margin = "(ventaja significativa)"
	}
	return fmt.Sprintf(`COMPARATIVA TECNICA ESPECIALIZADA:

PUNTUACION GENERAL:
• %s: %.1f/10
• %s: %.1f/10

GANADOR: %s %s

FORTALEZAS:
• %s: %s
• %s: %s

DEBILIDADES:
• %s: %s
• %s: %s

COSTOS:
• Mantenimiento %s: %s
• Mantenimiento %s: %s

RECOMENDACION PROFESIONAL:
%s`,
		title(b1), s1, title(b2), s2,
		title(winner), margin,
		title(b1), strings.Join(p1.Strengths, ", "),
		title(b2), strings.Join(p2.Strengths, ", "),
		title(b1), strings.Join(p1.Weaknesses, ", "),
		title(b2), strings.Join(p2.Weaknesses, ", "),
		title(b1), p1.MaintenanceCost,
		title(b2), p2.MaintenanceCost,
		recommendationFor(winner))
}

// AnalyzeBrand renders single-brand expertise for the given aspect
// ("general" or "technical").
func AnalyzeBrand(brand, aspect string) string {
	key := strings.ToLower(brand)
	p, ok := brandData[key]
	if !ok {
		return fmt.Sprintf("Sin datos especializados para %s", title(brand))
	}

	if aspect == "technical" {
		core := "N/A"
		if len(p.Strengths) > 0 {
			core = p.Strengths[0]
		}
		return fmt.Sprintf(`ANALISIS TECNICO PROFUNDO - %s:

Como especialista automotriz, %s destaca por:
• Core Strengths: %s
• Technical Focus: %s
• Long-term Reliability: %.1f/10 rating
• Operating Costs: %s maintenance tier`,
			strings.ToUpper(key), title(key), core, p.Specialty, p.Reliability, p.MaintenanceCost)
	}

	return fmt.Sprintf(`ANALISIS TECNICO - %s:

Puntuacion Confiabilidad: %.1f/10
Eficiencia Combustible: %s
Costo Mantenimiento: %s
Especialidad: %s

Fortalezas Clave: %s
Aspectos a Considerar: %s`,
		strings.ToUpper(key), p.Reliability, title(p.FuelEconomy), title(p.MaintenanceCost),
		title(p.Specialty), strings.Join(p.Strengths, " | "), strings.Join(p.Weaknesses, " | "))
}

func recommendationFor(brand string) string {
	if rec, ok := professionalRecommendations[brand]; ok {
		return rec
	}
	return fmt.Sprintf("Considera las fortalezas específicas de %s", title(brand))
}

// title upper-cases the first letter of each space-separated word; good
// enough for brand names and ordinal labels.
func title(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
