package customer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Analysis is what one customer utterance reveals: a budget phrase, vehicle
// type preferences and mapped needs. Empty fields mean the utterance said
// nothing about them.
type Analysis struct {
	BudgetRange string   `json:"budget_range,omitempty"`
	Preferences []string `json:"preferences,omitempty"`
	Needs       []string `json:"needs,omitempty"`
}

// IsEmpty reports whether nothing was recognised.
func (a Analysis) IsEmpty() bool {
	return a.BudgetRange == "" && len(a.Preferences) == 0 && len(a.Needs) == 0
}

// Budget phrases tried in priority order; shorthand forms ("40 mil", "50k")
// come before explicit cue phrases.
var budgetPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\s*mil`),
	regexp.MustCompile(`(\d+)\s*k`),
	regexp.MustCompile(`hasta\s*(\d+)`),
	regexp.MustCompile(`máximo\s*(\d+)`),
	regexp.MustCompile(`presupuesto.*(\d+)`),
}

var vehicleKeywords = []string{
	"suv", "sedan", "pickup", "camioneta", "deportivo", "compacto", "hatchback",
}

// needMappings translate a mentioned keyword into the need it signals.
// Ordered so repeated analyses produce stable output.
var needMappings = []struct {
	Keyword string
	Need    string
}{
	{"familia", "uso familiar"},
	{"trabajo", "uso comercial"},
	{"ciudad", "uso urbano"},
	{"carretera", "uso en carretera"},
	{"seguro", "prioridad en seguridad"},
	{"económico", "eficiencia combustible"},
}

// AnalyzeInput extracts profile hints from one customer message. Numbers
// followed by "mil"/"k" anywhere in the text are read as thousands, so
// "máximo 40 mil" becomes a 40,000 ceiling.
func AnalyzeInput(input string) Analysis {
	text := strings.ToLower(input)
	var a Analysis

	thousands := strings.Contains(text, "mil") || strings.Contains(text, "k")
	for _, p := range budgetPatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if thousands {
			n *= 1000
		}
		a.BudgetRange = fmt.Sprintf("hasta $%s", humanize.Comma(int64(n)))
		break
	}

	for _, kw := range vehicleKeywords {
		if strings.Contains(text, kw) {
			a.Preferences = append(a.Preferences, kw)
		}
	}

	for _, nm := range needMappings {
		if strings.Contains(text, nm.Keyword) {
			a.Needs = append(a.Needs, nm.Need)
		}
	}

	return a
}

// mergeUnique appends updates to current, dropping duplicates while keeping
// first-seen order.
func mergeUnique(current, updates []string) []string {
	seen := make(map[string]struct{}, len(current)+len(updates))
	out := make([]string, 0, len(current)+len(updates))
	for _, v := range append(append([]string{}, current...), updates...) {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
