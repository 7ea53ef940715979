package inventory

import (
	"regexp"
	"strconv"
	"strings"
)

// SearchCriteria is the structured form of a free-text query. Every field is
// optional: the zero value means "unconstrained", never "exclude".
type SearchCriteria struct {
	BudgetMax      int    // 0 when no budget phrase matched
	BodyStyle      string // canonical upper-case style, "" when unset
	Color          string // canonical color ("Rojo", ...), "" when unset
	FamilyFriendly bool
	Economical     bool
	Luxury         bool
}

// IsEmpty reports whether no criterion was recognised at all.
func (c SearchCriteria) IsEmpty() bool {
	return c == SearchCriteria{}
}

// budgetPatterns are tried in this exact order and the first match wins,
// even when a later pattern would extract a smaller number. Callers depend
// on that ordering (it is the documented tie-break, not an accident).
var budgetPatterns = []*regexp.Regexp{
	regexp.MustCompile(`bajo (\d+)`),
	regexp.MustCompile(`menos de (\d+)`),
	regexp.MustCompile(`hasta (\d+)`),
	regexp.MustCompile(`máximo (\d+)`),
	regexp.MustCompile(`presupuesto (\d+)`),
}

// keywordGroup maps one canonical value to the keywords that select it.
// Groups live in slices, not maps: declaration order is the tie-break when a
// query mentions synonyms of more than one canonical value.
type keywordGroup struct {
	Canonical string
	Keywords  []string
}

var bodyStyleGroups = []keywordGroup{
	{BodySUV, []string{"suv", "camioneta", "todoterreno"}},
	{BodySedan, []string{"sedan", "sedán"}},
	{BodyHatchback, []string{"hatchback", "compacto"}},
	{BodyTruck, []string{"truck", "pickup", "camión"}},
	{BodyConvertible, []string{"convertible", "descapotable"}},
	{BodyCoupe, []string{"coupe", "coupé", "deportivo"}},
}

var colorGroups = []keywordGroup{
	{"Rojo", []string{"rojo", "red"}},
	{"Azul", []string{"azul", "blue"}},
	{"Negro", []string{"negro", "black"}},
	{"Blanco", []string{"blanco", "white"}},
	{"Gris", []string{"gris", "gray", "grey"}},
	{"Plata", []string{"plata", "silver"}},
}

// Flag keyword sets are independent of each other; a query may set all three.
var (
	familyKeywords     = []string{"familia", "familiar", "seguro"}
	economicalKeywords = []string{"económico", "barato", "híbrido"}
	luxuryKeywords     = []string{"lujo", "premium", "luxury"}
)

// ExtractCriteria derives structured search criteria from a free-text query.
// It is pure and never fails: unrecognised input simply leaves fields unset.
func ExtractCriteria(query string) SearchCriteria {
	text := strings.ToLower(query)
	var c SearchCriteria

	for _, p := range budgetPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				c.BudgetMax = n
			}
			break
		}
	}

	c.BodyStyle = firstCanonical(text, bodyStyleGroups)
	c.Color = firstCanonical(text, colorGroups)

	c.FamilyFriendly = containsAny(text, familyKeywords)
	c.Economical = containsAny(text, economicalKeywords)
	c.Luxury = containsAny(text, luxuryKeywords)

	return c
}

func firstCanonical(text string, groups []keywordGroup) string {
	for _, g := range groups {
		if containsAny(text, g.Keywords) {
			return g.Canonical
		}
	}
	return ""
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
