package classify

import "strings"

var (
	productKeywords = []string{
		"buy", "purchase", "price", "cost", "product", "solar",
		"generator", "inverter", "panel", "battery", "equipment",
		"specification", "specs", "model", "warranty",
	}

	salesmanKeywords = []string{
		"sales", "salesman", "representative", "agent",
		"quote", "deal", "discount", "order",
	}

	employeeKeywords = []string{
		"employee", "staff", "department", "position",
		"manager", "contact", "office", "team",
	}

	technicianKeywords = []string{
		"technician", "repair", "fix", "problem", "issue",
		"fault", "broken", "not working", "maintenance",
		"install", "installation", "service",
	}
)

// KeywordClassifier is the deterministic fallback used when no trained model
// state is available. Scoring is fixed keyword counting; identical inputs
// always produce identical outputs.
type KeywordClassifier struct{}

func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{}
}

func (c *KeywordClassifier) Classify(text string) (string, map[string]float64) {
	lower := strings.ToLower(text)

	productScore := countMatches(lower, productKeywords)
	salesmanScore := countMatches(lower, salesmanKeywords)
	employeeScore := countMatches(lower, employeeKeywords)

	// Technical-support phrasing routes to sales support staff.
	if countMatches(lower, technicianKeywords) > 0 {
		salesmanScore += 2
	}

	scores := map[string]float64{
		CategoryProducts:  float64(productScore),
		CategorySalesman:  float64(salesmanScore),
		CategoryEmployees: float64(employeeScore),
	}

	maxScore := 0.0
	for _, s := range scores {
		if s > maxScore {
			maxScore = s
		}
	}

	if maxScore == 0 {
		return CategoryCommon, map[string]float64{
			CategoryCommon:    0.7,
			CategoryEmployees: 0.1,
			CategoryProducts:  0.1,
			CategorySalesman:  0.1,
		}
	}

	total := 0.1
	for _, s := range scores {
		total += s
	}

	confidences := make(map[string]float64, len(Categories))
	for category, score := range scores {
		confidences[category] = score / total
	}
	confidences[CategoryCommon] = 0.1 / total

	predicted := CategoryProducts
	best := scores[CategoryProducts]
	// Stable tie-breaking in model order.
	for _, category := range []string{CategorySalesman, CategoryEmployees} {
		if scores[category] > best {
			predicted = category
			best = scores[category]
		}
	}

	return predicted, confidences
}

func countMatches(text string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			n++
		}
	}
	return n
}
