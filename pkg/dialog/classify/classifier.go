// Package classify assigns a conversation turn to one of a closed set of
// categories. Two interchangeable implementations exist: a trained
// bag-of-words model loaded from disk, and a deterministic keyword fallback
// used whenever no trained state is available. Callers depend only on the
// (category, confidence map) contract, never on which path produced it.
package classify

import "metro-chatbot-be/pkg/dialog"

const (
	CategoryCommon    = "common"
	CategoryEmployees = "employees"
	CategoryProducts  = "products"
	CategorySalesman  = "salesman"
)

// Categories lists every known category in model order.
var Categories = []string{CategoryCommon, CategoryEmployees, CategoryProducts, CategorySalesman}

// Classifier predicts a category and a probability-like confidence weight
// for every known category (weights sum to ~1).
type Classifier interface {
	Classify(text string) (string, map[string]float64)
}

// Policy bounds what a category is allowed to fetch and surface.
type Policy struct {
	FetchData          bool
	Sources            []dialog.Source
	MaxRecommendations int
}

// policies is static configuration, loaded once and read-only thereafter.
var policies = map[string]Policy{
	CategoryCommon: {
		FetchData:          false,
		Sources:            nil,
		MaxRecommendations: 0,
	},
	CategoryProducts: {
		FetchData:          true,
		Sources:            []dialog.Source{dialog.SourceProducts},
		MaxRecommendations: 2,
	},
	CategorySalesman: {
		FetchData:          true,
		Sources:            []dialog.Source{dialog.SourceSalesmen, dialog.SourceProducts},
		MaxRecommendations: 2,
	},
	CategoryEmployees: {
		FetchData:          true,
		Sources:            []dialog.Source{dialog.SourceEmployees},
		MaxRecommendations: 2,
	},
}

// PolicyFor returns the policy bound to a category. Unknown categories get
// the conservative "common" policy.
func PolicyFor(category string) Policy {
	if p, ok := policies[category]; ok {
		return p
	}
	return policies[CategoryCommon]
}

// ValidatePolicies checks every configured source name against the closed
// source enumeration. Called once at startup; a failure here is a
// configuration error, not a runtime condition.
func ValidatePolicies() error {
	known := map[dialog.Source]bool{}
	for _, s := range dialog.KnownSources {
		known[s] = true
	}
	for category, policy := range policies {
		for _, src := range policy.Sources {
			if !known[src] {
				return &UnknownSourceError{Category: category, Source: string(src)}
			}
		}
	}
	return nil
}

// UnknownSourceError reports a policy referencing a source outside the
// closed enumeration.
type UnknownSourceError struct {
	Category string
	Source   string
}

func (e *UnknownSourceError) Error() string {
	return "classify: category " + e.Category + " references unknown source " + e.Source
}
