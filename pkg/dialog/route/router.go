// Package route turns a free-form message into a bounded list of backend
// lookups. Routing never fails; an ambiguous message simply yields an empty
// or single-source call list.
package route

import (
	"strings"

	"metro-chatbot-be/pkg/dialog"
	"metro-chatbot-be/pkg/dialog/classify"
)

// Mode selects the routing strategy. The controller logic is written once;
// only the call-planning policy differs.
type Mode string

const (
	// ModeHeuristic scans the message for intent signals independent of the
	// classifier's category.
	ModeHeuristic Mode = "heuristic"
	// ModeCategory consults the category policy and issues one call per
	// declared source.
	ModeCategory Mode = "category"
)

// Per-call result ceilings. These bound the assembler's later capping and
// are part of the routing contract.
const (
	maxProducts    = 5
	maxTechnicians = 3
	maxSalesmen    = 2
	maxEmployees   = 3
	maxQueryTokens = 5
)

var greetingPrefixes = []string{
	"hi", "hello", "hey", "good morning", "good afternoon", "good evening",
	"greetings", "howdy", "what's up", "whats up", "sup",
}

var generalPhrases = []string{
	"how are you", "who are you", "what can you do", "help me",
	"what is this", "thank you", "thanks", "bye", "goodbye",
}

var knowledgePhrases = []string{
	"how does", "how do", "what is", "what are", "explain", "tell me about",
}

var problemKeywords = []string{
	"problem", "issue", "fault", "not working", "broken", "repair", "fix",
	"diagnose", "troubleshoot", "error", "failing", "stopped working",
}

var buyKeywords = []string{
	"buy", "purchase", "price", "cost", "quote", "how much", "want to buy",
	"looking for", "need", "want", "recommend", "suggest", "shopping for",
}

var productKeywords = []string{
	"solar", "generator", "inverter", "panel", "battery", "product",
	"equipment", "system",
}

// fillerWords are dropped when reducing a purchase message to a search query.
var fillerWords = map[string]bool{
	"i": true, "me": true, "my": true, "a": true, "an": true, "the": true,
	"want": true, "need": true, "to": true, "buy": true, "purchase": true,
	"get": true, "for": true, "some": true, "please": true, "would": true,
	"like": true, "looking": true, "am": true, "is": true, "are": true,
	"you": true, "do": true, "have": true, "can": true, "and": true,
	"show": true, "tell": true, "about": true, "your": true, "of": true,
	"what": true, "whats": true, "much": true, "how": true, "does": true,
	"in": true, "on": true, "with": true, "it": true, "recommend": true,
	"suggest": true,
}

// Router plans lookups for one turn.
type Router struct {
	mode Mode
}

func NewRouter(mode Mode) *Router {
	if mode != ModeCategory {
		mode = ModeHeuristic
	}
	return &Router{mode: mode}
}

func (r *Router) Mode() Mode {
	return r.mode
}

// Route returns the ordered lookups for a message. The category argument is
// consulted only in category-gated mode.
func (r *Router) Route(message, category string) []dialog.ToolCall {
	if r.mode == ModeCategory {
		return r.routeByCategory(message, category)
	}
	return r.routeByIntent(message)
}

func (r *Router) routeByCategory(message, category string) []dialog.ToolCall {
	policy := classify.PolicyFor(category)
	if !policy.FetchData {
		return nil
	}

	lower := strings.ToLower(message)
	domain := domainTag(lower)

	calls := make([]dialog.ToolCall, 0, len(policy.Sources))
	for _, src := range policy.Sources {
		switch src {
		case dialog.SourceProducts:
			calls = append(calls, dialog.ToolCall{
				Source: dialog.SourceProducts,
				Params: dialog.Params{
					Query:      ReduceQuery(message),
					Category:   domain,
					MaxResults: maxProducts,
				},
			})
		case dialog.SourceTechnicians:
			calls = append(calls, dialog.ToolCall{
				Source: dialog.SourceTechnicians,
				Params: dialog.Params{Specialty: domain, MaxResults: maxTechnicians},
			})
		case dialog.SourceSalesmen:
			calls = append(calls, dialog.ToolCall{
				Source: dialog.SourceSalesmen,
				Params: dialog.Params{Specialty: domain, MaxResults: maxSalesmen},
			})
		case dialog.SourceEmployees:
			calls = append(calls, dialog.ToolCall{
				Source: dialog.SourceEmployees,
				Params: dialog.Params{
					Department: departmentHint(lower),
					Position:   positionHint(lower),
					MaxResults: maxEmployees,
				},
			})
		}
	}
	return calls
}

func (r *Router) routeByIntent(message string) []dialog.ToolCall {
	lower := strings.ToLower(strings.TrimSpace(message))

	// Conversational turns never trigger a backend lookup.
	for _, p := range greetingPrefixes {
		if strings.HasPrefix(lower, p) {
			return nil
		}
	}
	for _, p := range generalPhrases {
		if strings.Contains(lower, p) {
			return nil
		}
	}
	if len(strings.Fields(lower)) <= 2 {
		return nil
	}

	hasProblem := containsAny(lower, problemKeywords)
	wantsToBuy := containsAny(lower, buyKeywords)
	mentionsProduct := containsAny(lower, productKeywords)

	// Knowledge questions without purchase language are answered from
	// general knowledge, no data needed.
	if containsAny(lower, knowledgePhrases) && !wantsToBuy {
		return nil
	}

	domain := domainTag(lower)

	var calls []dialog.ToolCall
	if hasProblem {
		calls = append(calls, dialog.ToolCall{
			Source: dialog.SourceTechnicians,
			Params: dialog.Params{Specialty: domain, MaxResults: maxTechnicians},
		})
	}

	switch {
	case wantsToBuy:
		calls = append(calls,
			dialog.ToolCall{
				Source: dialog.SourceProducts,
				Params: dialog.Params{
					Query:      ReduceQuery(message),
					Category:   domain,
					MaxResults: maxProducts,
				},
			},
			dialog.ToolCall{
				Source: dialog.SourceSalesmen,
				Params: dialog.Params{Specialty: domain, MaxResults: maxSalesmen},
			},
		)
	case mentionsProduct && !hasProblem:
		calls = append(calls, dialog.ToolCall{
			Source: dialog.SourceProducts,
			Params: dialog.Params{
				Query:      ReduceQuery(message),
				Category:   domain,
				MaxResults: 3,
			},
		})
	}

	return calls
}

// domainTag finds the first product domain mentioned, in fixed priority
// order (solar before generator before inverter before electrical).
func domainTag(lower string) string {
	switch {
	case strings.Contains(lower, "solar"):
		return "solar"
	case strings.Contains(lower, "generator"):
		return "generator"
	case strings.Contains(lower, "inverter"):
		return "inverter"
	case strings.Contains(lower, "electric"):
		return "electrical"
	}
	return ""
}

func departmentHint(lower string) string {
	for _, dept := range []string{"technical", "sales", "support", "management", "accounting", "logistics", "finance"} {
		if strings.Contains(lower, dept) {
			return dept
		}
	}
	return ""
}

func positionHint(lower string) string {
	for _, pos := range []string{"manager", "engineer", "supervisor", "director"} {
		if strings.Contains(lower, pos) {
			return pos
		}
	}
	return ""
}

// ReduceQuery strips filler words from a purchase message and keeps the
// salient product nouns and numeric/unit tokens, capped at five tokens.
// "I want to buy a 10kW solar system" becomes "10kw solar system".
func ReduceQuery(message string) string {
	var kept []string
	for _, word := range strings.Fields(strings.ToLower(message)) {
		word = strings.Trim(word, ".,!?;:'\"()")
		if word == "" || fillerWords[word] {
			continue
		}
		kept = append(kept, word)
		if len(kept) == maxQueryTokens {
			break
		}
	}
	if len(kept) == 0 {
		return strings.TrimSpace(strings.ToLower(message))
	}
	return strings.Join(kept, " ")
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
