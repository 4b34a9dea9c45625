package route

import (
	"testing"

	"metro-chatbot-be/pkg/dialog"
	"metro-chatbot-be/pkg/dialog/classify"
)

func sources(calls []dialog.ToolCall) []dialog.Source {
	out := make([]dialog.Source, len(calls))
	for i, c := range calls {
		out[i] = c.Source
	}
	return out
}

func hasSource(calls []dialog.ToolCall, src dialog.Source) bool {
	for _, c := range calls {
		if c.Source == src {
			return true
		}
	}
	return false
}

func TestRouteConversationalTurnsIssueNoCalls(t *testing.T) {
	r := NewRouter(ModeHeuristic)

	for _, message := range []string{
		"hi",
		"hello there, friend",
		"thanks",
		"thank you very much for everything",
		"what is solar?",
		"how does an inverter work exactly?",
		"ok",
	} {
		if calls := r.Route(message, ""); len(calls) != 0 {
			t.Errorf("Route(%q) = %v, want no calls", message, sources(calls))
		}
	}
}

func TestRouteProblemIntent(t *testing.T) {
	r := NewRouter(ModeHeuristic)

	calls := r.Route("my generator is broken", "")
	if !hasSource(calls, dialog.SourceTechnicians) {
		t.Fatalf("Route() = %v, want a technicians call", sources(calls))
	}
	for _, c := range calls {
		if c.Source == dialog.SourceTechnicians {
			if c.Params.Specialty != "generator" {
				t.Errorf("specialty = %q, want generator", c.Params.Specialty)
			}
			if c.Params.MaxResults != 3 {
				t.Errorf("max results = %d, want 3", c.Params.MaxResults)
			}
		}
	}
}

func TestRoutePurchaseIntent(t *testing.T) {
	r := NewRouter(ModeHeuristic)

	calls := r.Route("I want to buy a 10kW solar system", "")
	if !hasSource(calls, dialog.SourceProducts) || !hasSource(calls, dialog.SourceSalesmen) {
		t.Fatalf("Route() = %v, want products and salesmen calls", sources(calls))
	}
	for _, c := range calls {
		switch c.Source {
		case dialog.SourceProducts:
			if c.Params.Category != "solar" {
				t.Errorf("product category = %q, want solar", c.Params.Category)
			}
			if c.Params.MaxResults != 5 {
				t.Errorf("product max results = %d, want 5", c.Params.MaxResults)
			}
			if c.Params.Query != "10kw solar system" {
				t.Errorf("reduced query = %q, want %q", c.Params.Query, "10kw solar system")
			}
		case dialog.SourceSalesmen:
			if c.Params.MaxResults != 2 {
				t.Errorf("salesmen max results = %d, want 2", c.Params.MaxResults)
			}
		}
	}
}

func TestRouteProductMentionOnly(t *testing.T) {
	r := NewRouter(ModeHeuristic)

	calls := r.Route("are any solar panels currently in stock", "")
	if len(calls) != 1 || calls[0].Source != dialog.SourceProducts {
		t.Fatalf("Route() = %v, want a single products call", sources(calls))
	}
	if calls[0].Params.MaxResults != 3 {
		t.Errorf("max results = %d, want 3", calls[0].Params.MaxResults)
	}
}

func TestRouteDomainPriority(t *testing.T) {
	r := NewRouter(ModeHeuristic)

	calls := r.Route("my solar generator inverter setup is broken", "")
	if len(calls) == 0 {
		t.Fatal("expected at least one call")
	}
	if got := calls[0].Params.Specialty; got != "solar" {
		t.Errorf("specialty = %q, want solar (solar outranks generator and inverter)", got)
	}
}

func TestRouteCategoryGated(t *testing.T) {
	r := NewRouter(ModeCategory)

	if calls := r.Route("hello over there", classify.CategoryCommon); len(calls) != 0 {
		t.Errorf("common category routed %v, want no calls", sources(calls))
	}

	calls := r.Route("quote for a generator please", classify.CategorySalesman)
	want := []dialog.Source{dialog.SourceSalesmen, dialog.SourceProducts}
	got := sources(calls)
	if len(got) != len(want) {
		t.Fatalf("Route() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestReduceQuery(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"I want to buy a 10kW solar system", "10kw solar system"},
		{"show me your solar panels, please!", "solar panels"},
		{"I need a quote for 20 solar panels", "quote 20 solar panels"},
		{"buy", "buy"},
	}

	for _, tt := range tests {
		if got := ReduceQuery(tt.input); got != tt.want {
			t.Errorf("ReduceQuery(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
