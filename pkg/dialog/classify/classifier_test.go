package classify

import (
	"math"
	"path/filepath"
	"testing"

	"metro-chatbot-be/pkg/dialog"
)

func TestValidatePolicies(t *testing.T) {
	if err := ValidatePolicies(); err != nil {
		t.Fatalf("ValidatePolicies() = %v, want nil", err)
	}
}

func TestPolicyFor(t *testing.T) {
	tests := []struct {
		category string
		fetch    bool
		sources  []dialog.Source
		maxRec   int
	}{
		{CategoryCommon, false, nil, 0},
		{CategoryProducts, true, []dialog.Source{dialog.SourceProducts}, 2},
		{CategorySalesman, true, []dialog.Source{dialog.SourceSalesmen, dialog.SourceProducts}, 2},
		{CategoryEmployees, true, []dialog.Source{dialog.SourceEmployees}, 2},
		{"no-such-category", false, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			p := PolicyFor(tt.category)
			if p.FetchData != tt.fetch {
				t.Errorf("FetchData = %v, want %v", p.FetchData, tt.fetch)
			}
			if p.MaxRecommendations != tt.maxRec {
				t.Errorf("MaxRecommendations = %d, want %d", p.MaxRecommendations, tt.maxRec)
			}
			if len(p.Sources) != len(tt.sources) {
				t.Fatalf("Sources = %v, want %v", p.Sources, tt.sources)
			}
			for i := range p.Sources {
				if p.Sources[i] != tt.sources[i] {
					t.Errorf("Sources[%d] = %s, want %s", i, p.Sources[i], tt.sources[i])
				}
			}
		})
	}
}

func TestKeywordClassifier(t *testing.T) {
	c := NewKeywordClassifier()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"greeting is common", "hello there", CategoryCommon},
		{"thanks is common", "thank you so much", CategoryCommon},
		{"price query is products", "what is the price of a solar panel", CategoryProducts},
		{"quote request is salesman", "can I get a quote and a discount", CategorySalesman},
		{"staff query is employees", "who is the manager of the department", CategoryEmployees},
		{"broken gear routes to sales support", "my thing is broken, please repair it", CategorySalesman},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, scores := c.Classify(tt.text)
			if got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s (scores %v)", tt.text, got, tt.want, scores)
			}

			sum := 0.0
			for _, s := range scores {
				if s < 0 {
					t.Errorf("negative confidence %v", scores)
				}
				sum += s
			}
			if math.Abs(sum-1) > 0.01 {
				t.Errorf("confidences sum to %.3f, want ~1", sum)
			}
		})
	}
}

func TestKeywordClassifierDeterministic(t *testing.T) {
	c := NewKeywordClassifier()
	first, _ := c.Classify("I need a repair technician for my generator")
	for i := 0; i < 10; i++ {
		got, _ := c.Classify("I need a repair technician for my generator")
		if got != first {
			t.Fatalf("run %d produced %s, first run produced %s", i, got, first)
		}
	}
}

func TestTrainedClassifier(t *testing.T) {
	texts, labels := TrainingData()
	model, err := Train(texts, labels)
	if err != nil {
		t.Fatalf("Train() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "model.json")
	if err := model.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	c, err := LoadTrained(path)
	if err != nil {
		t.Fatalf("LoadTrained() error = %v", err)
	}

	tests := []struct {
		text string
		want string
	}{
		{"Hello", CategoryCommon},
		{"What products do you have?", CategoryProducts},
		{"I need a quote for a generator", CategorySalesman},
		{"Who is the manager?", CategoryEmployees},
	}

	for _, tt := range tests {
		got, scores := c.Classify(tt.text)
		if got != tt.want {
			t.Errorf("Classify(%q) = %s, want %s (scores %v)", tt.text, got, tt.want, scores)
		}
		sum := 0.0
		for _, s := range scores {
			sum += s
		}
		if math.Abs(sum-1) > 0.01 {
			t.Errorf("Classify(%q) confidences sum to %.3f, want ~1", tt.text, sum)
		}
	}
}

func TestLoadOrFallback(t *testing.T) {
	c, err := LoadOrFallback(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected load error for missing model file")
	}
	if _, ok := c.(*KeywordClassifier); !ok {
		t.Fatalf("fallback = %T, want *KeywordClassifier", c)
	}

	got, _ := c.Classify("hello")
	if got != CategoryCommon {
		t.Errorf("fallback Classify(hello) = %s, want %s", got, CategoryCommon)
	}
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("I want to buy a Solar-Panel!")
	want := map[string]bool{"want": true, "buy": true, "solar": true, "panel": true, "solar panel": true, "buy solar": true, "want buy": true}
	for _, tok := range tokens {
		if !want[tok] {
			t.Errorf("unexpected token %q in %v", tok, tokens)
		}
	}
	if len(tokens) != len(want) {
		t.Errorf("Tokenize produced %d tokens %v, want %d", len(tokens), tokens, len(want))
	}
}
