package classify

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
)

// Model is the serialized form of a trained multinomial naive Bayes
// classifier over unigram and bigram tokens. It is written by the trainer
// and loaded read-only at startup.
type Model struct {
	Categories  []string                      `json:"categories"`
	Priors      map[string]float64            `json:"priors"`
	TokenLogP   map[string]map[string]float64 `json:"token_log_p"`
	UnknownLogP map[string]float64            `json:"unknown_log_p"`
}

// TrainedClassifier scores a turn against a Model. It is safe for
// concurrent use; the model is never mutated after load.
type TrainedClassifier struct {
	model *Model
}

// LoadTrained reads a model file from disk. The caller decides what to do
// when the file is absent; LoadOrFallback is the usual entry point.
func LoadTrained(path string) (*TrainedClassifier, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read classifier model: %w", err)
	}
	var model Model
	if err := json.Unmarshal(raw, &model); err != nil {
		return nil, fmt.Errorf("decode classifier model: %w", err)
	}
	if len(model.Categories) == 0 || len(model.Priors) == 0 {
		return nil, fmt.Errorf("classifier model %s is empty", path)
	}
	return &TrainedClassifier{model: &model}, nil
}

// LoadOrFallback returns the trained classifier when the model file loads,
// otherwise the keyword fallback. A missing or corrupt model is a degraded
// mode, never a startup failure.
func LoadOrFallback(path string) (Classifier, error) {
	trained, err := LoadTrained(path)
	if err != nil {
		return NewKeywordClassifier(), err
	}
	return trained, nil
}

func (c *TrainedClassifier) Classify(text string) (string, map[string]float64) {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return CategoryCommon, uniformScores(c.model.Categories)
	}

	logScores := make(map[string]float64, len(c.model.Categories))
	for _, category := range c.model.Categories {
		score := math.Log(c.model.Priors[category])
		tokenP := c.model.TokenLogP[category]
		unknown := c.model.UnknownLogP[category]
		for _, token := range tokens {
			if lp, ok := tokenP[token]; ok {
				score += lp
			} else {
				score += unknown
			}
		}
		logScores[category] = score
	}

	return softmax(logScores)
}

// Train fits a multinomial naive Bayes model with Laplace smoothing over the
// labelled examples and returns it ready for serialization.
func Train(texts, labels []string) (*Model, error) {
	if len(texts) == 0 || len(texts) != len(labels) {
		return nil, fmt.Errorf("training data mismatch: %d texts, %d labels", len(texts), len(labels))
	}

	counts := map[string]map[string]int{}
	totals := map[string]int{}
	docs := map[string]int{}
	vocab := map[string]bool{}

	for i, text := range texts {
		label := labels[i]
		if counts[label] == nil {
			counts[label] = map[string]int{}
		}
		docs[label]++
		for _, token := range Tokenize(text) {
			counts[label][token]++
			totals[label]++
			vocab[token] = true
		}
	}

	categories := make([]string, 0, len(docs))
	for label := range docs {
		categories = append(categories, label)
	}
	sort.Strings(categories)

	model := &Model{
		Categories:  categories,
		Priors:      map[string]float64{},
		TokenLogP:   map[string]map[string]float64{},
		UnknownLogP: map[string]float64{},
	}

	vocabSize := float64(len(vocab))
	for _, category := range categories {
		model.Priors[category] = float64(docs[category]) / float64(len(texts))
		denom := float64(totals[category]) + vocabSize
		tokenP := make(map[string]float64, len(counts[category]))
		for token, n := range counts[category] {
			tokenP[token] = math.Log(float64(n+1) / denom)
		}
		model.TokenLogP[category] = tokenP
		model.UnknownLogP[category] = math.Log(1 / denom)
	}

	return model, nil
}

// Save writes the model as indented JSON.
func (m *Model) Save(path string) error {
	raw, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode classifier model: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write classifier model: %w", err)
	}
	return nil
}

var stopWords = map[string]bool{
	"a": true, "an": true, "the": true, "is": true, "are": true,
	"do": true, "does": true, "can": true, "you": true, "i": true,
	"me": true, "my": true, "your": true, "for": true, "to": true,
	"of": true, "in": true, "on": true, "with": true, "and": true,
	"or": true, "what": true, "who": true, "how": true, "from": true,
}

// Tokenize lowercases, strips punctuation, drops stop words, and emits
// unigrams plus adjacent bigrams.
func Tokenize(text string) []string {
	var sb strings.Builder
	for _, r := range strings.ToLower(text) {
		switch {
		case 'a' <= r && r <= 'z', '0' <= r && r <= '9':
			sb.WriteRune(r)
		default:
			sb.WriteRune(' ')
		}
	}

	var words []string
	for _, w := range strings.Fields(sb.String()) {
		if !stopWords[w] {
			words = append(words, w)
		}
	}

	tokens := make([]string, 0, len(words)*2)
	tokens = append(tokens, words...)
	for i := 0; i+1 < len(words); i++ {
		tokens = append(tokens, words[i]+" "+words[i+1])
	}
	return tokens
}

func softmax(logScores map[string]float64) (string, map[string]float64) {
	best := ""
	maxLog := math.Inf(-1)
	for category, score := range logScores {
		if score > maxLog || (score == maxLog && category < best) {
			best = category
			maxLog = score
		}
	}

	sum := 0.0
	exp := make(map[string]float64, len(logScores))
	for category, score := range logScores {
		e := math.Exp(score - maxLog)
		exp[category] = e
		sum += e
	}
	for category := range exp {
		exp[category] /= sum
	}
	return best, exp
}

func uniformScores(categories []string) map[string]float64 {
	scores := make(map[string]float64, len(categories))
	for _, c := range categories {
		scores[c] = 1 / float64(len(categories))
	}
	return scores
}
