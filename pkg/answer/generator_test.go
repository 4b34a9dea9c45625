package answer

import (
	"context"
	"io"
	"log"
	"strings"
	"testing"

	"metro-chatbot-be/pkg/dialog"
	"metro-chatbot-be/pkg/llm"
)

type captureProvider struct {
	lastHistory []llm.Message
	reply       string
}

func (p *captureProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	p.lastHistory = history
	return p.reply, nil
}

func (p *captureProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

func TestGenerateAnswerGroundsFetchedData(t *testing.T) {
	provider := &captureProvider{reply: "The SolarMax 10kW fits your needs."}
	g := NewGenerator(provider, log.New(io.Discard, "", 0))

	fetched := dialog.FetchedResult{
		dialog.SourceProducts: {{"name": "SolarMax 10kW", "price": "4999"}},
	}
	reply, err := g.GenerateAnswer(context.Background(), "I want a 10kW system", fetched, nil, nil)
	if err != nil {
		t.Fatalf("GenerateAnswer() error = %v", err)
	}
	if reply != "The SolarMax 10kW fits your needs." {
		t.Errorf("reply = %q", reply)
	}

	final := provider.lastHistory[len(provider.lastHistory)-1].Content
	if !strings.Contains(final, "SolarMax 10kW") {
		t.Error("grounding prompt does not embed fetched records")
	}
	if !strings.Contains(final, "=== Products ===") {
		t.Error("grounding prompt missing source section header")
	}
}

func TestGenerateAnswerConversationalPrompt(t *testing.T) {
	provider := &captureProvider{reply: "Hi! I'm Metro's assistant."}
	g := NewGenerator(provider, log.New(io.Discard, "", 0))

	_, err := g.GenerateAnswer(context.Background(), "hello", dialog.FetchedResult{}, nil, nil)
	if err != nil {
		t.Fatalf("GenerateAnswer() error = %v", err)
	}

	final := provider.lastHistory[len(provider.lastHistory)-1].Content
	if !strings.Contains(final, "doesn't require specific database data") {
		t.Error("conversational prompt not used when nothing was fetched")
	}
}

func TestGenerateAnswerTrimsHistory(t *testing.T) {
	provider := &captureProvider{reply: "ok"}
	g := NewGenerator(provider, log.New(io.Discard, "", 0))

	history := make([]dialog.HistoryTurn, 8)
	for i := range history {
		history[i] = dialog.HistoryTurn{User: "q", Bot: "a"}
	}
	_, err := g.GenerateAnswer(context.Background(), "next question", nil, nil, history)
	if err != nil {
		t.Fatalf("GenerateAnswer() error = %v", err)
	}

	// system + 5 trimmed turns (user+assistant each) + final prompt
	if len(provider.lastHistory) != 12 {
		t.Errorf("sent %d messages, want 12", len(provider.lastHistory))
	}
}
