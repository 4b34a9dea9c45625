// Package answer turns a user message plus fetched directory data into the
// natural-language reply of a turn. The grounding prompt embeds the fetched
// records so the model answers from real data instead of inventing it.
package answer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"metro-chatbot-be/pkg/dialog"
	"metro-chatbot-be/pkg/llm"
)

const systemPrompt = `You are a helpful technical assistant for Metro, a company specializing in solar systems, generators, inverters, and electrical systems.

Your job is to:
1. Analyze the user's message to understand their intent
2. Use the fetched database data when it is provided
3. Respond naturally and conversationally when appropriate

IMPORTANT GUIDELINES:
- Be conversational and natural, respond to greetings appropriately
- If user has a technical problem or fault, point them at the listed technicians
- If user wants to buy specific products or get quotes, use the listed products and sales staff
- If user asks general questions about how things work, answer from knowledge
- Keep responses helpful and concise
- Use the user's name if available`

// Generator produces grounded replies through an LLM provider.
type Generator struct {
	provider llm.LLMProvider
	logger   *log.Logger
}

var _ dialog.AnswerGenerator = &Generator{}

func NewGenerator(provider llm.LLMProvider, logger *log.Logger) *Generator {
	return &Generator{provider: provider, logger: logger}
}

func (g *Generator) GenerateAnswer(ctx context.Context, message string, fetched dialog.FetchedResult, profile *dialog.Identity, history []dialog.HistoryTurn) (string, error) {
	messages := []llm.Message{
		{Role: "system", Content: g.systemPrompt(profile)},
	}

	// The last few exchanges keep the model on topic without blowing the
	// context window.
	start := 0
	if len(history) > 5 {
		start = len(history) - 5
	}
	for _, turn := range history[start:] {
		if turn.User != "" {
			messages = append(messages, llm.Message{Role: "user", Content: turn.User})
		}
		if turn.Bot != "" {
			messages = append(messages, llm.Message{Role: "assistant", Content: turn.Bot})
		}
	}

	messages = append(messages, llm.Message{Role: "user", Content: buildFinalPrompt(message, fetched, profile)})

	reply, err := g.provider.Chat(ctx, messages, llm.WithTemperature(0.3))
	if err != nil {
		g.logger.Printf("[ANSWER] generation failed: %v", err)
		return "", fmt.Errorf("generate answer: %w", err)
	}
	return strings.TrimSpace(reply), nil
}

func (g *Generator) systemPrompt(profile *dialog.Identity) string {
	if profile == nil {
		return systemPrompt
	}
	return systemPrompt + fmt.Sprintf("\nUser Profile: %s (Email: %s)", profile.Name, profile.Email)
}

// sourceTitles maps sources to the section headers of the grounding prompt.
var sourceTitles = map[dialog.Source]string{
	dialog.SourceProducts:    "Products",
	dialog.SourceTechnicians: "Technicians",
	dialog.SourceSalesmen:    "Salesmen",
	dialog.SourceEmployees:   "Employees",
	dialog.SourceHistory:     "Previous Conversations",
}

func buildFinalPrompt(message string, fetched dialog.FetchedResult, profile *dialog.Identity) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "User asked: %q\n\n", message)

	if profile != nil {
		fmt.Fprintf(&sb, "User profile: %s\n\n", profile.Name)
	}

	hasData := false
	for _, records := range fetched {
		if len(records) > 0 {
			hasData = true
			break
		}
	}

	if !hasData {
		sb.WriteString(`This is a general question or conversational message that doesn't require specific database data.

Respond naturally and helpfully:
- If it's a greeting, greet them warmly and briefly introduce yourself as Metro's assistant
- If it's a general question, answer from your knowledge about solar, generators, inverters, electrical systems
- Keep it conversational and friendly
- If appropriate, mention you can help with specific products, technical support, or sales inquiries
- Keep responses concise (1-3 sentences)`)
		return sb.String()
	}

	sb.WriteString("I have fetched the following relevant data from our database:\n\n")
	for _, src := range dialog.KnownSources {
		records := fetched[src]
		if len(records) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "=== %s ===\n", sourceTitles[src])
		for i, record := range records {
			raw, err := json.MarshalIndent(record, "", "  ")
			if err != nil {
				continue
			}
			fmt.Fprintf(&sb, "%d. %s\n", i+1, string(raw))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(`Now generate a helpful, direct response using the above data.

IMPORTANT:
- Use specific details from the fetched data (product names, specs, prices, technician names, etc.)
- Be direct and answer the question
- If recommending products, mention specific names and key features
- If suggesting technicians/salesmen, provide their names and contact info
- Keep the response concise but informative (2-4 sentences)
- Speak naturally and professionally`)

	return sb.String()
}
