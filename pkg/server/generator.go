package server

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/kraitsura/storefront/pkg/api"
)

// ErrNoAPIKey is returned when the chat relay has no model credentials.
var ErrNoAPIKey = errors.New("chat relay: API key not configured")

// SystemInstruction primes the support assistant.
const SystemInstruction = `You are the storefront's support assistant for a premium SaaS cybersecurity company.
Keep a calm, concise, professional and reassuring tone.
Help customers understand products such as EDR, XDR and managed SOC.
Keep answers short and well formatted.`

// Generator produces a reply to message given the prior conversation.
type Generator interface {
	Generate(ctx context.Context, message string, history []api.ChatTurn) (string, error)
}

// GenAIGenerator relays chat turns to Gemini.
type GenAIGenerator struct {
	client *genai.Client
	model  string
}

// NewGenAIGenerator creates a Gemini-backed generator.
func NewGenAIGenerator(ctx context.Context, apiKey, model string) (*GenAIGenerator, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &GenAIGenerator{client: client, model: model}, nil
}

// Generate sends the history followed by message and returns the reply text.
func (g *GenAIGenerator) Generate(ctx context.Context, message string, history []api.ChatTurn) (string, error) {
	contents := historyContents(history)
	contents = append(contents, genai.NewContentFromText(message, genai.RoleUser))

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(SystemInstruction, genai.RoleUser),
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return resp.Text(), nil
}

func historyContents(history []api.ChatTurn) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, turn := range history {
		role := genai.Role(genai.RoleUser)
		if turn.Role == string(genai.RoleModel) {
			role = genai.Role(genai.RoleModel)
		}
		parts := make([]*genai.Part, 0, len(turn.Parts))
		for _, p := range turn.Parts {
			if p.Text != "" {
				parts = append(parts, genai.NewPartFromText(p.Text))
			}
		}
		if len(parts) == 0 {
			continue
		}
		contents = append(contents, genai.NewContentFromParts(parts, role))
	}
	return contents
}
