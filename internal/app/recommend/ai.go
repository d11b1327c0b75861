package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"leadflow/internal/app/catalog"
)

var ErrNoRecommendations = errors.New("model returned no known topic ids")

// Generator — текстовая генеративная модель
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiGenerator вызывает Gemini через google.golang.org/genai
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](0.2),
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	return resp.Text(), nil
}

// AIRecommender просит модель выбрать темы из каталога
type AIRecommender struct {
	gen Generator
}

func NewAIRecommender(gen Generator) *AIRecommender {
	return &AIRecommender{gen: gen}
}

// Recommend возвращает только известные каталогу ID без повторов
func (a *AIRecommender) Recommend(ctx context.Context, sel Selection) ([]string, error) {
	text, err := a.gen.Generate(ctx, BuildPrompt(sel))
	if err != nil {
		return nil, err
	}

	raw, err := parseIDs(text)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	ids := []string{}
	for _, id := range raw {
		id = strings.TrimSpace(id)
		if seen[id] {
			continue
		}
		if _, ok := catalog.TopicByID(id); ok {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, ErrNoRecommendations
	}
	return ids, nil
}

// parseIDs вырезает из ответа первый JSON-массив: модели любят оборачивать его в текст
func parseIDs(text string) ([]string, error) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no json array in model response")
	}

	var ids []string
	if err := json.Unmarshal([]byte(text[start:end+1]), &ids); err != nil {
		return nil, fmt.Errorf("parse model response: %w", err)
	}
	return ids, nil
}

func BuildPrompt(sel Selection) string {
	var b strings.Builder

	b.WriteString("You are a corporate training advisor. Choose the training topics that best match the client's needs.\n\n")
	b.WriteString("Available topics:\n")
	for _, t := range catalog.Topics() {
		fmt.Fprintf(&b, "- id: %s | %s (%s, %s): %s Support: %s. Outcomes: %s.\n",
			t.ID, t.Title, t.Category, t.Duration, t.Description,
			strings.Join(t.RelatedSupport, ", "), strings.Join(t.RelatedOutcomes, ", "))
	}

	b.WriteString("\nClient needs:\n")
	fmt.Fprintf(&b, "- Support areas: %s\n", joinOrNone(sel.Support))
	fmt.Fprintf(&b, "- Desired outcomes: %s\n", joinOrNone(sel.Outcomes))
	if sel.Audience != "" {
		fmt.Fprintf(&b, "- Audience: %s\n", sel.Audience)
	}
	if notes := strings.TrimSpace(sel.Notes); notes != "" {
		fmt.Fprintf(&b, "- Notes: %s\n", notes)
	}

	b.WriteString("\nRespond with a JSON array of 3 to 5 topic ids from the list above, most relevant first. ")
	b.WriteString(`Example: ["managing-teams-effectively","coaching-for-performance"]. Do not add any other text.`)
	return b.String()
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
