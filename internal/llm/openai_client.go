package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/blaisecz/baby-journal/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

// DefaultSystemPrompt is used when no prompt is loaded from Langfuse or disk.
const DefaultSystemPrompt = `You are a supportive, non-medical assistant for parents keeping a baby care journal.

You receive one week of aggregated statistics (feeds, sleep, diapers) and derived insights
(feeding rhythm, sleep debt, nap structure, cluster feeding, hydration, stool pattern,
diaper health score). Base every statement only on the provided data.

Your goals:
- Summarise the week in warm, plain language a tired parent can read in ten seconds.
- Point out patterns and week-over-week changes that stand out.
- Offer small, practical routine suggestions (feeding cues, wind-down, nap timing).

Rules:
- Do NOT diagnose. When an insight is marked "warning" or a hydration or stool flag is raised,
  say it is worth mentioning to their pediatrician, without alarm.
- If data is sparse, say so instead of guessing.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences about the week.",
  "observations": ["3-6 short observations grounded in the numbers"],
  "suggestions": ["2-4 practical, non-medical suggestions"]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing one week of %s's care journal.

- "stats" holds 7 daily buckets, weekly totals, daily averages and week-over-week percent changes
  (null when last week had nothing to compare against).
- "insights" holds the derived scores and the cards already shown to the parent.

JSON:

%s

Based on this data, respond in the required JSON format.`

// WeeklyNarrativeLLM turns a weekly report into a short narrative.
type WeeklyNarrativeLLM interface {
	GenerateWeeklyNarrative(ctx context.Context, report *domain.WeeklyReport) (*domain.LLMWeeklyNarrative, error)
}

// OpenAIClient implements WeeklyNarrativeLLM using the OpenAI API.
type OpenAIClient struct {
	client       openai.Client
	model        string
	systemPrompt string
}

// NewOpenAIClient creates a new OpenAI client for weekly narratives.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string, timeout time.Duration) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(timeout))
	}

	return &OpenAIClient{
		client:       openai.NewClient(opts...),
		model:        model,
		systemPrompt: DefaultSystemPrompt,
	}
}

// WithSystemPrompt replaces the built-in system prompt. Blank prompts are ignored.
func (c *OpenAIClient) WithSystemPrompt(prompt string) *OpenAIClient {
	if c != nil && strings.TrimSpace(prompt) != "" {
		c.systemPrompt = prompt
	}
	return c
}

// GenerateWeeklyNarrative calls OpenAI to describe the week.
func (c *OpenAIClient) GenerateWeeklyNarrative(ctx context.Context, report *domain.WeeklyReport) (*domain.LLMWeeklyNarrative, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	userPrompt, err := BuildUserPrompt(report)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	return ParseNarrative(resp.Choices[0].Message.Content)
}

// BuildUserPrompt renders the report into the user message.
func BuildUserPrompt(report *domain.WeeklyReport) (string, error) {
	reportJSON, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: failed to serialize report: %v", ErrOpenAIRequest, err)
	}
	name := report.BabyName
	if name == "" {
		name = "the baby"
	}
	return fmt.Sprintf(userPromptTemplate, name, string(reportJSON)), nil
}

// ParseNarrative decodes the model output, tolerating a fenced code block.
func ParseNarrative(content string) (*domain.LLMWeeklyNarrative, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var out domain.LLMWeeklyNarrative
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}
	if out.Summary == "" {
		return nil, fmt.Errorf("%w: empty summary", ErrOpenAIResponse)
	}
	return &out, nil
}
