package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"devpulse/internal/lib/sl"
	"devpulse/internal/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Result is the summary/efficiency/flag triple produced for a commit diff.
type Result struct {
	Summary    models.Summary
	Efficiency float64
	Flagged    bool
}

// Generator abstracts the model invocation so the analyzer can be tested
// without the external service.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Analyzer turns a commit diff into a structured quality judgement. It never
// returns an error: any invocation or parse failure degrades to a fixed
// fallback result.
type Analyzer struct {
	log *slog.Logger
	gen Generator
}

// New builds an analyzer over the given generator. A nil generator means
// every call yields the fallback result.
func New(log *slog.Logger, gen Generator) *Analyzer {
	return &Analyzer{
		log: log,
		gen: gen,
	}
}

func (a *Analyzer) AnalyzeCommit(ctx context.Context, repoName, commitHash, diff string) Result {
	if a.gen == nil {
		return fallback("model is not configured")
	}

	raw, err := a.gen.Generate(ctx, buildPrompt(repoName, commitHash, diff))
	if err != nil {
		a.log.Error("ai analysis failed", sl.Err(err))
		return fallback(err.Error())
	}

	content := stripFences(raw)

	var parsed struct {
		Summary    models.Summary `json:"summary"`
		Efficiency *float64       `json:"efficiency"`
		Flagged    *bool          `json:"flagged"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		a.log.Error("ai response is not valid json", sl.Err(err), slog.String("raw", raw))
		return fallback(err.Error())
	}

	res := Result{
		Summary:    parsed.Summary,
		Efficiency: 0.5,
	}
	if res.Summary == nil {
		res.Summary = models.Summary{
			"intent":       "Unknown",
			"changes":      "Unknown",
			"observations": "Unknown",
		}
	}
	if parsed.Efficiency != nil {
		res.Efficiency = *parsed.Efficiency
	}
	if parsed.Flagged != nil {
		res.Flagged = *parsed.Flagged
	}

	return res
}

func buildPrompt(repoName, commitHash, diff string) string {
	return fmt.Sprintf(`You are a code analysis AI. Analyze this git commit diff and return ONLY valid JSON.

Repository: %s
Commit Hash: %s
Diff:
%s

Return ONLY this JSON structure (no other text):
{
  "summary": {
    "intent": "brief description of what the commit does",
    "changes": "list of specific changes made",
    "observations": "any notable observations about code quality or patterns"
  },
  "efficiency": 0.75,
  "flagged": false
}

JSON response:`, repoName, commitHash, diff)
}

// stripFences removes a Markdown code fence wrapping if the model added one.
func stripFences(raw string) string {
	content := strings.TrimSpace(raw)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}

func fallback(reason string) Result {
	return Result{
		Summary: models.Summary{
			"intent":       "Analysis failed",
			"changes":      "Could not analyze commit",
			"observations": "Error: " + reason,
		},
		Efficiency: 0.5,
		Flagged:    false,
	}
}

// geminiGenerator invokes the Gemini model and flattens the text parts of
// the first candidate.
type geminiGenerator struct {
	model *genai.GenerativeModel
}

// NewGeminiGenerator builds the production generator. Errors only on client
// construction, not on later model calls.
func NewGeminiGenerator(ctx context.Context, apiKey, modelName string) (Generator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &geminiGenerator{model: client.GenerativeModel(modelName)}, nil
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("empty model response")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return b.String(), nil
}
