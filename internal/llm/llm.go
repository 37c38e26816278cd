// Package llm is the optional prose-polishing collaborator. It rewrites
// narrative section text through Gemini while leaving structure, facts
// and metrics untouched. The pipeline treats it as best effort: any
// failure keeps the original template text.
package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"google.golang.org/genai"

	"slidesmith/internal/core"
)

const (
	// DefaultModel is the default Gemini model used for polishing.
	DefaultModel = "gemini-flash-lite-latest"

	polishPromptTemplate = `Rewrite the following presentation text so it flows naturally for a spoken talk.
Rules:
- Keep the language of the text unchanged (%s).
- Keep every number, name and technical term exactly as written.
- Keep it to at most two sentences.
- Return only the rewritten text, no commentary.

Text:
%s`
)

var languageNames = map[core.Language]string{
	core.LangJA: "Japanese",
	core.LangEN: "English",
	core.LangZH: "Chinese",
}

// Client wraps the Gemini API for text polishing.
type Client struct {
	modelName string
	gClient   *genai.Client
}

// NewClient creates a polisher client. The API key is read from the
// GEMINI_API_KEY environment variable or the gemini.api_key config key.
func NewClient(ctx context.Context, modelName string) (*Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = viper.GetString("gemini.api_key")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required: set GEMINI_API_KEY or gemini.api_key in the config file")
	}

	if modelName == "" {
		modelName = viper.GetString("gemini.model")
		if modelName == "" {
			modelName = DefaultModel
		}
	}

	gClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{modelName: modelName, gClient: gClient}, nil
}

// Polish rewrites text for spoken delivery in the given language.
func (c *Client) Polish(ctx context.Context, text string, lang core.Language) (string, error) {
	langName, ok := languageNames[lang]
	if !ok {
		langName = languageNames[core.LangJA]
	}

	contents := []*genai.Content{{
		Parts: []*genai.Part{{Text: fmt.Sprintf(polishPromptTemplate, langName, text)}},
		Role:  "user",
	}}

	resp, err := c.gClient.Models.GenerateContent(ctx, c.modelName, contents, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	polished := resp.Text()
	if polished == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return polished, nil
}
