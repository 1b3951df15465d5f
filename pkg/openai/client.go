package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/korjavin/pantrychef/pkg/logger"
	"github.com/sashabaranov/go-openai"
)

const (
	textTimeout  = 15 * time.Second
	photoTimeout = 30 * time.Second
)

// Client turns free-form pantry descriptions into ingredient names
type Client struct {
	client *openai.Client
	model  string
	logger *logger.Logger
}

// New creates a new OpenAI client
func New(apiKey, apiBase, model string) *Client {
	config := openai.DefaultConfig(apiKey)
	if apiBase != "" {
		config.BaseURL = apiBase
	}

	return &Client{
		client: openai.NewClientWithConfig(config),
		model:  model,
		logger: logger.New("openai"),
	}
}

// ParseIngredientsFromText extracts ingredients from free-form text
func (c *Client) ParseIngredientsFromText(ctx context.Context, text string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, textTimeout)
	defer cancel()

	prompt := fmt.Sprintf(`
You are a cooking assistant. Extract all food ingredients from the following text.
Use the singular form and keep the language of the text.
Return only a JSON array of ingredient names, no other text.
For example: ["huevo", "leche", "tomate", "pechuga de pollo"]

Text: %s
`, text)

	c.logger.Info("Parsing ingredients from text")
	c.logger.Debug("Text to parse (first 100 chars): %s", truncateString(text, 100))

	content, err := c.complete(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return nil, err
	}

	var ingredients []string
	if err := json.Unmarshal([]byte(content), &ingredients); err != nil {
		c.logger.Error("Failed to parse response: %v, Content: %s", err, content)
		return nil, fmt.Errorf("failed to parse OpenAI response: %w", err)
	}
	return ingredients, nil
}

// ExtractIngredientsFromPhoto lists the food visible in a pantry or fridge photo
func (c *Client) ExtractIngredientsFromPhoto(ctx context.Context, photoURL string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, photoTimeout)
	defer cancel()

	prompt := `You are a computer vision expert. Look at the image of a fridge or pantry and list all visible food ingredients.
Be thorough and try to identify as many food items as possible.
Return only a JSON array of ingredient names in singular form, no other text.
For example: ["huevo", "leche", "tomate"]
`

	c.logger.Info("Extracting ingredients from photo")

	content, err := c.complete(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: prompt,
			},
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: "What food ingredients do you see in this image? List all of them in a JSON array.",
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL: photoURL,
						},
					},
				},
			},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return nil, err
	}

	var ingredients []string
	if err := json.Unmarshal([]byte(content), &ingredients); err != nil {
		c.logger.Error("Failed to parse response: %v, Content: %s", err, content)

		// Try to extract ingredients using a more lenient approach
		extracted := extractIngredientsFromText(content)
		if len(extracted) > 0 {
			c.logger.Info("Extracted %d ingredients using fallback method", len(extracted))
			return extracted, nil
		}
		return nil, fmt.Errorf("failed to parse OpenAI response: %w", err)
	}

	c.logger.Info("Successfully extracted %d ingredients from photo", len(ingredients))
	return ingredients, nil
}

func (c *Client) complete(ctx context.Context, req openai.ChatCompletionRequest) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		c.logger.Error("OpenAI API error: %v", err)
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI API")
	}

	content := resp.Choices[0].Message.Content
	c.logger.Debug("OpenAI response (first 100 chars): %s", truncateString(content, 100))

	// Clean up the response - sometimes the model returns markdown code blocks
	return cleanJSONResponse(content), nil
}

// truncateString truncates a string to the specified number of runes
func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen]) + "..."
}

// cleanJSONResponse strips the ```json fences models like to add
func cleanJSONResponse(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "```") {
		// Skip the first line (which might contain "```json")
		if firstLineEnd := strings.Index(s, "\n"); firstLineEnd != -1 {
			s = s[firstLineEnd+1:]
		} else {
			s = strings.TrimPrefix(s, "```")
		}
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}

	return s
}

// extractIngredientsFromText is the fallback when the model's answer is not
// a JSON array
func extractIngredientsFromText(s string) []string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '\n' || r == '"' || r == '[' || r == ']' || r == '\t'
	})

	var ingredients []string
	for _, word := range words {
		word = strings.TrimSpace(word)
		// Skip empty strings and single characters
		if len([]rune(word)) <= 1 {
			continue
		}
		// Skip common JSON syntax
		if word == "null" || word == "true" || word == "false" {
			continue
		}
		// Skip if it starts with a number (likely part of JSON syntax)
		if word[0] >= '0' && word[0] <= '9' {
			continue
		}
		ingredients = append(ingredients, word)
	}

	return ingredients
}
