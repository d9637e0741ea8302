// Package triage calls the external generative model to interpret student
// messages: is it a complaint, which category, does it need escalation, and
// what solution to suggest. The one hard rule here is that Classify never
// returns an error: every failure mode degrades to a usable Result built
// from the deterministic classifier.
package triage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"strings"

	"hostelhelper/backend/internal/classifier"
	"hostelhelper/backend/internal/config"
	"hostelhelper/backend/internal/models"
)

const systemPrompt = `You are an AI assistant for a university hostel and mess system.
Your role is to help students with their queries and complaints.

If a student has a complaint:
1. Identify if it's related to hostel facilities, mess food, or something else
2. Determine if it needs escalation (serious issues like safety concerns, major facility breakdowns, health hazards)
3. Suggest a possible solution

Respond in JSON format with these fields:
- text: Your helpful response to the student
- isComplaint: true if this is a complaint, false if it's just a query
- isEscalation: true if this requires escalation to administration
- category: "hostel", "mess", or "other"
- suggestedSolution: your recommendation to solve the issue (only if isComplaint is true)

Keep your responses helpful, empathetic, and concise.`

// Degraded-mode replies.
const (
	connectFallbackText = "I'm having trouble connecting to my intelligence service. Let me help you with basic assistance instead."
	parseFallbackText   = "I encountered an error processing your request. Please try again."
	emptyTextFallback   = "Sorry, I had trouble understanding. Could you rephrase that?"
)

// Result is the adapter's answer for one message. Every field is always
// populated (possibly with zero values); consumers never see an error.
type Result struct {
	Text              string `json:"text"`
	IsComplaint       bool   `json:"isComplaint"`
	IsEscalation      bool   `json:"isEscalation"`
	Category          string `json:"category,omitempty"`
	SuggestedSolution string `json:"suggestedSolution,omitempty"`
}

// Client talks to the generativelanguage API.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewClient builds a triage client. The http.Client timeout bounds the call
// even when the caller passes an open-ended context.
func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = config.DefaultGeminiModel
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: config.GeminiBaseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: config.TriageRequestTimeout,
		},
	}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// Classify interprets a message in the context of the prior conversation.
// It never returns an error: transport failures, malformed JSON and missing
// fields each degrade independently, with the deterministic complaint regex
// standing in for the model's isComplaint judgement.
func (c *Client) Classify(ctx context.Context, message string, history []models.HistoryEntry) Result {
	generated, err := c.generate(ctx, message, history)
	if err != nil {
		log.Printf("triage: falling back to basic assistance: %v", err)
		return Result{
			Text:        connectFallbackText,
			IsComplaint: classifier.HasComplaintIntent(message),
		}
	}

	reply, err := parseStructuredReply(generated)
	if err != nil {
		log.Printf("triage: response was not valid JSON: %v", err)
		text := generated
		if text == "" {
			text = parseFallbackText
		}
		return Result{
			Text:        text,
			IsComplaint: classifier.HasComplaintIntent(message),
		}
	}

	text := reply.Text
	if text == "" {
		text = emptyTextFallback
	}
	return Result{
		Text:              text,
		IsComplaint:       reply.IsComplaint,
		IsEscalation:      reply.IsEscalation,
		Category:          reply.Category,
		SuggestedSolution: reply.SuggestedSolution,
	}
}

// generate performs the single API attempt and returns the model's raw text.
func (c *Client) generate(ctx context.Context, message string, history []models.HistoryEntry) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("API key not configured")
	}

	// System instruction first, then history, then the new message. The API
	// has no system role on this endpoint so it is remapped to user.
	contents := make([]GeminiContent, 0, len(history)+2)
	contents = append(contents, GeminiContent{
		Role:  "user",
		Parts: []GeminiPart{{Text: systemPrompt}},
	})
	for _, entry := range history {
		role := entry.Role
		if role == "system" {
			role = "user"
		}
		contents = append(contents, GeminiContent{
			Role:  role,
			Parts: []GeminiPart{{Text: entry.Content}},
		})
	}
	contents = append(contents, GeminiContent{
		Role:  "user",
		Parts: []GeminiPart{{Text: message}},
	})

	reqBody := GeminiRequest{
		Contents: contents,
		GenerationConfig: GeminiGenerationConfig{
			Temperature:     config.TriageTemperature,
			MaxOutputTokens: config.TriageMaxOutputTokens,
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var geminiResp GeminiResponse
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if geminiResp.Error != nil {
		return "", fmt.Errorf("API error: %s", geminiResp.Error.Message)
	}
	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no completion returned")
	}

	var result strings.Builder
	for _, part := range geminiResp.Candidates[0].Content.Parts {
		result.WriteString(part.Text)
	}
	return strings.TrimSpace(result.String()), nil
}

var (
	jsonFenceRe = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
	anyFenceRe  = regexp.MustCompile("(?s)```\\s*(.*?)\\s*```")
)

// parseStructuredReply decodes the model output, tolerating a code fence
// around the JSON object.
func parseStructuredReply(generated string) (structuredReply, error) {
	payload := generated
	if m := jsonFenceRe.FindStringSubmatch(generated); m != nil {
		payload = m[1]
	} else if m := anyFenceRe.FindStringSubmatch(generated); m != nil {
		payload = m[1]
	}

	var reply structuredReply
	if err := json.Unmarshal([]byte(payload), &reply); err != nil {
		return structuredReply{}, err
	}
	return reply, nil
}
