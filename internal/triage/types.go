package triage

// Wire types for the generativelanguage generateContent endpoint.

type GeminiRequest struct {
	Contents         []GeminiContent        `json:"contents"`
	GenerationConfig GeminiGenerationConfig `json:"generationConfig"`
}

type GeminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []GeminiPart `json:"parts"`
}

type GeminiPart struct {
	Text string `json:"text"`
}

type GeminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type GeminiResponse struct {
	Candidates []GeminiCandidate `json:"candidates"`
	Error      *GeminiError      `json:"error,omitempty"`
}

type GeminiCandidate struct {
	Content GeminiContent `json:"content"`
}

type GeminiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// structuredReply is the JSON object the model is instructed to produce.
// Missing fields decode to zero values, which is exactly the best-effort
// behaviour the degraded contract requires.
type structuredReply struct {
	Text              string `json:"text"`
	IsComplaint       bool   `json:"isComplaint"`
	IsEscalation      bool   `json:"isEscalation"`
	Category          string `json:"category"`
	SuggestedSolution string `json:"suggestedSolution"`
}
