package models

// AskCoachRequest is the payload sent by the frontend to ask the coach
type AskCoachRequest struct {
	Prompt string `json:"prompt"`
	APIKey string `json:"apiKey"`
}

// GeminiRequest is the generateContent body forwarded upstream
type GeminiRequest struct {
	Contents []GeminiContent `json:"contents"`
}

type GeminiContent struct {
	Parts []GeminiPart `json:"parts"`
}

type GeminiPart struct {
	Text string `json:"text"`
}

// NewGeminiRequest wraps a single prompt in a one-part request
func NewGeminiRequest(prompt string) GeminiRequest {
	return GeminiRequest{
		Contents: []GeminiContent{{Parts: []GeminiPart{{Text: prompt}}}},
	}
}
