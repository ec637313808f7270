package models

// Scenario is a named endgame training position
type Scenario struct {
	FEN   string `json:"fen"`
	Title string `json:"title"`
	Idea  string `json:"idea"`
}

// ScenarioResponse is returned by GET /api/endgame/:type
type ScenarioResponse struct {
	Scenario
	Type  string `json:"type"`
	Index int    `json:"index"`
}

// ErrorResponse is the uniform JSON error body
type ErrorResponse struct {
	Error string `json:"error"`
}
