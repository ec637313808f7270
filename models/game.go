package models

// Platform identifies a game-hosting service
type Platform string

const (
	PlatformChessCom Platform = "chess.com"
	PlatformLichess  Platform = "lichess"
)

// FetchGameResponse is returned by GET /api/fetch-game
type FetchGameResponse struct {
	PGN string `json:"pgn"`
}

// ChessComGame is the subset of the chess.com live game callback we read
type ChessComGame struct {
	Game *struct {
		PGN string `json:"pgn"`
	} `json:"game"`
}
