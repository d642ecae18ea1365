package models

import "github.com/qnovavr/QNOVA-BookingService/internal/domain"

// GameResponse представление игры в каталоге для API
type GameResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Platform        string `json:"platform"`
	ImageURL        string `json:"imageUrl"`
	DurationMinutes int    `json:"durationMinutes"`
	MaxPlayers      int    `json:"maxPlayers"`
}

// GameListResponse список игр каталога
type GameListResponse struct {
	Games []*GameResponse `json:"games"`
	Total int             `json:"total"`
}

// FromDomainGame конвертирует domain модель в response
func FromDomainGame(g *domain.Game) *GameResponse {
	return &GameResponse{
		ID:              g.ID,
		Name:            g.Name,
		Description:     g.Description,
		Platform:        g.Platform,
		ImageURL:        g.ImageURL,
		DurationMinutes: g.DurationMinutes,
		MaxPlayers:      g.MaxPlayers,
	}
}

// FromDomainGameList конвертирует список domain моделей в response
func FromDomainGameList(games []*domain.Game) *GameListResponse {
	result := make([]*GameResponse, 0, len(games))
	for _, g := range games {
		result = append(result, FromDomainGame(g))
	}

	return &GameListResponse{
		Games: result,
		Total: len(result),
	}
}
