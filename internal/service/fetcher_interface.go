package service

import (
	"context"

	"github.com/jadavison91/gametime/internal/models"
)

//go:generate mockgen -source=fetcher_interface.go -destination=../mocks/fetcher_mock.go -package=mocks

// Fetcher is an interface that abstracts the scoreboard client.
// This allows for easier testing and mocking.
type Fetcher interface {
	FetchGamesForTeams(ctx context.Context, teams []models.Team) ([]models.Game, error)
	FetchLeagueGames(ctx context.Context, sport, league string) ([]models.Game, error)
}
