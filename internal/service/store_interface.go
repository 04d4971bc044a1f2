package service

import (
	"context"
	"time"

	"github.com/jadavison91/gametime/internal/models"
)

//go:generate mockgen -source=store_interface.go -destination=../mocks/store_mock.go -package=mocks

// Store is an interface that abstracts the layered game cache.
// This allows for easier testing and mocking.
type Store interface {
	Save(ctx context.Context, games []models.Game)
	Load(ctx context.Context) []models.Game
	LastFetch(ctx context.Context) time.Time
	IsStale(ctx context.Context) bool
	Clear(ctx context.Context)
	InvalidateMemory()
}
