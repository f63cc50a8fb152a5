package repository

import (
	"context"

	"github.com/poro/summoner-reviews/internal/domain"
)

type PlayerRepository interface {
	// UpsertObservation records one search observation: inserts the player
	// with SearchCount 1, or atomically increments the counter and
	// refreshes the display metadata.
	UpsertObservation(ctx context.Context, player *domain.Player) error
	SearchByPrefix(ctx context.Context, query string, limit int) ([]*domain.Player, error)
	TopBySearchCount(ctx context.Context, limit int) ([]*domain.Player, error)
	FindByIdentities(ctx context.Context, identities []domain.Identity) ([]*domain.Player, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	ExistsFor(ctx context.Context, summonerName, reviewerIP string) (bool, error)
	ListBySummonerName(ctx context.Context, summonerName string) ([]*domain.Review, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.Review, error)
}

type Repositories struct {
	Player PlayerRepository
	Review ReviewRepository
}
