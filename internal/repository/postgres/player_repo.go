package postgres

import (
	"context"
	"strings"

	"github.com/poro/summoner-reviews/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type playerRepository struct {
	db *gorm.DB
}

func NewPlayerRepository(db *gorm.DB) *playerRepository {
	return &playerRepository{db: db}
}

// UpsertObservation is a single atomic insert-or-increment keyed on the
// canonical (game_name, tag_line) identity, so concurrent observations of
// the same player never lose a count.
func (r *playerRepository) UpsertObservation(ctx context.Context, player *domain.Player) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "game_name"}, {Name: "tag_line"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"search_count":     gorm.Expr("players.search_count + 1"),
			"display_name":     player.DisplayName,
			"display_tag":      player.DisplayTag,
			"profile_icon_id":  player.ProfileIconID,
			"summoner_level":   player.SummonerLevel,
			"region":           player.Region,
			"ranked_snapshot":  player.RankedSnapshot,
			"last_searched_at": player.LastSearchedAt,
		}),
	}).Create(player).Error
}

func (r *playerRepository) SearchByPrefix(ctx context.Context, query string, limit int) ([]*domain.Player, error) {
	var players []*domain.Player
	prefix := escapeLike(strings.ToLower(query)) + "%"
	err := r.db.WithContext(ctx).
		Where("game_name LIKE ?", prefix).
		Order("search_count DESC").
		Limit(limit).
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

func (r *playerRepository) TopBySearchCount(ctx context.Context, limit int) ([]*domain.Player, error) {
	var players []*domain.Player
	err := r.db.WithContext(ctx).
		Order("search_count DESC").
		Limit(limit).
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

// FindByIdentities fetches all players matching the given canonical
// identities in one query. Used to enrich recent reviews without a
// per-review lookup.
func (r *playerRepository) FindByIdentities(ctx context.Context, identities []domain.Identity) ([]*domain.Player, error) {
	if len(identities) == 0 {
		return nil, nil
	}

	pairs := make([][]interface{}, 0, len(identities))
	for _, id := range identities {
		pairs = append(pairs, []interface{}{id.GameName, id.TagLine})
	}

	var players []*domain.Player
	err := r.db.WithContext(ctx).
		Where("(game_name, tag_line) IN ?", pairs).
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
