package postgres

import (
	"context"
	"errors"

	"github.com/poro/summoner-reviews/internal/domain"
	"gorm.io/gorm"
)

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *reviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *domain.Review) error {
	err := r.db.WithContext(ctx).Create(review).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// The (summoner_name, reviewer_ip) unique index caught a submission
		// that raced past the service-level existence check.
		return domain.ErrDuplicateReview
	}
	return err
}

func (r *reviewRepository) ExistsFor(ctx context.Context, summonerName, reviewerIP string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Review{}).
		Where("summoner_name = ? AND reviewer_ip = ?", summonerName, reviewerIP).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *reviewRepository) ListBySummonerName(ctx context.Context, summonerName string) ([]*domain.Review, error) {
	var reviews []*domain.Review
	err := r.db.WithContext(ctx).
		Where("summoner_name = ?", summonerName).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Review, error) {
	var reviews []*domain.Review
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}
