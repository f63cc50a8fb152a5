package postgres

import (
	"github.com/poro/summoner-reviews/internal/domain"
	"github.com/poro/summoner-reviews/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		// Surfaces unique violations as gorm.ErrDuplicatedKey so the
		// review insert can report duplicates instead of a generic error.
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate tables
	err = db.AutoMigrate(
		&domain.Player{},
		&domain.Review{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		Player: NewPlayerRepository(db),
		Review: NewReviewRepository(db),
	}
}
