package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/poro/summoner-reviews/internal/domain"
	"gorm.io/gorm"
)

// PlayerBuilder creates test players with a builder pattern
type PlayerBuilder struct {
	gameName      string
	tagLine       string
	profileIconID int
	summonerLevel int
	region        string
	searchCount   int
}

// NewPlayerBuilder creates a new PlayerBuilder with default values
func NewPlayerBuilder() *PlayerBuilder {
	suffix := uuid.New().String()[:8]
	return &PlayerBuilder{
		gameName:      fmt.Sprintf("player_%s", suffix),
		tagLine:       "euw",
		profileIconID: 1234,
		summonerLevel: 100,
		region:        "euw1",
		searchCount:   1,
	}
}

// WithName sets the display-cased Riot ID; the canonical identity is derived
// by lowercasing.
func (b *PlayerBuilder) WithName(gameName, tagLine string) *PlayerBuilder {
	b.gameName = gameName
	b.tagLine = tagLine
	return b
}

// WithSearchCount sets the popularity counter
func (b *PlayerBuilder) WithSearchCount(count int) *PlayerBuilder {
	b.searchCount = count
	return b
}

// WithRegion sets the platform region
func (b *PlayerBuilder) WithRegion(region string) *PlayerBuilder {
	b.region = region
	return b
}

// WithLevel sets the summoner level
func (b *PlayerBuilder) WithLevel(level int) *PlayerBuilder {
	b.summonerLevel = level
	return b
}

// Build creates the player in the database
func (b *PlayerBuilder) Build(t *testing.T, db *gorm.DB) *domain.Player {
	t.Helper()

	identity := domain.NormalizeIdentity(b.gameName, b.tagLine)
	player := &domain.Player{
		ID:             uuid.New(),
		GameName:       identity.GameName,
		TagLine:        identity.TagLine,
		DisplayName:    b.gameName,
		DisplayTag:     b.tagLine,
		ProfileIconID:  b.profileIconID,
		SummonerLevel:  b.summonerLevel,
		Region:         b.region,
		SearchCount:    b.searchCount,
		LastSearchedAt: time.Now(),
	}

	if err := db.Create(player).Error; err != nil {
		t.Fatalf("failed to create player: %v", err)
	}

	return player
}

// ReviewBuilder creates test reviews with a builder pattern
type ReviewBuilder struct {
	summonerName string
	region       string
	rating       int
	comment      *string
	reviewerIP   string
	createdAt    time.Time
}

// NewReviewBuilder creates a new ReviewBuilder with default values
func NewReviewBuilder() *ReviewBuilder {
	suffix := uuid.New().String()[:8]
	comment := "solid laner"
	return &ReviewBuilder{
		summonerName: fmt.Sprintf("player_%s#euw", suffix),
		region:       "euw1",
		rating:       4,
		comment:      &comment,
		reviewerIP:   fmt.Sprintf("10.0.0.%d", time.Now().UnixNano()%250+1),
		createdAt:    time.Now(),
	}
}

// ForSummoner sets the reviewed summoner; stored in canonical lowercase.
func (b *ReviewBuilder) ForSummoner(name string) *ReviewBuilder {
	b.summonerName = domain.NormalizeSummonerName(name)
	return b
}

// WithRating sets the star rating
func (b *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	b.rating = rating
	return b
}

// WithComment sets the comment
func (b *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	b.comment = &comment
	return b
}

// WithReviewerIP sets the submitter address
func (b *ReviewBuilder) WithReviewerIP(ip string) *ReviewBuilder {
	b.reviewerIP = ip
	return b
}

// CreatedAt sets the creation timestamp
func (b *ReviewBuilder) CreatedAt(at time.Time) *ReviewBuilder {
	b.createdAt = at
	return b
}

// Build creates the review in the database
func (b *ReviewBuilder) Build(t *testing.T, db *gorm.DB) *domain.Review {
	t.Helper()

	review := &domain.Review{
		ID:           uuid.New(),
		SummonerName: domain.NormalizeSummonerName(b.summonerName),
		Region:       b.region,
		Rating:       b.rating,
		Comment:      b.comment,
		ReviewerIP:   b.reviewerIP,
		CreatedAt:    b.createdAt,
	}

	if err := db.Create(review).Error; err != nil {
		t.Fatalf("failed to create review: %v", err)
	}

	return review
}
