package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5

	MaxCommentLength      = 500
	MaxSummonerNameLength = 50

	RecentReviewsLimit = 20
)

type Review struct {
	ID uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`

	// Canonical lowercase "name#tag". Reviews do not require a matching
	// Player row; the identity may never have been looked up.
	SummonerName string `json:"summonerName" gorm:"uniqueIndex:idx_reviews_submitter;not null"`

	Region  string  `json:"region" gorm:"not null;default:'unknown'"`
	Rating  int     `json:"rating" gorm:"not null"`
	Comment *string `json:"comment,omitempty"`

	// ReviewerIP is the duplicate-review guard key. It must never appear in
	// any response; the composite unique index with SummonerName enforces
	// one review per player per address.
	ReviewerIP string `json:"-" gorm:"uniqueIndex:idx_reviews_submitter;not null"`

	CreatedAt time.Time `json:"createdAt"`
}

// ValidateRating checks the 1-5 star range.
func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return ErrInvalidRating
	}
	return nil
}

// ValidateSummonerName checks presence and length. Format is not enforced;
// the Riot API is the authority on which names exist.
func ValidateSummonerName(name string) error {
	if name == "" || len(name) > MaxSummonerNameLength {
		return ErrInvalidSummonerName
	}
	return nil
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// SanitizeComment trims, truncates to MaxCommentLength and strips
// HTML-tag-like substrings. Returns nil when nothing survives.
func SanitizeComment(comment string) *string {
	sanitized := strings.TrimSpace(comment)
	if len(sanitized) > MaxCommentLength {
		sanitized = sanitized[:MaxCommentLength]
	}
	sanitized = tagPattern.ReplaceAllString(sanitized, "")
	if sanitized == "" {
		return nil
	}
	return &sanitized
}
