package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/poro/summoner-reviews/internal/domain"
	"github.com/poro/summoner-reviews/internal/repository"
)

type ReviewService struct {
	reviewRepo repository.ReviewRepository
	playerRepo repository.PlayerRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, playerRepo repository.PlayerRepository) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		playerRepo: playerRepo,
	}
}

type SubmitReviewInput struct {
	SummonerName string
	Region       string
	Rating       int
	Comment      string
	ReviewerIP   string
}

// Submit validates and persists an anonymous review. The (summoner, address)
// pair may review once: a pre-check gives the common case a friendly
// rejection, and the unique index catches anything that races past it.
func (s *ReviewService) Submit(ctx context.Context, input SubmitReviewInput) (*domain.Review, error) {
	if err := domain.ValidateSummonerName(input.SummonerName); err != nil {
		return nil, err
	}
	if err := domain.ValidateRating(input.Rating); err != nil {
		return nil, err
	}

	region := input.Region
	if region == "" {
		region = "unknown"
	}

	normalizedName := domain.NormalizeSummonerName(input.SummonerName)

	exists, err := s.reviewRepo.ExistsFor(ctx, normalizedName, input.ReviewerIP)
	if err != nil {
		return nil, fmt.Errorf("checking existing review: %w", err)
	}
	if exists {
		return nil, domain.ErrDuplicateReview
	}

	review := &domain.Review{
		SummonerName: normalizedName,
		Region:       region,
		Rating:       input.Rating,
		Comment:      domain.SanitizeComment(input.Comment),
		ReviewerIP:   input.ReviewerIP,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		if errors.Is(err, domain.ErrDuplicateReview) {
			return nil, err
		}
		return nil, fmt.Errorf("saving review: %w", err)
	}

	return review, nil
}

// ListForSummoner returns all reviews for a player, newest first. Storage
// faults are logged and degrade to an empty slice so browsing never breaks.
func (s *ReviewService) ListForSummoner(ctx context.Context, summonerName string) []*domain.Review {
	normalizedName := domain.NormalizeSummonerName(summonerName)

	reviews, err := s.reviewRepo.ListBySummonerName(ctx, normalizedName)
	if err != nil {
		log.Printf("ERROR [review.ListForSummoner] failed to fetch reviews: %v", err)
		return nil
	}
	return reviews
}

// RecentReview is a review enriched with the player's display casing when
// the directory knows the identity.
type RecentReview struct {
	*domain.Review
	DisplaySummonerName string `json:"displaySummonerName"`
}

// Recent returns the newest reviews across all players, each carrying the
// best display name available. Enrichment is one batched directory lookup;
// unknown identities fall back to the stored name.
func (s *ReviewService) Recent(ctx context.Context) []*RecentReview {
	reviews, err := s.reviewRepo.ListRecent(ctx, domain.RecentReviewsLimit)
	if err != nil {
		log.Printf("ERROR [review.Recent] failed to fetch recent reviews: %v", err)
		return nil
	}

	displayNames := s.displayNamesFor(ctx, reviews)

	enriched := make([]*RecentReview, 0, len(reviews))
	for _, review := range reviews {
		display, ok := displayNames[review.SummonerName]
		if !ok {
			display = review.SummonerName
		}
		enriched = append(enriched, &RecentReview{
			Review:              review,
			DisplaySummonerName: display,
		})
	}
	return enriched
}

func (s *ReviewService) displayNamesFor(ctx context.Context, reviews []*domain.Review) map[string]string {
	seen := make(map[string]struct{}, len(reviews))
	identities := make([]domain.Identity, 0, len(reviews))
	for _, review := range reviews {
		if _, ok := seen[review.SummonerName]; ok {
			continue
		}
		seen[review.SummonerName] = struct{}{}

		gameName, tagLine, ok := domain.ParseSummonerName(review.SummonerName)
		if !ok {
			continue
		}
		identities = append(identities, domain.NormalizeIdentity(gameName, tagLine))
	}

	players, err := s.playerRepo.FindByIdentities(ctx, identities)
	if err != nil {
		log.Printf("ERROR [review.Recent] display name enrichment failed: %v", err)
		return nil
	}

	displayNames := make(map[string]string, len(players))
	for _, player := range players {
		if player.DisplayName == "" || player.DisplayTag == "" {
			continue
		}
		displayNames[player.Identity().Key()] = player.DisplayName + "#" + player.DisplayTag
	}
	return displayNames
}
