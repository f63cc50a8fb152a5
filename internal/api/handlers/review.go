package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/poro/summoner-reviews/internal/api/middleware"
	"github.com/poro/summoner-reviews/internal/domain"
	"github.com/poro/summoner-reviews/internal/service"
)

type ReviewHandler struct {
	reviewService *service.ReviewService
}

func NewReviewHandler(reviewService *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// ReviewResponse is the safe projection of a review. The reviewer address
// never leaves the server.
type ReviewResponse struct {
	ID           string    `json:"id"`
	SummonerName string    `json:"summoner_name"`
	Region       string    `json:"region"`
	Rating       int       `json:"rating"`
	Comment      *string   `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}

func toReviewResponse(review *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:           review.ID.String(),
		SummonerName: review.SummonerName,
		Region:       review.Region,
		Rating:       review.Rating,
		Comment:      review.Comment,
		CreatedAt:    review.CreatedAt,
	}
}

// List handles GET /reviews?summoner_name=.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	summonerName := r.URL.Query().Get("summoner_name")
	if summonerName == "" {
		writeError(w, http.StatusBadRequest, "summoner_name is required")
		return
	}

	reviews := h.reviewService.ListForSummoner(r.Context(), summonerName)

	resp := make([]ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		resp = append(resp, toReviewResponse(review))
	}
	writeJSON(w, http.StatusOK, resp)
}

type CreateReviewRequest struct {
	SummonerName string `json:"summoner_name"`
	Region       string `json:"region"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
}

// Create handles POST /reviews.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	review, err := h.reviewService.Submit(r.Context(), service.SubmitReviewInput{
		SummonerName: req.SummonerName,
		Region:       req.Region,
		Rating:       req.Rating,
		Comment:      req.Comment,
		ReviewerIP:   middleware.ClientIP(r),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidSummonerName):
			writeError(w, http.StatusBadRequest, "Invalid summoner name")
		case errors.Is(err, domain.ErrInvalidRating):
			writeError(w, http.StatusBadRequest, "Rating must be an integer between 1 and 5")
		case errors.Is(err, domain.ErrDuplicateReview):
			writeError(w, http.StatusTooManyRequests, "You have already reviewed this player")
		default:
			log.Printf("ERROR [review.Create] failed to save review: %v", err)
			writeError(w, http.StatusInternalServerError, "Could not save review")
		}
		return
	}

	writeJSON(w, http.StatusOK, toReviewResponse(review))
}
