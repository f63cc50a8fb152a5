package handlers

import (
	"net/http"
	"time"

	"github.com/poro/summoner-reviews/internal/domain"
	"github.com/poro/summoner-reviews/internal/service"
)

type StatsHandler struct {
	playerService *service.PlayerService
	reviewService *service.ReviewService
}

func NewStatsHandler(playerService *service.PlayerService, reviewService *service.ReviewService) *StatsHandler {
	return &StatsHandler{
		playerService: playerService,
		reviewService: reviewService,
	}
}

type RecentReviewResponse struct {
	ReviewResponse
	DisplaySummonerName string `json:"display_summoner_name"`
}

// RecentReviews handles GET /stats/recent-reviews.
func (h *StatsHandler) RecentReviews(w http.ResponseWriter, r *http.Request) {
	reviews := h.reviewService.Recent(r.Context())

	resp := make([]RecentReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		resp = append(resp, RecentReviewResponse{
			ReviewResponse:      toReviewResponse(review.Review),
			DisplaySummonerName: review.DisplaySummonerName,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

type TrendingPlayerResponse struct {
	ID            string    `json:"id"`
	GameName      string    `json:"game_name"`
	TagLine       string    `json:"tag_line"`
	DisplayName   string    `json:"display_name"`
	DisplayTag    string    `json:"display_tag"`
	ProfileIconID int       `json:"profile_icon_id"`
	SummonerLevel int       `json:"summoner_level"`
	Region        string    `json:"region"`
	SearchCount   int       `json:"search_count"`
	LastSearched  time.Time `json:"last_searched"`
}

// Trending handles GET /stats/trending.
func (h *StatsHandler) Trending(w http.ResponseWriter, r *http.Request) {
	players := h.playerService.Trending(r.Context())

	resp := make([]TrendingPlayerResponse, 0, len(players))
	for _, p := range players {
		resp = append(resp, trendingResponse(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

func trendingResponse(p *domain.Player) TrendingPlayerResponse {
	return TrendingPlayerResponse{
		ID:            p.ID.String(),
		GameName:      p.GameName,
		TagLine:       p.TagLine,
		DisplayName:   p.DisplayName,
		DisplayTag:    p.DisplayTag,
		ProfileIconID: p.ProfileIconID,
		SummonerLevel: p.SummonerLevel,
		Region:        p.Region,
		SearchCount:   p.SearchCount,
		LastSearched:  p.LastSearchedAt,
	}
}
