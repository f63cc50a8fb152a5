package handlers

import (
	"net/http"

	"github.com/poro/summoner-reviews/internal/service"
)

type PlayerHandler struct {
	playerService *service.PlayerService
}

func NewPlayerHandler(playerService *service.PlayerService) *PlayerHandler {
	return &PlayerHandler{playerService: playerService}
}

// PlayerSuggestion is an autocomplete entry. Names carry the display casing
// when the directory has it; the frontend uses them verbatim.
type PlayerSuggestion struct {
	GameName      string `json:"game_name"`
	TagLine       string `json:"tag_line"`
	ProfileIconID int    `json:"profile_icon_id"`
	SummonerLevel int    `json:"summoner_level"`
}

// Search handles GET /players/search?q=. Short queries and internal faults
// both answer with an empty array.
func (h *PlayerHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	players := h.playerService.Search(r.Context(), query)

	suggestions := make([]PlayerSuggestion, 0, len(players))
	for _, p := range players {
		suggestion := PlayerSuggestion{
			GameName:      p.GameName,
			TagLine:       p.TagLine,
			ProfileIconID: p.ProfileIconID,
			SummonerLevel: p.SummonerLevel,
		}
		if p.DisplayName != "" {
			suggestion.GameName = p.DisplayName
		}
		if p.DisplayTag != "" {
			suggestion.TagLine = p.DisplayTag
		}
		suggestions = append(suggestions, suggestion)
	}

	writeJSON(w, http.StatusOK, suggestions)
}
