package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/poro/summoner-reviews/internal/domain"
	"github.com/poro/summoner-reviews/internal/service"
)

type SummonerHandler struct {
	playerService *service.PlayerService
}

func NewSummonerHandler(playerService *service.PlayerService) *SummonerHandler {
	return &SummonerHandler{playerService: playerService}
}

// Lookup handles GET /summoner?gameName=&tagLine=&region=&routing=. It
// resolves the Riot ID against the live API and records the search in the
// player directory as a side effect.
func (h *SummonerHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	gameName := query.Get("gameName")
	tagLine := query.Get("tagLine")

	if gameName == "" || tagLine == "" {
		writeError(w, http.StatusBadRequest, "gameName and tagLine are required")
		return
	}

	region := query.Get("region")
	if !domain.IsValidRegion(region) {
		region = domain.DefaultRegion
	}
	routing := query.Get("routing")
	if routing == "" {
		routing = domain.RoutingForRegion(region)
	}

	snapshot, err := h.playerService.Lookup(r.Context(), gameName, tagLine, region, routing)
	if err != nil {
		if errors.Is(err, domain.ErrPlayerNotFound) {
			writeError(w, http.StatusNotFound, "Player not found")
			return
		}
		log.Printf("ERROR [summoner.Lookup] failed to fetch %s#%s: %v", gameName, tagLine, err)
		writeError(w, http.StatusInternalServerError, "Could not fetch player data")
		return
	}

	writeJSON(w, http.StatusOK, snapshot)
}
