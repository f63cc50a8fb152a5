package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/poro/summoner-reviews/internal/domain"
	"github.com/poro/summoner-reviews/internal/repository"
	"github.com/poro/summoner-reviews/internal/riot"
)

type PlayerService struct {
	playerRepo repository.PlayerRepository
	riotClient *riot.Client
}

func NewPlayerService(playerRepo repository.PlayerRepository, riotClient *riot.Client) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		riotClient: riotClient,
	}
}

// ProfileSnapshot is the live view of a player assembled from the Riot API.
type ProfileSnapshot struct {
	PUUID         string             `json:"puuid"`
	GameName      string             `json:"gameName"`
	TagLine       string             `json:"tagLine"`
	ProfileIconID int                `json:"profileIconId"`
	SummonerLevel int                `json:"summonerLevel"`
	Region        string             `json:"region"`
	Ranked        *domain.RankedInfo `json:"ranked,omitempty"`
}

// Lookup resolves a Riot ID to a live profile. Account resolution failing is
// fatal; summoner and ranked fetches degrade to sentinel defaults so a player
// who exists but has no data in the chosen region still resolves. Every
// successful lookup records one search observation in the directory.
func (s *PlayerService) Lookup(ctx context.Context, gameName, tagLine, region, routing string) (*ProfileSnapshot, error) {
	account, err := s.riotClient.AccountByRiotID(ctx, routing, gameName, tagLine)
	if err != nil {
		if errors.Is(err, domain.ErrPlayerNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("resolving account: %w", err)
	}

	snapshot := &ProfileSnapshot{
		PUUID:         account.PUUID,
		GameName:      account.GameName,
		TagLine:       account.TagLine,
		ProfileIconID: domain.FallbackProfileIconID,
		SummonerLevel: 0,
		Region:        region,
	}

	summoner, err := s.riotClient.SummonerByPUUID(ctx, region, account.PUUID)
	if err != nil {
		log.Printf("WARN [player.Lookup] no summoner data for %s in %s: %v", account.PUUID, region, err)
	} else {
		snapshot.ProfileIconID = summoner.ProfileIconID
		snapshot.SummonerLevel = summoner.SummonerLevel
	}

	if ranked := s.fetchSoloQueue(ctx, region, account.PUUID); ranked != nil {
		snapshot.Ranked = ranked
	}

	s.recordObservation(ctx, snapshot)

	return snapshot, nil
}

func (s *PlayerService) fetchSoloQueue(ctx context.Context, region, puuid string) *domain.RankedInfo {
	entries, err := s.riotClient.LeagueEntriesByPUUID(ctx, region, puuid)
	if err != nil {
		log.Printf("WARN [player.Lookup] could not fetch ranked data: %v", err)
		return nil
	}

	for _, entry := range entries {
		if entry.QueueType == "RANKED_SOLO_5x5" {
			return &domain.RankedInfo{
				Tier:   entry.Tier,
				Rank:   entry.Rank,
				LP:     entry.LeaguePoints,
				Wins:   entry.Wins,
				Losses: entry.Losses,
			}
		}
	}
	return nil
}

// recordObservation feeds the player directory. Failures are logged and
// swallowed; a broken directory must not break profile lookups.
func (s *PlayerService) recordObservation(ctx context.Context, snapshot *ProfileSnapshot) {
	identity := domain.NormalizeIdentity(snapshot.GameName, snapshot.TagLine)

	player := &domain.Player{
		GameName:       identity.GameName,
		TagLine:        identity.TagLine,
		DisplayName:    snapshot.GameName,
		DisplayTag:     snapshot.TagLine,
		ProfileIconID:  snapshot.ProfileIconID,
		SummonerLevel:  snapshot.SummonerLevel,
		Region:         snapshot.Region,
		SearchCount:    1,
		LastSearchedAt: time.Now(),
	}

	if snapshot.Ranked != nil {
		if raw, err := json.Marshal(snapshot.Ranked); err == nil {
			player.RankedSnapshot = raw
		}
	}

	if err := s.playerRepo.UpsertObservation(ctx, player); err != nil {
		log.Printf("ERROR [player.Lookup] could not save observation for %s: %v", identity.Key(), err)
	}
}

// Search returns autocomplete suggestions by canonical name prefix. Short
// queries and storage faults both yield an empty slice, never an error.
func (s *PlayerService) Search(ctx context.Context, query string) []*domain.Player {
	if len(query) < domain.MinSearchQueryLength {
		return nil
	}

	players, err := s.playerRepo.SearchByPrefix(ctx, query, domain.SearchSuggestionLimit)
	if err != nil {
		log.Printf("ERROR [player.Search] prefix search failed: %v", err)
		return nil
	}
	return players
}

// Trending returns the most searched players. Storage faults degrade to an
// empty slice.
func (s *PlayerService) Trending(ctx context.Context) []*domain.Player {
	players, err := s.playerRepo.TopBySearchCount(ctx, domain.TrendingLimit)
	if err != nil {
		log.Printf("ERROR [player.Trending] failed to fetch trending players: %v", err)
		return nil
	}
	return players
}
