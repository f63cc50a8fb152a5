package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	// FallbackProfileIconID is shown when the summoner endpoint has no data
	// for the player's region.
	FallbackProfileIconID = 29

	MinSearchQueryLength  = 2
	SearchSuggestionLimit = 5
	TrendingLimit         = 10
)

type Player struct {
	ID uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`

	// Canonical lowercase identity, the sole lookup key.
	GameName string `json:"gameName" gorm:"uniqueIndex:idx_players_identity;not null"`
	TagLine  string `json:"tagLine" gorm:"uniqueIndex:idx_players_identity;not null"`

	// Original casing from the Riot API, display only.
	DisplayName string `json:"displayName"`
	DisplayTag  string `json:"displayTag"`

	ProfileIconID int    `json:"profileIconId"`
	SummonerLevel int    `json:"summonerLevel"` // 0 means unknown
	Region        string `json:"region"`

	SearchCount    int            `json:"searchCount" gorm:"not null;default:1"`
	RankedSnapshot datatypes.JSON `json:"rankedSnapshot,omitempty" gorm:"type:jsonb"`

	LastSearchedAt time.Time `json:"lastSearchedAt"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Identity returns the canonical identity stored on the record.
func (p *Player) Identity() Identity {
	return Identity{GameName: p.GameName, TagLine: p.TagLine}
}

// RankedInfo is the solo-queue standing captured at lookup time.
type RankedInfo struct {
	Tier   string `json:"tier"`
	Rank   string `json:"rank"`
	LP     int    `json:"lp"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
}
