package riot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/poro/summoner-reviews/internal/config"
	"github.com/poro/summoner-reviews/internal/domain"
)

const requestTimeout = 10 * time.Second

// Client talks to the Riot API. Account resolution goes through a routing
// region (europe/americas/asia/sea); summoner and league data go through the
// player's platform region (euw1, na1, ...).
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    func(region string) string
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		apiKey: cfg.RiotAPIKey,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		baseURL: func(region string) string {
			return fmt.Sprintf("https://%s.api.riotgames.com", region)
		},
	}
}

// SetBaseURL overrides the per-region base URL. Tests point this at a stub
// server.
func (c *Client) SetBaseURL(base func(region string) string) {
	c.baseURL = base
}

type Account struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

type Summoner struct {
	ProfileIconID int `json:"profileIconId"`
	SummonerLevel int `json:"summonerLevel"`
}

type LeagueEntry struct {
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
}

// AccountByRiotID resolves a name#tag pair to a stable PUUID. A 404 from
// the account endpoint means the player does not exist.
func (c *Client) AccountByRiotID(ctx context.Context, routing, gameName, tagLine string) (*Account, error) {
	reqURL := fmt.Sprintf("%s/riot/account/v1/accounts/by-riot-id/%s/%s",
		c.baseURL(routing), url.PathEscape(gameName), url.PathEscape(tagLine))

	var account Account
	if err := c.get(ctx, reqURL, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (c *Client) SummonerByPUUID(ctx context.Context, region, puuid string) (*Summoner, error) {
	reqURL := fmt.Sprintf("%s/lol/summoner/v4/summoners/by-puuid/%s",
		c.baseURL(region), url.PathEscape(puuid))

	var summoner Summoner
	if err := c.get(ctx, reqURL, &summoner); err != nil {
		return nil, err
	}
	return &summoner, nil
}

func (c *Client) LeagueEntriesByPUUID(ctx context.Context, region, puuid string) ([]LeagueEntry, error) {
	reqURL := fmt.Sprintf("%s/lol/league/v4/entries/by-puuid/%s",
		c.baseURL(region), url.PathEscape(puuid))

	var entries []LeagueEntry
	if err := c.get(ctx, reqURL, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) get(ctx context.Context, reqURL string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Riot-Token", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRiotAPI, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrPlayerNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%w: status %d", domain.ErrRiotAPI, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: decoding response: %v", domain.ErrRiotAPI, err)
	}
	return nil
}
