package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/poro/summoner-reviews/internal/domain"
	"github.com/poro/summoner-reviews/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type summonerResponse struct {
	PUUID         string `json:"puuid"`
	GameName      string `json:"gameName"`
	TagLine       string `json:"tagLine"`
	ProfileIconID int    `json:"profileIconId"`
	SummonerLevel int    `json:"summonerLevel"`
	Region        string `json:"region"`
	Ranked        *struct {
		Tier   string `json:"tier"`
		Rank   string `json:"rank"`
		LP     int    `json:"lp"`
		Wins   int    `json:"wins"`
		Losses int    `json:"losses"`
	} `json:"ranked"`
}

// riotStub scripts the three Riot endpoints the lookup path touches.
// Toggling hasSummoner/hasRanked exercises the degraded paths.
func riotStub(hasAccount, hasSummoner, hasRanked bool) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/riot/account/v1/accounts/by-riot-id/", func(w http.ResponseWriter, r *http.Request) {
		if !hasAccount {
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"puuid":    "test-puuid",
			"gameName": "Faker",
			"tagLine":  "KR1",
		})
	})

	mux.HandleFunc("/lol/summoner/v4/summoners/by-puuid/", func(w http.ResponseWriter, r *http.Request) {
		if !hasSummoner {
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"profileIconId": 4567,
			"summonerLevel": 782,
		})
	})

	mux.HandleFunc("/lol/league/v4/entries/by-puuid/", func(w http.ResponseWriter, r *http.Request) {
		if !hasRanked {
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{
				"queueType":    "RANKED_FLEX_SR",
				"tier":         "DIAMOND",
				"rank":         "I",
				"leaguePoints": 10,
				"wins":         5,
				"losses":       5,
			},
			{
				"queueType":    "RANKED_SOLO_5x5",
				"tier":         "CHALLENGER",
				"rank":         "I",
				"leaguePoints": 1024,
				"wins":         320,
				"losses":       180,
			},
		})
	})

	return mux
}

func TestSummonerHandler_Lookup(t *testing.T) {
	ts := testutil.NewTestServerWithRiot(t, riotStub(true, true, true))

	resp, err := http.Get(ts.URL("/summoner?gameName=Faker&tagLine=KR1&region=kr&routing=asia"))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result summonerResponse
	testutil.AssertJSONResponse(t, resp, &result)
	assert.Equal(t, "test-puuid", result.PUUID)
	assert.Equal(t, "Faker", result.GameName)
	assert.Equal(t, "KR1", result.TagLine)
	assert.Equal(t, 4567, result.ProfileIconID)
	assert.Equal(t, 782, result.SummonerLevel)
	assert.Equal(t, "kr", result.Region)

	// Solo queue entry wins over flex.
	require.NotNil(t, result.Ranked)
	assert.Equal(t, "CHALLENGER", result.Ranked.Tier)
	assert.Equal(t, 1024, result.Ranked.LP)

	// The lookup left an observation in the directory.
	var player domain.Player
	require.NoError(t, ts.DB.DB.First(&player, "game_name = ? AND tag_line = ?", "faker", "kr1").Error)
	assert.Equal(t, 1, player.SearchCount)
	assert.Equal(t, "Faker", player.DisplayName)

	// A second lookup increments the counter.
	resp2, err := http.Get(ts.URL("/summoner?gameName=faker&tagLine=kr1&region=kr&routing=asia"))
	require.NoError(t, err)
	resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)

	require.NoError(t, ts.DB.DB.First(&player, "game_name = ? AND tag_line = ?", "faker", "kr1").Error)
	assert.Equal(t, 2, player.SearchCount)
}

func TestSummonerHandler_Lookup_PlayerNotFound(t *testing.T) {
	ts := testutil.NewTestServerWithRiot(t, riotStub(false, false, false))

	resp, err := http.Get(ts.URL("/summoner?gameName=Nobody&tagLine=NA1&region=na1&routing=americas"))
	require.NoError(t, err)
	defer resp.Body.Close()

	testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "Player not found")

	// Failed resolutions leave no observation behind.
	var count int64
	ts.DB.DB.Model(&domain.Player{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestSummonerHandler_Lookup_DegradedSummonerData(t *testing.T) {
	ts := testutil.NewTestServerWithRiot(t, riotStub(true, false, false))

	resp, err := http.Get(ts.URL("/summoner?gameName=Faker&tagLine=KR1&region=euw1&routing=europe"))
	require.NoError(t, err)
	defer resp.Body.Close()

	// The account resolved, so the request succeeds with sentinel defaults.
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result summonerResponse
	testutil.AssertJSONResponse(t, resp, &result)
	assert.Equal(t, domain.FallbackProfileIconID, result.ProfileIconID)
	assert.Equal(t, 0, result.SummonerLevel)
	assert.Nil(t, result.Ranked)

	// The degraded lookup still counts as an observation.
	var player domain.Player
	require.NoError(t, ts.DB.DB.First(&player, "game_name = ? AND tag_line = ?", "faker", "kr1").Error)
	assert.Equal(t, domain.FallbackProfileIconID, player.ProfileIconID)
}

func TestSummonerHandler_Lookup_MissingParams(t *testing.T) {
	ts := testutil.NewTestServerWithRiot(t, riotStub(true, true, true))

	tests := []struct {
		name string
		path string
	}{
		{name: "missing gameName", path: "/summoner?tagLine=KR1"},
		{name: "missing tagLine", path: "/summoner?gameName=Faker"},
		{name: "missing both", path: "/summoner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(ts.URL(tt.path))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestSummonerHandler_Lookup_InvalidRegionFallsBack(t *testing.T) {
	ts := testutil.NewTestServerWithRiot(t, riotStub(true, true, false))

	resp, err := http.Get(ts.URL("/summoner?gameName=Faker&tagLine=KR1&region=mars"))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result summonerResponse
	testutil.AssertJSONResponse(t, resp, &result)
	assert.Equal(t, domain.DefaultRegion, result.Region)
}
