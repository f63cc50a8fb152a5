package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/poro/summoner-reviews/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recentReviewResponse struct {
	reviewResponse
	DisplaySummonerName string `json:"display_summoner_name"`
}

type trendingPlayerResponse struct {
	GameName    string `json:"game_name"`
	TagLine     string `json:"tag_line"`
	DisplayName string `json:"display_name"`
	SearchCount int    `json:"search_count"`
}

func TestStatsHandler_Trending(t *testing.T) {
	ts := testutil.NewTestServer(t)

	testutil.NewPlayerBuilder().WithName("Faker", "KR1").WithSearchCount(500).Build(t, ts.DB.DB)
	testutil.NewPlayerBuilder().WithName("Chovy", "KR1").WithSearchCount(300).Build(t, ts.DB.DB)
	testutil.NewPlayerBuilder().WithName("Caps", "EUW").WithSearchCount(400).Build(t, ts.DB.DB)

	resp, err := http.Get(ts.URL("/stats/trending"))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result []trendingPlayerResponse
	testutil.AssertJSONResponse(t, resp, &result)

	require.Len(t, result, 3)
	assert.Equal(t, "faker", result[0].GameName)
	assert.Equal(t, "Faker", result[0].DisplayName)
	assert.Equal(t, 500, result[0].SearchCount)
	assert.Equal(t, "caps", result[1].GameName)
	assert.Equal(t, "chovy", result[2].GameName)
}

func TestStatsHandler_Trending_Empty(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp, err := http.Get(ts.URL("/stats/trending"))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result []trendingPlayerResponse
	testutil.AssertJSONResponse(t, resp, &result)
	assert.Empty(t, result)
}

func TestStatsHandler_RecentReviews(t *testing.T) {
	ts := testutil.NewTestServer(t)

	// Faker is known to the directory; the review on him gets display casing.
	testutil.NewPlayerBuilder().WithName("Faker", "KR1").Build(t, ts.DB.DB)

	now := time.Now()
	testutil.NewReviewBuilder().
		ForSummoner("faker#kr1").
		WithRating(5).
		WithReviewerIP("203.0.113.1").
		CreatedAt(now.Add(-time.Minute)).
		Build(t, ts.DB.DB)

	// Nobody ever searched this player; the stored name is the fallback.
	testutil.NewReviewBuilder().
		ForSummoner("unknownguy#euw").
		WithRating(2).
		WithReviewerIP("203.0.113.2").
		CreatedAt(now).
		Build(t, ts.DB.DB)

	resp, err := http.Get(ts.URL("/stats/recent-reviews"))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := testutil.AssertNoReviewerIP(t, resp)

	var result []recentReviewResponse
	require.NoError(t, json.Unmarshal(body, &result))

	require.Len(t, result, 2)
	// Newest first.
	assert.Equal(t, "unknownguy#euw", result[0].SummonerName)
	assert.Equal(t, "unknownguy#euw", result[0].DisplaySummonerName)
	assert.Equal(t, "faker#kr1", result[1].SummonerName)
	assert.Equal(t, "Faker#KR1", result[1].DisplaySummonerName)
}
