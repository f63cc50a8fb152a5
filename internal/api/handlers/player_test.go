package handlers_test

import (
	"net/http"
	"testing"

	"github.com/poro/summoner-reviews/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type playerSuggestion struct {
	GameName      string `json:"game_name"`
	TagLine       string `json:"tag_line"`
	ProfileIconID int    `json:"profile_icon_id"`
	SummonerLevel int    `json:"summoner_level"`
}

func TestPlayerHandler_Search(t *testing.T) {
	ts := testutil.NewTestServer(t)

	testutil.NewPlayerBuilder().WithName("Faker", "KR1").WithSearchCount(100).WithLevel(782).Build(t, ts.DB.DB)
	testutil.NewPlayerBuilder().WithName("Fakir", "EUW").WithSearchCount(3).Build(t, ts.DB.DB)
	testutil.NewPlayerBuilder().WithName("Chovy", "KR1").WithSearchCount(90).Build(t, ts.DB.DB)

	tests := []struct {
		name          string
		query         string
		checkResponse func(*testing.T, []playerSuggestion)
	}{
		{
			name:  "results carry display casing ordered by popularity",
			query: "fa",
			checkResponse: func(t *testing.T, result []playerSuggestion) {
				require.Len(t, result, 2)
				assert.Equal(t, "Faker", result[0].GameName)
				assert.Equal(t, "KR1", result[0].TagLine)
				assert.Equal(t, 782, result[0].SummonerLevel)
				assert.Equal(t, "Fakir", result[1].GameName)
			},
		},
		{
			name:  "single character query returns empty",
			query: "f",
			checkResponse: func(t *testing.T, result []playerSuggestion) {
				assert.Empty(t, result)
			},
		},
		{
			name:  "empty query returns empty",
			query: "",
			checkResponse: func(t *testing.T, result []playerSuggestion) {
				assert.Empty(t, result)
			},
		},
		{
			name:  "no matches returns empty",
			query: "zz",
			checkResponse: func(t *testing.T, result []playerSuggestion) {
				assert.Empty(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(ts.URL("/players/search?q=" + tt.query))
			require.NoError(t, err)
			defer resp.Body.Close()

			// Search never errors toward the client.
			require.Equal(t, http.StatusOK, resp.StatusCode)

			var result []playerSuggestion
			testutil.AssertJSONResponse(t, resp, &result)
			tt.checkResponse(t, result)
		})
	}
}
