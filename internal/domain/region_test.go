package domain_test

import (
	"testing"

	"github.com/poro/summoner-reviews/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestIsValidRegion(t *testing.T) {
	for _, region := range []string{"euw1", "eun1", "na1", "kr", "br1", "la1", "la2", "oc1", "tr1", "ru", "jp1"} {
		assert.True(t, domain.IsValidRegion(region), "region %s should be valid", region)
	}

	assert.False(t, domain.IsValidRegion("EUW1"))
	assert.False(t, domain.IsValidRegion("mars"))
	assert.False(t, domain.IsValidRegion(""))
}

func TestRoutingForRegion(t *testing.T) {
	assert.Equal(t, "europe", domain.RoutingForRegion("euw1"))
	assert.Equal(t, "asia", domain.RoutingForRegion("kr"))
	assert.Equal(t, "americas", domain.RoutingForRegion("na1"))
	assert.Equal(t, "sea", domain.RoutingForRegion("oc1"))

	// Unknown regions route through the default.
	assert.Equal(t, domain.DefaultRouting, domain.RoutingForRegion("mars"))
}
