package domain

const (
	DefaultRegion  = "euw1"
	DefaultRouting = "europe"
)

// regionRouting maps platform regions to their account-v1 routing value.
var regionRouting = map[string]string{
	"euw1": "europe",
	"eun1": "europe",
	"na1":  "americas",
	"kr":   "asia",
	"br1":  "americas",
	"la1":  "americas",
	"la2":  "americas",
	"oc1":  "sea",
	"tr1":  "europe",
	"ru":   "europe",
	"jp1":  "asia",
}

func IsValidRegion(region string) bool {
	_, ok := regionRouting[region]
	return ok
}

// RoutingForRegion returns the routing value for a platform region,
// falling back to the default for unknown regions.
func RoutingForRegion(region string) string {
	if routing, ok := regionRouting[region]; ok {
		return routing
	}
	return DefaultRouting
}
