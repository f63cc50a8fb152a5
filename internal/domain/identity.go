package domain

import "strings"

// Identity is the canonical lowercase form of a Riot ID. It is the only
// key used for player lookups; display casing lives on the Player record.
type Identity struct {
	GameName string
	TagLine  string
}

// NormalizeIdentity lowercases both halves of a Riot ID. It does not trim
// or validate; length checks happen at the service layer.
func NormalizeIdentity(gameName, tagLine string) Identity {
	return Identity{
		GameName: strings.ToLower(gameName),
		TagLine:  strings.ToLower(tagLine),
	}
}

// Key returns the "name#tag" form used to key reviews.
func (i Identity) Key() string {
	return i.GameName + "#" + i.TagLine
}

// NormalizeSummonerName lowercases a full "name#tag" string.
func NormalizeSummonerName(name string) string {
	return strings.ToLower(name)
}

// ParseSummonerName splits a "name#tag" string on the first '#'.
// ok is false when either half is empty.
func ParseSummonerName(name string) (gameName, tagLine string, ok bool) {
	gameName, tagLine, found := strings.Cut(name, "#")
	if !found || gameName == "" || tagLine == "" {
		return "", "", false
	}
	return gameName, tagLine, true
}
