package domain

import "errors"

// Review validation errors
var (
	ErrInvalidRating       = errors.New("rating must be an integer between 1 and 5")
	ErrInvalidSummonerName = errors.New("invalid summoner name")
	ErrDuplicateReview     = errors.New("review already exists for this player from this address")
)

// Lookup errors
var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrRiotAPI        = errors.New("riot api error")
)
