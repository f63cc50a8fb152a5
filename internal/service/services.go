package service

import (
	"github.com/poro/summoner-reviews/internal/repository"
	"github.com/poro/summoner-reviews/internal/riot"
)

type Services struct {
	Player *PlayerService
	Review *ReviewService
}

func NewServices(repos *repository.Repositories, riotClient *riot.Client) *Services {
	return &Services{
		Player: NewPlayerService(repos.Player, riotClient),
		Review: NewReviewService(repos.Review, repos.Player),
	}
}
