package adaptor

import (
	"health-tracker/internal/usecase"
	"health-tracker/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Account *AccountHandler
	Profile *ProfileHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Account: NewAccountHandler(service.Account, config, log),
		Profile: NewProfileHandler(service.Profile, log),
	}
}
