package usecase

import (
	"health-tracker/internal/data/repository"
	"health-tracker/pkg/token"
	"health-tracker/pkg/utils"

	"go.uber.org/zap"
)

// MailDispatcher is the asynchronous hand-off for outbound mail. Sends
// must never block the request path.
type MailDispatcher interface {
	SendConfirmation(email, username, verifyURL string)
	SendPasswordPin(email, pin string)
}

// EventPublisher pushes account lifecycle events to the message broker.
type EventPublisher interface {
	PublishAccountEvent(event string, payload map[string]any) error
}

type Service struct {
	Account AccountService
	Profile ProfileService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	issuer *token.Issuer,
	mail MailDispatcher,
	events EventPublisher,
	log *zap.Logger,
) *Service {
	return &Service{
		Account: NewAccountService(repo, config, issuer, mail, events, log),
		Profile: NewProfileService(repo, log),
	}
}
