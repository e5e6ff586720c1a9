package services

import (
	"github.com/ielts-prep/reading-test-service/internal/cache"
	"github.com/ielts-prep/reading-test-service/internal/events"
	"github.com/ielts-prep/reading-test-service/internal/repositories"
	"github.com/ielts-prep/reading-test-service/internal/utils"
)

// ServiceManager bundles the service layer for the handler wiring.
type ServiceManager interface {
	Session() SessionService
	Passage() PassageService
}

type serviceManager struct {
	session SessionService
	passage PassageService
}

func NewServiceManager(
	repo repositories.Repository,
	cacheService cache.CacheService,
	publisher events.EventPublisher,
	logger utils.Logger,
	validator *utils.Validator,
) ServiceManager {
	resolver := NewFirstPassageResolver(repo)
	return &serviceManager{
		session: NewSessionService(repo, resolver, publisher, logger, validator),
		passage: NewPassageService(repo, resolver, cacheService, logger),
	}
}

func (m *serviceManager) Session() SessionService {
	return m.session
}

func (m *serviceManager) Passage() PassageService {
	return m.passage
}
