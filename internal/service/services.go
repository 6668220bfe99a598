package service

import (
	"github.com/avreyes/lingap/internal/config"
	"github.com/avreyes/lingap/internal/logger"
	"github.com/avreyes/lingap/internal/store"
	"github.com/avreyes/lingap/internal/validators"
)

type Services struct {
	AuthService AuthService
	UserService UserService
	CaseService CaseService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	caseValidator := validators.NewCaseValidator()

	return &Services{
		AuthService: NewAuthService(storages.Users, cfg.App, logger),
		UserService: NewUserService(storages.Users, caseValidator, logger),
		CaseService: NewCaseService(storages.Cases, storages.Users, caseValidator, logger),
	}
}
