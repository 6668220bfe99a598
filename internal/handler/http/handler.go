package http

import (
	"github.com/avreyes/lingap/internal/config"
	"github.com/avreyes/lingap/internal/logger"
	"github.com/avreyes/lingap/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      config.App

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		logger:   logger,
	}
}
