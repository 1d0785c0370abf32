package handlers

import (
	"ircwire/internal/app/infrastructure/config"
	"ircwire/internal/app/ports"
	"ircwire/pkg/logger"
)

type Handlers struct {
	log     logger.Logger
	manager *config.Manager
	parser  ports.ParserPort
}

func New(log logger.Logger, manager *config.Manager, parser ports.ParserPort) *Handlers {
	return &Handlers{
		log:     log,
		manager: manager,
		parser:  parser,
	}
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}
