package network

import (
	"github.com/ecodeclub/algoknight/internal/network/internal/domain"
	"github.com/ecodeclub/algoknight/internal/network/internal/service"
	"github.com/ecodeclub/algoknight/internal/network/internal/web"
)

type (
	Handler    = web.Handler
	Service    = service.Service
	Connection = domain.Connection
)

type Module struct {
	Svc Service
	Hdl *Handler
}
