package smartsheet

import (
	"github.com/ecodeclub/algoknight/internal/smartsheet/internal/domain"
	"github.com/ecodeclub/algoknight/internal/smartsheet/internal/service"
	"github.com/ecodeclub/algoknight/internal/smartsheet/internal/web"
)

type (
	Handler  = web.Handler
	Service  = service.Service
	Page     = domain.Page
	PageItem = domain.PageItem
)

type Module struct {
	Svc Service
	Hdl *Handler
}
