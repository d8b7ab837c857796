package tracker

import (
	"github.com/ecodeclub/algoknight/internal/tracker/internal/domain"
	"github.com/ecodeclub/algoknight/internal/tracker/internal/event"
	"github.com/ecodeclub/algoknight/internal/tracker/internal/job"
	"github.com/ecodeclub/algoknight/internal/tracker/internal/service"
	"github.com/ecodeclub/algoknight/internal/tracker/internal/web"
)

type (
	Handler         = web.Handler
	Service         = service.Service
	PollJob         = job.PollJob
	Consumer        = event.Consumer
	Platform        = domain.Platform
	Status          = domain.Status
	Handle          = domain.Handle
	Ledger          = domain.Ledger
	LedgerEntry     = domain.LedgerEntry
	PlatformProfile = domain.PlatformProfile
	Contest         = domain.Contest
	SubmissionEvent = domain.SubmissionEvent
	UpsolveContest  = domain.UpsolveContest
)

const (
	PlatformCodeforces = domain.PlatformCodeforces
	PlatformCodechef   = domain.PlatformCodechef
	PlatformLeetcode   = domain.PlatformLeetcode

	StatusAC  = domain.StatusAC
	StatusWA  = domain.StatusWA
	StatusTLE = domain.StatusTLE
	StatusMLE = domain.StatusMLE
	StatusRE  = domain.StatusRE
	StatusCE  = domain.StatusCE
)

func Platforms() []Platform {
	return domain.Platforms()
}

type Module struct {
	Svc      Service
	Hdl      *Handler
	PollJob  *PollJob
	Consumer *Consumer
}
