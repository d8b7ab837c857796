package problem

import (
	"github.com/ecodeclub/algoknight/internal/problem/internal/domain"
	"github.com/ecodeclub/algoknight/internal/problem/internal/service"
)

type Module struct {
	Svc Service
}

type Problem = domain.Problem

type Service = service.Service

var ErrInvalidProblem = service.ErrInvalidProblem
