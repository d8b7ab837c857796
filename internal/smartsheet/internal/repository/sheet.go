// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/algoknight/internal/smartsheet/internal/domain"
	"github.com/ecodeclub/algoknight/internal/smartsheet/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
)

var ErrSheetNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./sheet.go -destination=../../mocks/sheet.mock.go -package=smartsheetmocks SmartSheetRepository
type SmartSheetRepository interface {
	Find(ctx context.Context, uid int64) (domain.Sheet, error)
	Save(ctx context.Context, s domain.Sheet) error
}

type smartSheetRepository struct {
	dao dao.SmartSheetDAO
}

func NewSmartSheetRepository(d dao.SmartSheetDAO) SmartSheetRepository {
	return &smartSheetRepository{dao: d}
}

func (r *smartSheetRepository) Find(ctx context.Context, uid int64) (domain.Sheet, error) {
	s, err := r.dao.Find(ctx, uid)
	if err != nil {
		return domain.Sheet{}, err
	}
	return r.toDomain(s), nil
}

func (r *smartSheetRepository) Save(ctx context.Context, s domain.Sheet) error {
	return r.dao.Upsert(ctx, r.toEntity(s))
}

func (r *smartSheetRepository) toDomain(s dao.SmartSheet) domain.Sheet {
	return domain.Sheet{
		Uid: s.Uid,
		Items: slice.Map(s.Items.Val, func(idx int, src dao.Item) domain.Item {
			return domain.Item{Pid: src.Pid, Count: src.Count}
		}),
		Utime: time.UnixMilli(s.Utime),
	}
}

func (r *smartSheetRepository) toEntity(s domain.Sheet) dao.SmartSheet {
	return dao.SmartSheet{
		Uid: s.Uid,
		Items: sqlx.JsonColumn[[]dao.Item]{
			Val: slice.Map(s.Items, func(idx int, src domain.Item) dao.Item {
				return dao.Item{Pid: src.Pid, Count: src.Count}
			}),
			Valid: true,
		},
		Utime: s.Utime.UnixMilli(),
	}
}
